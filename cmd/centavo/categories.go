package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/centavohq/centavo/internal/cli"
	"github.com/centavohq/centavo/internal/ledger"
	"github.com/centavohq/centavo/internal/model"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

func categoriesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "categories",
		Short: "Manage the category registry",
		Long:  `List, add, update, and delete the categories that map transactions into budget buckets.`,
	}

	cmd.AddCommand(listCategoriesCmd())
	cmd.AddCommand(addCategoryCmd())
	cmd.AddCommand(updateCategoryCmd())
	cmd.AddCommand(deleteCategoryCmd())
	cmd.AddCommand(recategorizeCmd())

	return cmd
}

func listCategoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all categories",
		Long:  `Display all active categories with their type and budget bucket.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			categories, err := store.GetCategories(ctx)
			if err != nil {
				return fmt.Errorf("failed to get categories: %w", err)
			}

			if len(categories) == 0 {
				fmt.Println(cli.InfoStyle.Render("No categories found. Use 'centavo categories add' to create one."))
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer w.Flush()

			headerStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
				headerStyle.Render("ID"),
				headerStyle.Render("Name"),
				headerStyle.Render("Type"),
				headerStyle.Render("Bucket"))
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
				strings.Repeat("-", 4),
				strings.Repeat("-", 20),
				strings.Repeat("-", 12),
				strings.Repeat("-", 10))

			for _, cat := range categories {
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", cat.ID, cat.Name, cat.Type, cat.BudgetClass)
			}

			return nil
		},
	}
}

func addCategoryCmd() *cobra.Command {
	var (
		categoryType string
		budgetClass  string
	)

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a new category",
		Long:  `Create a new category. Adding a soft-deleted name reactivates it with the new type and bucket.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			typ, err := ledger.NormalizeType(categoryType)
			if err != nil {
				return err
			}

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			category := &model.Category{
				Name:        args[0],
				Type:        typ,
				BudgetClass: ledger.NormalizeBudgetClass(budgetClass),
			}
			created, err := store.CreateCategory(ctx, category)
			if err != nil {
				return fmt.Errorf("failed to create category: %w", err)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Created category %q (ID: %d, bucket: %s)",
				created.Name, created.ID, created.BudgetClass)))
			return nil
		},
	}

	cmd.Flags().StringVar(&categoryType, "type", "expense", "Category type (income, expense, investment)")
	cmd.Flags().StringVar(&budgetClass, "bucket", "other", "Budget bucket (necessity, want, savings, other)")

	return cmd
}

func updateCategoryCmd() *cobra.Command {
	var (
		categoryName string
		categoryType string
		budgetClass  string
	)

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a category",
		Long:  `Update the name, type or budget bucket of an existing category.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid category ID: %w", err)
			}

			if categoryName == "" && categoryType == "" && budgetClass == "" {
				return fmt.Errorf("must specify --name, --type or --bucket to update")
			}

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			categories, err := store.GetCategories(ctx)
			if err != nil {
				return fmt.Errorf("failed to get categories: %w", err)
			}

			var current *model.Category
			for i := range categories {
				if categories[i].ID == id {
					current = &categories[i]
					break
				}
			}
			if current == nil {
				return fmt.Errorf("category with ID %d not found", id)
			}

			if categoryName != "" {
				current.Name = categoryName
			}
			if categoryType != "" {
				typ, err := ledger.NormalizeType(categoryType)
				if err != nil {
					return err
				}
				current.Type = typ
			}
			if budgetClass != "" {
				current.BudgetClass = ledger.NormalizeBudgetClass(budgetClass)
			}

			if err := store.UpdateCategory(ctx, current); err != nil {
				return fmt.Errorf("failed to update category: %w", err)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Updated category %d", id)))
			fmt.Println(cli.SubtleStyle.Render("Run 'centavo categories recategorize' to refresh stored transactions."))
			return nil
		},
	}

	cmd.Flags().StringVar(&categoryName, "name", "", "New category name")
	cmd.Flags().StringVar(&categoryType, "type", "", "New category type")
	cmd.Flags().StringVar(&budgetClass, "bucket", "", "New budget bucket")

	return cmd
}

func deleteCategoryCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a category",
		Long:  `Soft-delete a category. Transactions keep their category name; the classifier stops matching it.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid category ID: %w", err)
			}

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			// Confirm deletion
			if !force {
				fmt.Printf("Are you sure you want to delete category %d? (y/N): ", id)
				var response string
				fmt.Scanln(&response)
				if strings.ToLower(response) != "y" {
					fmt.Println("Deletion cancelled.")
					return nil
				}
			}

			if err := store.DeleteCategory(ctx, id); err != nil {
				return fmt.Errorf("failed to delete category: %w", err)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Deleted category %d", id)))
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Skip confirmation prompt")

	return cmd
}

func recategorizeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "recategorize",
		Short: "Recompute stored budget classes",
		Long:  `Rederive the budget class of every stored transaction from the current registry.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			count, err := store.RecategorizeTransactions(ctx)
			if err != nil {
				return fmt.Errorf("failed to recategorize transactions: %w", err)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Updated %d transaction(s)", count)))
			return nil
		},
	}
}
