package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/centavohq/centavo/internal/cli"
	"github.com/centavohq/centavo/internal/model"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

func goalsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "goals",
		Short: "Manage savings goals",
		Long:  `Track progress toward savings targets. A goal completes automatically when its amount reaches the target.`,
	}

	cmd.AddCommand(listGoalsCmd())
	cmd.AddCommand(addGoalCmd())
	cmd.AddCommand(goalProgressCmd())
	cmd.AddCommand(deleteGoalCmd())

	return cmd
}

func listGoalsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all goals",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			goals, err := store.GetGoals(ctx)
			if err != nil {
				return fmt.Errorf("failed to get goals: %w", err)
			}

			if len(goals) == 0 {
				fmt.Println(cli.InfoStyle.Render("No goals yet. Use 'centavo goals add' to create one."))
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer w.Flush()

			headerStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
				headerStyle.Render("ID"),
				headerStyle.Render("Title"),
				headerStyle.Render("Target"),
				headerStyle.Render("Current"),
				headerStyle.Render("Progress"),
				headerStyle.Render("Status"))
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
				strings.Repeat("-", 4),
				strings.Repeat("-", 20),
				strings.Repeat("-", 10),
				strings.Repeat("-", 10),
				strings.Repeat("-", 8),
				strings.Repeat("-", 10))

			for _, goal := range goals {
				fmt.Fprintf(w, "%d\t%s\t%.2f\t%.2f\t%.1f%%\t%s\n",
					goal.ID, goal.Title, goal.TargetAmount, goal.CurrentAmount,
					goal.Progress(), renderGoalStatus(goal.Status))
			}

			return nil
		},
	}
}

func addGoalCmd() *cobra.Command {
	var (
		description  string
		category     string
		deadlineFlag string
		target       float64
	)

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a new goal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			deadline, err := parseDate(deadlineFlag)
			if err != nil {
				return err
			}

			goal := &model.Goal{
				Title:        args[0],
				Description:  description,
				Category:     category,
				TargetAmount: target,
				Deadline:     deadline,
			}
			if err := goal.Validate(); err != nil {
				return err
			}

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			created, err := store.CreateGoal(ctx, goal)
			if err != nil {
				return fmt.Errorf("failed to create goal: %w", err)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Created goal %q (ID: %d, target: %.2f)",
				created.Title, created.ID, created.TargetAmount)))
			return nil
		},
	}

	cmd.Flags().Float64Var(&target, "target", 0, "Target amount")
	cmd.Flags().StringVar(&description, "description", "", "Goal description")
	cmd.Flags().StringVar(&category, "category", "", "Associated category")
	cmd.Flags().StringVar(&deadlineFlag, "deadline", "", "Deadline as YYYY-MM-DD")
	_ = cmd.MarkFlagRequired("target")

	return cmd
}

func goalProgressCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "progress <id> <amount>",
		Short: "Record progress toward a goal",
		Long:  `Set the current saved amount for a goal. Reaching the target marks the goal completed.`,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid goal ID: %w", err)
			}
			amount, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("invalid amount: %w", err)
			}
			if amount < 0 {
				return fmt.Errorf("amount must be non-negative, got %.2f", amount)
			}

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			goal, err := store.GetGoalByID(ctx, id)
			if err != nil {
				return fmt.Errorf("failed to get goal: %w", err)
			}

			goal.ApplyProgress(amount)
			if err := store.UpdateGoal(ctx, goal); err != nil {
				return fmt.Errorf("failed to update goal: %w", err)
			}

			if goal.Status == model.GoalCompleted {
				fmt.Println(cli.FormatSuccess(fmt.Sprintf("%s Goal %q completed!", cli.TargetIcon, goal.Title)))
			} else {
				fmt.Println(cli.FormatSuccess(fmt.Sprintf("Goal %q at %.1f%%", goal.Title, goal.Progress())))
			}
			return nil
		},
	}
}

func deleteGoalCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a goal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid goal ID: %w", err)
			}

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			if err := store.DeleteGoal(ctx, id); err != nil {
				return fmt.Errorf("failed to delete goal: %w", err)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Deleted goal %d", id)))
			return nil
		},
	}
}

func renderGoalStatus(status model.GoalStatus) string {
	switch status {
	case model.GoalCompleted:
		return cli.SuccessStyle.Render(string(status))
	case model.GoalCancelled:
		return cli.SubtleStyle.Render(string(status))
	default:
		return cli.InfoStyle.Render(string(status))
	}
}
