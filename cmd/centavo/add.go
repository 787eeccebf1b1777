package main

import (
	"fmt"
	"time"

	"github.com/centavohq/centavo/internal/cli"
	"github.com/centavohq/centavo/internal/ledger"
	"github.com/centavohq/centavo/internal/model"
	"github.com/spf13/cobra"
)

func addCmd() *cobra.Command {
	var (
		txnType      string
		txnStatus    string
		category     string
		dateFlag     string
		dueFlag      string
		amount       float64
		installments int
		priority     int
		recurring    bool
		fixed        bool
	)

	cmd := &cobra.Command{
		Use:   "add <description>",
		Short: "Record a transaction",
		Long: `Record a transaction in the ledger.

Installment purchases are expanded at creation time: --installments 3
writes three records one calendar month apart, with end-of-month dates
clamped to the last valid day. The whole series is persisted as one batch.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			date, err := parseDate(dateFlag)
			if err != nil {
				return err
			}
			if date.IsZero() {
				date = time.Now().UTC().Truncate(24 * time.Hour)
			}
			dueDate, err := parseDate(dueFlag)
			if err != nil {
				return err
			}

			txn := model.Transaction{
				Date:         date,
				DueDate:      dueDate,
				Description:  args[0],
				Category:     category,
				Type:         model.TransactionType(txnType),
				Status:       model.TransactionStatus(txnStatus),
				Amount:       amount,
				Priority:     priority,
				Installments: installments,
				Recurring:    recurring,
				FixedExpense: fixed,
			}

			normalized, err := ledger.NormalizeTransaction(txn)
			if err != nil {
				return err
			}
			if err := normalized.Validate(); err != nil {
				return err
			}

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			registry, err := loadRegistry(ctx, store)
			if err != nil {
				return err
			}
			normalized = registry.ApplyBudgetClass(normalized)

			series, err := ledger.ExpandInstallments(normalized)
			if err != nil {
				return err
			}

			saved, err := store.SaveTransactions(ctx, series)
			if err != nil {
				return fmt.Errorf("failed to save transactions: %w", err)
			}

			if len(saved) == 1 {
				fmt.Println(cli.FormatSuccess(fmt.Sprintf("Recorded %q (ID: %s)", saved[0].Description, saved[0].ID)))
			} else {
				fmt.Println(cli.FormatSuccess(fmt.Sprintf("Recorded %q in %d installments", saved[0].Description, len(saved))))
				for _, s := range saved {
					fmt.Printf("  %d/%d  %s  %s\n", s.InstallmentIndex, s.Installments, s.Date.Format(dateLayout), cli.FormatAmount(s.Amount))
				}
			}

			return nil
		},
	}

	cmd.Flags().Float64Var(&amount, "amount", 0, "Transaction amount (non-negative; direction comes from --type)")
	cmd.Flags().StringVar(&txnType, "type", "expense", "Transaction type (income, expense, investment; Portuguese synonyms accepted)")
	cmd.Flags().StringVar(&txnStatus, "status", "", "Settlement status (paid, pending, overdue; defaults to pending)")
	cmd.Flags().StringVar(&category, "category", "", "Category name from the registry")
	cmd.Flags().StringVar(&dateFlag, "date", "", "Posting date as YYYY-MM-DD (defaults to today)")
	cmd.Flags().StringVar(&dueFlag, "due", "", "Due date as YYYY-MM-DD (defaults to the posting date)")
	cmd.Flags().IntVar(&installments, "installments", 1, "Number of monthly installments")
	cmd.Flags().IntVar(&priority, "priority", 0, "Priority (1 low, 2 medium, 3 high)")
	cmd.Flags().BoolVar(&recurring, "recurring", false, "Mark as a recurring transaction")
	cmd.Flags().BoolVar(&fixed, "fixed", false, "Mark as a fixed expense")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}
