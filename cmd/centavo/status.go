package main

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/centavohq/centavo/internal/cli"
	"github.com/centavohq/centavo/internal/ledger"
	"github.com/centavohq/centavo/internal/model"
	"github.com/spf13/cobra"
)

func payCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pay <id>",
		Short: "Mark a transaction as paid",
		Long: `Mark a single transaction as paid.

Paying one installment never touches its siblings; each installment in a
series settles on its own.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			if err := store.UpdateTransactionStatus(ctx, args[0], model.StatusPaid); err != nil {
				return fmt.Errorf("failed to mark transaction paid: %w", err)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Marked transaction %s as paid", args[0])))
			return nil
		},
	}
}

func statusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status <id> <status>",
		Short: "Set a transaction's settlement status",
		Long:  `Set a transaction's status to paid, pending or overdue. Portuguese synonyms are accepted.`,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			status, err := ledger.NormalizeStatus(args[1])
			if err != nil {
				return err
			}

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			if err := store.UpdateTransactionStatus(ctx, args[0], status); err != nil {
				return fmt.Errorf("failed to update transaction status: %w", err)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Transaction %s is now %s", args[0], status)))
			return nil
		},
	}
}

func sweepCmd() *cobra.Command {
	var asOfFlag string

	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Mark overdue pending expenses",
		Long:  `Scan for pending expenses whose due date has passed and mark them overdue.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			asOf, err := parseDate(asOfFlag)
			if err != nil {
				return err
			}
			if asOf.IsZero() {
				asOf = time.Now().UTC()
			}

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			count, err := store.MarkOverdue(ctx, asOf)
			if err != nil {
				return fmt.Errorf("failed to sweep overdue transactions: %w", err)
			}

			if count == 0 {
				fmt.Println(cli.InfoStyle.Render("Nothing overdue."))
				return nil
			}
			slog.Info("Overdue sweep complete", "marked", count)
			fmt.Println(cli.FormatWarning(fmt.Sprintf("Marked %d transaction(s) overdue", count)))
			return nil
		},
	}

	cmd.Flags().StringVar(&asOfFlag, "as-of", "", "Reference date as YYYY-MM-DD (defaults to today)")

	return cmd
}
