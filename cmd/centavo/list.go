package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/centavohq/centavo/internal/cli"
	"github.com/centavohq/centavo/internal/model"
	"github.com/centavohq/centavo/internal/service"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

func listCmd() *cobra.Command {
	var (
		txnType   string
		txnStatus string
		monthFlag string
		period    int
		limit     int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List transactions",
		Long:  `Display ledger transactions, optionally filtered by month, period half, type and status.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			filter := service.TransactionFilter{
				Type:       model.TransactionType(txnType),
				Status:     model.TransactionStatus(txnStatus),
				PeriodHalf: period,
				Limit:      limit,
			}
			if monthFlag != "" {
				year, month, err := parseMonth(monthFlag, time.Now())
				if err != nil {
					return err
				}
				filter.Year = year
				filter.Month = month
			}

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			transactions, err := store.GetTransactions(ctx, filter)
			if err != nil {
				return fmt.Errorf("failed to get transactions: %w", err)
			}

			if len(transactions) == 0 {
				fmt.Println(cli.InfoStyle.Render("No transactions found. Use 'centavo add' to record one."))
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer w.Flush()

			headerStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
				headerStyle.Render("ID"),
				headerStyle.Render("Date"),
				headerStyle.Render("Description"),
				headerStyle.Render("Category"),
				headerStyle.Render("Type"),
				headerStyle.Render("Amount"),
				headerStyle.Render("Status"),
				headerStyle.Render("Part"))
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
				strings.Repeat("-", 4),
				strings.Repeat("-", 10),
				strings.Repeat("-", 24),
				strings.Repeat("-", 14),
				strings.Repeat("-", 10),
				strings.Repeat("-", 10),
				strings.Repeat("-", 8),
				strings.Repeat("-", 4))

			for _, t := range transactions {
				part := ""
				if t.Installments > 1 {
					part = fmt.Sprintf("%d/%d", t.InstallmentIndex, t.Installments)
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%.2f\t%s\t%s\n",
					t.ID,
					t.Date.Format(dateLayout),
					t.Description,
					t.Category,
					t.Type,
					t.Amount,
					renderStatus(t.Status),
					part)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&txnType, "type", "", "Filter by type (income, expense, investment)")
	cmd.Flags().StringVar(&txnStatus, "status", "", "Filter by status (paid, pending, overdue)")
	cmd.Flags().StringVar(&monthFlag, "month", "", "Filter by month as YYYY-MM")
	cmd.Flags().IntVar(&period, "period", 0, "Filter by period half (1 for days 1-15, 2 for the rest)")
	cmd.Flags().IntVar(&limit, "limit", 0, "Maximum number of rows (0 for all)")

	return cmd
}

func renderStatus(status model.TransactionStatus) string {
	switch status {
	case model.StatusPaid:
		return cli.SuccessStyle.Render(string(status))
	case model.StatusOverdue:
		return cli.ErrorStyle.Render(string(status))
	default:
		return cli.WarningStyle.Render(string(status))
	}
}
