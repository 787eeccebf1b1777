package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/centavohq/centavo/internal/cli"
	"github.com/centavohq/centavo/internal/ledger"
	"github.com/centavohq/centavo/internal/model"
	"github.com/centavohq/centavo/internal/service"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

func budgetCmd() *cobra.Command {
	var (
		monthFlag string
		lookback  int
		fixedDays bool
	)

	cmd := &cobra.Command{
		Use:   "budget",
		Short: "50/30/20 budget report",
		Long: `Aggregate paid transactions for a window against the 50/30/20 rule:
50% of income to necessities, 30% to wants, 20% to savings. Investments
always count toward savings. For the savings bucket a surplus is good
news, not an overrun.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			now := time.Now()

			var window ledger.Window
			switch {
			case lookback > 0:
				mode := ledger.LookbackCalendarMonths
				if fixedDays {
					mode = ledger.LookbackFixedDays
				}
				window = ledger.LookbackWindow(now, lookback, mode)
			default:
				year, month, err := parseMonth(monthFlag, now)
				if err != nil {
					return err
				}
				window = ledger.MonthWindow(year, month)
			}

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			transactions, err := store.GetTransactions(ctx, service.TransactionFilter{})
			if err != nil {
				return fmt.Errorf("failed to get transactions: %w", err)
			}

			report := ledger.SummarizeBudget(transactions, window)
			renderBudgetReport(report, window)
			return nil
		},
	}

	cmd.Flags().StringVar(&monthFlag, "month", "", "Report month as YYYY-MM (defaults to the current month)")
	cmd.Flags().IntVar(&lookback, "lookback", 0, "Trailing window in months instead of a single month")
	cmd.Flags().BoolVar(&fixedDays, "fixed-days", false, "Measure the lookback as flat 30-day blocks instead of calendar months")

	return cmd
}

func renderBudgetReport(report ledger.BudgetReport, window ledger.Window) {
	fmt.Println(cli.FormatTitle(fmt.Sprintf("Budget %s to %s",
		window.Start.Format(dateLayout), window.End.AddDate(0, 0, -1).Format(dateLayout))))

	if !report.HasIncome {
		fmt.Println(cli.InfoStyle.Render("No paid income in this window; percentages are meaningless without it."))
	}
	fmt.Printf("Income: %s\n\n", cli.FormatAmount(report.Income))

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	defer w.Flush()

	headerStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
		headerStyle.Render("Bucket"),
		headerStyle.Render("Actual"),
		headerStyle.Render("Ideal"),
		headerStyle.Render("%"),
		headerStyle.Render("Deviation"),
		headerStyle.Render("Standing"))
	fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
		strings.Repeat("-", 12),
		strings.Repeat("-", 10),
		strings.Repeat("-", 10),
		strings.Repeat("-", 6),
		strings.Repeat("-", 9),
		strings.Repeat("-", 16))

	for _, class := range []model.BudgetClass{model.BudgetNecessity, model.BudgetWant, model.BudgetSavings} {
		summary := report.Classes[class]
		fmt.Fprintf(w, "%s\t%.2f\t%.2f\t%.1f%%\t%+.1f\t%s\n",
			class, summary.Actual, summary.Ideal, summary.PercentActual,
			summary.Deviation, renderStanding(summary.Standing))
	}

	if report.Unclassified > 0 {
		fmt.Fprintf(w, "\n%s\n", cli.SubtleStyle.Render(
			fmt.Sprintf("%d record(s) excluded for unrecognized type", report.Unclassified)))
	}
}

func renderStanding(standing ledger.Standing) string {
	switch standing {
	case ledger.StandingOnTarget:
		return cli.SuccessStyle.Render(string(standing))
	case ledger.StandingAheadOfTarget:
		return cli.SuccessStyle.Render(string(standing))
	case ledger.StandingUnderAllocated:
		return cli.InfoStyle.Render(string(standing))
	default:
		return cli.ErrorStyle.Render(string(standing))
	}
}
