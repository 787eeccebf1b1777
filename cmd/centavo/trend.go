package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/centavohq/centavo/internal/cli"
	"github.com/centavohq/centavo/internal/ledger"
	"github.com/centavohq/centavo/internal/service"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

func trendCmd() *cobra.Command {
	var (
		method  string
		months  int
		horizon int
	)

	cmd := &cobra.Command{
		Use:   "trend",
		Short: "Monthly totals and forecast",
		Long: `Bucket paid transactions into monthly income, expense, investment and
balance totals for the trailing window, then project future months.

Methods: moving_average repeats the mean of the last three months;
linear_trend extrapolates the last month-over-month step, clamped to 20%
of the last value per step.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			transactions, err := store.GetTransactions(ctx, service.TransactionFilter{})
			if err != nil {
				return fmt.Errorf("failed to get transactions: %w", err)
			}

			series := ledger.BuildMonthlySeries(transactions, time.Now(), months)
			renderSeries(series)

			if horizon > 0 {
				if err := renderForecast(series, horizon, ledger.ForecastMethod(method)); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&months, "months", 6, "Trailing window in months")
	cmd.Flags().IntVar(&horizon, "horizon", 3, "Months to project forward (0 to skip)")
	cmd.Flags().StringVar(&method, "method", string(ledger.MethodMovingAverage), "Forecast method (moving_average, linear_trend)")

	return cmd
}

func renderSeries(series ledger.MonthlySeries) {
	fmt.Println(cli.FormatTitle("Monthly trend"))

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	defer w.Flush()

	headerStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
		headerStyle.Render("Month"),
		headerStyle.Render("Income"),
		headerStyle.Render("Expense"),
		headerStyle.Render("Invested"),
		headerStyle.Render("Balance"))
	fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
		strings.Repeat("-", 7),
		strings.Repeat("-", 10),
		strings.Repeat("-", 10),
		strings.Repeat("-", 10),
		strings.Repeat("-", 10))

	for _, month := range series.Months {
		fmt.Fprintf(w, "%s\t%.2f\t%.2f\t%.2f\t%s\n",
			month, series.Income[month], series.Expense[month],
			series.Investment[month], cli.FormatAmount(series.Balance[month]))
	}
}

func renderForecast(series ledger.MonthlySeries, horizon int, method ledger.ForecastMethod) error {
	balances := series.Ordered(series.Balance)
	forecast := ledger.Forecast(balances, horizon, method)
	if forecast == nil {
		fmt.Println(cli.InfoStyle.Render("Not enough history to forecast (need at least two months)."))
		return nil
	}

	futures, err := ledger.FutureMonths(series.Months[len(series.Months)-1], horizon)
	if err != nil {
		return fmt.Errorf("failed to derive forecast months: %w", err)
	}

	fmt.Println()
	fmt.Println(cli.SubtitleStyle.Render(fmt.Sprintf("Balance forecast (%s)", method)))
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	defer w.Flush()
	for k, month := range futures {
		fmt.Fprintf(w, "%s\t%s\n", month, cli.FormatAmount(forecast[k]))
	}
	return nil
}
