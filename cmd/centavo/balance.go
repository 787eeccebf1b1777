package main

import (
	"fmt"

	"github.com/centavohq/centavo/internal/cli"
	"github.com/centavohq/centavo/internal/ledger"
	"github.com/centavohq/centavo/internal/service"
	"github.com/spf13/cobra"
)

func balanceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "balance",
		Short: "Account balance, invested capital and net worth",
		Long: `Fold every paid transaction since inception into the current position.
Investments leave the account balance but stay in your net worth as
invested capital.`,
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

			balance := ledger.ComputeBalance(transactions)

			content := fmt.Sprintf("Account balance:  %s\nTotal invested:   %s\nNet worth:        %s",
				cli.FormatAmount(balance.AccountBalance),
				cli.FormatAmount(balance.TotalInvested),
				cli.FormatAmount(balance.NetWorth))
			fmt.Println(cli.RenderBox(cli.CoinIcon+" Position", content))

			return nil
		},
	}
}
