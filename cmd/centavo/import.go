package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/centavohq/centavo/internal/cli"
	"github.com/centavohq/centavo/internal/importer"
	"github.com/centavohq/centavo/internal/model"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

func importCmd() *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "import <file.csv>",
		Short: "Import transactions from a CSV file",
		Long: `Import transactions from a CSV export. The file needs a header row with
date, description, amount and type columns; category, status, due_date
and installments are optional. English and Portuguese headers and
vocabulary are both accepted. Rows that cannot be normalized are skipped
and counted, never fatal.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			file, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("failed to open %s: %w", args[0], err)
			}
			defer file.Close()

			result, err := importer.ParseCSV(file)
			if err != nil {
				return err
			}

			slog.Info("Parsed CSV file",
				"file", args[0],
				"transactions", len(result.Transactions),
				"skipped", result.Skipped)

			if len(result.Transactions) == 0 {
				fmt.Println(cli.FormatWarning(fmt.Sprintf("No importable rows (%d skipped)", result.Skipped)))
				return nil
			}

			if dryRun {
				fmt.Println(cli.FormatInfo(fmt.Sprintf("Dry run: %d row(s) would import, %d skipped",
					len(result.Transactions), result.Skipped)))
				return nil
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

			bar := newImportProgressBar(len(result.Transactions))
			classified := make([]model.Transaction, 0, len(result.Transactions))
			for _, txn := range result.Transactions {
				classified = append(classified, registry.ApplyBudgetClass(txn))
				_ = bar.Add(1)
			}

			saved, err := store.SaveTransactions(ctx, classified)
			if err != nil {
				return fmt.Errorf("failed to save imported transactions: %w", err)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Imported %d transaction(s), skipped %d",
				len(saved), result.Skipped)))
			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Parse and report without writing to the database")

	return cmd
}

func newImportProgressBar(total int) *progressbar.ProgressBar {
	return progressbar.NewOptions(total,
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionShowCount(),
		progressbar.OptionShowElapsedTimeOnFinish(),
		progressbar.OptionSetWidth(40),
		progressbar.OptionSetDescription("[cyan][bold]Importing transactions...[reset]"),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprintln(os.Stderr)
		}),
	)
}
