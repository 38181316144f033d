package main

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"banalysis/internal/core"
	"banalysis/internal/midata"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var showRows bool

	cmd := &cobra.Command{
		Use:   "midata-check <statement.csv>",
		Short: "Validate a midata bank statement and print its summary",
		Args:  cobra.ExactArgs(1),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, args[0], showRows)
		},
	}

	cmd.Flags().BoolVar(&showRows, "rows", false, "print every parsed transaction")

	return cmd
}

func runCheck(cmd *cobra.Command, path string, showRows bool) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening statement: %w", err)
	}
	defer f.Close()

	txs, err := midata.Parse(f)
	if err != nil {
		return fmt.Errorf("statement rejected: %w", err)
	}

	out := cmd.OutOrStdout()
	summary := core.Summarize(txs)

	fmt.Fprintf(out, "OK: %s\n", path)
	fmt.Fprintf(out, "  transactions:    %d\n", summary.Transactions)
	if summary.Transactions > 0 {
		fmt.Fprintf(out, "  date range:      %s to %s\n", summary.MinDate.Display(), summary.MaxDate.Display())
		fmt.Fprintf(out, "  closing balance: %s\n", formatPounds(summary.EndBalance))
	}

	if showRows {
		fmt.Fprintln(out)
		for _, tx := range txs {
			fmt.Fprintf(out, "  %s  %-12s  %10s  %10s  %s\n",
				tx.Date.Display(), tx.Type, formatPounds(tx.Amount), formatPounds(tx.Balance), tx.Description)
		}
	}

	return nil
}

func formatPounds(d decimal.Decimal) string {
	if d.IsNegative() {
		return "-£" + d.Abs().StringFixed(2)
	}
	return "£" + d.StringFixed(2)
}
