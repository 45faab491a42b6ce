package cmd

import (
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/mrosset/stratlab/options"
)

var payoffCmd = &cobra.Command{
	Use:   "payoff",
	Short: "Tabulate the expiry P/L of a long option position",
	Long: `Payoff prints the profit/loss of a long option at expiry across a
±30% band around the current spot, together with the breakeven price.

Example:
  stratlab payoff --spot 100 --strike 105 --premium 2.5 --type call`,
	RunE: runPayoff,
}

var (
	poSpot     float64
	poStrike   float64
	poPremium  float64
	poType     string
	poContract int
	poRows     int
)

func init() {
	rootCmd.AddCommand(payoffCmd)

	payoffCmd.Flags().Float64Var(&poSpot, "spot", 0, "underlying spot price (required)")
	payoffCmd.Flags().Float64Var(&poStrike, "strike", 0, "strike price (required)")
	payoffCmd.Flags().Float64Var(&poPremium, "premium", 0, "premium paid per share (required)")
	payoffCmd.Flags().StringVar(&poType, "type", "call", "option type (call or put)")
	payoffCmd.Flags().IntVar(&poContract, "contract-size", options.DefaultContractSize, "shares per contract")
	payoffCmd.Flags().IntVar(&poRows, "rows", 13, "number of price rows to print")

	payoffCmd.MarkFlagRequired("spot")
	payoffCmd.MarkFlagRequired("strike")
	payoffCmd.MarkFlagRequired("premium")
}

func runPayoff(cmd *cobra.Command, args []string) error {
	kind, err := options.ParseKind(poType)
	if err != nil {
		return err
	}
	if poSpot <= 0 {
		return fmt.Errorf("spot must be positive")
	}

	curve := options.Payoff(poSpot, poStrike, poPremium, kind, poContract)
	breakeven := options.Breakeven(poStrike, poPremium, kind)

	fmt.Printf("\nLong %s  K=%.2f premium=%.2f  breakeven=%.2f\n", kind, poStrike, poPremium, breakeven)

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Underlying", "P/L per share", "P/L per contract"})
	table.SetAlignment(tablewriter.ALIGN_RIGHT)

	// Sample the 100-point curve down to a readable row count.
	if poRows < 2 {
		poRows = 2
	}
	stride := (len(curve) - 1) / (poRows - 1)
	if stride < 1 {
		stride = 1
	}
	for i := 0; i < len(curve); i += stride {
		pt := curve[i]
		table.Append([]string{
			fmt.Sprintf("%.2f", pt.Price),
			fmt.Sprintf("%.2f", pt.PerShare),
			fmt.Sprintf("%.2f", pt.PerContract),
		})
	}
	table.Render()

	return nil
}
