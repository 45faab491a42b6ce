package cmd

import (
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "stratlab",
	Short: "A trading-strategy backtester and options analytics toolkit",
	Long: `Stratlab replays historical OHLCV bars through trading strategies and
computes option prices and sensitivities.

It provides tools for:
  - Backtesting MA-cross, RSI, MACD, and filtered strategies over bar data
  - Position sizing by fixed dollars, portfolio percentage, or share count
  - Performance statistics (Sharpe, drawdown, trade win/loss breakdown)
  - Black-Scholes prices and Greeks, binomial-tree American pricing
  - Journaling run results to SQLite or CSV`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			log.SetLevel(log.DebugLevel)
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}
