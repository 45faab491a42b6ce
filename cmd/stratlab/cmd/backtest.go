package cmd

import (
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/mrosset/stratlab/backtest"
	"github.com/mrosset/stratlab/config"
	"github.com/mrosset/stratlab/journal"
	"github.com/mrosset/stratlab/market"
	"github.com/mrosset/stratlab/strategy"
)

var backtestCmd = &cobra.Command{
	Use:   "backtest",
	Short: "Replay a bar series through a trading strategy",
	Long: `Backtest replays an OHLCV CSV through a strategy and prints the
performance summary.

Supported strategies:
  - ma_cross: simple moving average crossover (--short, --long)
  - rsi:      RSI overbought/oversold (--rsi-period, --overbought, --oversold)
  - macd:     MACD/signal-line crossover
  - ma_rsi:   MA crossover filtered by RSI (--short, --long, --rsi-buy, --rsi-sell)

Example:
  stratlab backtest --bars data/spy.csv --strategy ma_cross --short 20 --long 50`,
	RunE: runBacktest,
}

var (
	btBarsPath   string
	btConfigPath string
	btName       string
	btTicker     string
	btCapital    float64
	btCommission float64
	btSizing     string
	btValue      float64
	btDBPath     string

	btStrategy   string
	btShort      int
	btLong       int
	btRSIPeriod  int
	btOverbought float64
	btOversold   float64
	btRSIBuy     float64
	btRSISell    float64
)

func init() {
	rootCmd.AddCommand(backtestCmd)

	backtestCmd.Flags().StringVarP(&btBarsPath, "bars", "b", "", "path to OHLCV CSV (time,open,high,low,close,volume) (required)")
	backtestCmd.Flags().StringVarP(&btConfigPath, "config", "c", "", "run configuration file (YAML or JSON); flags below override nothing when set")
	backtestCmd.Flags().StringVarP(&btName, "name", "n", "backtest", "run name for the journal")
	backtestCmd.Flags().StringVar(&btTicker, "ticker", "UNKNOWN", "ticker symbol for the journal")
	backtestCmd.Flags().Float64Var(&btCapital, "capital", 100_000, "initial capital")
	backtestCmd.Flags().Float64Var(&btCommission, "commission", 0.001, "per-side commission fraction")
	backtestCmd.Flags().StringVar(&btSizing, "sizing", "fixed_dollar", "position sizing method (fixed_dollar, percentage, fixed_risk, fixed_shares)")
	backtestCmd.Flags().Float64Var(&btValue, "value", 10_000, "sizing value (dollars, percent, or shares)")
	backtestCmd.Flags().StringVarP(&btDBPath, "db", "d", "", "SQLite journal path (empty = no journaling)")

	backtestCmd.Flags().StringVarP(&btStrategy, "strategy", "s", "ma_cross", "strategy kind (ma_cross, rsi, macd, ma_rsi)")
	backtestCmd.Flags().IntVar(&btShort, "short", 20, "short MA window")
	backtestCmd.Flags().IntVar(&btLong, "long", 50, "long MA window")
	backtestCmd.Flags().IntVar(&btRSIPeriod, "rsi-period", 14, "RSI lookback period")
	backtestCmd.Flags().Float64Var(&btOverbought, "overbought", 70, "RSI overbought threshold")
	backtestCmd.Flags().Float64Var(&btOversold, "oversold", 30, "RSI oversold threshold")
	backtestCmd.Flags().Float64Var(&btRSIBuy, "rsi-buy", 30, "ma_rsi: RSI buy filter")
	backtestCmd.Flags().Float64Var(&btRSISell, "rsi-sell", 70, "ma_rsi: RSI sell filter")

	backtestCmd.MarkFlagRequired("bars")
}

func runBacktest(cmd *cobra.Command, args []string) error {
	cfg, err := backtestConfig()
	if err != nil {
		return err
	}

	series, err := market.LoadCSV(btBarsPath)
	if err != nil {
		return err
	}
	log.WithFields(log.Fields{"bars": len(series), "file": btBarsPath}).Debug("loaded series")

	strat, err := cfg.Strategy.Build()
	if err != nil {
		return err
	}
	sizing, err := cfg.SizingPolicy()
	if err != nil {
		return err
	}

	engine := &backtest.Engine{
		Series:         series,
		Strategy:       strat,
		InitialCapital: cfg.Account.Capital,
		Commission:     cfg.Account.Commission,
		Sizing:         sizing,
	}

	result, err := engine.Run()
	if err != nil {
		return fmt.Errorf("run backtest: %w", err)
	}

	rec := backtest.NewRecord(cfg.Account.Name, cfg.Account.Ticker, cfg.Strategy, result)
	printRecord(rec, strat.Name())

	if cfg.Journal.Type == "sqlite" && cfg.Journal.DBPath != "" {
		if err := journalRun(cfg.Journal.DBPath, rec, result.Trades()); err != nil {
			return err
		}
		log.WithField("run_id", rec.RunID).Info("run journaled")
	}

	return nil
}

// backtestConfig merges the config file with the flag-driven defaults: a
// --config file wins wholesale, flags drive everything otherwise.
func backtestConfig() (*config.Config, error) {
	if btConfigPath != "" {
		return config.LoadFromFile(btConfigPath)
	}

	cfg := &config.Config{
		Account: config.AccountConfig{
			Name:       btName,
			Ticker:     btTicker,
			Capital:    btCapital,
			Commission: btCommission,
		},
		Strategy: strategySpec(),
		Sizing: config.SizingConfig{
			Method: btSizing,
			Value:  btValue,
		},
		Journal: config.JournalConfig{Type: "none"},
	}
	if btDBPath != "" {
		cfg.Journal = config.JournalConfig{Type: "sqlite", DBPath: btDBPath}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func strategySpec() strategy.Spec {
	switch strategy.Kind(btStrategy) {
	case strategy.KindRSI:
		return strategy.Spec{
			Kind: strategy.KindRSI,
			RSI:  &strategy.RSIParams{Period: btRSIPeriod, Overbought: btOverbought, Oversold: btOversold},
		}
	case strategy.KindMAWithRSI:
		return strategy.Spec{
			Kind:      strategy.KindMAWithRSI,
			MAWithRSI: &strategy.MAWithRSIParams{Short: btShort, Long: btLong, RSIBuy: btRSIBuy, RSISell: btRSISell},
		}
	case strategy.KindMACD:
		return strategy.Spec{Kind: strategy.KindMACD}
	default:
		// Unknown kinds surface from Spec.Build during validation.
		return strategy.Spec{
			Kind:    strategy.Kind(btStrategy),
			MACross: &strategy.MACrossParams{Short: btShort, Long: btLong},
		}
	}
}

func journalRun(dbPath string, rec backtest.Record, trades []backtest.Trade) error {
	j, err := journal.NewSQLite(dbPath)
	if err != nil {
		return fmt.Errorf("open journal: %w", err)
	}
	defer j.Close()

	if err := j.RecordRun(rec); err != nil {
		return fmt.Errorf("journal run: %w", err)
	}
	if err := j.RecordTrades(rec.RunID, trades); err != nil {
		return fmt.Errorf("journal trades: %w", err)
	}
	return nil
}

func printRecord(rec backtest.Record, strategyName string) {
	fmt.Printf("\n%s on %s (%s to %s)\n", strategyName, rec.Ticker, rec.StartDate, rec.EndDate)

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Metric", "Value"})
	table.SetAlignment(tablewriter.ALIGN_RIGHT)

	order := []string{
		"total_return", "annualized_return", "sharpe_ratio", "max_drawdown",
		"final_equity", "total_trades", "winning_trades", "losing_trades",
		"win_rate", "avg_win", "avg_loss", "profit_factor",
	}
	for _, key := range order {
		table.Append([]string{key, backtest.ResultString(rec.Results[key])})
	}
	table.Render()
}
