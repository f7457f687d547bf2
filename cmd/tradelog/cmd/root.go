package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"tradelog/analytics"
	"tradelog/config"
	"tradelog/journal"
)

var rootCmd = &cobra.Command{
	Use:   "tradelog",
	Short: "A personal trading journal with performance analytics",
	Long: `Tradelog is a personal trading journal for discretionary traders.

It provides tools for:
  - Recording trades against one or more accounts
  - Equity curve, drawdown, win rate and profit factor analytics
  - Monthly performance rollups
  - Risk/reward tracking from stop and target placement
  - JSON backup/restore and CSV export of the ledger`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	defer func() {
		if logger != nil {
			_ = logger.Sync()
		}
	}()
	return rootCmd.Execute()
}

var (
	flagDB      string
	flagConfig  string
	flagVerbose bool

	cfg    *config.Config
	logger *zap.Logger
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagDB, "db", "d", "", "path to ledger database (overrides config)")
	rootCmd.PersistentFlags().StringVarP(&flagConfig, "config", "c", "", "path to config file (YAML or JSON)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging")
}

func setup(cmd *cobra.Command, args []string) error {
	var err error
	if flagVerbose {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}

	if flagConfig != "" {
		cfg, err = config.LoadFromFile(flagConfig)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
	} else {
		cfg = config.Default()
	}
	if flagDB != "" {
		cfg.Journal.DBPath = flagDB
	}
	return nil
}

// openLedger opens the configured SQLite ledger. Callers must Close it.
func openLedger() (*journal.SQLiteLedger, error) {
	l, err := journal.OpenSQLite(cfg.Journal.DBPath, logger)
	if err != nil {
		return nil, fmt.Errorf("open ledger: %w", err)
	}
	return l, nil
}

// activeFilter resolves the filter a command should run with: explicit
// flags win, then the persisted dashboard prefs, then the config defaults.
func activeFilter(l *journal.SQLiteLedger, accountID, class string) (journal.Filter, error) {
	f := journal.Filter{AccountID: accountID, Class: analytics.AccountClass(class)}

	if f.AccountID == "" {
		saved, err := l.GetPref(journal.PrefActiveAccount)
		if err != nil {
			return f, err
		}
		if saved == "" {
			saved = cfg.Defaults.AccountID
		}
		f.AccountID = saved
	}
	if f.AccountID != "" {
		// A single account implies its own class; a stale class filter
		// would just hide the account's trades.
		f.Class = ""
		return f, nil
	}
	if f.Class == "" {
		saved, err := l.GetPref(journal.PrefActiveClass)
		if err != nil {
			return f, err
		}
		if saved == "" {
			saved = cfg.Defaults.Class
		}
		f.Class = analytics.AccountClass(saved)
	}
	return f, nil
}
