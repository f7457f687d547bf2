package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"tradelog/analytics"
	"tradelog/journal"
	"tradelog/report"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show performance statistics",
	Long: `Show the dashboard statistics for the active filter: balance, growth,
win rate, profit factor, drawdown, streaks and the recent trades table.

The filter defaults to whatever "tradelog use" last selected; --account and
--class override it for one run.

Examples:
  tradelog stats
  tradelog stats --account <id>
  tradelog stats --class Cent --equity`,
	Args: cobra.NoArgs,
	RunE: runStats,
}

var monthlyCmd = &cobra.Command{
	Use:   "monthly",
	Short: "Show the monthly performance rollup",
	Args:  cobra.NoArgs,
	RunE:  runMonthly,
}

var (
	statsAccount string
	statsClass   string
	statsEquity  bool
)

func init() {
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(monthlyCmd)

	for _, c := range []*cobra.Command{statsCmd, monthlyCmd} {
		c.Flags().StringVar(&statsAccount, "account", "", "limit to one account ID")
		c.Flags().StringVar(&statsClass, "class", "", "limit to one account class (Standard or Cent)")
	}
	statsCmd.Flags().BoolVar(&statsEquity, "equity", false, "also print the equity curve points")
}

func runStats(cmd *cobra.Command, args []string) error {
	l, err := openLedger()
	if err != nil {
		return err
	}
	defer l.Close()

	f, err := activeFilter(l, statsAccount, statsClass)
	if err != nil {
		return err
	}

	trades, err := l.ListTrades(f)
	if err != nil {
		return fmt.Errorf("query trades: %w", err)
	}
	initial, err := l.InitialBalance(f)
	if err != nil {
		return err
	}

	inputs := journal.Inputs(trades)
	s := analytics.Stats(inputs, initial)

	title, class, err := filterTitle(l, f)
	if err != nil {
		return err
	}
	report.PrintStats(os.Stdout, title, class, s)

	recent := trades
	if len(recent) > cfg.Report.RecentTrades {
		recent = recent[len(recent)-cfg.Report.RecentTrades:]
	}
	fmt.Println("Recent Trades")
	accounts, err := accountIndex(l)
	if err != nil {
		return err
	}
	report.PrintTrades(os.Stdout, recent, accounts)

	if statsEquity {
		fmt.Println()
		fmt.Println("Equity Curve")
		series := report.Equity(inputs, initial)
		for i, label := range series.Labels {
			fmt.Printf("  %-6s %s\n", label, report.FormatCurrency(series.Points[i], class))
		}

		wl := report.WinLossSeries(inputs)
		fmt.Printf("\nDistribution: %d wins / %d losses / %d breakeven\n", wl[0], wl[1], wl[2])
	}
	return nil
}

func runMonthly(cmd *cobra.Command, args []string) error {
	l, err := openLedger()
	if err != nil {
		return err
	}
	defer l.Close()

	f, err := activeFilter(l, statsAccount, statsClass)
	if err != nil {
		return err
	}

	trades, err := l.ListTrades(f)
	if err != nil {
		return fmt.Errorf("query trades: %w", err)
	}

	monthly := analytics.MonthlyPerformance(journal.Inputs(trades))
	if len(monthly) > cfg.Report.MonthlyWindow {
		monthly = monthly[len(monthly)-cfg.Report.MonthlyWindow:]
	}

	_, class, err := filterTitle(l, f)
	if err != nil {
		return err
	}
	report.PrintMonthly(os.Stdout, monthly, class)
	return nil
}

// filterTitle names the snapshot and picks the display unit: the account's
// own class when filtering to one account, Cent only when the class filter
// says so, Standard otherwise.
func filterTitle(l *journal.SQLiteLedger, f journal.Filter) (string, analytics.AccountClass, error) {
	if f.AccountID != "" {
		a, err := l.GetAccount(f.AccountID)
		if err != nil {
			return "", analytics.Standard, err
		}
		return a.Name, a.Class, nil
	}
	if f.Class != "" {
		return fmt.Sprintf("All %s Accounts", f.Class), f.Class, nil
	}
	return "All Accounts", analytics.Standard, nil
}
