package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"tradelog/analytics"
	"tradelog/journal"
	"tradelog/pkg/id"
	"tradelog/report"
)

var tradeCmd = &cobra.Command{
	Use:   "trade",
	Short: "Record and manage trades",
	Long: `Record, list, edit and delete journal trades.

Pips and the monetary result are derived from the prices unless --manual is
given, in which case --result is stored as entered. Leave --close unset for
a trade that is still open.

Examples:
  tradelog trade add --account <id> --date 2024-03-01 --tf H1 --dir Buy \
      --lot 0.10 --entry 1900.00 --close 1910.00 --sl 1890 --tp 1930
  tradelog trade list --limit 20
  tradelog trade list --csv > trades.csv
  tradelog trade delete <trade-id>`,
}

var tradeAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Record a new trade",
	Args:  cobra.NoArgs,
	RunE:  runTradeAdd,
}

var tradeListCmd = &cobra.Command{
	Use:   "list",
	Short: "List trades",
	Args:  cobra.NoArgs,
	RunE:  runTradeList,
}

var tradeEditCmd = &cobra.Command{
	Use:   "edit <trade-id>",
	Short: "Edit a trade",
	Args:  cobra.ExactArgs(1),
	RunE:  runTradeEdit,
}

var tradeDeleteCmd = &cobra.Command{
	Use:   "delete <trade-id>",
	Short: "Delete a trade",
	Args:  cobra.ExactArgs(1),
	RunE:  runTradeDelete,
}

var (
	trAccount string
	trDate    string
	trPair    string
	trTF      string
	trDir     string
	trLot     float64
	trEntry   float64
	trClose   float64
	trStop    float64
	trTarget  float64
	trResult  float64
	trManual  bool
	trRisk    float64
	trEmotion string
	trNotes   string

	trListClass string
	trListFrom  string
	trListTo    string
	trListLimit int
	trListCSV   bool
)

func init() {
	rootCmd.AddCommand(tradeCmd)
	tradeCmd.AddCommand(tradeAddCmd)
	tradeCmd.AddCommand(tradeListCmd)
	tradeCmd.AddCommand(tradeEditCmd)
	tradeCmd.AddCommand(tradeDeleteCmd)

	for _, c := range []*cobra.Command{tradeAddCmd, tradeEditCmd} {
		c.Flags().StringVar(&trAccount, "account", "", "account ID")
		c.Flags().StringVar(&trDate, "date", "", "trade date (YYYY-MM-DD)")
		c.Flags().StringVar(&trPair, "pair", "XAUUSD", "instrument pair")
		c.Flags().StringVar(&trTF, "tf", "", "timeframe, e.g. M15, H1, D1")
		c.Flags().StringVar(&trDir, "dir", string(analytics.Buy), "direction (Buy or Sell)")
		c.Flags().Float64Var(&trLot, "lot", 0, "lot size")
		c.Flags().Float64Var(&trEntry, "entry", 0, "entry price")
		c.Flags().Float64Var(&trClose, "close", 0, "close price (omit for an open trade)")
		c.Flags().Float64Var(&trStop, "sl", 0, "stop loss price")
		c.Flags().Float64Var(&trTarget, "tp", 0, "take profit price")
		c.Flags().Float64Var(&trResult, "result", 0, "monetary result (with --manual)")
		c.Flags().BoolVar(&trManual, "manual", false, "store --result instead of deriving it")
		c.Flags().Float64Var(&trRisk, "risk", 0, "planned risk amount")
		c.Flags().StringVar(&trEmotion, "emotion", "", "emotion note")
		c.Flags().StringVar(&trNotes, "notes", "", "free-form notes")
	}
	tradeAddCmd.MarkFlagRequired("account")
	tradeAddCmd.MarkFlagRequired("date")

	tradeListCmd.Flags().StringVar(&trAccount, "account", "", "filter by account ID")
	tradeListCmd.Flags().StringVar(&trListClass, "class", "", "filter by account class (Standard or Cent)")
	tradeListCmd.Flags().StringVar(&trListFrom, "from", "", "start date (YYYY-MM-DD, inclusive)")
	tradeListCmd.Flags().StringVar(&trListTo, "to", "", "end date (YYYY-MM-DD, exclusive)")
	tradeListCmd.Flags().IntVar(&trListLimit, "limit", 0, "limit the number of trades")
	tradeListCmd.Flags().BoolVar(&trListCSV, "csv", false, "write CSV to stdout")
}

func runTradeAdd(cmd *cobra.Command, args []string) error {
	l, err := openLedger()
	if err != nil {
		return err
	}
	defer l.Close()

	acc, err := l.GetAccount(trAccount)
	if err != nil {
		return err
	}

	date, err := parseDay(trDate)
	if err != nil {
		return fmt.Errorf("date: %w", err)
	}

	t := journal.Trade{
		ID:           id.New("tr"),
		AccountID:    acc.ID,
		Date:         date,
		Pair:         trPair,
		Timeframe:    trTF,
		Dir:          analytics.Direction(trDir),
		Lot:          trLot,
		Entry:        trEntry,
		Close:        trClose,
		Stop:         trStop,
		Target:       trTarget,
		Result:       trResult,
		ManualResult: trManual,
		Risk:         trRisk,
		Emotion:      trEmotion,
		Notes:        trNotes,
	}
	t.Derive(acc.Class)

	if err := journal.ValidateTrade(t); err != nil {
		return err
	}
	if err := l.CreateTrade(t); err != nil {
		return fmt.Errorf("save trade: %w", err)
	}

	fmt.Printf("✓ Trade saved: %s\n", t.ID)
	if !t.Open() {
		fmt.Printf("  Pips: %s  Result: %s  R:R: %s\n",
			report.FormatPips(t.Pips),
			report.FormatCurrency(t.Result, acc.Class),
			report.FormatRiskReward(t.Entry, t.Stop, t.Target))
	}
	return nil
}

func runTradeList(cmd *cobra.Command, args []string) error {
	l, err := openLedger()
	if err != nil {
		return err
	}
	defer l.Close()

	f := journal.Filter{
		AccountID: trAccount,
		Class:     analytics.AccountClass(trListClass),
		Limit:     trListLimit,
	}
	if trListFrom != "" {
		if f.From, err = parseDay(trListFrom); err != nil {
			return fmt.Errorf("from: %w", err)
		}
	}
	if trListTo != "" {
		if f.To, err = parseDay(trListTo); err != nil {
			return fmt.Errorf("to: %w", err)
		}
	}

	trades, err := l.ListTrades(f)
	if err != nil {
		return fmt.Errorf("query trades: %w", err)
	}

	if trListCSV {
		return journal.WriteCSV(os.Stdout, trades)
	}

	accounts, err := accountIndex(l)
	if err != nil {
		return err
	}
	report.PrintTrades(os.Stdout, trades, accounts)
	return nil
}

func runTradeEdit(cmd *cobra.Command, args []string) error {
	l, err := openLedger()
	if err != nil {
		return err
	}
	defer l.Close()

	t, err := l.GetTrade(args[0])
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("account") {
		t.AccountID = trAccount
	}
	if flags.Changed("date") {
		if t.Date, err = parseDay(trDate); err != nil {
			return fmt.Errorf("date: %w", err)
		}
	}
	if flags.Changed("pair") {
		t.Pair = trPair
	}
	if flags.Changed("tf") {
		t.Timeframe = trTF
	}
	if flags.Changed("dir") {
		t.Dir = analytics.Direction(trDir)
	}
	if flags.Changed("lot") {
		t.Lot = trLot
	}
	if flags.Changed("entry") {
		t.Entry = trEntry
	}
	if flags.Changed("close") {
		t.Close = trClose
	}
	if flags.Changed("sl") {
		t.Stop = trStop
	}
	if flags.Changed("tp") {
		t.Target = trTarget
	}
	if flags.Changed("manual") {
		t.ManualResult = trManual
	}
	if flags.Changed("result") {
		t.Result = trResult
	}
	if flags.Changed("risk") {
		t.Risk = trRisk
	}
	if flags.Changed("emotion") {
		t.Emotion = trEmotion
	}
	if flags.Changed("notes") {
		t.Notes = trNotes
	}

	acc, err := l.GetAccount(t.AccountID)
	if err != nil {
		return err
	}
	t.Derive(acc.Class)

	if err := journal.ValidateTrade(t); err != nil {
		return err
	}
	if err := l.UpdateTrade(t); err != nil {
		return fmt.Errorf("update trade: %w", err)
	}

	fmt.Printf("✓ Trade updated: %s\n", t.ID)
	return nil
}

func runTradeDelete(cmd *cobra.Command, args []string) error {
	l, err := openLedger()
	if err != nil {
		return err
	}
	defer l.Close()

	if err := l.DeleteTrade(args[0]); err != nil {
		return fmt.Errorf("delete trade: %w", err)
	}

	fmt.Printf("✓ Trade deleted: %s\n", args[0])
	return nil
}

func parseDay(s string) (time.Time, error) {
	return time.Parse("2006-01-02", s)
}

func accountIndex(l *journal.SQLiteLedger) (map[string]journal.Account, error) {
	accounts, err := l.ListAccounts()
	if err != nil {
		return nil, fmt.Errorf("list accounts: %w", err)
	}
	index := make(map[string]journal.Account, len(accounts))
	for _, a := range accounts {
		index[a.ID] = a
	}
	return index, nil
}
