// Package report renders engine output for the terminal: the stats summary
// block, the monthly table, trade listings and the data series the chart
// widgets consume.
package report

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"tradelog/analytics"
	"tradelog/journal"
)

const rule = "--------------------------------------------------"

// PrintStats writes the dashboard summary for one filtered snapshot.
func PrintStats(w io.Writer, title string, class analytics.AccountClass, s analytics.StatsResult) {
	fmt.Fprintln(w, "==================================================")
	fmt.Fprintf(w, " %s\n", title)
	fmt.Fprintln(w, "==================================================")

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Balance")
	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, "Initial:       %s\n", FormatCurrency(s.InitialBalance, class))
	fmt.Fprintf(w, "Current:       %s\n", FormatCurrency(s.Balance, class))
	fmt.Fprintf(w, "Net Result:    %s\n", signedCurrency(s.TotalResult, class))
	fmt.Fprintf(w, "Growth:        %s%%\n", signed(s.Growth))

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Trade Statistics")
	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, "Trades:        %d\n", s.Total)
	fmt.Fprintf(w, "Wins:          %d\n", s.Wins)
	fmt.Fprintf(w, "Losses:        %d\n", s.Losses)
	fmt.Fprintf(w, "Breakeven:     %d\n", s.Breakeven)
	fmt.Fprintf(w, "Win Rate:      %.2f%%\n", s.WinRate)
	fmt.Fprintf(w, "Profit Factor: %s\n", FormatProfitFactor(s.ProfitFactor))
	fmt.Fprintf(w, "Avg R:R:       %s\n", FormatRatio(s.AvgRR))
	fmt.Fprintf(w, "Max Drawdown:  %.2f%%\n", s.Drawdown)
	fmt.Fprintf(w, "Win Streak:    %d\n", s.MaxWinStreak)
	fmt.Fprintf(w, "Loss Streak:   %d\n", s.MaxLossStreak)
	fmt.Fprintln(w)
}

// PrintMonthly writes the per-month rollup table, newest month last.
func PrintMonthly(w io.Writer, monthly []analytics.MonthlyStat, class analytics.AccountClass) {
	if len(monthly) == 0 {
		fmt.Fprintln(w, "No trades recorded.")
		return
	}

	fmt.Fprintf(w, "%-10s %8s %18s %10s\n", "Month", "Trades", "Net Result", "Win Rate")
	fmt.Fprintln(w, rule)
	for _, m := range monthly {
		fmt.Fprintf(w, "%-10s %8d %18s %9.1f%%\n",
			m.Period, m.Trades, signedCurrency(m.Result, class), m.WinRate)
	}
}

// PrintTrades writes a trade listing with the account name resolved per
// row, the way the journal table shows it.
func PrintTrades(w io.Writer, trades []journal.Trade, accounts map[string]journal.Account) {
	if len(trades) == 0 {
		fmt.Fprintln(w, "No trades recorded.")
		return
	}

	fmt.Fprintf(w, "%-10s %-8s %-4s %6s %10s %10s %8s %14s  %s\n",
		"Date", "Pair", "Dir", "Lot", "Entry", "Close", "Pips", "Result", "Account")
	fmt.Fprintln(w, rule)

	for _, t := range trades {
		acc, ok := accounts[t.AccountID]
		accName := "-"
		class := analytics.Standard
		if ok {
			accName = acc.Name
			class = acc.Class
		}

		date := "-"
		if !t.Date.IsZero() {
			date = t.Date.Format("2006-01-02")
		}
		closeStr, pipsStr := "-", "-"
		if !t.Open() {
			closeStr = trimFloat(t.Close)
			pipsStr = FormatPips(t.Pips)
		}

		fmt.Fprintf(w, "%-10s %-8s %-4s %6s %10s %10s %8s %14s  %s\n",
			date, t.Pair, t.Dir, trimFloat(t.Lot), trimFloat(t.Entry),
			closeStr, pipsStr, signedCurrency(t.Result, class), accName)
	}
}

// FormatCurrency renders an amount in the account class's display unit:
// "$1,234.56" for Standard, "1,234.56 USC" for Cent.
func FormatCurrency(amount float64, class analytics.AccountClass) string {
	formatted := group(math.Abs(amount))
	if class == analytics.Cent {
		if amount < 0 {
			return "-" + formatted + " USC"
		}
		return formatted + " USC"
	}
	if amount < 0 {
		return "-$" + formatted
	}
	return "$" + formatted
}

// FormatRatio renders an average risk/reward as "1 : X.XX", or "-" when no
// trade had a ratio.
func FormatRatio(rr float64) string {
	if rr == 0 {
		return "-"
	}
	return fmt.Sprintf("1 : %.2f", rr)
}

// FormatRiskReward renders a single trade's stop/target placement, or "-"
// when either is missing.
func FormatRiskReward(entry, stop, target float64) string {
	rr, ok := analytics.RiskReward(entry, stop, target)
	if !ok {
		return "-"
	}
	return fmt.Sprintf("1 : %.2f", rr)
}

// FormatProfitFactor renders the infinite sentinel as the symbol the
// dashboard always showed.
func FormatProfitFactor(pf float64) string {
	if math.IsInf(pf, 1) {
		return "∞"
	}
	return strconv.FormatFloat(pf, 'f', 2, 64)
}

// FormatPips renders signed pips to one decimal with an explicit plus.
func FormatPips(pips float64) string {
	if pips > 0 {
		return "+" + strconv.FormatFloat(pips, 'f', 1, 64)
	}
	return strconv.FormatFloat(pips, 'f', 1, 64)
}

func signedCurrency(amount float64, class analytics.AccountClass) string {
	if amount > 0 {
		return "+" + FormatCurrency(amount, class)
	}
	return FormatCurrency(amount, class)
}

func signed(v float64) string {
	if v >= 0 {
		return fmt.Sprintf("+%.2f", v)
	}
	return fmt.Sprintf("%.2f", v)
}

// group inserts thousands separators into a non-negative amount with two
// decimals.
func group(abs float64) string {
	s := strconv.FormatFloat(abs, 'f', 2, 64)
	dot := strings.IndexByte(s, '.')
	whole, frac := s[:dot], s[dot:]

	var b strings.Builder
	for i, c := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(c)
	}
	return b.String() + frac
}

func trimFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
