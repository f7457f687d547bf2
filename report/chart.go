package report

import (
	"sort"

	"tradelog/analytics"
)

// EquitySeries is the line-chart feed: one label and one point per equity
// step, starting at "Start"/initial balance.
type EquitySeries struct {
	Labels []string
	Points []float64
}

// Equity builds the equity curve series in date order. Labels are "MM-DD"
// so a dense curve stays readable; points carry the running balance rounded
// to cents.
func Equity(trades []analytics.Trade, initialBalance float64) EquitySeries {
	sorted := make([]analytics.Trade, len(trades))
	copy(sorted, trades)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})

	s := analytics.Stats(sorted, initialBalance)

	labels := make([]string, 0, len(sorted)+1)
	labels = append(labels, "Start")
	for _, t := range sorted {
		if t.Date.IsZero() {
			labels = append(labels, "")
			continue
		}
		labels = append(labels, t.Date.Format("01-02"))
	}

	return EquitySeries{Labels: labels, Points: s.EquityPoints}
}

// WinLossSeries is the donut-chart feed: win, loss and breakeven counts in
// that order.
func WinLossSeries(trades []analytics.Trade) [3]int {
	var counts [3]int
	for _, t := range trades {
		switch {
		case t.Result > 0:
			counts[0]++
		case t.Result < 0:
			counts[1]++
		default:
			counts[2]++
		}
	}
	return counts
}
