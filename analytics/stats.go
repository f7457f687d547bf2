package analytics

import (
	"math"
	"sort"
	"time"
)

// Trade is the engine's view of a ledger record: just the fields the
// statistics pass reads. The ledger owns the full record; it hands the
// engine a snapshot and receives freshly built results back.
type Trade struct {
	Date   time.Time
	Result float64
	Entry  float64
	Stop   float64 // 0 means not set
	Target float64 // 0 means not set
}

// StatsResult is the full set of aggregate statistics for one trade
// snapshot. Monetary and percentage fields are rounded to two decimals;
// ProfitFactor is +Inf when there are wins but no losses.
type StatsResult struct {
	Balance        float64
	InitialBalance float64
	TotalResult    float64
	Growth         float64

	Wins      int
	Losses    int
	Breakeven int
	Total     int
	WinRate   float64

	Drawdown     float64 // max peak-to-trough decline, % of peak
	ProfitFactor float64
	AvgRR        float64

	MaxWinStreak  int
	MaxLossStreak int

	// EquityPoints[0] is the initial balance; each following point is the
	// running balance after one more trade in date order.
	EquityPoints []float64
}

// Stats computes aggregate statistics over a trade snapshot.
//
// The equity timeline is defined by date order, stable on ties, regardless
// of how the ledger stored the trades. The running balance accumulates
// unrounded; rounding happens only on the output fields so long sequences
// do not drift.
//
// Stats never fails: an empty snapshot, a zero initial balance or an
// all-losing ledger all degrade to defined values.
func Stats(trades []Trade, initialBalance float64) StatsResult {
	sorted := byDate(trades)

	balance := initialBalance
	peak := initialBalance
	maxDD := 0.0

	equity := make([]float64, 0, len(sorted)+1)
	equity = append(equity, round2(initialBalance))

	for _, t := range sorted {
		balance += t.Result
		equity = append(equity, round2(balance))
		if balance > peak {
			peak = balance
		}
		if peak > 0 {
			dd := (peak - balance) / peak * 100
			if dd > maxDD {
				maxDD = dd
			}
		}
	}

	var wins, losses, breakeven int
	var grossWin, grossLoss float64
	for _, t := range trades {
		switch {
		case t.Result > 0:
			wins++
			grossWin += t.Result
		case t.Result < 0:
			losses++
			grossLoss += -t.Result
		default:
			breakeven++
		}
	}

	winRate := 0.0
	if len(trades) > 0 {
		winRate = float64(wins) / float64(len(trades)) * 100
	}

	profitFactor := 0.0
	switch {
	case grossLoss > 0:
		profitFactor = grossWin / grossLoss
	case grossWin > 0:
		profitFactor = math.Inf(1)
	}

	var rrSum float64
	var rrCount int
	for _, t := range trades {
		if rr, ok := RiskReward(t.Entry, t.Stop, t.Target); ok {
			rrSum += rr
			rrCount++
		}
	}
	avgRR := 0.0
	if rrCount > 0 {
		avgRR = rrSum / float64(rrCount)
	}

	maxWinStreak, maxLossStreak := streaks(sorted)

	return StatsResult{
		Balance:        round2(balance),
		InitialBalance: initialBalance,
		TotalResult:    round2(balance - initialBalance),
		Growth:         round2(Growth(balance, initialBalance)),
		Wins:           wins,
		Losses:         losses,
		Breakeven:      breakeven,
		Total:          len(trades),
		WinRate:        round2(winRate),
		Drawdown:       round2(maxDD),
		ProfitFactor:   round2(profitFactor),
		AvgRR:          round2(avgRR),
		MaxWinStreak:   maxWinStreak,
		MaxLossStreak:  maxLossStreak,
		EquityPoints:   equity,
	}
}

// byDate returns a date-sorted copy. The sort is stable so trades sharing a
// date keep their original relative order.
func byDate(trades []Trade) []Trade {
	sorted := make([]Trade, len(trades))
	copy(sorted, trades)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})
	return sorted
}

// streaks walks the date-sorted trades and returns the longest win run and
// the longest loss run. A breakeven trade breaks whatever run is going.
func streaks(sorted []Trade) (maxWin, maxLoss int) {
	const (
		none = iota
		winning
		losing
	)
	state := none
	run := 0

	for _, t := range sorted {
		switch {
		case t.Result > 0:
			if state == winning {
				run++
			} else {
				run = 1
				state = winning
			}
			if run > maxWin {
				maxWin = run
			}
		case t.Result < 0:
			if state == losing {
				run++
			} else {
				run = 1
				state = losing
			}
			if run > maxLoss {
				maxLoss = run
			}
		default:
			run = 0
			state = none
		}
	}
	return maxWin, maxLoss
}
