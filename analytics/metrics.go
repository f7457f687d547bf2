// Package analytics is the pure computation core of the trade journal: it
// turns a snapshot of trade records plus an initial balance into derived
// per-trade metrics and aggregate statistics. It performs no I/O and never
// mutates its inputs, so calls for different accounts or time windows are
// independent and safe to run concurrently.
package analytics

import "math"

// PipSize is the price movement of one pip for the journaled instrument
// (XAUUSD: 1 pip = 0.10 in price terms).
const PipSize = 0.10

// Direction of a trade.
type Direction string

const (
	Buy  Direction = "Buy"
	Sell Direction = "Sell"
)

// AccountClass determines the monetary multiplier applied to price movement
// and the display unit of results.
type AccountClass string

const (
	Standard AccountClass = "Standard"
	Cent     AccountClass = "Cent"
)

// Multiplier returns the price-move-to-money multiplier for the class.
func (c AccountClass) Multiplier() float64 {
	if c == Cent {
		return 1
	}
	return 100
}

// Pips computes the signed pip movement of a closed trade, rounded to one
// decimal. A non-finite entry or close yields 0: that models an open trade
// with no movement yet, not an error.
func Pips(dir Direction, entry, close float64) float64 {
	if !isFinite(entry) || !isFinite(close) {
		return 0
	}
	return round1(priceMove(dir, entry, close) / PipSize)
}

// MonetaryResult derives the monetary outcome of a closed trade from its
// price movement, rounded to two decimals. Non-finite inputs or a
// non-positive lot yield 0. Callers must not use this for trades whose
// result was entered manually; the stored value is authoritative there.
func MonetaryResult(class AccountClass, dir Direction, entry, close, lot float64) float64 {
	if !isFinite(entry) || !isFinite(close) || !isFinite(lot) || lot <= 0 {
		return 0
	}
	return round2(priceMove(dir, entry, close) * lot * class.Multiplier())
}

// RiskReward returns the reward-to-risk ratio of a trade's stop/target
// placement. A stop or target of exactly 0 (or non-finite) means "not set"
// and yields ok=false rather than a ratio.
//
// Distances are absolute and direction-agnostic: risk = |entry-stop|,
// reward = |target-entry|. A stop placed on the wrong side of entry for the
// trade's direction still produces a ratio; only a stop or target equal to
// entry yields no ratio.
func RiskReward(entry, stop, target float64) (float64, bool) {
	if !isFinite(entry) || !isFinite(stop) || !isFinite(target) {
		return 0, false
	}
	if stop == 0 || target == 0 {
		return 0, false
	}
	risk := math.Abs(entry - stop)
	reward := math.Abs(target - entry)
	if risk <= 0 || reward <= 0 {
		return 0, false
	}
	return reward / risk, true
}

// Growth is the percentage change of balance relative to initial. A zero
// initial balance yields 0 rather than dividing by zero.
func Growth(balance, initial float64) float64 {
	if initial == 0 {
		return 0
	}
	return (balance - initial) / initial * 100
}

func priceMove(dir Direction, entry, close float64) float64 {
	if dir == Sell {
		return entry - close
	}
	return close - entry
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

func round1(x float64) float64 {
	return math.Round(x*10) / 10
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
