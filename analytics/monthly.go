package analytics

import "sort"

// UnknownPeriod is the bucket for trades with no usable date. It sorts
// after any "YYYY-MM" key, so it always lands at the end of the rollup.
const UnknownPeriod = "Unknown"

// MonthlyStat is one calendar-month bucket of the rollup.
type MonthlyStat struct {
	Period  string // "2006-01", or UnknownPeriod
	Trades  int
	Result  float64
	WinRate float64
}

// MonthlyPerformance groups trades by calendar year-month and returns the
// buckets in ascending period order, independent of input order. Trades
// with a zero date are kept in the UnknownPeriod bucket rather than
// dropped.
func MonthlyPerformance(trades []Trade) []MonthlyStat {
	groups := make(map[string][]Trade)
	for _, t := range trades {
		key := UnknownPeriod
		if !t.Date.IsZero() {
			key = t.Date.Format("2006-01")
		}
		groups[key] = append(groups[key], t)
	}

	periods := make([]string, 0, len(groups))
	for p := range groups {
		periods = append(periods, p)
	}
	sort.Strings(periods)

	out := make([]MonthlyStat, 0, len(periods))
	for _, p := range periods {
		bucket := groups[p]
		wins := 0
		net := 0.0
		for _, t := range bucket {
			if t.Result > 0 {
				wins++
			}
			net += t.Result
		}
		out = append(out, MonthlyStat{
			Period:  p,
			Trades:  len(bucket),
			Result:  round2(net),
			WinRate: round2(float64(wins) / float64(len(bucket)) * 100),
		})
	}
	return out
}
