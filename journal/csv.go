// journal/csv.go
package journal

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

var csvHeader = []string{
	"id", "account_id", "date", "pair", "timeframe", "dir", "lot", "entry",
	"close", "pips", "stop", "target", "result", "manual_result", "risk",
	"emotion", "notes",
}

// WriteCSV renders trades as CSV for spreadsheet use. This is a one-way
// export; backups that need to round-trip go through Export/Import.
func WriteCSV(w io.Writer, trades []Trade) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}

	for _, t := range trades {
		date := ""
		if !t.Date.IsZero() {
			date = t.Date.Format(dateLayout)
		}
		err := cw.Write([]string{
			t.ID,
			t.AccountID,
			date,
			t.Pair,
			t.Timeframe,
			string(t.Dir),
			f(t.Lot),
			f(t.Entry),
			f(t.Close),
			strconv.FormatFloat(t.Pips, 'f', 1, 64),
			f(t.Stop),
			f(t.Target),
			f(t.Result),
			strconv.FormatBool(t.ManualResult),
			f(t.Risk),
			t.Emotion,
			t.Notes,
		})
		if err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

func f(x float64) string {
	return strconv.FormatFloat(x, 'f', 2, 64)
}
