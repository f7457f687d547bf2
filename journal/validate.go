package journal

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"tradelog/analytics"
)

// ValidateAccount checks an account before it enters the ledger. All
// problems are reported at once so a form or CLI can show the full list.
func ValidateAccount(a Account) error {
	var errs []error

	if strings.TrimSpace(a.Name) == "" {
		errs = append(errs, errors.New("account name is required"))
	}
	if a.Class != analytics.Standard && a.Class != analytics.Cent {
		errs = append(errs, fmt.Errorf("account class must be %s or %s", analytics.Standard, analytics.Cent))
	}
	if math.IsNaN(a.InitialBalance) || math.IsInf(a.InitialBalance, 0) || a.InitialBalance < 0 {
		errs = append(errs, errors.New("initial balance must be a non-negative number"))
	}

	return errors.Join(errs...)
}

// ValidateTrade checks a trade before it enters the ledger. Close, stop and
// target are optional (0 means not provided) but must be positive prices
// when given. A zero result is fine: the trade may still be open.
func ValidateTrade(t Trade) error {
	var errs []error

	if t.Date.IsZero() {
		errs = append(errs, errors.New("date is required"))
	}
	if strings.TrimSpace(t.Pair) == "" {
		errs = append(errs, errors.New("pair is required"))
	}
	if strings.TrimSpace(t.Timeframe) == "" {
		errs = append(errs, errors.New("timeframe is required"))
	}
	if t.Dir != analytics.Buy && t.Dir != analytics.Sell {
		errs = append(errs, fmt.Errorf("direction must be %s or %s", analytics.Buy, analytics.Sell))
	}
	if !finite(t.Lot) || t.Lot <= 0 {
		errs = append(errs, errors.New("lot must be a positive number"))
	}
	if !finite(t.Entry) || t.Entry <= 0 {
		errs = append(errs, errors.New("entry price is required and must be greater than 0"))
	}
	if t.Close != 0 && (!finite(t.Close) || t.Close < 0) {
		errs = append(errs, errors.New("close price must be a positive number if provided"))
	}
	if t.Stop != 0 && (!finite(t.Stop) || t.Stop < 0) {
		errs = append(errs, errors.New("stop loss must be a positive number if provided"))
	}
	if t.Target != 0 && (!finite(t.Target) || t.Target < 0) {
		errs = append(errs, errors.New("take profit must be a positive number if provided"))
	}
	if !finite(t.Result) {
		errs = append(errs, errors.New("result must be a valid number"))
	}

	return errors.Join(errs...)
}

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
