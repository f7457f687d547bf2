package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func onDate(y int, m time.Month, d int, result float64) Trade {
	return Trade{Date: time.Date(y, m, d, 0, 0, 0, 0, time.UTC), Result: result}
}

func TestMonthlyPerformance(t *testing.T) {
	t.Parallel()

	trades := []Trade{
		onDate(2024, time.January, 15, 10),
		onDate(2024, time.January, 20, -4),
	}

	monthly := MonthlyPerformance(trades)
	require.Len(t, monthly, 1)

	assert.Equal(t, "2024-01", monthly[0].Period)
	assert.Equal(t, 2, monthly[0].Trades)
	assert.InDelta(t, 6.00, monthly[0].Result, 1e-9)
	assert.InDelta(t, 50.0, monthly[0].WinRate, 1e-9)
}

func TestMonthlyPerformanceOrdering(t *testing.T) {
	t.Parallel()

	// Deliberately out of order on input.
	trades := []Trade{
		onDate(2024, time.March, 3, 5),
		onDate(2023, time.December, 1, -2),
		onDate(2024, time.January, 9, 7),
		onDate(2024, time.March, 28, -1),
	}

	monthly := MonthlyPerformance(trades)
	require.Len(t, monthly, 3)

	assert.Equal(t, "2023-12", monthly[0].Period)
	assert.Equal(t, "2024-01", monthly[1].Period)
	assert.Equal(t, "2024-03", monthly[2].Period)
	assert.Equal(t, 2, monthly[2].Trades)
	assert.InDelta(t, 4.00, monthly[2].Result, 1e-9)
	assert.InDelta(t, 50.0, monthly[2].WinRate, 1e-9)
}

func TestMonthlyPerformanceUnknownBucket(t *testing.T) {
	t.Parallel()

	trades := []Trade{
		onDate(2024, time.February, 2, 12),
		{Result: -3}, // zero date
		{Result: 8},
	}

	monthly := MonthlyPerformance(trades)
	require.Len(t, monthly, 2)

	assert.Equal(t, "2024-02", monthly[0].Period)
	assert.Equal(t, UnknownPeriod, monthly[1].Period)
	assert.Equal(t, 2, monthly[1].Trades)
	assert.InDelta(t, 5.00, monthly[1].Result, 1e-9)
	assert.InDelta(t, 50.0, monthly[1].WinRate, 1e-9)
}

func TestMonthlyPerformanceEmpty(t *testing.T) {
	t.Parallel()

	assert.Empty(t, MonthlyPerformance(nil))
}
