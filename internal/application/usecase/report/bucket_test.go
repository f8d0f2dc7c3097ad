package report

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hamsacorp/expense-backend/internal/domain/entity"
)

func TestAccumulate(t *testing.T) {
	// Test sums group under the derived key and skip non-expenses.
	t.Run("sums expenses by key and skips other kinds", func(t *testing.T) {
		txns := []*entity.Transaction{
			expense("a", "10", "Food", date(2025, time.March, 1)),
			expense("b", "15", "Food", date(2025, time.March, 1)),
			expense("c", "5", "Food", date(2025, time.March, 2)),
			newTxn(entity.TransactionKindIncome, "salary", "5000", "Salary", date(2025, time.March, 1)),
		}

		sums := accumulate(txns, func(t *entity.Transaction) int {
			return t.OccurredOn.Day()
		})

		require.Len(t, sums, 2)
		assert.True(t, sums[1].Equal(decimal.NewFromInt(25)))
		assert.True(t, sums[2].Equal(decimal.NewFromInt(5)))
	})
}

func TestZeroFilled(t *testing.T) {
	// Test the series always spans every enumerated key.
	t.Run("emits one value per key with zeros for missing buckets", func(t *testing.T) {
		sums := map[int]decimal.Decimal{
			2: decimal.NewFromInt(40),
		}
		series := zeroFilled(sums, []int{1, 2, 3})

		require.Len(t, series, 3)
		assert.True(t, series[0].IsZero())
		assert.True(t, series[1].Equal(decimal.NewFromInt(40)))
		assert.True(t, series[2].IsZero())
	})
}

func TestBucketKeySpaces(t *testing.T) {
	// Test the hourly key space is always 24 buckets.
	t.Run("hoursOfDay enumerates 24 hours", func(t *testing.T) {
		hours := hoursOfDay()

		require.Len(t, hours, 24)
		assert.Equal(t, 0, hours[0])
		assert.Equal(t, 23, hours[23])
	})

	// Test the day key space follows the calendar, including leap years.
	t.Run("daysOfMonth follows the calendar", func(t *testing.T) {
		assert.Len(t, daysOfMonth(2025, time.January), 31)
		assert.Len(t, daysOfMonth(2025, time.April), 30)
		assert.Len(t, daysOfMonth(2025, time.February), 28)
		assert.Len(t, daysOfMonth(2024, time.February), 29)
	})

	// Test the month key space is always 12 buckets.
	t.Run("monthsOfYear enumerates 12 months", func(t *testing.T) {
		months := monthsOfYear()

		require.Len(t, months, 12)
		assert.Equal(t, 1, months[0])
		assert.Equal(t, 12, months[11])
	})

	// Test the range key space is inclusive on both ends.
	t.Run("datesBetween is inclusive on both ends", func(t *testing.T) {
		dates := datesBetween(date(2025, time.March, 30), date(2025, time.April, 2))

		require.Len(t, dates, 4)
		assert.Equal(t, "2025-03-30", dates[0])
		assert.Equal(t, "2025-04-02", dates[3])
	})

	// Test a single-day range yields one bucket.
	t.Run("datesBetween covers a single-day range", func(t *testing.T) {
		dates := datesBetween(date(2025, time.March, 30), date(2025, time.March, 30))

		assert.Equal(t, []string{"2025-03-30"}, dates)
	})
}
