package report

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestPercentChange(t *testing.T) {
	// Test growth against a positive prior total.
	t.Run("computes the change against the prior total", func(t *testing.T) {
		change := percentChange(decimal.NewFromInt(150), decimal.NewFromInt(100))

		assert.Equal(t, 50.0, change)
	})

	// Test a shrinking total yields a negative change.
	t.Run("negative change when the total shrinks", func(t *testing.T) {
		change := percentChange(decimal.NewFromInt(75), decimal.NewFromInt(100))

		assert.Equal(t, -25.0, change)
	})

	// Test a zero prior never divides.
	t.Run("zero prior yields zero, not an error", func(t *testing.T) {
		change := percentChange(decimal.NewFromInt(150), decimal.Zero)

		assert.Equal(t, 0.0, change)
	})

	// Test the result rounds to 2 decimals.
	t.Run("rounds to 2 decimals", func(t *testing.T) {
		change := percentChange(decimal.NewFromInt(100), decimal.NewFromInt(3))

		assert.Equal(t, 3233.33, change)
	})
}

func TestExtrema(t *testing.T) {
	// Test extrema over accumulated buckets ignore empty ones.
	t.Run("extremaOf spans only buckets with data", func(t *testing.T) {
		sums := map[int]decimal.Decimal{
			3:  decimal.NewFromInt(40),
			7:  decimal.NewFromInt(10),
			12: decimal.NewFromInt(25),
		}
		max, min := extremaOf(sums)

		assert.True(t, max.Equal(decimal.NewFromInt(40)))
		assert.True(t, min.Equal(decimal.NewFromInt(10)))
	})

	// Test both extrema are zero with no data at all.
	t.Run("extremaOf of an empty map is zero", func(t *testing.T) {
		max, min := extremaOf(map[int]decimal.Decimal{})

		assert.True(t, max.IsZero())
		assert.True(t, min.IsZero())
	})

	// Test series extrema include the zero-filled buckets.
	t.Run("extremaOfSeries includes zero buckets", func(t *testing.T) {
		series := []decimal.Decimal{
			decimal.Zero,
			decimal.NewFromInt(40),
			decimal.Zero,
		}
		max, min := extremaOfSeries(series)

		assert.True(t, max.Equal(decimal.NewFromInt(40)))
		assert.True(t, min.IsZero())
	})
}

func TestAverage(t *testing.T) {
	// Test the divisor is the full bucket count, not the non-empty count.
	t.Run("divides across the full bucket count", func(t *testing.T) {
		avg := average(decimal.NewFromInt(100), 3)

		assert.True(t, avg.Equal(decimal.RequireFromString("33.33")))
	})

	// Test a zero bucket count short-circuits to zero.
	t.Run("zero buckets yields zero", func(t *testing.T) {
		assert.True(t, average(decimal.NewFromInt(100), 0).IsZero())
	})
}
