package report

import (
	"math"

	"github.com/shopspring/decimal"
)

// round2 rounds a float to 2 decimal places.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// percentChange computes (total-prior)/prior*100 rounded to 2 decimals.
// A zero or negative prior yields 0, not an error.
func percentChange(total, prior decimal.Decimal) float64 {
	if prior.Sign() <= 0 {
		return 0
	}
	change, _ := total.Sub(prior).Div(prior).Mul(decimal.NewFromInt(100)).Float64()
	return round2(change)
}

// extremaOf returns the maximum and minimum over the accumulated (non-empty)
// bucket values, both zero when no bucket has data.
func extremaOf[K comparable](sums map[K]decimal.Decimal) (max, min decimal.Decimal) {
	first := true
	for _, v := range sums {
		if first {
			max, min = v, v
			first = false
			continue
		}
		if v.GreaterThan(max) {
			max = v
		}
		if v.LessThan(min) {
			min = v
		}
	}
	return max, min
}

// extremaOfSeries returns the maximum and minimum over a zero-filled series,
// both zero for an empty series.
func extremaOfSeries(series []decimal.Decimal) (max, min decimal.Decimal) {
	for i, v := range series {
		if i == 0 {
			max, min = v, v
			continue
		}
		if v.GreaterThan(max) {
			max = v
		}
		if v.LessThan(min) {
			min = v
		}
	}
	return max, min
}

// average divides the total across the full bucket count, rounded to 2
// decimals; a zero bucket count yields zero.
func average(total decimal.Decimal, buckets int) decimal.Decimal {
	if buckets == 0 {
		return decimal.Zero
	}
	return total.Div(decimal.NewFromInt(int64(buckets))).Round(2)
}
