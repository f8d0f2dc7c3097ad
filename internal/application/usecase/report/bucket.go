// Package report contains the aggregation engine use cases: period reports,
// recurring-expense detection and budget evaluation.
package report

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/hamsacorp/expense-backend/internal/domain/entity"
)

// Granularity identifies the report type.
type Granularity string

const (
	GranularityDaily   Granularity = "daily"
	GranularityMonthly Granularity = "monthly"
	GranularityYearly  Granularity = "yearly"
	GranularityRange   Granularity = "range"
)

// accumulate sums EXPENSE amounts into a map keyed by keyOf. Non-expense
// transactions are ignored. Accumulation is unrounded; rounding happens at
// the point of output only.
func accumulate[K comparable](transactions []*entity.Transaction, keyOf func(*entity.Transaction) K) map[K]decimal.Decimal {
	sums := make(map[K]decimal.Decimal)
	for _, t := range transactions {
		if t.Kind != entity.TransactionKindExpense {
			continue
		}
		k := keyOf(t)
		sums[k] = sums[k].Add(t.Amount)
	}
	return sums
}

// zeroFilled emits one value per key in keys, in order, taking the
// accumulated sum where present and zero otherwise. The resulting series is
// never shorter than the enumerated key space, regardless of data sparsity.
func zeroFilled[K comparable](sums map[K]decimal.Decimal, keys []K) []decimal.Decimal {
	series := make([]decimal.Decimal, len(keys))
	for i, k := range keys {
		series[i] = sums[k]
	}
	return series
}

// hoursOfDay enumerates the 24 hour-of-day bucket keys.
func hoursOfDay() []int {
	hours := make([]int, 24)
	for h := range hours {
		hours[h] = h
	}
	return hours
}

// daysOfMonth enumerates the day-of-month keys 1..N for the given month.
func daysOfMonth(year int, month time.Month) []int {
	n := daysInMonth(year, month)
	days := make([]int, n)
	for i := range days {
		days[i] = i + 1
	}
	return days
}

// monthsOfYear enumerates the month-number keys 1..12.
func monthsOfYear() []int {
	months := make([]int, 12)
	for i := range months {
		months[i] = i + 1
	}
	return months
}

// datesBetween enumerates one key per calendar day in [start, end], both
// inclusive, as YYYY-MM-DD strings.
func datesBetween(start, end time.Time) []string {
	var dates []string
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		dates = append(dates, d.Format("2006-01-02"))
	}
	return dates
}

// daysInMonth returns the day count of the given calendar month, proleptic
// Gregorian.
func daysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// monthAbbreviations are the fixed 3-letter English month names used in
// yearly series, indexed by time.Month.
var monthAbbreviations = [...]string{
	time.January:   "Jan",
	time.February:  "Feb",
	time.March:     "Mar",
	time.April:     "Apr",
	time.May:       "May",
	time.June:      "Jun",
	time.July:      "Jul",
	time.August:    "Aug",
	time.September: "Sep",
	time.October:   "Oct",
	time.November:  "Nov",
	time.December:  "Dec",
}
