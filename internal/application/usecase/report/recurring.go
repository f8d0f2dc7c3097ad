package report

import (
	"context"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/hamsacorp/expense-backend/internal/application/adapter"
	"github.com/hamsacorp/expense-backend/internal/domain/entity"
)

const (
	// recurringLookbackMonths is the detection window before "today".
	recurringLookbackMonths = 6
	// minRecurringOccurrences is the smallest group size that can qualify.
	minRecurringOccurrences = 3
	// maxAmountDeviation is the tolerance band for amount consistency: the
	// mean absolute relative deviation from the group mean must not exceed it.
	maxAmountDeviation = 0.20
)

// Frequency classification thresholds, in average days between occurrences.
const (
	weeklyMaxGapDays    = 10
	monthlyMaxGapDays   = 45
	quarterlyMaxGapDays = 120
)

// RecurringExpense is one inferred recurring series.
type RecurringExpense struct {
	Description      string          `json:"description"`
	Category         string          `json:"category"`
	Amount           decimal.Decimal `json:"amount"`
	Frequency        string          `json:"frequency"`
	LastDate         time.Time       `json:"lastDate"`
	TransactionCount int             `json:"transactionCount"`
	Variance         float64         `json:"variance"`
}

// DetectRecurringInput represents the input for recurring-expense detection.
type DetectRecurringInput struct {
	Owner string
	Today time.Time
}

// DetectRecurringUseCase infers recurring expense series from the owner's
// ledger history.
type DetectRecurringUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewDetectRecurringUseCase creates a new DetectRecurringUseCase instance.
func NewDetectRecurringUseCase(transactionRepo adapter.TransactionRepository) *DetectRecurringUseCase {
	return &DetectRecurringUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute returns the recurring expense series detected in the 6 months
// before Today. Detection is advisory: any internal failure degrades to an
// empty list and never propagates to the enclosing report.
func (uc *DetectRecurringUseCase) Execute(ctx context.Context, input DetectRecurringInput) []RecurringExpense {
	start := input.Today.AddDate(0, -recurringLookbackMonths, 0)

	transactions, err := uc.transactionRepo.FindByOwnerAndDateRange(ctx, input.Owner, start, input.Today)
	if err != nil {
		slog.Warn("recurring detection degraded to empty result",
			"owner", input.Owner,
			"error", err,
		)
		return []RecurringExpense{}
	}

	return detectRecurring(transactions)
}

// seriesKey identifies a candidate series: normalized description + category.
type seriesKey struct {
	description string
	category    string
}

// detectRecurring clusters EXPENSE transactions into candidate series and
// keeps those that repeat often enough with consistent amounts.
func detectRecurring(transactions []*entity.Transaction) []RecurringExpense {
	groups := make(map[seriesKey][]*entity.Transaction)
	var order []seriesKey
	for _, t := range transactions {
		if t.Kind != entity.TransactionKindExpense {
			continue
		}
		key := seriesKey{description: normalizeDescription(t.Description), category: t.Category}
		if _, seen := groups[key]; !seen {
			order = append(order, key)
		}
		groups[key] = append(groups[key], t)
	}

	result := make([]RecurringExpense, 0)
	for _, key := range order {
		group := groups[key]
		if len(group) < minRecurringOccurrences {
			continue
		}

		mean, deviation := amountConsistency(group)
		if deviation > maxAmountDeviation {
			continue
		}

		sort.SliceStable(group, func(i, j int) bool {
			return group[i].OccurredOn.Before(group[j].OccurredOn)
		})

		result = append(result, RecurringExpense{
			Description:      group[0].Description,
			Category:         key.category,
			Amount:           mean.Round(2),
			Frequency:        classifyFrequency(group),
			LastDate:         group[len(group)-1].OccurredOn,
			TransactionCount: len(group),
			Variance:         round2(deviation),
		})
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Amount.GreaterThan(result[j].Amount)
	})
	return result
}

// normalizeDescription lower-cases, trims, and collapses internal whitespace
// runs to a single space, so "Netflix  Subscription " and "netflix
// subscription" key the same series.
func normalizeDescription(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}

// amountConsistency returns the group's mean amount and the mean absolute
// relative deviation of amounts from that mean. A zero mean (all amounts
// zero) has zero deviation.
func amountConsistency(group []*entity.Transaction) (decimal.Decimal, float64) {
	total := decimal.Zero
	for _, t := range group {
		total = total.Add(t.Amount)
	}
	mean := total.Div(decimal.NewFromInt(int64(len(group))))
	if mean.Sign() == 0 {
		return mean, 0
	}

	deviationSum := decimal.Zero
	for _, t := range group {
		deviationSum = deviationSum.Add(t.Amount.Sub(mean).Abs().Div(mean))
	}
	deviation, _ := deviationSum.Div(decimal.NewFromInt(int64(len(group)))).Float64()
	return mean, deviation
}

// classifyFrequency derives the series frequency from the average gap in days
// between chronologically consecutive occurrences. Same-day repeats are
// excluded so they do not deflate the estimate. Fewer than 2 usable gaps
// defaults to monthly. The group must already be sorted by date.
func classifyFrequency(group []*entity.Transaction) string {
	var gaps []float64
	for i := 1; i < len(group); i++ {
		days := group[i].OccurredOn.Sub(group[i-1].OccurredOn).Hours() / 24
		if days > 0 {
			gaps = append(gaps, days)
		}
	}
	if len(gaps) < 2 {
		return "monthly"
	}

	var sum float64
	for _, g := range gaps {
		sum += g
	}
	avg := sum / float64(len(gaps))

	switch {
	case avg <= weeklyMaxGapDays:
		return "weekly"
	case avg <= monthlyMaxGapDays:
		return "monthly"
	case avg <= quarterlyMaxGapDays:
		return "quarterly"
	default:
		return "yearly"
	}
}
