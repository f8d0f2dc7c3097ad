package report

import (
	"github.com/shopspring/decimal"
)

// daysPerMonthForBudget is the fixed divisor used to scale a monthly budget
// down to a single day.
const daysPerMonthForBudget = 30

// Defaults holds the configurable fallback settings applied when an owner has
// no explicit settings row yet. Values come from configuration, not embedded
// literals, so tests can override them.
type Defaults struct {
	Currency      string
	DateFormat    string
	MonthlyBudget decimal.Decimal
}

// BudgetFigures carries a period-scaled budget and its utilization.
type BudgetFigures struct {
	Budget    decimal.Decimal
	UsedPct   float64
	Remaining decimal.Decimal
}

// evaluateBudget scales the owner's monthly budget to the report granularity
// and computes utilization against the period's expense total.
//
// Remaining is clamped at zero: a blown budget reports 0 remaining, never a
// negative figure, which hides the overspend magnitude. That matches the
// established report contract and is kept intentionally.
func evaluateBudget(totalExpense, monthlyBudget decimal.Decimal, granularity Granularity) BudgetFigures {
	budget := monthlyBudget
	switch granularity {
	case GranularityDaily:
		budget = monthlyBudget.Div(decimal.NewFromInt(daysPerMonthForBudget))
	case GranularityYearly:
		budget = monthlyBudget.Mul(decimal.NewFromInt(12))
	}

	var usedPct float64
	if budget.Sign() > 0 {
		pct, _ := totalExpense.Div(budget).Mul(decimal.NewFromInt(100)).Float64()
		usedPct = round2(pct)
	}

	remaining := budget.Sub(totalExpense)
	if remaining.Sign() < 0 {
		remaining = decimal.Zero
	}

	return BudgetFigures{
		Budget:    budget.Round(2),
		UsedPct:   usedPct,
		Remaining: remaining.Round(2),
	}
}
