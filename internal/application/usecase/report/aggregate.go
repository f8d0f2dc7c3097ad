package report

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/hamsacorp/expense-backend/internal/domain/entity"
)

// maxBreakdownCategories caps the category breakdown at the top entries.
const maxBreakdownCategories = 5

// CategoryShare is one entry of a category breakdown: the summed EXPENSE
// amount and its share of the period's expense total, rounded to the nearest
// whole percent.
type CategoryShare struct {
	Name       string          `json:"name"`
	Value      decimal.Decimal `json:"value"`
	Percentage int             `json:"percentage"`
}

// kindTotals aggregates amounts and counts per transaction kind.
type kindTotals struct {
	Expenses decimal.Decimal
	Income   decimal.Decimal
	Savings  decimal.Decimal

	ExpenseCount int
	IncomeCount  int
	SavingsCount int
}

// sumByKind totals amounts per kind over the given transactions.
func sumByKind(transactions []*entity.Transaction) kindTotals {
	var t kindTotals
	for _, txn := range transactions {
		switch txn.Kind {
		case entity.TransactionKindExpense:
			t.Expenses = t.Expenses.Add(txn.Amount)
			t.ExpenseCount++
		case entity.TransactionKindIncome:
			t.Income = t.Income.Add(txn.Amount)
			t.IncomeCount++
		case entity.TransactionKindSavings:
			t.Savings = t.Savings.Add(txn.Amount)
			t.SavingsCount++
		}
	}
	return t
}

// Net returns income minus expenses minus savings.
func (t kindTotals) Net() decimal.Decimal {
	return t.Income.Sub(t.Expenses).Sub(t.Savings)
}

// SavingsRate returns savings/income*100 rounded to 2 decimals, 0 when there
// is no income.
func (t kindTotals) SavingsRate() float64 {
	if t.Income.Sign() <= 0 {
		return 0
	}
	rate, _ := t.Savings.Div(t.Income).Mul(decimal.NewFromInt(100)).Float64()
	return round2(rate)
}

// topCategories builds the category breakdown over EXPENSE transactions:
// per-category sums collected in encounter order, stable-sorted descending by
// value (ties keep encounter order), truncated to the top 5. Each entry is
// annotated with its rounded share of totalExpense; a zero total yields 0%
// for every entry.
func topCategories(transactions []*entity.Transaction, totalExpense decimal.Decimal) []CategoryShare {
	sums := make(map[string]decimal.Decimal)
	var order []string
	for _, t := range transactions {
		if t.Kind != entity.TransactionKindExpense {
			continue
		}
		if _, seen := sums[t.Category]; !seen {
			order = append(order, t.Category)
		}
		sums[t.Category] = sums[t.Category].Add(t.Amount)
	}

	shares := make([]CategoryShare, 0, len(order))
	for _, name := range order {
		shares = append(shares, CategoryShare{Name: name, Value: sums[name]})
	}
	sort.SliceStable(shares, func(i, j int) bool {
		return shares[i].Value.GreaterThan(shares[j].Value)
	})

	if len(shares) > maxBreakdownCategories {
		shares = shares[:maxBreakdownCategories]
	}

	for i := range shares {
		if totalExpense.Sign() > 0 {
			pct := shares[i].Value.Div(totalExpense).Mul(decimal.NewFromInt(100))
			shares[i].Percentage = int(pct.Round(0).IntPart())
		}
		shares[i].Value = shares[i].Value.Round(2)
	}
	return shares
}

// mostActiveCategory returns the category with the most EXPENSE transactions,
// ties broken by encounter order; empty when there are no expenses.
func mostActiveCategory(transactions []*entity.Transaction) string {
	counts := make(map[string]int)
	var order []string
	for _, t := range transactions {
		if t.Kind != entity.TransactionKindExpense {
			continue
		}
		if _, seen := counts[t.Category]; !seen {
			order = append(order, t.Category)
		}
		counts[t.Category]++
	}

	best := ""
	bestCount := 0
	for _, name := range order {
		if counts[name] > bestCount {
			best = name
			bestCount = counts[name]
		}
	}
	return best
}

// categoryAverages returns the average EXPENSE transaction amount per
// category, rounded to 2 decimals, in encounter order.
func categoryAverages(transactions []*entity.Transaction) []CategoryAverage {
	sums := make(map[string]decimal.Decimal)
	counts := make(map[string]int)
	var order []string
	for _, t := range transactions {
		if t.Kind != entity.TransactionKindExpense {
			continue
		}
		if _, seen := counts[t.Category]; !seen {
			order = append(order, t.Category)
		}
		sums[t.Category] = sums[t.Category].Add(t.Amount)
		counts[t.Category]++
	}

	averages := make([]CategoryAverage, 0, len(order))
	for _, name := range order {
		averages = append(averages, CategoryAverage{
			Name:             name,
			AverageAmount:    sums[name].Div(decimal.NewFromInt(int64(counts[name]))).Round(2),
			TransactionCount: counts[name],
		})
	}
	return averages
}

// CategoryAverage is the per-category average-transaction-amount entry of a
// custom-range report.
type CategoryAverage struct {
	Name             string          `json:"name"`
	AverageAmount    decimal.Decimal `json:"averageAmount"`
	TransactionCount int             `json:"transactionCount"`
}
