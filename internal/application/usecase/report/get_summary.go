package report

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/hamsacorp/expense-backend/internal/application/adapter"
)

// GetSummaryInput represents the input for the dashboard summary.
type GetSummaryInput struct {
	Owner string
	Today time.Time
}

// GetSummaryOutput carries the headline figures for the current month and year.
type GetSummaryOutput struct {
	MonthlyExpenses decimal.Decimal `json:"monthlyExpenses"`
	YearlyExpenses  decimal.Decimal `json:"yearlyExpenses"`
	MonthlyIncome   decimal.Decimal `json:"monthlyIncome"`
	MonthlySavings  decimal.Decimal `json:"monthlySavings"`
}

// GetSummaryUseCase computes the current-period dashboard summary.
type GetSummaryUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewGetSummaryUseCase creates a new GetSummaryUseCase instance.
func NewGetSummaryUseCase(transactionRepo adapter.TransactionRepository) *GetSummaryUseCase {
	return &GetSummaryUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute computes totals for the calendar month and year containing Today.
func (uc *GetSummaryUseCase) Execute(ctx context.Context, input GetSummaryInput) (*GetSummaryOutput, error) {
	yearStart := time.Date(input.Today.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
	yearEnd := time.Date(input.Today.Year(), time.December, 31, 0, 0, 0, 0, time.UTC)

	transactions, err := uc.transactionRepo.FindByOwnerAndDateRange(ctx, input.Owner, yearStart, yearEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch summary transactions: %w", err)
	}

	monthStart := time.Date(input.Today.Year(), input.Today.Month(), 1, 0, 0, 0, 0, time.UTC)
	monthEnd := monthStart.AddDate(0, 1, -1)

	yearTotals := sumByKind(transactions)

	var monthTransactions = transactions[:0:0]
	for _, t := range transactions {
		if !t.OccurredOn.Before(monthStart) && !t.OccurredOn.After(monthEnd) {
			monthTransactions = append(monthTransactions, t)
		}
	}
	monthTotals := sumByKind(monthTransactions)

	return &GetSummaryOutput{
		MonthlyExpenses: monthTotals.Expenses.Round(2),
		YearlyExpenses:  yearTotals.Expenses.Round(2),
		MonthlyIncome:   monthTotals.Income.Round(2),
		MonthlySavings:  monthTotals.Savings.Round(2),
	}, nil
}
