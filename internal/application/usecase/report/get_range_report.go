package report

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/hamsacorp/expense-backend/internal/application/adapter"
	"github.com/hamsacorp/expense-backend/internal/domain/entity"
	domainerror "github.com/hamsacorp/expense-backend/internal/domain/error"
)

// DatePoint is one calendar-day bucket of a custom-range report.
type DatePoint struct {
	Date   string          `json:"date"`
	Amount decimal.Decimal `json:"amount"`
}

// GetRangeReportInput represents the input for a custom-range report.
type GetRangeReportInput struct {
	Owner     string
	StartDate time.Time
	EndDate   time.Time
}

// GetRangeReportOutput is the custom-range report shape. Unlike the calendar
// reports it carries no budget figures.
type GetRangeReportOutput struct {
	StartDate               string            `json:"startDate"`
	EndDate                 string            `json:"endDate"`
	DayCount                int               `json:"dayCount"`
	TotalExpenses           decimal.Decimal   `json:"totalExpenses"`
	TotalIncome             decimal.Decimal   `json:"totalIncome"`
	TotalSavings            decimal.Decimal   `json:"totalSavings"`
	NetIncome               decimal.Decimal   `json:"netIncome"`
	SavingsRate             float64           `json:"savingsRate"`
	AvgDaily                decimal.Decimal   `json:"avgDaily"`
	MaxDaily                decimal.Decimal   `json:"maxDaily"`
	MinDaily                decimal.Decimal   `json:"minDaily"`
	TransactionCount        int               `json:"transactionCount"`
	IncomeTransactionCount  int               `json:"incomeTransactionCount"`
	SavingsTransactionCount int               `json:"savingsTransactionCount"`
	CategoryBreakdown       []CategoryShare   `json:"categoryBreakdown"`
	DailyExpenses           []DatePoint       `json:"dailyExpenses"`
	PreviousPeriodTotal     decimal.Decimal   `json:"previousPeriodTotal"`
	PercentChange           float64           `json:"percentChange"`
	TopExpenseDay           *DatePoint        `json:"topExpenseDay"`
	LowestExpenseDay        *DatePoint        `json:"lowestExpenseDay"`
	MostActiveCategory      string            `json:"mostActiveCategory"`
	AveragePerCategory      []CategoryAverage `json:"averagePerCategory"`
}

// GetRangeReportUseCase computes the day-bucketed report for an arbitrary
// closed date range.
type GetRangeReportUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewGetRangeReportUseCase creates a new GetRangeReportUseCase instance.
func NewGetRangeReportUseCase(transactionRepo adapter.TransactionRepository) *GetRangeReportUseCase {
	return &GetRangeReportUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute computes the custom-range report. A range whose end precedes its
// start is rejected before any aggregation runs.
func (uc *GetRangeReportUseCase) Execute(ctx context.Context, input GetRangeReportInput) (*GetRangeReportOutput, error) {
	if input.EndDate.Before(input.StartDate) {
		return nil, domainerror.NewReportError(
			domainerror.ErrCodeInvalidDateRange,
			"end date must not be before start date",
			domainerror.ErrInvalidDateRange,
		)
	}

	transactions, err := uc.transactionRepo.FindByOwnerAndDateRange(ctx, input.Owner, input.StartDate, input.EndDate)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch range transactions: %w", err)
	}

	totals := sumByKind(transactions)

	dateSums := accumulate(transactions, func(t *entity.Transaction) string {
		return t.OccurredOn.Format("2006-01-02")
	})
	dates := datesBetween(input.StartDate, input.EndDate)
	series := zeroFilled(dateSums, dates)
	maxDaily, minDaily := extremaOf(dateSums)

	daily := make([]DatePoint, len(series))
	for i, amount := range series {
		daily[i] = DatePoint{Date: dates[i], Amount: amount.Round(2)}
	}

	// Prior period: the preceding range of equal day count ending the day
	// before the start, fetched independently.
	dayCount := len(dates)
	prevEnd := input.StartDate.AddDate(0, 0, -1)
	prevStart := prevEnd.AddDate(0, 0, -(dayCount - 1))
	prevTransactions, err := uc.transactionRepo.FindByOwnerAndDateRange(ctx, input.Owner, prevStart, prevEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch previous range transactions: %w", err)
	}
	prevTotal := sumByKind(prevTransactions).Expenses

	return &GetRangeReportOutput{
		StartDate:               input.StartDate.Format("2006-01-02"),
		EndDate:                 input.EndDate.Format("2006-01-02"),
		DayCount:                dayCount,
		TotalExpenses:           totals.Expenses.Round(2),
		TotalIncome:             totals.Income.Round(2),
		TotalSavings:            totals.Savings.Round(2),
		NetIncome:               totals.Net().Round(2),
		SavingsRate:             totals.SavingsRate(),
		AvgDaily:                average(totals.Expenses, dayCount),
		MaxDaily:                maxDaily.Round(2),
		MinDaily:                minDaily.Round(2),
		TransactionCount:        totals.ExpenseCount + totals.IncomeCount + totals.SavingsCount,
		IncomeTransactionCount:  totals.IncomeCount,
		SavingsTransactionCount: totals.SavingsCount,
		CategoryBreakdown:       topCategories(transactions, totals.Expenses),
		DailyExpenses:           daily,
		PreviousPeriodTotal:     prevTotal.Round(2),
		PercentChange:           percentChange(totals.Expenses, prevTotal),
		TopExpenseDay:           highestExpenseDay(daily),
		LowestExpenseDay:        lowestExpenseDay(daily),
		MostActiveCategory:      mostActiveCategory(transactions),
		AveragePerCategory:      categoryAverages(transactions),
	}, nil
}

// highestExpenseDay returns the day with the largest expense sum, first
// occurrence winning ties; nil for an empty series.
func highestExpenseDay(daily []DatePoint) *DatePoint {
	var top *DatePoint
	for i := range daily {
		if top == nil || daily[i].Amount.GreaterThan(top.Amount) {
			top = &daily[i]
		}
	}
	return top
}

// lowestExpenseDay returns the day with the smallest non-zero expense sum.
// Zero-value days are excluded; nil when every day is zero.
func lowestExpenseDay(daily []DatePoint) *DatePoint {
	var low *DatePoint
	for i := range daily {
		if daily[i].Amount.Sign() == 0 {
			continue
		}
		if low == nil || daily[i].Amount.LessThan(low.Amount) {
			low = &daily[i]
		}
	}
	return low
}
