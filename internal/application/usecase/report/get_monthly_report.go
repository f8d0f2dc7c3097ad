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

// DayPoint is one day-of-month bucket of a monthly report.
type DayPoint struct {
	Day    int             `json:"day"`
	Amount decimal.Decimal `json:"amount"`
}

// GetMonthlyReportInput represents the input for a monthly report.
type GetMonthlyReportInput struct {
	Owner string
	Year  int
	Month int
}

// GetMonthlyReportOutput is the monthly report shape.
type GetMonthlyReportOutput struct {
	Year               int                `json:"year"`
	Month              int                `json:"month"`
	MonthName          string             `json:"monthName"`
	TotalAmount        decimal.Decimal    `json:"totalAmount"`
	TotalIncome        decimal.Decimal    `json:"totalIncome"`
	TotalSavings       decimal.Decimal    `json:"totalSavings"`
	NetIncome          decimal.Decimal    `json:"netIncome"`
	SavingsRate        float64            `json:"savingsRate"`
	AvgDaily           decimal.Decimal    `json:"avgDaily"`
	MaxDaily           decimal.Decimal    `json:"maxDaily"`
	MinDaily           decimal.Decimal    `json:"minDaily"`
	TransactionCount   int                `json:"transactionCount"`
	CategoryBreakdown  []CategoryShare    `json:"categoryBreakdown"`
	DailyExpenses      []DayPoint         `json:"dailyExpenses"`
	PreviousMonthTotal decimal.Decimal    `json:"previousMonthTotal"`
	PercentChange      float64            `json:"percentChange"`
	MonthlyBudget      decimal.Decimal    `json:"monthlyBudget"`
	BudgetUsedPct      float64            `json:"budgetUsedPct"`
	BudgetRemaining    decimal.Decimal    `json:"budgetRemaining"`
	RecurringExpenses  []RecurringExpense `json:"recurringExpenses"`
}

// GetMonthlyReportUseCase computes the day-bucketed report for one calendar month.
type GetMonthlyReportUseCase struct {
	transactionRepo adapter.TransactionRepository
	settingsRepo    adapter.SettingsRepository
	recurring       *DetectRecurringUseCase
	defaults        Defaults
}

// NewGetMonthlyReportUseCase creates a new GetMonthlyReportUseCase instance.
func NewGetMonthlyReportUseCase(
	transactionRepo adapter.TransactionRepository,
	settingsRepo adapter.SettingsRepository,
	recurring *DetectRecurringUseCase,
	defaults Defaults,
) *GetMonthlyReportUseCase {
	return &GetMonthlyReportUseCase{
		transactionRepo: transactionRepo,
		settingsRepo:    settingsRepo,
		recurring:       recurring,
		defaults:        defaults,
	}
}

// Execute computes the monthly report for the given owner, year and month.
func (uc *GetMonthlyReportUseCase) Execute(ctx context.Context, input GetMonthlyReportInput) (*GetMonthlyReportOutput, error) {
	if input.Month < 1 || input.Month > 12 {
		return nil, domainerror.NewReportError(
			domainerror.ErrCodeInvalidMonth,
			"month must be between 1 and 12",
			domainerror.ErrInvalidMonth,
		)
	}

	month := time.Month(input.Month)
	start := time.Date(input.Year, month, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, -1)

	transactions, err := uc.transactionRepo.FindByOwnerAndDateRange(ctx, input.Owner, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch monthly transactions: %w", err)
	}

	totals := sumByKind(transactions)

	daySums := accumulate(transactions, func(t *entity.Transaction) int {
		return t.OccurredOn.Day()
	})
	days := daysOfMonth(input.Year, month)
	series := zeroFilled(daySums, days)
	maxDaily, minDaily := extremaOf(daySums)

	daily := make([]DayPoint, len(series))
	for i, amount := range series {
		daily[i] = DayPoint{Day: days[i], Amount: amount.Round(2)}
	}

	// Prior period: the previous calendar month, fetched independently.
	prevStart := start.AddDate(0, -1, 0)
	prevEnd := start.AddDate(0, 0, -1)
	prevTransactions, err := uc.transactionRepo.FindByOwnerAndDateRange(ctx, input.Owner, prevStart, prevEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch previous month transactions: %w", err)
	}
	prevTotal := sumByKind(prevTransactions).Expenses

	settings, err := uc.settingsRepo.GetOrCreate(ctx, entity.NewUserSettings(
		input.Owner, uc.defaults.Currency, uc.defaults.DateFormat, uc.defaults.MonthlyBudget,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}
	budget := evaluateBudget(totals.Expenses, settings.MonthlyBudget, GranularityMonthly)

	return &GetMonthlyReportOutput{
		Year:               input.Year,
		Month:              input.Month,
		MonthName:          monthAbbreviations[month],
		TotalAmount:        totals.Expenses.Round(2),
		TotalIncome:        totals.Income.Round(2),
		TotalSavings:       totals.Savings.Round(2),
		NetIncome:          totals.Net().Round(2),
		SavingsRate:        totals.SavingsRate(),
		AvgDaily:           average(totals.Expenses, len(series)),
		MaxDaily:           maxDaily.Round(2),
		MinDaily:           minDaily.Round(2),
		TransactionCount:   totals.ExpenseCount,
		CategoryBreakdown:  topCategories(transactions, totals.Expenses),
		DailyExpenses:      daily,
		PreviousMonthTotal: prevTotal.Round(2),
		PercentChange:      percentChange(totals.Expenses, prevTotal),
		MonthlyBudget:      budget.Budget,
		BudgetUsedPct:      budget.UsedPct,
		BudgetRemaining:    budget.Remaining,
		RecurringExpenses:  uc.recurring.Execute(ctx, DetectRecurringInput{Owner: input.Owner, Today: time.Now().UTC()}),
	}, nil
}
