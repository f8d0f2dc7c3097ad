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

// Year bounds accepted by the yearly and monthly reports.
const (
	minReportYear = 1900
	maxReportYear = 2200
)

// MonthPoint is one calendar-month bucket of a yearly report.
type MonthPoint struct {
	Month       string          `json:"month"`
	MonthNumber int             `json:"monthNumber"`
	Amount      decimal.Decimal `json:"amount"`
}

// GetYearlyReportInput represents the input for a yearly report.
type GetYearlyReportInput struct {
	Owner string
	Year  int
}

// GetYearlyReportOutput is the yearly report shape.
type GetYearlyReportOutput struct {
	Year              int                `json:"year"`
	TotalAmount       decimal.Decimal    `json:"totalAmount"`
	TotalIncome       decimal.Decimal    `json:"totalIncome"`
	TotalSavings      decimal.Decimal    `json:"totalSavings"`
	NetIncome         decimal.Decimal    `json:"netIncome"`
	SavingsRate       float64            `json:"savingsRate"`
	AvgMonthly        decimal.Decimal    `json:"avgMonthly"`
	MaxMonthly        decimal.Decimal    `json:"maxMonthly"`
	MinMonthly        decimal.Decimal    `json:"minMonthly"`
	TransactionCount  int                `json:"transactionCount"`
	CategoryBreakdown []CategoryShare    `json:"categoryBreakdown"`
	MonthlyExpenses   []MonthPoint       `json:"monthlyExpenses"`
	PreviousYearTotal decimal.Decimal    `json:"previousYearTotal"`
	PercentChange     float64            `json:"percentChange"`
	HighestMonth      *MonthPoint        `json:"highestMonth"`
	LowestMonth       *MonthPoint        `json:"lowestMonth"`
	YearlyBudget      decimal.Decimal    `json:"yearlyBudget"`
	BudgetUsedPct     float64            `json:"budgetUsedPct"`
	BudgetRemaining   decimal.Decimal    `json:"budgetRemaining"`
	RecurringExpenses []RecurringExpense `json:"recurringExpenses"`
}

// GetYearlyReportUseCase computes the month-bucketed report for one calendar year.
type GetYearlyReportUseCase struct {
	transactionRepo adapter.TransactionRepository
	settingsRepo    adapter.SettingsRepository
	recurring       *DetectRecurringUseCase
	defaults        Defaults
}

// NewGetYearlyReportUseCase creates a new GetYearlyReportUseCase instance.
func NewGetYearlyReportUseCase(
	transactionRepo adapter.TransactionRepository,
	settingsRepo adapter.SettingsRepository,
	recurring *DetectRecurringUseCase,
	defaults Defaults,
) *GetYearlyReportUseCase {
	return &GetYearlyReportUseCase{
		transactionRepo: transactionRepo,
		settingsRepo:    settingsRepo,
		recurring:       recurring,
		defaults:        defaults,
	}
}

// Execute computes the yearly report for the given owner and year.
func (uc *GetYearlyReportUseCase) Execute(ctx context.Context, input GetYearlyReportInput) (*GetYearlyReportOutput, error) {
	if input.Year < minReportYear || input.Year > maxReportYear {
		return nil, domainerror.NewReportError(
			domainerror.ErrCodeInvalidYear,
			"year is out of range",
			domainerror.ErrInvalidYear,
		)
	}

	start := time.Date(input.Year, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(input.Year, time.December, 31, 0, 0, 0, 0, time.UTC)

	transactions, err := uc.transactionRepo.FindByOwnerAndDateRange(ctx, input.Owner, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch yearly transactions: %w", err)
	}

	totals := sumByKind(transactions)

	monthSums := accumulate(transactions, func(t *entity.Transaction) int {
		return int(t.OccurredOn.Month())
	})
	months := monthsOfYear()
	series := zeroFilled(monthSums, months)
	maxMonthly, minMonthly := extremaOf(monthSums)

	monthly := make([]MonthPoint, len(series))
	for i, amount := range series {
		monthly[i] = MonthPoint{
			Month:       monthAbbreviations[time.Month(months[i])],
			MonthNumber: months[i],
			Amount:      amount.Round(2),
		}
	}

	// Prior period: the previous calendar year, fetched independently.
	prevTransactions, err := uc.transactionRepo.FindByOwnerAndDateRange(ctx, input.Owner,
		start.AddDate(-1, 0, 0), end.AddDate(-1, 0, 0))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch previous year transactions: %w", err)
	}
	prevTotal := sumByKind(prevTransactions).Expenses

	settings, err := uc.settingsRepo.GetOrCreate(ctx, entity.NewUserSettings(
		input.Owner, uc.defaults.Currency, uc.defaults.DateFormat, uc.defaults.MonthlyBudget,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}
	budget := evaluateBudget(totals.Expenses, settings.MonthlyBudget, GranularityYearly)

	highest, lowest := extremeMonths(monthly)

	return &GetYearlyReportOutput{
		Year:              input.Year,
		TotalAmount:       totals.Expenses.Round(2),
		TotalIncome:       totals.Income.Round(2),
		TotalSavings:      totals.Savings.Round(2),
		NetIncome:         totals.Net().Round(2),
		SavingsRate:       totals.SavingsRate(),
		AvgMonthly:        average(totals.Expenses, len(series)),
		MaxMonthly:        maxMonthly.Round(2),
		MinMonthly:        minMonthly.Round(2),
		TransactionCount:  totals.ExpenseCount,
		CategoryBreakdown: topCategories(transactions, totals.Expenses),
		MonthlyExpenses:   monthly,
		PreviousYearTotal: prevTotal.Round(2),
		PercentChange:     percentChange(totals.Expenses, prevTotal),
		HighestMonth:      highest,
		LowestMonth:       lowest,
		YearlyBudget:      budget.Budget,
		BudgetUsedPct:     budget.UsedPct,
		BudgetRemaining:   budget.Remaining,
		RecurringExpenses: uc.recurring.Execute(ctx, DetectRecurringInput{Owner: input.Owner, Today: time.Now().UTC()}),
	}, nil
}

// extremeMonths finds the highest- and lowest-amount points of the 12-month
// series, first occurrence winning ties.
func extremeMonths(monthly []MonthPoint) (highest, lowest *MonthPoint) {
	for i := range monthly {
		if highest == nil || monthly[i].Amount.GreaterThan(highest.Amount) {
			highest = &monthly[i]
		}
		if lowest == nil || monthly[i].Amount.LessThan(lowest.Amount) {
			lowest = &monthly[i]
		}
	}
	return highest, lowest
}
