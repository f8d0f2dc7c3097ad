package report

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/hamsacorp/expense-backend/internal/application/adapter"
	"github.com/hamsacorp/expense-backend/internal/domain/entity"
)

// Hourly fallback window used when no transaction carries a RecordedAt: the
// day's expense total is spread evenly across business hours, one unit per
// transaction, capped at 10 transactions.
const (
	fallbackStartHour       = 9
	fallbackEndHour         = 18
	fallbackMaxTransactions = 10
)

// Time-of-day bucket boundaries (inclusive hours). Night wraps midnight.
const (
	morningStartHour   = 6
	afternoonStartHour = 12
	eveningStartHour   = 18
	nightStartHour     = 22
)

// HourPoint is one hourly bucket of a daily report.
type HourPoint struct {
	Hour   int             `json:"hour"`
	Amount decimal.Decimal `json:"amount"`
}

// TimeOfDayTotals sums the hourly series into fixed semantic buckets.
type TimeOfDayTotals struct {
	Morning   decimal.Decimal `json:"morning"`
	Afternoon decimal.Decimal `json:"afternoon"`
	Evening   decimal.Decimal `json:"evening"`
	Night     decimal.Decimal `json:"night"`
}

// GetDailyReportInput represents the input for a daily report.
type GetDailyReportInput struct {
	Owner string
	Date  time.Time
}

// GetDailyReportOutput is the daily report shape.
type GetDailyReportOutput struct {
	Date                string          `json:"date"`
	DayName             string          `json:"dayName"`
	TotalAmount         decimal.Decimal `json:"totalAmount"`
	TotalIncome         decimal.Decimal `json:"totalIncome"`
	TotalSavings        decimal.Decimal `json:"totalSavings"`
	NetIncome           decimal.Decimal `json:"netIncome"`
	SavingsRate         float64         `json:"savingsRate"`
	AvgHourly           decimal.Decimal `json:"avgHourly"`
	MaxHourly           decimal.Decimal `json:"maxHourly"`
	MinHourly           decimal.Decimal `json:"minHourly"`
	TransactionCount    int             `json:"transactionCount"`
	CategoryBreakdown   []CategoryShare `json:"categoryBreakdown"`
	HourlyExpenses      []HourPoint     `json:"hourlyExpenses"`
	HourlySynthetic     bool            `json:"hourlySynthetic"`
	ExpensesByTimeOfDay TimeOfDayTotals `json:"expensesByTimeOfDay"`
	TopExpenseCategory  string          `json:"topExpenseCategory"`
	PreviousDayTotal    decimal.Decimal `json:"previousDayTotal"`
	PercentChange       float64         `json:"percentChange"`
	DailyBudget         decimal.Decimal `json:"dailyBudget"`
	BudgetUsedPct       float64         `json:"budgetUsedPct"`
	BudgetRemaining     decimal.Decimal `json:"budgetRemaining"`
}

// GetDailyReportUseCase computes the hour-bucketed report for one calendar day.
type GetDailyReportUseCase struct {
	transactionRepo adapter.TransactionRepository
	settingsRepo    adapter.SettingsRepository
	defaults        Defaults
}

// NewGetDailyReportUseCase creates a new GetDailyReportUseCase instance.
func NewGetDailyReportUseCase(
	transactionRepo adapter.TransactionRepository,
	settingsRepo adapter.SettingsRepository,
	defaults Defaults,
) *GetDailyReportUseCase {
	return &GetDailyReportUseCase{
		transactionRepo: transactionRepo,
		settingsRepo:    settingsRepo,
		defaults:        defaults,
	}
}

// Execute computes the daily report for the given owner and date.
func (uc *GetDailyReportUseCase) Execute(ctx context.Context, input GetDailyReportInput) (*GetDailyReportOutput, error) {
	transactions, err := uc.transactionRepo.FindByOwnerAndDate(ctx, input.Owner, input.Date)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch daily transactions: %w", err)
	}

	totals := sumByKind(transactions)

	hourSums, synthetic := hourlyBuckets(transactions, totals.Expenses)
	series := zeroFilled(hourSums, hoursOfDay())
	maxHourly, minHourly := extremaOfSeries(series)

	hourly := make([]HourPoint, len(series))
	for h, amount := range series {
		hourly[h] = HourPoint{Hour: h, Amount: amount.Round(2)}
	}

	// Prior period: the previous calendar day, fetched independently.
	prevTransactions, err := uc.transactionRepo.FindByOwnerAndDate(ctx, input.Owner, input.Date.AddDate(0, 0, -1))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch previous day transactions: %w", err)
	}
	prevTotal := sumByKind(prevTransactions).Expenses

	settings, err := uc.settingsRepo.GetOrCreate(ctx, entity.NewUserSettings(
		input.Owner, uc.defaults.Currency, uc.defaults.DateFormat, uc.defaults.MonthlyBudget,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}
	budget := evaluateBudget(totals.Expenses, settings.MonthlyBudget, GranularityDaily)

	breakdown := topCategories(transactions, totals.Expenses)
	topCategory := ""
	if len(breakdown) > 0 {
		topCategory = breakdown[0].Name
	}

	return &GetDailyReportOutput{
		Date:                input.Date.Format("2006-01-02"),
		DayName:             input.Date.Weekday().String(),
		TotalAmount:         totals.Expenses.Round(2),
		TotalIncome:         totals.Income.Round(2),
		TotalSavings:        totals.Savings.Round(2),
		NetIncome:           totals.Net().Round(2),
		SavingsRate:         totals.SavingsRate(),
		AvgHourly:           average(totals.Expenses, len(series)),
		MaxHourly:           maxHourly.Round(2),
		MinHourly:           minHourly.Round(2),
		TransactionCount:    totals.ExpenseCount,
		CategoryBreakdown:   breakdown,
		HourlyExpenses:      hourly,
		HourlySynthetic:     synthetic,
		ExpensesByTimeOfDay: timeOfDayTotals(series),
		TopExpenseCategory:  topCategory,
		PreviousDayTotal:    prevTotal.Round(2),
		PercentChange:       percentChange(totals.Expenses, prevTotal),
		DailyBudget:         budget.Budget,
		BudgetUsedPct:       budget.UsedPct,
		BudgetRemaining:     budget.Remaining,
	}, nil
}

// hourlyBuckets accumulates EXPENSE amounts by RecordedAt hour. When no
// transaction in the set carries a RecordedAt, it falls back to spreading the
// total evenly across the business-hour window for display continuity; the
// second return value reports whether the series is synthetic so callers can
// tell it apart from genuine hourly data.
func hourlyBuckets(transactions []*entity.Transaction, totalExpense decimal.Decimal) (map[int]decimal.Decimal, bool) {
	expenses := make([]*entity.Transaction, 0, len(transactions))
	hasTimestamps := false
	for _, t := range transactions {
		if t.Kind != entity.TransactionKindExpense {
			continue
		}
		expenses = append(expenses, t)
		if t.RecordedAt != nil {
			hasTimestamps = true
		}
	}

	if hasTimestamps {
		sums := accumulate(expenses, func(t *entity.Transaction) int {
			if t.RecordedAt == nil {
				return 0
			}
			return t.RecordedAt.Hour()
		})
		return sums, false
	}

	sums := make(map[int]decimal.Decimal)
	if len(expenses) == 0 || totalExpense.Sign() == 0 {
		return sums, false
	}

	units := len(expenses)
	if units > fallbackMaxTransactions {
		units = fallbackMaxTransactions
	}
	share := totalExpense.Div(decimal.NewFromInt(int64(units)))
	for i := 0; i < units; i++ {
		// 10 units at most, so the window never runs past fallbackEndHour.
		sums[fallbackStartHour+i] = sums[fallbackStartHour+i].Add(share)
	}
	return sums, true
}

// timeOfDayTotals sums the 24-bucket hourly series into the fixed semantic
// ranges: morning 06-11, afternoon 12-17, evening 18-21, night 22-05.
func timeOfDayTotals(series []decimal.Decimal) TimeOfDayTotals {
	var t TimeOfDayTotals
	for hour, amount := range series {
		switch {
		case hour >= morningStartHour && hour < afternoonStartHour:
			t.Morning = t.Morning.Add(amount)
		case hour >= afternoonStartHour && hour < eveningStartHour:
			t.Afternoon = t.Afternoon.Add(amount)
		case hour >= eveningStartHour && hour < nightStartHour:
			t.Evening = t.Evening.Add(amount)
		default:
			t.Night = t.Night.Add(amount)
		}
	}
	t.Morning = t.Morning.Round(2)
	t.Afternoon = t.Afternoon.Round(2)
	t.Evening = t.Evening.Round(2)
	t.Night = t.Night.Round(2)
	return t
}
