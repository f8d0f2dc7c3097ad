package report

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hamsacorp/expense-backend/internal/domain/entity"
	domainerror "github.com/hamsacorp/expense-backend/internal/domain/error"
)

func newMonthlyUseCase(repo *fakeTransactionRepository, settings *fakeSettingsRepository) *GetMonthlyReportUseCase {
	return NewGetMonthlyReportUseCase(repo, settings, NewDetectRecurringUseCase(repo), testDefaults())
}

func TestGetMonthlyReportUseCase_Execute(t *testing.T) {
	// Test the full shape of a month with data.
	t.Run("computes the monthly report", func(t *testing.T) {
		repo := &fakeTransactionRepository{transactions: []*entity.Transaction{
			expense("groceries", "300", "Food", date(2025, time.March, 5)),
			expense("rent", "1500", "Housing", date(2025, time.March, 1)),
			newTxn(entity.TransactionKindIncome, "salary", "5000", "Salary", date(2025, time.March, 1)),
			expense("february", "900", "Food", date(2025, time.February, 10)),
		}}
		uc := newMonthlyUseCase(repo, &fakeSettingsRepository{})

		out, err := uc.Execute(context.Background(), GetMonthlyReportInput{Owner: testOwner, Year: 2025, Month: 3})

		require.NoError(t, err)
		assert.Equal(t, 2025, out.Year)
		assert.Equal(t, 3, out.Month)
		assert.Equal(t, "Mar", out.MonthName)
		assert.True(t, out.TotalAmount.Equal(decimal.NewFromInt(1800)))
		assert.True(t, out.TotalIncome.Equal(decimal.NewFromInt(5000)))
		assert.Equal(t, 2, out.TransactionCount)

		require.Len(t, out.DailyExpenses, 31)
		assert.Equal(t, 1, out.DailyExpenses[0].Day)
		assert.True(t, out.DailyExpenses[0].Amount.Equal(decimal.NewFromInt(1500)))
		assert.True(t, out.DailyExpenses[4].Amount.Equal(decimal.NewFromInt(300)))

		// extrema over days with data only
		assert.True(t, out.MaxDaily.Equal(decimal.NewFromInt(1500)))
		assert.True(t, out.MinDaily.Equal(decimal.NewFromInt(300)))

		assert.True(t, out.PreviousMonthTotal.Equal(decimal.NewFromInt(900)))
		assert.Equal(t, 100.0, out.PercentChange)

		assert.True(t, out.MonthlyBudget.Equal(decimal.NewFromInt(12000)))
		assert.Equal(t, 15.0, out.BudgetUsedPct)
		assert.True(t, out.BudgetRemaining.Equal(decimal.NewFromInt(10200)))

		assert.NotNil(t, out.RecurringExpenses)
	})

	// Test the series length follows the calendar month.
	t.Run("series length follows the calendar", func(t *testing.T) {
		uc := newMonthlyUseCase(&fakeTransactionRepository{}, &fakeSettingsRepository{})

		feb, err := uc.Execute(context.Background(), GetMonthlyReportInput{Owner: testOwner, Year: 2024, Month: 2})
		require.NoError(t, err)
		assert.Len(t, feb.DailyExpenses, 29)

		apr, err := uc.Execute(context.Background(), GetMonthlyReportInput{Owner: testOwner, Year: 2025, Month: 4})
		require.NoError(t, err)
		assert.Len(t, apr.DailyExpenses, 30)
	})

	// Test that recomputing over an unchanged ledger yields the same report.
	t.Run("is idempotent over an unchanged ledger", func(t *testing.T) {
		repo := &fakeTransactionRepository{transactions: []*entity.Transaction{
			expense("groceries", "300", "Food", date(2025, time.March, 5)),
			expense("rent", "1500", "Housing", date(2025, time.March, 1)),
			newTxn(entity.TransactionKindIncome, "salary", "5000", "Salary", date(2025, time.March, 1)),
		}}
		uc := newMonthlyUseCase(repo, &fakeSettingsRepository{})
		input := GetMonthlyReportInput{Owner: testOwner, Year: 2025, Month: 3}

		first, err := uc.Execute(context.Background(), input)
		require.NoError(t, err)
		second, err := uc.Execute(context.Background(), input)
		require.NoError(t, err)

		assert.Equal(t, first, second)
	})

	// Test month validation rejects out-of-range values before any fetch.
	t.Run("rejects an invalid month", func(t *testing.T) {
		uc := newMonthlyUseCase(&fakeTransactionRepository{}, &fakeSettingsRepository{})

		for _, month := range []int{0, 13, -1} {
			_, err := uc.Execute(context.Background(), GetMonthlyReportInput{Owner: testOwner, Year: 2025, Month: month})

			var reportErr *domainerror.ReportError
			require.ErrorAs(t, err, &reportErr)
			assert.Equal(t, domainerror.ErrCodeInvalidMonth, reportErr.Code)
		}
	})
}
