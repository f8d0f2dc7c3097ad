// Package settings contains user settings use cases.
package settings

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/hamsacorp/expense-backend/internal/domain/entity"
	domainerror "github.com/hamsacorp/expense-backend/internal/domain/error"
)

// fakeSettingsRepository keeps one row per owner in memory, mirroring the
// lazy-creation contract of the real repository.
type fakeSettingsRepository struct {
	rows    map[string]*entity.UserSettings
	deleted []string
}

func newFakeSettingsRepository() *fakeSettingsRepository {
	return &fakeSettingsRepository{rows: make(map[string]*entity.UserSettings)}
}

func (r *fakeSettingsRepository) GetOrCreate(ctx context.Context, defaults *entity.UserSettings) (*entity.UserSettings, error) {
	if existing, ok := r.rows[defaults.Owner]; ok {
		return existing, nil
	}
	r.rows[defaults.Owner] = defaults
	return defaults, nil
}

func (r *fakeSettingsRepository) Update(ctx context.Context, settings *entity.UserSettings) error {
	r.rows[settings.Owner] = settings
	return nil
}

func (r *fakeSettingsRepository) DeleteByOwner(ctx context.Context, owner string) error {
	delete(r.rows, owner)
	r.deleted = append(r.deleted, owner)
	return nil
}

const testOwner = "dana@example.com"

func testDefaults() Defaults {
	return Defaults{
		Currency:      "INR",
		DateFormat:    "DD/MM/YYYY",
		MonthlyBudget: decimal.NewFromInt(12000),
	}
}

func stringPtr(s string) *string { return &s }

func decimalPtr(d decimal.Decimal) *decimal.Decimal { return &d }

func TestGetSettingsUseCase_Execute(t *testing.T) {
	// Test first access creates the row with defaults.
	t.Run("first access creates defaults", func(t *testing.T) {
		repo := newFakeSettingsRepository()
		uc := NewGetSettingsUseCase(repo, testDefaults())

		out, err := uc.Execute(context.Background(), GetSettingsInput{Owner: testOwner})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		if out.Currency != "INR" {
			t.Errorf("expected currency INR, got %s", out.Currency)
		}
		if out.DateFormat != "DD/MM/YYYY" {
			t.Errorf("expected date format DD/MM/YYYY, got %s", out.DateFormat)
		}
		if !out.MonthlyBudget.Equal(decimal.NewFromInt(12000)) {
			t.Errorf("expected budget 12000, got %s", out.MonthlyBudget)
		}
		if _, ok := repo.rows[testOwner]; !ok {
			t.Error("expected a settings row to be created")
		}
	})

	// Test an existing row is returned untouched.
	t.Run("existing row wins over defaults", func(t *testing.T) {
		repo := newFakeSettingsRepository()
		repo.rows[testOwner] = entity.NewUserSettings(testOwner, "EUR", "YYYY-MM-DD", decimal.NewFromInt(900))
		uc := NewGetSettingsUseCase(repo, testDefaults())

		out, err := uc.Execute(context.Background(), GetSettingsInput{Owner: testOwner})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		if out.Currency != "EUR" {
			t.Errorf("expected stored currency EUR, got %s", out.Currency)
		}
	})
}

func TestUpdateSettingsUseCase_Execute(t *testing.T) {
	// Test nil fields keep their stored value.
	t.Run("applies only the provided fields", func(t *testing.T) {
		repo := newFakeSettingsRepository()
		repo.rows[testOwner] = entity.NewUserSettings(testOwner, "EUR", "YYYY-MM-DD", decimal.NewFromInt(900))
		uc := NewUpdateSettingsUseCase(repo, testDefaults())

		out, err := uc.Execute(context.Background(), UpdateSettingsInput{
			Owner:    testOwner,
			Currency: stringPtr("USD"),
		})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		if out.Currency != "USD" {
			t.Errorf("expected currency USD, got %s", out.Currency)
		}
		if out.DateFormat != "YYYY-MM-DD" {
			t.Errorf("expected date format to be kept, got %s", out.DateFormat)
		}
		if !out.MonthlyBudget.Equal(decimal.NewFromInt(900)) {
			t.Errorf("expected budget to be kept, got %s", out.MonthlyBudget)
		}
	})

	// Test updating without a row creates it first.
	t.Run("update without a row creates defaults first", func(t *testing.T) {
		repo := newFakeSettingsRepository()
		uc := NewUpdateSettingsUseCase(repo, testDefaults())

		out, err := uc.Execute(context.Background(), UpdateSettingsInput{
			Owner:         testOwner,
			MonthlyBudget: decimalPtr(decimal.NewFromInt(5000)),
		})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		if !out.MonthlyBudget.Equal(decimal.NewFromInt(5000)) {
			t.Errorf("expected budget 5000, got %s", out.MonthlyBudget)
		}
		if out.Currency != "INR" {
			t.Errorf("expected default currency INR, got %s", out.Currency)
		}
	})

	// Test a negative budget is rejected before any row is touched.
	t.Run("rejects a negative budget", func(t *testing.T) {
		repo := newFakeSettingsRepository()
		uc := NewUpdateSettingsUseCase(repo, testDefaults())

		_, err := uc.Execute(context.Background(), UpdateSettingsInput{
			Owner:         testOwner,
			MonthlyBudget: decimalPtr(decimal.NewFromInt(-1)),
		})

		var settingsErr *domainerror.SettingsError
		if !errors.As(err, &settingsErr) {
			t.Fatalf("expected SettingsError, got %v", err)
		}
		if settingsErr.Code != domainerror.ErrCodeNegativeBudget {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeNegativeBudget, settingsErr.Code)
		}
		if len(repo.rows) != 0 {
			t.Error("expected no row to be created on a rejected update")
		}
	})

	// Test a zero budget is a valid way to disable budgeting.
	t.Run("accepts a zero budget", func(t *testing.T) {
		repo := newFakeSettingsRepository()
		uc := NewUpdateSettingsUseCase(repo, testDefaults())

		out, err := uc.Execute(context.Background(), UpdateSettingsInput{
			Owner:         testOwner,
			MonthlyBudget: decimalPtr(decimal.Zero),
		})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if !out.MonthlyBudget.IsZero() {
			t.Errorf("expected budget 0, got %s", out.MonthlyBudget)
		}
	})

	// Test blank strings do not wipe stored values.
	t.Run("ignores blank string fields", func(t *testing.T) {
		repo := newFakeSettingsRepository()
		repo.rows[testOwner] = entity.NewUserSettings(testOwner, "EUR", "YYYY-MM-DD", decimal.NewFromInt(900))
		uc := NewUpdateSettingsUseCase(repo, testDefaults())

		out, err := uc.Execute(context.Background(), UpdateSettingsInput{
			Owner:    testOwner,
			Currency: stringPtr("   "),
		})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if out.Currency != "EUR" {
			t.Errorf("expected currency to be kept, got %s", out.Currency)
		}
	})
}

func TestDeleteSettingsUseCase_Execute(t *testing.T) {
	// Test deletion removes the row so the next read recreates defaults.
	t.Run("deletes the owner's row", func(t *testing.T) {
		repo := newFakeSettingsRepository()
		repo.rows[testOwner] = entity.NewUserSettings(testOwner, "EUR", "YYYY-MM-DD", decimal.NewFromInt(900))
		uc := NewDeleteSettingsUseCase(repo)

		if err := uc.Execute(context.Background(), DeleteSettingsInput{Owner: testOwner}); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		if _, ok := repo.rows[testOwner]; ok {
			t.Error("expected the row to be removed")
		}
	})

	// Test deleting a missing row is not an error.
	t.Run("missing row is not an error", func(t *testing.T) {
		uc := NewDeleteSettingsUseCase(newFakeSettingsRepository())

		if err := uc.Execute(context.Background(), DeleteSettingsInput{Owner: testOwner}); err != nil {
			t.Errorf("expected no error, got %v", err)
		}
	})
}
