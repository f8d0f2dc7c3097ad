package dto

import (
	"time"

	"github.com/shopspring/decimal"

	usecase "github.com/hamsacorp/expense-backend/internal/application/usecase/settings"
)

// UpdateSettingsRequest represents the request body for a settings update.
// Omitted fields keep their stored value.
type UpdateSettingsRequest struct {
	Currency      *string          `json:"currency"`
	DateFormat    *string          `json:"date_format"`
	MonthlyBudget *decimal.Decimal `json:"monthly_budget"`
}

// SettingsResponse represents the owner's settings in API responses.
type SettingsResponse struct {
	Currency      string          `json:"currency"`
	DateFormat    string          `json:"date_format"`
	MonthlyBudget decimal.Decimal `json:"monthly_budget"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// ToSettingsResponse converts a use case settings output to a response DTO.
func ToSettingsResponse(s *usecase.SettingsOutput) SettingsResponse {
	return SettingsResponse{
		Currency:      s.Currency,
		DateFormat:    s.DateFormat,
		MonthlyBudget: s.MonthlyBudget,
		UpdatedAt:     s.UpdatedAt,
	}
}
