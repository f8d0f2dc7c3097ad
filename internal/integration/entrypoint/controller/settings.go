package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hamsacorp/expense-backend/internal/application/usecase/settings"
	domainerror "github.com/hamsacorp/expense-backend/internal/domain/error"
	"github.com/hamsacorp/expense-backend/internal/integration/entrypoint/dto"
)

// SettingsController handles user settings endpoints.
type SettingsController struct {
	getUseCase    *settings.GetSettingsUseCase
	updateUseCase *settings.UpdateSettingsUseCase
	deleteUseCase *settings.DeleteSettingsUseCase
}

// NewSettingsController creates a new settings controller instance.
func NewSettingsController(
	getUseCase *settings.GetSettingsUseCase,
	updateUseCase *settings.UpdateSettingsUseCase,
	deleteUseCase *settings.DeleteSettingsUseCase,
) *SettingsController {
	return &SettingsController{
		getUseCase:    getUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// Get handles GET /settings requests.
func (c *SettingsController) Get(ctx *gin.Context) {
	owner, ok := ownerFromContext(ctx)
	if !ok {
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), settings.GetSettingsInput{Owner: owner})
	if err != nil {
		c.handleSettingsError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSettingsResponse(output))
}

// Update handles PUT /settings requests.
func (c *SettingsController) Update(ctx *gin.Context) {
	owner, ok := ownerFromContext(ctx)
	if !ok {
		return
	}

	var req dto.UpdateSettingsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeNegativeBudget),
		})
		return
	}

	input := settings.UpdateSettingsInput{
		Owner:         owner,
		Currency:      req.Currency,
		DateFormat:    req.DateFormat,
		MonthlyBudget: req.MonthlyBudget,
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleSettingsError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSettingsResponse(output))
}

// Delete handles DELETE /settings requests. The next read recreates defaults.
func (c *SettingsController) Delete(ctx *gin.Context) {
	owner, ok := ownerFromContext(ctx)
	if !ok {
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), settings.DeleteSettingsInput{Owner: owner}); err != nil {
		c.handleSettingsError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Settings reset to defaults"})
}

// handleSettingsError handles settings errors and returns appropriate HTTP responses.
func (c *SettingsController) handleSettingsError(ctx *gin.Context, err error) {
	var setErr *domainerror.SettingsError
	if errors.As(err, &setErr) {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: setErr.Message,
			Code:  string(setErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}
