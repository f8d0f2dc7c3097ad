package controller

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/hamsacorp/expense-backend/internal/application/usecase/report"
	domainerror "github.com/hamsacorp/expense-backend/internal/domain/error"
	"github.com/hamsacorp/expense-backend/internal/integration/entrypoint/dto"
)

// ReportController handles report endpoints.
type ReportController struct {
	summaryUseCase   *report.GetSummaryUseCase
	dailyUseCase     *report.GetDailyReportUseCase
	monthlyUseCase   *report.GetMonthlyReportUseCase
	yearlyUseCase    *report.GetYearlyReportUseCase
	rangeUseCase     *report.GetRangeReportUseCase
	recurringUseCase *report.DetectRecurringUseCase
}

// NewReportController creates a new report controller instance.
func NewReportController(
	summaryUseCase *report.GetSummaryUseCase,
	dailyUseCase *report.GetDailyReportUseCase,
	monthlyUseCase *report.GetMonthlyReportUseCase,
	yearlyUseCase *report.GetYearlyReportUseCase,
	rangeUseCase *report.GetRangeReportUseCase,
	recurringUseCase *report.DetectRecurringUseCase,
) *ReportController {
	return &ReportController{
		summaryUseCase:   summaryUseCase,
		dailyUseCase:     dailyUseCase,
		monthlyUseCase:   monthlyUseCase,
		yearlyUseCase:    yearlyUseCase,
		rangeUseCase:     rangeUseCase,
		recurringUseCase: recurringUseCase,
	}
}

// Summary handles GET /reports/summary requests.
func (c *ReportController) Summary(ctx *gin.Context) {
	owner, ok := ownerFromContext(ctx)
	if !ok {
		return
	}

	output, err := c.summaryUseCase.Execute(ctx.Request.Context(), report.GetSummaryInput{
		Owner: owner,
		Today: time.Now().UTC(),
	})
	if err != nil {
		c.handleReportError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, output)
}

// Daily handles GET /reports/daily requests. The date defaults to today.
func (c *ReportController) Daily(ctx *gin.Context) {
	owner, ok := ownerFromContext(ctx)
	if !ok {
		return
	}

	date := time.Now().UTC()
	if dateStr := ctx.Query("date"); dateStr != "" {
		parsed, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "date must be in YYYY-MM-DD format",
				Code:  string(domainerror.ErrCodeInvalidDate),
			})
			return
		}
		date = parsed
	}

	output, err := c.dailyUseCase.Execute(ctx.Request.Context(), report.GetDailyReportInput{
		Owner: owner,
		Date:  date,
	})
	if err != nil {
		c.handleReportError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, output)
}

// Monthly handles GET /reports/monthly requests. Year and month default to
// the current calendar month.
func (c *ReportController) Monthly(ctx *gin.Context) {
	owner, ok := ownerFromContext(ctx)
	if !ok {
		return
	}

	now := time.Now().UTC()
	year, err := strconv.Atoi(ctx.DefaultQuery("year", strconv.Itoa(now.Year())))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "year must be a number",
			Code:  string(domainerror.ErrCodeInvalidYear),
		})
		return
	}
	month, err := strconv.Atoi(ctx.DefaultQuery("month", strconv.Itoa(int(now.Month()))))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "month must be a number",
			Code:  string(domainerror.ErrCodeInvalidMonth),
		})
		return
	}

	output, err := c.monthlyUseCase.Execute(ctx.Request.Context(), report.GetMonthlyReportInput{
		Owner: owner,
		Year:  year,
		Month: month,
	})
	if err != nil {
		c.handleReportError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, output)
}

// Yearly handles GET /reports/yearly requests. Year defaults to the current year.
func (c *ReportController) Yearly(ctx *gin.Context) {
	owner, ok := ownerFromContext(ctx)
	if !ok {
		return
	}

	year, err := strconv.Atoi(ctx.DefaultQuery("year", strconv.Itoa(time.Now().UTC().Year())))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "year must be a number",
			Code:  string(domainerror.ErrCodeInvalidYear),
		})
		return
	}

	output, err := c.yearlyUseCase.Execute(ctx.Request.Context(), report.GetYearlyReportInput{
		Owner: owner,
		Year:  year,
	})
	if err != nil {
		c.handleReportError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, output)
}

// Range handles GET /reports/range requests. Both bounds are required.
func (c *ReportController) Range(ctx *gin.Context) {
	owner, ok := ownerFromContext(ctx)
	if !ok {
		return
	}

	startStr := ctx.Query("start_date")
	endStr := ctx.Query("end_date")
	if startStr == "" || endStr == "" {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "start_date and end_date are required",
			Code:  string(domainerror.ErrCodeInvalidDateRange),
		})
		return
	}

	start, err := time.Parse("2006-01-02", startStr)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "start_date must be in YYYY-MM-DD format",
			Code:  string(domainerror.ErrCodeInvalidDate),
		})
		return
	}
	end, err := time.Parse("2006-01-02", endStr)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "end_date must be in YYYY-MM-DD format",
			Code:  string(domainerror.ErrCodeInvalidDate),
		})
		return
	}

	output, err := c.rangeUseCase.Execute(ctx.Request.Context(), report.GetRangeReportInput{
		Owner:     owner,
		StartDate: start,
		EndDate:   end,
	})
	if err != nil {
		c.handleReportError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, output)
}

// RecurringExpenses handles GET /reports/recurring-expenses requests.
func (c *ReportController) RecurringExpenses(ctx *gin.Context) {
	owner, ok := ownerFromContext(ctx)
	if !ok {
		return
	}

	recurring := c.recurringUseCase.Execute(ctx.Request.Context(), report.DetectRecurringInput{
		Owner: owner,
		Today: time.Now().UTC(),
	})

	ctx.JSON(http.StatusOK, gin.H{"recurring_expenses": recurring})
}

// handleReportError handles report errors and returns appropriate HTTP responses.
func (c *ReportController) handleReportError(ctx *gin.Context, err error) {
	var rptErr *domainerror.ReportError
	if errors.As(err, &rptErr) {
		ctx.JSON(c.getStatusCodeForReportError(rptErr.Code), dto.ErrorResponse{
			Error: rptErr.Message,
			Code:  string(rptErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForReportError maps report error codes to HTTP status codes.
func (c *ReportController) getStatusCodeForReportError(code domainerror.ReportErrorCode) int {
	switch code {
	case domainerror.ErrCodeInvalidDate,
		domainerror.ErrCodeInvalidDateRange,
		domainerror.ErrCodeInvalidMonth,
		domainerror.ErrCodeInvalidYear:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
