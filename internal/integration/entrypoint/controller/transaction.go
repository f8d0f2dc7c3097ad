package controller

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/hamsacorp/expense-backend/internal/application/usecase/transaction"
	"github.com/hamsacorp/expense-backend/internal/domain/entity"
	domainerror "github.com/hamsacorp/expense-backend/internal/domain/error"
	"github.com/hamsacorp/expense-backend/internal/integration/entrypoint/dto"
	"github.com/hamsacorp/expense-backend/internal/integration/entrypoint/middleware"
)

// TransactionController handles transaction endpoints.
type TransactionController struct {
	createUseCase *transaction.CreateTransactionUseCase
	updateUseCase *transaction.UpdateTransactionUseCase
	deleteUseCase *transaction.DeleteTransactionUseCase
	listUseCase   *transaction.ListTransactionsUseCase
}

// NewTransactionController creates a new transaction controller instance.
func NewTransactionController(
	createUseCase *transaction.CreateTransactionUseCase,
	updateUseCase *transaction.UpdateTransactionUseCase,
	deleteUseCase *transaction.DeleteTransactionUseCase,
	listUseCase *transaction.ListTransactionsUseCase,
) *TransactionController {
	return &TransactionController{
		createUseCase: createUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
		listUseCase:   listUseCase,
	}
}

// Create handles POST /expenses requests.
func (c *TransactionController) Create(ctx *gin.Context) {
	owner, ok := ownerFromContext(ctx)
	if !ok {
		return
	}

	var req dto.CreateTransactionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingDescription),
		})
		return
	}

	occurredOn, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "date must be in YYYY-MM-DD format",
			Code:  string(domainerror.ErrCodeInvalidDate),
		})
		return
	}

	input := transaction.CreateTransactionInput{
		Owner:         owner,
		Kind:          entity.TransactionKind(req.Kind),
		Description:   req.Description,
		Amount:        req.Amount,
		OccurredOn:    occurredOn,
		Category:      req.Category,
		PaymentMethod: req.PaymentMethod,
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleTransactionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToTransactionResponse(output.Transaction))
}

// Update handles PUT /expenses/:id requests.
func (c *TransactionController) Update(ctx *gin.Context) {
	owner, ok := ownerFromContext(ctx)
	if !ok {
		return
	}

	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid transaction ID",
			Code:  string(domainerror.ErrCodeTransactionNotFound),
		})
		return
	}

	var req dto.UpdateTransactionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingDescription),
		})
		return
	}

	occurredOn, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "date must be in YYYY-MM-DD format",
			Code:  string(domainerror.ErrCodeInvalidDate),
		})
		return
	}

	input := transaction.UpdateTransactionInput{
		ID:            id,
		Owner:         owner,
		Kind:          entity.TransactionKind(req.Kind),
		Description:   req.Description,
		Amount:        req.Amount,
		OccurredOn:    occurredOn,
		Category:      req.Category,
		PaymentMethod: req.PaymentMethod,
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleTransactionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTransactionResponse(output.Transaction))
}

// Delete handles DELETE /expenses/:id requests.
func (c *TransactionController) Delete(ctx *gin.Context) {
	owner, ok := ownerFromContext(ctx)
	if !ok {
		return
	}

	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid transaction ID",
			Code:  string(domainerror.ErrCodeTransactionNotFound),
		})
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), transaction.DeleteTransactionInput{
		ID:    id,
		Owner: owner,
	}); err != nil {
		c.handleTransactionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Transaction deleted"})
}

// List handles GET /expenses requests.
func (c *TransactionController) List(ctx *gin.Context) {
	owner, ok := ownerFromContext(ctx)
	if !ok {
		return
	}

	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "20"))

	input := transaction.ListTransactionsInput{
		Owner: owner,
		Page:  page,
		Limit: limit,
	}

	if startStr := ctx.Query("start_date"); startStr != "" {
		start, err := time.Parse("2006-01-02", startStr)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "start_date must be in YYYY-MM-DD format",
				Code:  string(domainerror.ErrCodeInvalidDate),
			})
			return
		}
		input.StartDate = &start
	}

	if endStr := ctx.Query("end_date"); endStr != "" {
		end, err := time.Parse("2006-01-02", endStr)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "end_date must be in YYYY-MM-DD format",
				Code:  string(domainerror.ErrCodeInvalidDate),
			})
			return
		}
		input.EndDate = &end
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleTransactionError(ctx, err)
		return
	}

	transactions := make([]dto.TransactionResponse, 0, len(output.Transactions))
	for _, t := range output.Transactions {
		transactions = append(transactions, dto.ToTransactionResponse(t))
	}

	ctx.JSON(http.StatusOK, dto.TransactionListResponse{
		Transactions: transactions,
		Pagination: dto.PaginationResponse{
			Page:       output.Pagination.Page,
			Limit:      output.Pagination.Limit,
			Total:      output.Pagination.Total,
			TotalPages: output.Pagination.TotalPages,
		},
	})
}

// handleTransactionError handles transaction errors and returns appropriate HTTP responses.
func (c *TransactionController) handleTransactionError(ctx *gin.Context, err error) {
	var txnErr *domainerror.TransactionError
	if errors.As(err, &txnErr) {
		ctx.JSON(c.getStatusCodeForTransactionError(txnErr.Code), dto.ErrorResponse{
			Error: txnErr.Message,
			Code:  string(txnErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForTransactionError maps transaction error codes to HTTP status codes.
func (c *TransactionController) getStatusCodeForTransactionError(code domainerror.TransactionErrorCode) int {
	switch code {
	case domainerror.ErrCodeInvalidTransactionKind,
		domainerror.ErrCodeNegativeAmount,
		domainerror.ErrCodeMissingDescription,
		domainerror.ErrCodeDescriptionTooLong,
		domainerror.ErrCodeMissingCategory:
		return http.StatusBadRequest
	case domainerror.ErrCodeTransactionNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeTransactionNotOwned:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

// ownerFromContext resolves the authenticated owner (email) or writes a 401.
func ownerFromContext(ctx *gin.Context) (string, bool) {
	email, ok := middleware.GetUserEmailFromContext(ctx)
	if !ok || email == "" {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return "", false
	}
	return email, true
}
