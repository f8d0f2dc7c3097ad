package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hamsacorp/expense-backend/internal/application/usecase/auth"
	domainerror "github.com/hamsacorp/expense-backend/internal/domain/error"
	"github.com/hamsacorp/expense-backend/internal/integration/entrypoint/dto"
	"github.com/hamsacorp/expense-backend/internal/integration/entrypoint/middleware"
)

// UserController handles user endpoints.
type UserController struct {
	checkEmailUseCase *auth.CheckEmailUseCase
}

// NewUserController creates a new user controller instance.
func NewUserController(checkEmailUseCase *auth.CheckEmailUseCase) *UserController {
	return &UserController{
		checkEmailUseCase: checkEmailUseCase,
	}
}

// Me handles GET /user/me requests. It echoes the authenticated identity from
// the validated token, no database round trip.
func (c *UserController) Me(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	email, _ := middleware.GetUserEmailFromContext(ctx)

	ctx.JSON(http.StatusOK, gin.H{
		"id":    userID.String(),
		"email": email,
	})
}

// Exists handles GET /user/exists requests.
func (c *UserController) Exists(ctx *gin.Context) {
	email := ctx.Query("email")
	if email == "" {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "email is required",
			Code:  string(domainerror.ErrCodeInvalidEmail),
		})
		return
	}

	output, err := c.checkEmailUseCase.Execute(ctx.Request.Context(), auth.CheckEmailInput{Email: email})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "An internal error occurred",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.UserExistsResponse{Exists: output.Exists})
}
