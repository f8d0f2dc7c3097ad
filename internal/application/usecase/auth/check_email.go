package auth

import (
	"context"
	"fmt"
	"strings"

	"github.com/hamsacorp/expense-backend/internal/application/adapter"
)

// CheckEmailInput represents the input for an email existence check.
type CheckEmailInput struct {
	Email string
}

// CheckEmailOutput represents the output of an email existence check.
type CheckEmailOutput struct {
	Exists bool
}

// CheckEmailUseCase reports whether an account exists for an email. It backs
// the pre-registration check on the signup form.
type CheckEmailUseCase struct {
	userRepo adapter.UserRepository
}

// NewCheckEmailUseCase creates a new CheckEmailUseCase instance.
func NewCheckEmailUseCase(userRepo adapter.UserRepository) *CheckEmailUseCase {
	return &CheckEmailUseCase{
		userRepo: userRepo,
	}
}

// Execute performs the email existence check.
func (uc *CheckEmailUseCase) Execute(ctx context.Context, input CheckEmailInput) (*CheckEmailOutput, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))

	exists, err := uc.userRepo.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to check email existence: %w", err)
	}

	return &CheckEmailOutput{Exists: exists}, nil
}
