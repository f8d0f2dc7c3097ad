package adapters

import (
	"errors"
	"testing"

	domainerror "github.com/hamsacorp/expense-backend/internal/domain/error"
)

func TestPasswordService(t *testing.T) {
	service := NewPasswordService()

	// Test a hashed password verifies and the hash is not the plain text.
	t.Run("hashes and verifies a password", func(t *testing.T) {
		hash, err := service.HashPassword("correct horse battery staple")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if hash == "correct horse battery staple" {
			t.Fatal("expected the hash to differ from the plain text")
		}

		if err := service.VerifyPassword(hash, "correct horse battery staple"); err != nil {
			t.Errorf("expected verification to pass, got %v", err)
		}
	})

	// Test a wrong password fails verification.
	t.Run("rejects a wrong password", func(t *testing.T) {
		hash, err := service.HashPassword("correct horse battery staple")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		if err := service.VerifyPassword(hash, "wrong"); err == nil {
			t.Error("expected verification to fail")
		}
	})

	// Test the same password hashes to different values each time.
	t.Run("salts each hash", func(t *testing.T) {
		first, err := service.HashPassword("correct horse battery staple")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		second, err := service.HashPassword("correct horse battery staple")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		if first == second {
			t.Error("expected distinct salted hashes")
		}
	})

	// Test the strength rule on the length boundary.
	t.Run("enforces the minimum length", func(t *testing.T) {
		if err := service.ValidatePasswordStrength("1234567"); !errors.Is(err, domainerror.ErrWeakPassword) {
			t.Errorf("expected ErrWeakPassword, got %v", err)
		}
		if err := service.ValidatePasswordStrength("12345678"); err != nil {
			t.Errorf("expected an 8-character password to pass, got %v", err)
		}
	})
}
