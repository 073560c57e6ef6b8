package ports

import (
	"context"

	"github.com/brightlist/task-system/internal/core/domain"
)

// SignupInput carries the data needed to register a new account.
type SignupInput struct {
	Name     string `validate:"required"`
	Email    string `validate:"required,email"`
	Password string `validate:"required"`
}

// AccountService manages registration, login, and the active session.
// Every account it returns is sanitized (password cleared).
type AccountService interface {
	Signup(ctx context.Context, input SignupInput) (*domain.Account, error)
	Login(ctx context.Context, email, password string) (*domain.Account, error)
	// Logout clears the active session; logging out twice is a no-op.
	Logout(ctx context.Context) error
	// CurrentSession returns the active account, or nil when logged out.
	CurrentSession(ctx context.Context) (*domain.Account, error)
}
