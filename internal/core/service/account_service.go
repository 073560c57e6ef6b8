package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/brightlist/task-system/internal/core/domain"
	"github.com/brightlist/task-system/internal/core/ports"
)

// AccountService implements signup, login, logout, and session restore over
// the persisted account list.
type AccountService struct {
	accounts ports.AccountRepository
	sessions ports.SessionRepository
	validate *structValidator
	log      zerolog.Logger
}

func NewAccountService(accounts ports.AccountRepository, sessions ports.SessionRepository, log zerolog.Logger) *AccountService {
	return &AccountService{
		accounts: accounts,
		sessions: sessions,
		validate: newStructValidator(),
		log:      log,
	}
}

// Signup registers a new account and establishes it as the active session.
// Email uniqueness is enforced case-insensitively against the stored list.
func (s *AccountService) Signup(ctx context.Context, input ports.SignupInput) (*domain.Account, error) {
	input.Name = strings.TrimSpace(input.Name)
	input.Email = strings.TrimSpace(input.Email)
	if err := s.validate.Struct(input); err != nil {
		return nil, err
	}

	list, err := s.accounts.Load(ctx)
	if err != nil {
		return nil, err
	}
	for _, a := range list {
		if strings.EqualFold(a.Email, input.Email) {
			return nil, domain.ErrDuplicateEmail
		}
	}

	account := domain.Account{
		ID:        uuid.NewString(),
		Name:      input.Name,
		Email:     input.Email,
		Password:  input.Password,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.accounts.Save(ctx, append(list, account)); err != nil {
		return nil, err
	}

	safe := account.Sanitized()
	if err := s.sessions.Save(ctx, safe); err != nil {
		return nil, err
	}

	s.log.Info().Str("account_id", account.ID).Msg("account registered")
	return &safe, nil
}

// Login establishes the matching account as the active session. The email is
// matched case-insensitively, the password exactly.
func (s *AccountService) Login(ctx context.Context, email, password string) (*domain.Account, error) {
	list, err := s.accounts.Load(ctx)
	if err != nil {
		return nil, err
	}

	for _, a := range list {
		if !strings.EqualFold(a.Email, strings.TrimSpace(email)) {
			continue
		}
		if a.Password != password {
			return nil, domain.ErrInvalidCredentials
		}
		safe := a.Sanitized()
		if err := s.sessions.Save(ctx, safe); err != nil {
			return nil, err
		}
		s.log.Info().Str("account_id", a.ID).Msg("login")
		return &safe, nil
	}

	return nil, domain.ErrInvalidCredentials
}

// Logout clears the active session. Logging out while logged out is a no-op.
func (s *AccountService) Logout(ctx context.Context) error {
	if err := s.sessions.Clear(ctx); err != nil {
		return err
	}
	s.log.Debug().Msg("logout")
	return nil
}

// CurrentSession returns the sanitized active account, or nil when logged out.
func (s *AccountService) CurrentSession(ctx context.Context) (*domain.Account, error) {
	account, ok, err := s.sessions.Current(ctx)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	safe := account.Sanitized()
	return &safe, nil
}
