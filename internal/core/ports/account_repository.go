package ports

import (
	"context"

	"github.com/brightlist/task-system/internal/core/domain"
)

// AccountRepository persists the full registered account list.
//
// The collection is deliberately loaded and saved whole: every mutation is a
// read-modify-write of the entire list, last write wins. Malformed stored
// data loads as an empty list, never as an error.
type AccountRepository interface {
	Load(ctx context.Context) ([]domain.Account, error)
	Save(ctx context.Context, accounts []domain.Account) error
}

// SessionRepository persists the single active session: a sanitized copy of
// the logged-in account, stored independently of the account list.
type SessionRepository interface {
	// Current returns the active account, or ok=false when logged out.
	Current(ctx context.Context) (account domain.Account, ok bool, err error)
	Save(ctx context.Context, account domain.Account) error
	// Clear removes the session. Clearing an absent session is a no-op.
	Clear(ctx context.Context) error
}

// SettingsRepository persists profile-level display preferences.
type SettingsRepository interface {
	Theme(ctx context.Context) (domain.Theme, error)
	SaveTheme(ctx context.Context, theme domain.Theme) error
}
