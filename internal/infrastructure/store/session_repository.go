package store

import (
	"context"
	"encoding/json"

	"github.com/brightlist/task-system/internal/core/domain"
	"github.com/brightlist/task-system/internal/core/ports"
	"github.com/brightlist/task-system/internal/infrastructure/metrics"
)

const keySession = "session"

// SessionRepository persists the single active session independently of the
// account list. Whatever is handed in is sanitized before it is written: the
// session key never holds a password.
type SessionRepository struct {
	kv ports.KV
}

func NewSessionRepository(kv ports.KV) *SessionRepository {
	return &SessionRepository{kv: kv}
}

func (r *SessionRepository) Current(ctx context.Context) (domain.Account, bool, error) {
	raw, ok, err := r.kv.Get(ctx, keySession)
	if err != nil {
		return domain.Account{}, false, err
	}
	if !ok {
		return domain.Account{}, false, nil
	}

	var account domain.Account
	if err := json.Unmarshal([]byte(raw), &account); err != nil {
		metrics.StoreFallbacksTotal.WithLabelValues(keySession).Inc()
		return domain.Account{}, false, nil
	}
	return account, true, nil
}

func (r *SessionRepository) Save(ctx context.Context, account domain.Account) error {
	raw, err := json.Marshal(account.Sanitized())
	if err != nil {
		return err
	}
	return r.kv.Set(ctx, keySession, string(raw))
}

func (r *SessionRepository) Clear(ctx context.Context) error {
	return r.kv.Delete(ctx, keySession)
}
