// Package store implements the repository ports as JSON documents over the
// key/value port. Collections are read and written whole; malformed stored
// text is treated as "no data" and reads as the empty collection.
package store

import (
	"context"
	"encoding/json"

	"github.com/brightlist/task-system/internal/core/domain"
	"github.com/brightlist/task-system/internal/core/ports"
	"github.com/brightlist/task-system/internal/infrastructure/metrics"
)

const keyAccounts = "accounts"

// AccountRepository persists the registered account list under a single key.
// Passwords are stored as-is here — demo-only storage, per contract.
type AccountRepository struct {
	kv ports.KV
}

func NewAccountRepository(kv ports.KV) *AccountRepository {
	return &AccountRepository{kv: kv}
}

func (r *AccountRepository) Load(ctx context.Context) ([]domain.Account, error) {
	raw, ok, err := r.kv.Get(ctx, keyAccounts)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}

	var accounts []domain.Account
	if err := json.Unmarshal([]byte(raw), &accounts); err != nil {
		metrics.StoreFallbacksTotal.WithLabelValues(keyAccounts).Inc()
		return nil, nil
	}
	return accounts, nil
}

func (r *AccountRepository) Save(ctx context.Context, accounts []domain.Account) error {
	raw, err := json.Marshal(accounts)
	if err != nil {
		return err
	}
	return r.kv.Set(ctx, keyAccounts, string(raw))
}
