package store

import (
	"context"
	"fmt"

	"github.com/brightlist/task-system/internal/core/domain"
	"github.com/brightlist/task-system/internal/core/ports"
)

const keyTheme = "theme"

// SettingsRepository persists display preferences. The theme is stored as a
// bare string, not JSON; unknown stored values read as the light default.
type SettingsRepository struct {
	kv ports.KV
}

func NewSettingsRepository(kv ports.KV) *SettingsRepository {
	return &SettingsRepository{kv: kv}
}

func (r *SettingsRepository) Theme(ctx context.Context) (domain.Theme, error) {
	raw, ok, err := r.kv.Get(ctx, keyTheme)
	if err != nil {
		return domain.ThemeLight, err
	}
	theme := domain.Theme(raw)
	if !ok || !theme.Valid() {
		return domain.ThemeLight, nil
	}
	return theme, nil
}

func (r *SettingsRepository) SaveTheme(ctx context.Context, theme domain.Theme) error {
	if !theme.Valid() {
		return fmt.Errorf("%w: unknown theme %q", domain.ErrValidation, theme)
	}
	return r.kv.Set(ctx, keyTheme, string(theme))
}
