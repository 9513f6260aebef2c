package repository

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

const settingsKeyPrefix = "usersettings:"

// Settings mirrors the client-side display preferences, kept server-side per
// user so they follow the account across devices.
type Settings struct {
	Currency string `json:"currency" redis:"currency"`
	Locale   string `json:"locale" redis:"locale"`
}

// SettingsRepository manages per-user display preferences.
type SettingsRepository interface {
	Get(ctx context.Context, userID string) (Settings, error)
	Save(ctx context.Context, userID string, settings Settings) error
}

type settingsRepository struct {
	client *redis.Client
}

// NewSettingsRepository returns a Redis-backed implementation.
func NewSettingsRepository(client *redis.Client) SettingsRepository {
	return &settingsRepository{client: client}
}

func (r *settingsRepository) Get(ctx context.Context, userID string) (Settings, error) {
	values, err := r.client.HGetAll(ctx, settingsKeyPrefix+userID).Result()
	if err != nil {
		return Settings{}, fmt.Errorf("redis get settings: %w", err)
	}
	settings := Settings{Currency: values["currency"], Locale: values["locale"]}
	return settings, nil
}

func (r *settingsRepository) Save(ctx context.Context, userID string, settings Settings) error {
	return r.client.HSet(ctx, settingsKeyPrefix+userID,
		"currency", settings.Currency,
		"locale", settings.Locale,
	).Err()
}
