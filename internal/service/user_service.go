package service

import (
	"context"
	"strings"

	"github.com/luxeride/rental-service/internal/domain"
	"github.com/luxeride/rental-service/internal/repository"
	apperrors "github.com/luxeride/rental-service/pkg/util"
)

// Supported display preferences. The client renders prices and dates with
// these; anything else is rejected.
var (
	supportedCurrencies = map[string]struct{}{
		"USD": {}, "EUR": {}, "GBP": {}, "AED": {}, "CHF": {},
	}
	supportedLocales = map[string]struct{}{
		"en-US": {}, "en-GB": {}, "de-DE": {}, "fr-FR": {}, "ar-AE": {},
	}
)

const (
	defaultCurrency = "USD"
	defaultLocale   = "en-US"
)

// UserService manages profile and display preferences.
type UserService struct {
	users    repository.UserRepository
	settings repository.SettingsRepository
}

// NewUserService constructs the service.
func NewUserService(users repository.UserRepository, settings repository.SettingsRepository) *UserService {
	return &UserService{users: users, settings: settings}
}

// GetProfile returns the account's profile.
func (s *UserService) GetProfile(ctx context.Context, userID string) (*domain.User, error) {
	return s.users.GetByID(ctx, userID)
}

// UpdateProfile changes name and phone.
func (s *UserService) UpdateProfile(ctx context.Context, userID, name, phone string) (*domain.User, error) {
	if strings.TrimSpace(name) == "" {
		return nil, apperrors.NewValidationError("name required", nil)
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	user.Name = name
	user.Phone = phone
	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// GetSettings returns the user's display preferences, defaulted when unset.
func (s *UserService) GetSettings(ctx context.Context, userID string) (repository.Settings, error) {
	settings, err := s.settings.Get(ctx, userID)
	if err != nil {
		return repository.Settings{}, err
	}
	if settings.Currency == "" {
		settings.Currency = defaultCurrency
	}
	if settings.Locale == "" {
		settings.Locale = defaultLocale
	}
	return settings, nil
}

// UpdateSettings validates and stores display preferences.
func (s *UserService) UpdateSettings(ctx context.Context, userID string, settings repository.Settings) error {
	if _, ok := supportedCurrencies[settings.Currency]; !ok {
		return apperrors.NewValidationError("unsupported currency", map[string]any{"currency": settings.Currency})
	}
	if _, ok := supportedLocales[settings.Locale]; !ok {
		return apperrors.NewValidationError("unsupported locale", map[string]any{"locale": settings.Locale})
	}
	return s.settings.Save(ctx, userID, settings)
}
