package service

import (
	"context"

	"volunmatch-backend/internal/domain"
	"volunmatch-backend/internal/repository"
)

type settingsService struct {
	settingRepo repository.SettingRepository
}

func NewSettingsService(settingRepo repository.SettingRepository) SettingsService {
	return &settingsService{settingRepo: settingRepo}
}

// GetMatchSettings returns the stored settings, falling back to the
// compiled-in defaults when nothing has been saved. The fallback is never
// persisted.
func (s *settingsService) GetMatchSettings(ctx context.Context) (*domain.MatchSettings, error) {
	settings, err := s.settingRepo.GetMatchSettings(ctx)
	if err != nil {
		return nil, err
	}
	if settings == nil {
		return domain.DefaultMatchSettings(), nil
	}
	return settings, nil
}

// SaveMatchSettings upserts the singleton record wholesale. Schema checks
// (threshold range, numeric weights) are the caller's responsibility.
func (s *settingsService) SaveMatchSettings(ctx context.Context, settings *domain.MatchSettings) error {
	return s.settingRepo.SaveMatchSettings(ctx, settings)
}
