package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"volunmatch-backend/internal/domain"
	"volunmatch-backend/internal/service"
)

func TestSettingsService_GetMatchSettings(t *testing.T) {
	ctx := context.Background()

	t.Run("Falls back to defaults when unset", func(t *testing.T) {
		settingRepo := new(MockSettingRepo)
		svc := service.NewSettingsService(settingRepo)

		settingRepo.On("GetMatchSettings", ctx).Return(nil, nil)

		settings, err := svc.GetMatchSettings(ctx)
		assert.NoError(t, err)
		assert.Equal(t, domain.DefaultMatchSettings(), settings)
		settingRepo.AssertNotCalled(t, "SaveMatchSettings", ctx, settings)
	})

	t.Run("Returns stored settings", func(t *testing.T) {
		settingRepo := new(MockSettingRepo)
		svc := service.NewSettingsService(settingRepo)

		stored := &domain.MatchSettings{
			Threshold: 75,
			Weights: domain.MatchWeights{
				Skills:       0.5,
				Availability: 0.2,
				Language:     0.1,
				Modality:     0.1,
				Causes:       0.1,
			},
		}
		settingRepo.On("GetMatchSettings", ctx).Return(stored, nil)

		settings, err := svc.GetMatchSettings(ctx)
		assert.NoError(t, err)
		assert.Equal(t, stored, settings)
	})
}

func TestSettingsService_SaveMatchSettings(t *testing.T) {
	ctx := context.Background()
	settingRepo := new(MockSettingRepo)
	svc := service.NewSettingsService(settingRepo)

	settings := domain.DefaultMatchSettings()
	settings.Threshold = 70
	settingRepo.On("SaveMatchSettings", ctx, settings).Return(nil)

	err := svc.SaveMatchSettings(ctx, settings)
	assert.NoError(t, err)
	settingRepo.AssertExpectations(t)
}
