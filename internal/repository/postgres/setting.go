package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"volunmatch-backend/internal/domain"
	"volunmatch-backend/internal/repository"
)

// settingsKey identifies the singleton matching-settings row in the
// key/value settings table.
const settingsKey = "match-settings"

type settingRepository struct {
	db *sql.DB
}

func NewSettingRepository(db *sql.DB) repository.SettingRepository {
	return &settingRepository{db: db}
}

func (r *settingRepository) GetMatchSettings(ctx context.Context) (*domain.MatchSettings, error) {
	var raw []byte
	query := `SELECT value FROM settings WHERE key = $1`
	err := r.db.QueryRowContext(ctx, query, settingsKey).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	settings := &domain.MatchSettings{}
	if err := json.Unmarshal(raw, settings); err != nil {
		return nil, fmt.Errorf("failed to decode match settings: %w", err)
	}
	return settings, nil
}

func (r *settingRepository) SaveMatchSettings(ctx context.Context, settings *domain.MatchSettings) error {
	raw, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("failed to encode match settings: %w", err)
	}
	query := `INSERT INTO settings (key, value) VALUES ($1, $2)
	          ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value`
	_, err = r.db.ExecContext(ctx, query, settingsKey, raw)
	return err
}
