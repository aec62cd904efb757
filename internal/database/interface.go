package database

import (
	"context"
	"time"

	"github.com/lwaidler/tourneyclock/internal/models"
)

// SettingsRepository defines key-value settings operations.
type SettingsRepository interface {
	GetSetting(ctx context.Context, key string) (string, bool)
	SetSetting(ctx context.Context, key, value string) error
}

// HistoryRepository defines countdown run bookkeeping.
type HistoryRepository interface {
	AddRun(ctx context.Context, run models.CountdownRun) (int64, error)
	FinishRun(ctx context.Context, id int64, outcome models.RunOutcome, endedAt time.Time) error
	GetRunsForDay(ctx context.Context, day time.Time) ([]models.CountdownRun, error)
}

// Repository combines all repository interfaces.
type Repository interface {
	SettingsRepository
	HistoryRepository
}

var _ Repository = (*Database)(nil)
