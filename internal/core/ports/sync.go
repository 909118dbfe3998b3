package ports

import (
	"context"
	"time"

	"taskplanner/internal/core/domain"
)

type SyncService interface {
	Tasks(ctx context.Context, modifiedSince *time.Time) ([]domain.Task, error)
	Categories(ctx context.Context, modifiedSince *time.Time) ([]domain.Category, error)
	TimeBlocks(ctx context.Context, modifiedSince *time.Time) ([]domain.TimeBlock, error)
}

type ReminderService interface {
	NextReminder(ctx context.Context) (*domain.Task, error)
}
