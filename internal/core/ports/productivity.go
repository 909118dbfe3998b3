package ports

import (
	"context"
	"time"

	"taskplanner/internal/core/domain"
)

// ProductivityReader is the read side the productivity engine needs. Range
// arguments are inclusive on both ends.
type ProductivityReader interface {
	ListCompletedTasks(ctx context.Context, from, to time.Time, categoryID *uint64) ([]domain.Task, error)
	ListTimeBlocksWithin(ctx context.Context, from, to time.Time) ([]domain.TimeBlock, error)
	ListTasksByIDs(ctx context.Context, taskIDs []uint64) ([]domain.Task, error)
	GetCategoryByID(ctx context.Context, categoryID uint64) (domain.Category, error)
}

// ProductivityWriter persists log snapshots. UpsertProductivityLog must
// update the row for (Date, CategoryID) when one exists and insert otherwise,
// atomically for that key.
type ProductivityWriter interface {
	UpsertProductivityLog(ctx context.Context, log domain.ProductivityLog, now time.Time) (domain.ProductivityLog, error)
	ListProductivityLogs(ctx context.Context, from, to time.Time) ([]domain.ProductivityLog, error)
}

type ProductivityService interface {
	CalculateDailyScore(ctx context.Context, date time.Time, categoryID *uint64) (float64, error)
	GetSummary(ctx context.Context, date time.Time) (domain.ProductivitySummary, error)
	GetCategorySummary(ctx context.Context, categoryID uint64, date time.Time) (domain.CategoryProductivity, error)
	UpdateLogs(ctx context.Context, date time.Time) (domain.ProductivitySummary, error)
	ListLogs(ctx context.Context, from, to time.Time) ([]domain.ProductivityLog, error)
}
