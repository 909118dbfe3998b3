package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"taskplanner/internal/core/domain"
	"taskplanner/internal/core/ports"
	"taskplanner/internal/core/productivity"
)

// ProductivityService loads one day of tasks and time blocks through the
// reader and scores them. It keeps no state between calls.
type ProductivityService struct {
	reader ports.ProductivityReader
	writer ports.ProductivityWriter
	clock  ports.Clock
}

func NewProductivityService(reader ports.ProductivityReader, writer ports.ProductivityWriter, clock ports.Clock) *ProductivityService {
	return &ProductivityService{reader: reader, writer: writer, clock: clock}
}

type daySnapshot struct {
	window    productivity.Window
	completed []domain.Task
	blocks    []domain.TimeBlock
}

func (s *ProductivityService) load(ctx context.Context, date time.Time, categoryID *uint64) (daySnapshot, error) {
	window := productivity.DayWindow(date)

	tasks, err := s.reader.ListCompletedTasks(ctx, window.Start, window.End, categoryID)
	if err != nil {
		return daySnapshot{}, err
	}
	blocks, err := s.reader.ListTimeBlocksWithin(ctx, window.Start, window.End)
	if err != nil {
		return daySnapshot{}, err
	}

	return daySnapshot{
		window:    window,
		completed: productivity.CompletedWithin(tasks, window, categoryID),
		blocks:    productivity.BlocksWithin(blocks, window),
	}, nil
}

// CalculateDailyScore scores date, optionally restricted to one category.
func (s *ProductivityService) CalculateDailyScore(ctx context.Context, date time.Time, categoryID *uint64) (float64, error) {
	snapshot, err := s.load(ctx, date, categoryID)
	if err != nil {
		return 0, err
	}
	return productivity.DailyScore(snapshot.completed, snapshot.blocks, snapshot.window, categoryID), nil
}

// GetSummary builds the day's summary. Each category score is recomputed with
// the full scoring rule scoped to that category; the uncategorized bucket has
// no filter and so carries the unscoped score. The daily score has its own
// ceiling and is not a sum of category scores.
func (s *ProductivityService) GetSummary(ctx context.Context, date time.Time) (domain.ProductivitySummary, error) {
	snapshot, err := s.load(ctx, date, nil)
	if err != nil {
		return domain.ProductivitySummary{}, err
	}

	owners, err := s.blockOwners(ctx, snapshot.blocks)
	if err != nil {
		return domain.ProductivitySummary{}, err
	}
	buckets := productivity.Buckets(snapshot.completed, snapshot.blocks, func(taskID uint64) (*uint64, bool) {
		categoryID, ok := owners[taskID]
		return categoryID, ok
	})

	categories := make([]domain.CategoryProductivity, 0, len(buckets))
	for _, bucket := range buckets {
		name, err := s.categoryName(ctx, bucket.CategoryID)
		if err != nil {
			return domain.ProductivitySummary{}, err
		}
		categories = append(categories, domain.CategoryProductivity{
			CategoryID:     bucket.CategoryID,
			CategoryName:   name,
			TasksCompleted: bucket.TasksCompleted,
			TimeSpent:      int(bucket.Minutes),
			Score:          productivity.DailyScore(snapshot.completed, snapshot.blocks, snapshot.window, bucket.CategoryID),
		})
	}

	return domain.ProductivitySummary{
		Date:                snapshot.window.Date(),
		DailyScore:          productivity.DailyScore(snapshot.completed, snapshot.blocks, snapshot.window, nil),
		TotalTasksCompleted: len(snapshot.completed),
		TotalTimeSpent:      int(productivity.TotalMinutes(snapshot.blocks)),
		Categories:          categories,
	}, nil
}

// GetCategorySummary returns the category's entry in the day's summary, or a
// zero entry carrying the category name when it had no activity. It fails
// with domain.ErrCategoryNotFound for unknown categories.
func (s *ProductivityService) GetCategorySummary(ctx context.Context, categoryID uint64, date time.Time) (domain.CategoryProductivity, error) {
	category, err := s.reader.GetCategoryByID(ctx, categoryID)
	if err != nil {
		return domain.CategoryProductivity{}, err
	}

	summary, err := s.GetSummary(ctx, date)
	if err != nil {
		return domain.CategoryProductivity{}, err
	}
	for _, entry := range summary.Categories {
		if entry.CategoryID != nil && *entry.CategoryID == categoryID {
			return entry, nil
		}
	}

	return domain.CategoryProductivity{
		CategoryID:   &categoryID,
		CategoryName: category.Name,
	}, nil
}

// UpdateLogs computes the summary for date and upserts one log per bucket,
// keyed by (date, category).
func (s *ProductivityService) UpdateLogs(ctx context.Context, date time.Time) (domain.ProductivitySummary, error) {
	summary, err := s.GetSummary(ctx, date)
	if err != nil {
		return domain.ProductivitySummary{}, err
	}

	now := s.clock.Now()
	for _, entry := range summary.Categories {
		_, err := s.writer.UpsertProductivityLog(ctx, domain.ProductivityLog{
			Date:           summary.Date,
			Score:          entry.Score,
			CategoryID:     entry.CategoryID,
			TasksCompleted: entry.TasksCompleted,
			TimeSpent:      entry.TimeSpent,
		}, now)
		if err != nil {
			return domain.ProductivitySummary{}, err
		}
	}

	zap.L().Info("productivity logs updated",
		zap.Time("date", summary.Date),
		zap.Int("categories", len(summary.Categories)),
		zap.Float64("daily_score", summary.DailyScore),
	)
	return summary, nil
}

func (s *ProductivityService) ListLogs(ctx context.Context, from, to time.Time) ([]domain.ProductivityLog, error) {
	return s.writer.ListProductivityLogs(ctx, productivity.DayWindow(from).Start, productivity.DayWindow(to).Start)
}

// blockOwners maps the task id of each block to that task's category. Tasks
// that no longer exist are absent from the map.
func (s *ProductivityService) blockOwners(ctx context.Context, blocks []domain.TimeBlock) (map[uint64]*uint64, error) {
	seen := make(map[uint64]struct{})
	var ids []uint64
	for _, block := range blocks {
		if block.TaskID == nil {
			continue
		}
		if _, ok := seen[*block.TaskID]; ok {
			continue
		}
		seen[*block.TaskID] = struct{}{}
		ids = append(ids, *block.TaskID)
	}

	owners := make(map[uint64]*uint64, len(ids))
	if len(ids) == 0 {
		return owners, nil
	}

	tasks, err := s.reader.ListTasksByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	for _, task := range tasks {
		owners[task.ID] = task.CategoryID
	}
	return owners, nil
}

func (s *ProductivityService) categoryName(ctx context.Context, categoryID *uint64) (string, error) {
	if categoryID == nil {
		return domain.UncategorizedName, nil
	}
	category, err := s.reader.GetCategoryByID(ctx, *categoryID)
	if errors.Is(err, domain.ErrCategoryNotFound) {
		return domain.UncategorizedName, nil
	}
	if err != nil {
		return "", err
	}
	return category.Name, nil
}

var _ ports.ProductivityService = (*ProductivityService)(nil)
