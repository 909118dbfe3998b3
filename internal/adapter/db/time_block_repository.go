package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"taskplanner/internal/core/domain"
	"taskplanner/internal/core/ports"
)

const selectTimeBlockColumns = `
SELECT id, task_id, start_time, end_time, title, description, created_at, updated_at
FROM time_blocks
`

type TimeBlockRepository struct {
	db *sqlx.DB
}

type timeBlockRow struct {
	ID          uint64         `db:"id"`
	TaskID      sql.NullInt64  `db:"task_id"`
	StartTime   time.Time      `db:"start_time"`
	EndTime     time.Time      `db:"end_time"`
	Title       sql.NullString `db:"title"`
	Description sql.NullString `db:"description"`
	CreatedAt   time.Time      `db:"created_at"`
	UpdatedAt   time.Time      `db:"updated_at"`
}

var _ ports.TimeBlockRepository = (*TimeBlockRepository)(nil)

func NewTimeBlockRepository(db *sqlx.DB) *TimeBlockRepository {
	return &TimeBlockRepository{db: db}
}

func (r *TimeBlockRepository) CreateTimeBlock(ctx context.Context, input domain.CreateTimeBlockInput, now time.Time) (domain.TimeBlock, error) {
	now = now.UTC()
	result, err := r.db.ExecContext(ctx,
		"INSERT INTO time_blocks (task_id, start_time, end_time, title, description, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?, ?)",
		nullIDPtr(input.TaskID), input.StartTime.UTC(), input.EndTime.UTC(),
		nullStringPtr(input.Title), nullStringPtr(input.Description), now, now,
	)
	if err != nil {
		return domain.TimeBlock{}, fmt.Errorf("insert time block: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return domain.TimeBlock{}, fmt.Errorf("insert time block: %w", err)
	}
	return r.GetTimeBlockByID(ctx, uint64(id))
}

// ListTimeBlocks filters on task and on blocks starting at or after StartDate
// and ending at or before EndDate.
func (r *TimeBlockRepository) ListTimeBlocks(ctx context.Context, filter domain.TimeBlockFilter) ([]domain.TimeBlock, error) {
	var (
		where []string
		args  []any
	)
	if filter.TaskID != nil {
		where = append(where, "task_id = ?")
		args = append(args, *filter.TaskID)
	}
	if filter.StartDate != nil {
		where = append(where, "start_time >= ?")
		args = append(args, filter.StartDate.UTC())
	}
	if filter.EndDate != nil {
		where = append(where, "end_time <= ?")
		args = append(args, filter.EndDate.UTC())
	}

	query := selectTimeBlockColumns
	if len(where) > 0 {
		query += "WHERE " + strings.Join(where, " AND ") + "\n"
	}
	query += "ORDER BY start_time, id\n"
	query, args = paginate(query, args, filter.Skip, filter.Limit)

	return selectTimeBlocks(ctx, r.db, query, args...)
}

func (r *TimeBlockRepository) GetTimeBlockByID(ctx context.Context, blockID uint64) (domain.TimeBlock, error) {
	var row timeBlockRow
	err := r.db.GetContext(ctx, &row, selectTimeBlockColumns+"WHERE id = ?", blockID)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.TimeBlock{}, domain.ErrTimeBlockNotFound
	}
	if err != nil {
		return domain.TimeBlock{}, fmt.Errorf("get time block %d: %w", blockID, err)
	}
	return mapTimeBlockRowToDomainTimeBlock(row), nil
}

func (r *TimeBlockRepository) UpdateTimeBlock(ctx context.Context, block domain.TimeBlock) (domain.TimeBlock, error) {
	result, err := r.db.ExecContext(ctx,
		"UPDATE time_blocks SET task_id = ?, start_time = ?, end_time = ?, title = ?, description = ?, updated_at = ? WHERE id = ?",
		nullIDPtr(block.TaskID), block.StartTime.UTC(), block.EndTime.UTC(),
		nullStringPtr(block.Title), nullStringPtr(block.Description), block.UpdatedAt.UTC(), block.ID,
	)
	if err != nil {
		return domain.TimeBlock{}, fmt.Errorf("update time block %d: %w", block.ID, err)
	}
	if err := expectAffected(result, domain.ErrTimeBlockNotFound); err != nil {
		return domain.TimeBlock{}, err
	}
	return r.GetTimeBlockByID(ctx, block.ID)
}

func (r *TimeBlockRepository) DeleteTimeBlock(ctx context.Context, blockID uint64) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM time_blocks WHERE id = ?", blockID)
	if err != nil {
		return fmt.Errorf("delete time block %d: %w", blockID, err)
	}
	return expectAffected(result, domain.ErrTimeBlockNotFound)
}

func (r *TimeBlockRepository) ListTimeBlocksModifiedSince(ctx context.Context, since *time.Time) ([]domain.TimeBlock, error) {
	if since == nil {
		return selectTimeBlocks(ctx, r.db, selectTimeBlockColumns+"ORDER BY updated_at, id")
	}
	return selectTimeBlocks(ctx, r.db, selectTimeBlockColumns+"WHERE updated_at > ? ORDER BY updated_at, id", since.UTC())
}

func selectTimeBlocks(ctx context.Context, q sqlx.QueryerContext, query string, args ...any) ([]domain.TimeBlock, error) {
	var rows []timeBlockRow
	if err := sqlx.SelectContext(ctx, q, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select time blocks: %w", err)
	}

	blocks := make([]domain.TimeBlock, 0, len(rows))
	for _, row := range rows {
		blocks = append(blocks, mapTimeBlockRowToDomainTimeBlock(row))
	}
	return blocks, nil
}

func mapTimeBlockRowToDomainTimeBlock(row timeBlockRow) domain.TimeBlock {
	return domain.TimeBlock{
		ID:          row.ID,
		TaskID:      idPtr(row.TaskID),
		StartTime:   row.StartTime.UTC(),
		EndTime:     row.EndTime.UTC(),
		Title:       stringPtr(row.Title),
		Description: stringPtr(row.Description),
		CreatedAt:   row.CreatedAt.UTC(),
		UpdatedAt:   row.UpdatedAt.UTC(),
	}
}
