package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"taskplanner/internal/config"
	"taskplanner/internal/core/domain"
	"taskplanner/internal/core/ports"
)

const selectProductivityLogColumns = `
SELECT id, date, score, category_id, tasks_completed, time_spent, created_at, updated_at
FROM productivity_logs
`

// ProductivityRepository serves both sides of the productivity engine: the
// day snapshot it reads and the logs it writes.
type ProductivityRepository struct {
	db *sqlx.DB
}

type productivityLogRow struct {
	ID             uint64        `db:"id"`
	Date           time.Time     `db:"date"`
	Score          float64       `db:"score"`
	CategoryID     sql.NullInt64 `db:"category_id"`
	TasksCompleted int           `db:"tasks_completed"`
	TimeSpent      int           `db:"time_spent"`
	CreatedAt      time.Time     `db:"created_at"`
	UpdatedAt      time.Time     `db:"updated_at"`
}

var (
	_ ports.ProductivityReader = (*ProductivityRepository)(nil)
	_ ports.ProductivityWriter = (*ProductivityRepository)(nil)
)

func NewProductivityRepository(db *sqlx.DB) *ProductivityRepository {
	return &ProductivityRepository{db: db}
}

// ListCompletedTasks narrows on completion time in SQL; callers re-check the
// exact window since stored timestamp text only compares coarsely.
func (r *ProductivityRepository) ListCompletedTasks(ctx context.Context, from, to time.Time, categoryID *uint64) ([]domain.Task, error) {
	query := selectTaskColumns + `
WHERE t.is_completed = 1
  AND t.completed_at IS NOT NULL
  AND t.completed_at >= ?
  AND t.completed_at < ?
`
	args := []any{from.UTC().Add(-time.Second), to.UTC().Add(time.Second)}
	if categoryID != nil {
		query += "  AND t.category_id = ?\n"
		args = append(args, *categoryID)
	}
	query += "ORDER BY t.completed_at, t.id"

	return selectTasks(ctx, r.db, query, args...)
}

func (r *ProductivityRepository) ListTimeBlocksWithin(ctx context.Context, from, to time.Time) ([]domain.TimeBlock, error) {
	return selectTimeBlocks(ctx, r.db,
		selectTimeBlockColumns+"WHERE start_time >= ? AND end_time < ? ORDER BY start_time, id",
		from.UTC().Add(-time.Second), to.UTC().Add(time.Second),
	)
}

func (r *ProductivityRepository) ListTasksByIDs(ctx context.Context, taskIDs []uint64) ([]domain.Task, error) {
	if len(taskIDs) == 0 {
		return []domain.Task{}, nil
	}
	query, args, err := sqlx.In(selectTaskColumns+"WHERE t.id IN (?) ORDER BY t.id", taskIDs)
	if err != nil {
		return nil, fmt.Errorf("build task id query: %w", err)
	}
	return selectTasks(ctx, r.db, r.db.Rebind(query), args...)
}

func (r *ProductivityRepository) GetCategoryByID(ctx context.Context, categoryID uint64) (domain.Category, error) {
	return getCategoryByID(ctx, r.db, categoryID)
}

// UpsertProductivityLog updates the log for (date, category) or inserts it.
// The unique (date, category) key rejects a second insert for the same key;
// the writer that loses that race retries once and updates the winner's row.
func (r *ProductivityRepository) UpsertProductivityLog(ctx context.Context, log domain.ProductivityLog, now time.Time) (domain.ProductivityLog, error) {
	saved, err := r.upsertProductivityLog(ctx, log, now)
	if isDuplicateKey(err) {
		return r.upsertProductivityLog(ctx, log, now)
	}
	return saved, err
}

func (r *ProductivityRepository) upsertProductivityLog(ctx context.Context, log domain.ProductivityLog, now time.Time) (domain.ProductivityLog, error) {
	now = now.UTC()
	date := log.Date.UTC()

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return domain.ProductivityLog{}, err
	}
	defer func() { _ = tx.Rollback() }()

	keyQuery := "SELECT id FROM productivity_logs WHERE date = ? AND category_id IS NULL"
	keyArgs := []any{date}
	if log.CategoryID != nil {
		keyQuery = "SELECT id FROM productivity_logs WHERE date = ? AND category_id = ?"
		keyArgs = append(keyArgs, *log.CategoryID)
	}

	keyQuery += " ORDER BY id LIMIT 1"
	if r.db.DriverName() == config.DriverMySQL {
		keyQuery += " FOR UPDATE"
	}

	var id uint64
	err = tx.GetContext(ctx, &id, keyQuery, keyArgs...)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		result, err := tx.ExecContext(ctx,
			`INSERT INTO productivity_logs (date, score, category_id, tasks_completed, time_spent, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?)`,
			date, log.Score, nullIDPtr(log.CategoryID), log.TasksCompleted, log.TimeSpent, now, now,
		)
		if err != nil {
			return domain.ProductivityLog{}, fmt.Errorf("insert productivity log: %w", err)
		}
		inserted, err := result.LastInsertId()
		if err != nil {
			return domain.ProductivityLog{}, fmt.Errorf("insert productivity log: %w", err)
		}
		id = uint64(inserted)
	case err != nil:
		return domain.ProductivityLog{}, fmt.Errorf("find productivity log: %w", err)
	default:
		_, err := tx.ExecContext(ctx,
			"UPDATE productivity_logs SET score = ?, tasks_completed = ?, time_spent = ?, updated_at = ? WHERE id = ?",
			log.Score, log.TasksCompleted, log.TimeSpent, now, id,
		)
		if err != nil {
			return domain.ProductivityLog{}, fmt.Errorf("update productivity log %d: %w", id, err)
		}
	}

	var row productivityLogRow
	if err := tx.GetContext(ctx, &row, selectProductivityLogColumns+"WHERE id = ?", id); err != nil {
		return domain.ProductivityLog{}, fmt.Errorf("reload productivity log %d: %w", id, err)
	}
	if err := tx.Commit(); err != nil {
		return domain.ProductivityLog{}, err
	}

	return mapProductivityLogRow(row), nil
}

// ListProductivityLogs returns the logs whose date lies in [from, to].
func (r *ProductivityRepository) ListProductivityLogs(ctx context.Context, from, to time.Time) ([]domain.ProductivityLog, error) {
	var rows []productivityLogRow
	err := r.db.SelectContext(ctx, &rows,
		selectProductivityLogColumns+"WHERE date >= ? AND date <= ? ORDER BY date, category_id, id",
		from.UTC(), to.UTC(),
	)
	if err != nil {
		return nil, fmt.Errorf("list productivity logs: %w", err)
	}

	logs := make([]domain.ProductivityLog, 0, len(rows))
	for _, row := range rows {
		logs = append(logs, mapProductivityLogRow(row))
	}
	return logs, nil
}

func mapProductivityLogRow(row productivityLogRow) domain.ProductivityLog {
	return domain.ProductivityLog{
		ID:             row.ID,
		Date:           row.Date.UTC(),
		Score:          row.Score,
		CategoryID:     idPtr(row.CategoryID),
		TasksCompleted: row.TasksCompleted,
		TimeSpent:      row.TimeSpent,
		CreatedAt:      row.CreatedAt.UTC(),
		UpdatedAt:      row.UpdatedAt.UTC(),
	}
}
