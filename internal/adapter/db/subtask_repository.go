package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"taskplanner/internal/core/domain"
	"taskplanner/internal/core/ports"
)

const selectSubTaskColumns = `
SELECT id, task_id, title, is_completed, sort_order, created_at, updated_at
FROM subtasks
`

type SubTaskRepository struct {
	db *sqlx.DB
}

type subTaskRow struct {
	ID          uint64    `db:"id"`
	TaskID      uint64    `db:"task_id"`
	Title       string    `db:"title"`
	IsCompleted bool      `db:"is_completed"`
	SortOrder   int       `db:"sort_order"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

var _ ports.SubTaskRepository = (*SubTaskRepository)(nil)

func NewSubTaskRepository(db *sqlx.DB) *SubTaskRepository {
	return &SubTaskRepository{db: db}
}

func (r *SubTaskRepository) CreateSubTask(ctx context.Context, input domain.CreateSubTaskInput, now time.Time) (domain.SubTask, error) {
	now = now.UTC()
	result, err := r.db.ExecContext(ctx,
		"INSERT INTO subtasks (task_id, title, is_completed, sort_order, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?)",
		input.TaskID, input.Title, input.IsCompleted, input.Order, now, now,
	)
	if err != nil {
		return domain.SubTask{}, fmt.Errorf("insert subtask: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return domain.SubTask{}, fmt.Errorf("insert subtask: %w", err)
	}
	return r.GetSubTaskByID(ctx, uint64(id))
}

func (r *SubTaskRepository) ListSubTasks(ctx context.Context, taskID uint64) ([]domain.SubTask, error) {
	var rows []subTaskRow
	if err := r.db.SelectContext(ctx, &rows, selectSubTaskColumns+"WHERE task_id = ? ORDER BY sort_order, id", taskID); err != nil {
		return nil, fmt.Errorf("list subtasks of task %d: %w", taskID, err)
	}

	subtasks := make([]domain.SubTask, 0, len(rows))
	for _, row := range rows {
		subtasks = append(subtasks, mapSubTaskRowToDomainSubTask(row))
	}
	return subtasks, nil
}

func (r *SubTaskRepository) GetSubTaskByID(ctx context.Context, subtaskID uint64) (domain.SubTask, error) {
	var row subTaskRow
	err := r.db.GetContext(ctx, &row, selectSubTaskColumns+"WHERE id = ?", subtaskID)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.SubTask{}, domain.ErrSubTaskNotFound
	}
	if err != nil {
		return domain.SubTask{}, fmt.Errorf("get subtask %d: %w", subtaskID, err)
	}
	return mapSubTaskRowToDomainSubTask(row), nil
}

func (r *SubTaskRepository) UpdateSubTask(ctx context.Context, subtask domain.SubTask) (domain.SubTask, error) {
	result, err := r.db.ExecContext(ctx,
		"UPDATE subtasks SET title = ?, is_completed = ?, sort_order = ?, updated_at = ? WHERE id = ?",
		subtask.Title, subtask.IsCompleted, subtask.Order, subtask.UpdatedAt.UTC(), subtask.ID,
	)
	if err != nil {
		return domain.SubTask{}, fmt.Errorf("update subtask %d: %w", subtask.ID, err)
	}
	if err := expectAffected(result, domain.ErrSubTaskNotFound); err != nil {
		return domain.SubTask{}, err
	}
	return r.GetSubTaskByID(ctx, subtask.ID)
}

func (r *SubTaskRepository) DeleteSubTask(ctx context.Context, subtaskID uint64) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM subtasks WHERE id = ?", subtaskID)
	if err != nil {
		return fmt.Errorf("delete subtask %d: %w", subtaskID, err)
	}
	return expectAffected(result, domain.ErrSubTaskNotFound)
}

func mapSubTaskRowToDomainSubTask(row subTaskRow) domain.SubTask {
	return domain.SubTask{
		ID:          row.ID,
		TaskID:      row.TaskID,
		Title:       row.Title,
		IsCompleted: row.IsCompleted,
		Order:       row.SortOrder,
		CreatedAt:   row.CreatedAt.UTC(),
		UpdatedAt:   row.UpdatedAt.UTC(),
	}
}
