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

const selectTaskColumns = `
SELECT
  t.id,
  t.title,
  t.description,
  t.notes,
  t.due_date,
  t.priority,
  t.recurrence_rule,
  t.is_completed,
  t.completed_at,
  t.category_id,
  t.reminder_time,
  t.created_at,
  t.updated_at,
  c.name AS category_name,
  c.color AS category_color
FROM tasks t
LEFT JOIN categories c ON c.id = t.category_id
`

const insertTaskQuery = `
INSERT INTO tasks (
  title, description, notes, due_date, priority, recurrence_rule,
  is_completed, completed_at, category_id, reminder_time, created_at, updated_at
) VALUES (?, ?, ?, ?, ?, ?, 0, NULL, ?, ?, ?, ?)
`

const updateTaskQuery = `
UPDATE tasks SET
  title = ?,
  description = ?,
  notes = ?,
  due_date = ?,
  priority = ?,
  recurrence_rule = ?,
  is_completed = ?,
  completed_at = ?,
  category_id = ?,
  reminder_time = ?,
  updated_at = ?
WHERE id = ?
`

const nextReminderQuery = selectTaskColumns + `
WHERE t.is_completed = 0 AND t.reminder_time IS NOT NULL AND t.reminder_time > ?
ORDER BY t.reminder_time, t.id
LIMIT 1
`

type TaskRepository struct {
	db *sqlx.DB
}

type taskRow struct {
	ID             uint64         `db:"id"`
	Title          string         `db:"title"`
	Description    sql.NullString `db:"description"`
	Notes          sql.NullString `db:"notes"`
	DueDate        sql.NullTime   `db:"due_date"`
	Priority       int            `db:"priority"`
	RecurrenceRule sql.NullString `db:"recurrence_rule"`
	IsCompleted    bool           `db:"is_completed"`
	CompletedAt    sql.NullTime   `db:"completed_at"`
	CategoryID     sql.NullInt64  `db:"category_id"`
	ReminderTime   sql.NullTime   `db:"reminder_time"`
	CreatedAt      time.Time      `db:"created_at"`
	UpdatedAt      time.Time      `db:"updated_at"`
	CategoryName   sql.NullString `db:"category_name"`
	CategoryColor  sql.NullString `db:"category_color"`
}

var _ ports.TaskRepository = (*TaskRepository)(nil)

func NewTaskRepository(db *sqlx.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) CreateTask(ctx context.Context, input domain.CreateTaskInput, now time.Time) (domain.Task, error) {
	now = now.UTC()
	result, err := r.db.ExecContext(ctx, insertTaskQuery,
		input.Title,
		nullStringPtr(input.Description),
		nullStringPtr(input.Notes),
		nullTimePtr(input.DueDate),
		input.Priority,
		nullStringPtr(input.RecurrenceRule),
		nullIDPtr(input.CategoryID),
		nullTimePtr(input.ReminderTime),
		now,
		now,
	)
	if err != nil {
		return domain.Task{}, fmt.Errorf("insert task: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return domain.Task{}, fmt.Errorf("insert task: %w", err)
	}

	return r.GetTaskByID(ctx, uint64(id))
}

func (r *TaskRepository) ListTasks(ctx context.Context, filter domain.TaskFilter) ([]domain.Task, error) {
	var (
		where []string
		args  []any
	)
	if filter.CategoryID != nil {
		where = append(where, "t.category_id = ?")
		args = append(args, *filter.CategoryID)
	}
	if filter.IsCompleted != nil {
		where = append(where, "t.is_completed = ?")
		args = append(args, *filter.IsCompleted)
	}

	query := selectTaskColumns
	if len(where) > 0 {
		query += "WHERE " + strings.Join(where, " AND ") + "\n"
	}
	query += "ORDER BY t.id\n"
	query, args = paginate(query, args, filter.Skip, filter.Limit)

	return selectTasks(ctx, r.db, query, args...)
}

func (r *TaskRepository) GetTaskByID(ctx context.Context, taskID uint64) (domain.Task, error) {
	var row taskRow
	err := r.db.GetContext(ctx, &row, selectTaskColumns+"WHERE t.id = ?", taskID)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Task{}, domain.ErrTaskNotFound
	}
	if err != nil {
		return domain.Task{}, fmt.Errorf("get task %d: %w", taskID, err)
	}
	return mapTaskRowToDomainTask(row), nil
}

func (r *TaskRepository) UpdateTask(ctx context.Context, task domain.Task) (domain.Task, error) {
	result, err := r.db.ExecContext(ctx, updateTaskQuery,
		task.Title,
		nullStringPtr(task.Description),
		nullStringPtr(task.Notes),
		nullTimePtr(task.DueDate),
		task.Priority,
		nullStringPtr(task.RecurrenceRule),
		task.IsCompleted,
		nullTimePtr(task.CompletedAt),
		nullIDPtr(task.CategoryID),
		nullTimePtr(task.ReminderTime),
		task.UpdatedAt.UTC(),
		task.ID,
	)
	if err != nil {
		return domain.Task{}, fmt.Errorf("update task %d: %w", task.ID, err)
	}
	if err := expectAffected(result, domain.ErrTaskNotFound); err != nil {
		return domain.Task{}, err
	}

	return r.GetTaskByID(ctx, task.ID)
}

// DeleteTask removes the task with its subtasks and detaches its time blocks.
func (r *TaskRepository) DeleteTask(ctx context.Context, taskID uint64) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, "DELETE FROM subtasks WHERE task_id = ?", taskID); err != nil {
		return fmt.Errorf("delete subtasks of task %d: %w", taskID, err)
	}
	if _, err := tx.ExecContext(ctx, "UPDATE time_blocks SET task_id = NULL WHERE task_id = ?", taskID); err != nil {
		return fmt.Errorf("detach time blocks of task %d: %w", taskID, err)
	}
	result, err := tx.ExecContext(ctx, "DELETE FROM tasks WHERE id = ?", taskID)
	if err != nil {
		return fmt.Errorf("delete task %d: %w", taskID, err)
	}
	if err := expectAffected(result, domain.ErrTaskNotFound); err != nil {
		return err
	}

	return tx.Commit()
}

func (r *TaskRepository) ListTasksModifiedSince(ctx context.Context, since *time.Time) ([]domain.Task, error) {
	if since == nil {
		return selectTasks(ctx, r.db, selectTaskColumns+"ORDER BY t.updated_at, t.id")
	}
	return selectTasks(ctx, r.db, selectTaskColumns+"WHERE t.updated_at > ? ORDER BY t.updated_at, t.id", since.UTC())
}

func (r *TaskRepository) NextReminder(ctx context.Context, after time.Time) (*domain.Task, error) {
	var row taskRow
	err := r.db.GetContext(ctx, &row, nextReminderQuery, after.UTC())
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("next reminder: %w", err)
	}
	task := mapTaskRowToDomainTask(row)
	return &task, nil
}

func selectTasks(ctx context.Context, q sqlx.QueryerContext, query string, args ...any) ([]domain.Task, error) {
	var rows []taskRow
	if err := sqlx.SelectContext(ctx, q, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select tasks: %w", err)
	}

	tasks := make([]domain.Task, 0, len(rows))
	for _, row := range rows {
		tasks = append(tasks, mapTaskRowToDomainTask(row))
	}

	return tasks, nil
}

func mapTaskRowToDomainTask(row taskRow) domain.Task {
	task := domain.Task{
		ID:             row.ID,
		Title:          row.Title,
		Description:    stringPtr(row.Description),
		Notes:          stringPtr(row.Notes),
		DueDate:        timePtr(row.DueDate),
		Priority:       row.Priority,
		RecurrenceRule: stringPtr(row.RecurrenceRule),
		IsCompleted:    row.IsCompleted,
		CompletedAt:    timePtr(row.CompletedAt),
		CategoryID:     idPtr(row.CategoryID),
		ReminderTime:   timePtr(row.ReminderTime),
		CreatedAt:      row.CreatedAt.UTC(),
		UpdatedAt:      row.UpdatedAt.UTC(),
	}

	// A dangling category id keeps its value but carries no category.
	if row.CategoryID.Valid && row.CategoryName.Valid {
		task.Category = &domain.Category{
			ID:    uint64(row.CategoryID.Int64),
			Name:  row.CategoryName.String,
			Color: row.CategoryColor.String,
		}
	}

	return task
}
