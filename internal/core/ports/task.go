package ports

import (
	"context"
	"time"

	"taskplanner/internal/core/domain"
)

type TaskRepository interface {
	CreateTask(ctx context.Context, input domain.CreateTaskInput, now time.Time) (domain.Task, error)
	ListTasks(ctx context.Context, filter domain.TaskFilter) ([]domain.Task, error)
	GetTaskByID(ctx context.Context, taskID uint64) (domain.Task, error)
	UpdateTask(ctx context.Context, task domain.Task) (domain.Task, error)
	DeleteTask(ctx context.Context, taskID uint64) error
	ListTasksModifiedSince(ctx context.Context, since *time.Time) ([]domain.Task, error)
	NextReminder(ctx context.Context, after time.Time) (*domain.Task, error)
}

type SubTaskRepository interface {
	CreateSubTask(ctx context.Context, input domain.CreateSubTaskInput, now time.Time) (domain.SubTask, error)
	ListSubTasks(ctx context.Context, taskID uint64) ([]domain.SubTask, error)
	GetSubTaskByID(ctx context.Context, subtaskID uint64) (domain.SubTask, error)
	UpdateSubTask(ctx context.Context, subtask domain.SubTask) (domain.SubTask, error)
	DeleteSubTask(ctx context.Context, subtaskID uint64) error
}

type TaskService interface {
	CreateTask(ctx context.Context, input domain.CreateTaskInput) (domain.Task, error)
	ListTasks(ctx context.Context, filter domain.TaskFilter) ([]domain.Task, error)
	GetTask(ctx context.Context, taskID uint64) (domain.Task, error)
	UpdateTask(ctx context.Context, taskID uint64, patch domain.TaskPatch) (domain.Task, error)
	DeleteTask(ctx context.Context, taskID uint64) error
	NextOccurrence(task domain.Task, after *time.Time) *time.Time
	ListOccurrences(ctx context.Context, taskID uint64, from time.Time, to *time.Time, limit int) ([]time.Time, error)

	CreateSubTask(ctx context.Context, input domain.CreateSubTaskInput) (domain.SubTask, error)
	ListSubTasks(ctx context.Context, taskID uint64) ([]domain.SubTask, error)
	UpdateSubTask(ctx context.Context, subtaskID uint64, patch domain.SubTaskPatch) (domain.SubTask, error)
	DeleteSubTask(ctx context.Context, subtaskID uint64) error
}
