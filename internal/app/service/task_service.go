package service

import (
	"context"
	"time"

	"taskplanner/internal/core/domain"
	"taskplanner/internal/core/ports"
	"taskplanner/internal/core/recurrence"
)

const (
	DefaultOccurrenceLimit = 100
	MaxOccurrenceLimit     = 500
)

type TaskService struct {
	taskRepository     ports.TaskRepository
	subTaskRepository  ports.SubTaskRepository
	categoryRepository ports.CategoryRepository
	recurrence         *recurrence.Engine
	clock              ports.Clock
}

func NewTaskService(
	taskRepository ports.TaskRepository,
	subTaskRepository ports.SubTaskRepository,
	categoryRepository ports.CategoryRepository,
	clock ports.Clock,
) *TaskService {
	return &TaskService{
		taskRepository:     taskRepository,
		subTaskRepository:  subTaskRepository,
		categoryRepository: categoryRepository,
		recurrence:         recurrence.NewEngine(clock),
		clock:              clock,
	}
}

func (s *TaskService) CreateTask(ctx context.Context, input domain.CreateTaskInput) (domain.Task, error) {
	if err := s.ensureCategory(ctx, input.CategoryID); err != nil {
		return domain.Task{}, err
	}
	input.DueDate = utc(input.DueDate)
	input.ReminderTime = utc(input.ReminderTime)
	return s.taskRepository.CreateTask(ctx, input, s.clock.Now())
}

func (s *TaskService) ListTasks(ctx context.Context, filter domain.TaskFilter) ([]domain.Task, error) {
	return s.taskRepository.ListTasks(ctx, filter)
}

// GetTask returns the task with its subtasks loaded.
func (s *TaskService) GetTask(ctx context.Context, taskID uint64) (domain.Task, error) {
	task, err := s.taskRepository.GetTaskByID(ctx, taskID)
	if err != nil {
		return domain.Task{}, err
	}
	subtasks, err := s.subTaskRepository.ListSubTasks(ctx, taskID)
	if err != nil {
		return domain.Task{}, err
	}
	task.Subtasks = subtasks
	return task, nil
}

func (s *TaskService) UpdateTask(ctx context.Context, taskID uint64, patch domain.TaskPatch) (domain.Task, error) {
	task, err := s.taskRepository.GetTaskByID(ctx, taskID)
	if err != nil {
		return domain.Task{}, err
	}
	if patch.CategoryIDSet {
		if err := s.ensureCategory(ctx, patch.CategoryID); err != nil {
			return domain.Task{}, err
		}
	}

	patch.DueDate = utc(patch.DueDate)
	patch.ReminderTime = utc(patch.ReminderTime)
	domain.ApplyTaskPatch(&task, patch, s.clock.Now())

	return s.taskRepository.UpdateTask(ctx, task)
}

func (s *TaskService) DeleteTask(ctx context.Context, taskID uint64) error {
	return s.taskRepository.DeleteTask(ctx, taskID)
}

// NextOccurrence projects the task's recurrence rule past after (or past now).
// It returns nil when the task has no rule or the rule yields nothing.
func (s *TaskService) NextOccurrence(task domain.Task, after *time.Time) *time.Time {
	if task.RecurrenceRule == nil {
		return nil
	}
	next, ok := s.recurrence.Next(*task.RecurrenceRule, after)
	if !ok {
		return nil
	}
	return &next
}

func (s *TaskService) ListOccurrences(ctx context.Context, taskID uint64, from time.Time, to *time.Time, limit int) ([]time.Time, error) {
	task, err := s.taskRepository.GetTaskByID(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if task.RecurrenceRule == nil {
		return []time.Time{}, nil
	}

	if limit <= 0 {
		limit = DefaultOccurrenceLimit
	}
	limit = min(limit, MaxOccurrenceLimit)

	return s.recurrence.Expand(*task.RecurrenceRule, from, to, limit), nil
}

func (s *TaskService) CreateSubTask(ctx context.Context, input domain.CreateSubTaskInput) (domain.SubTask, error) {
	if _, err := s.taskRepository.GetTaskByID(ctx, input.TaskID); err != nil {
		return domain.SubTask{}, err
	}
	return s.subTaskRepository.CreateSubTask(ctx, input, s.clock.Now())
}

func (s *TaskService) ListSubTasks(ctx context.Context, taskID uint64) ([]domain.SubTask, error) {
	if _, err := s.taskRepository.GetTaskByID(ctx, taskID); err != nil {
		return nil, err
	}
	return s.subTaskRepository.ListSubTasks(ctx, taskID)
}

func (s *TaskService) UpdateSubTask(ctx context.Context, subtaskID uint64, patch domain.SubTaskPatch) (domain.SubTask, error) {
	subtask, err := s.subTaskRepository.GetSubTaskByID(ctx, subtaskID)
	if err != nil {
		return domain.SubTask{}, err
	}
	domain.ApplySubTaskPatch(&subtask, patch, s.clock.Now())
	return s.subTaskRepository.UpdateSubTask(ctx, subtask)
}

func (s *TaskService) DeleteSubTask(ctx context.Context, subtaskID uint64) error {
	return s.subTaskRepository.DeleteSubTask(ctx, subtaskID)
}

func (s *TaskService) ensureCategory(ctx context.Context, categoryID *uint64) error {
	if categoryID == nil {
		return nil
	}
	_, err := s.categoryRepository.GetCategoryByID(ctx, *categoryID)
	return err
}

func utc(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	value := t.UTC()
	return &value
}

var _ ports.TaskService = (*TaskService)(nil)
