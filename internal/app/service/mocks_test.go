package service_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"taskplanner/internal/core/domain"
)

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time { return c.now }

type productivityReaderMock struct {
	mock.Mock
}

func (m *productivityReaderMock) ListCompletedTasks(ctx context.Context, from, to time.Time, categoryID *uint64) ([]domain.Task, error) {
	args := m.Called(ctx, from, to, categoryID)

	var tasks []domain.Task
	if value := args.Get(0); value != nil {
		tasks = value.([]domain.Task)
	}
	return tasks, args.Error(1)
}

func (m *productivityReaderMock) ListTimeBlocksWithin(ctx context.Context, from, to time.Time) ([]domain.TimeBlock, error) {
	args := m.Called(ctx, from, to)

	var blocks []domain.TimeBlock
	if value := args.Get(0); value != nil {
		blocks = value.([]domain.TimeBlock)
	}
	return blocks, args.Error(1)
}

func (m *productivityReaderMock) ListTasksByIDs(ctx context.Context, taskIDs []uint64) ([]domain.Task, error) {
	args := m.Called(ctx, taskIDs)

	var tasks []domain.Task
	if value := args.Get(0); value != nil {
		tasks = value.([]domain.Task)
	}
	return tasks, args.Error(1)
}

func (m *productivityReaderMock) GetCategoryByID(ctx context.Context, categoryID uint64) (domain.Category, error) {
	args := m.Called(ctx, categoryID)
	return args.Get(0).(domain.Category), args.Error(1)
}

type productivityWriterMock struct {
	mock.Mock
}

func (m *productivityWriterMock) UpsertProductivityLog(ctx context.Context, log domain.ProductivityLog, now time.Time) (domain.ProductivityLog, error) {
	args := m.Called(ctx, log, now)
	return args.Get(0).(domain.ProductivityLog), args.Error(1)
}

func (m *productivityWriterMock) ListProductivityLogs(ctx context.Context, from, to time.Time) ([]domain.ProductivityLog, error) {
	args := m.Called(ctx, from, to)

	var logs []domain.ProductivityLog
	if value := args.Get(0); value != nil {
		logs = value.([]domain.ProductivityLog)
	}
	return logs, args.Error(1)
}

type taskRepositoryMock struct {
	mock.Mock
}

func (m *taskRepositoryMock) CreateTask(ctx context.Context, input domain.CreateTaskInput, now time.Time) (domain.Task, error) {
	args := m.Called(ctx, input, now)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskRepositoryMock) ListTasks(ctx context.Context, filter domain.TaskFilter) ([]domain.Task, error) {
	args := m.Called(ctx, filter)

	var tasks []domain.Task
	if value := args.Get(0); value != nil {
		tasks = value.([]domain.Task)
	}
	return tasks, args.Error(1)
}

func (m *taskRepositoryMock) GetTaskByID(ctx context.Context, taskID uint64) (domain.Task, error) {
	args := m.Called(ctx, taskID)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskRepositoryMock) UpdateTask(ctx context.Context, task domain.Task) (domain.Task, error) {
	args := m.Called(ctx, task)
	if echo, ok := args.Get(0).(func(context.Context, domain.Task) domain.Task); ok {
		return echo(ctx, task), args.Error(1)
	}
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskRepositoryMock) DeleteTask(ctx context.Context, taskID uint64) error {
	return m.Called(ctx, taskID).Error(0)
}

func (m *taskRepositoryMock) ListTasksModifiedSince(ctx context.Context, since *time.Time) ([]domain.Task, error) {
	args := m.Called(ctx, since)

	var tasks []domain.Task
	if value := args.Get(0); value != nil {
		tasks = value.([]domain.Task)
	}
	return tasks, args.Error(1)
}

func (m *taskRepositoryMock) NextReminder(ctx context.Context, after time.Time) (*domain.Task, error) {
	args := m.Called(ctx, after)

	var task *domain.Task
	if value := args.Get(0); value != nil {
		task = value.(*domain.Task)
	}
	return task, args.Error(1)
}

type subTaskRepositoryMock struct {
	mock.Mock
}

func (m *subTaskRepositoryMock) CreateSubTask(ctx context.Context, input domain.CreateSubTaskInput, now time.Time) (domain.SubTask, error) {
	args := m.Called(ctx, input, now)
	return args.Get(0).(domain.SubTask), args.Error(1)
}

func (m *subTaskRepositoryMock) ListSubTasks(ctx context.Context, taskID uint64) ([]domain.SubTask, error) {
	args := m.Called(ctx, taskID)

	var subtasks []domain.SubTask
	if value := args.Get(0); value != nil {
		subtasks = value.([]domain.SubTask)
	}
	return subtasks, args.Error(1)
}

func (m *subTaskRepositoryMock) GetSubTaskByID(ctx context.Context, subtaskID uint64) (domain.SubTask, error) {
	args := m.Called(ctx, subtaskID)
	return args.Get(0).(domain.SubTask), args.Error(1)
}

func (m *subTaskRepositoryMock) UpdateSubTask(ctx context.Context, subtask domain.SubTask) (domain.SubTask, error) {
	args := m.Called(ctx, subtask)
	return args.Get(0).(domain.SubTask), args.Error(1)
}

func (m *subTaskRepositoryMock) DeleteSubTask(ctx context.Context, subtaskID uint64) error {
	return m.Called(ctx, subtaskID).Error(0)
}

type categoryRepositoryMock struct {
	mock.Mock
}

func (m *categoryRepositoryMock) CreateCategory(ctx context.Context, input domain.CreateCategoryInput, now time.Time) (domain.Category, error) {
	args := m.Called(ctx, input, now)
	return args.Get(0).(domain.Category), args.Error(1)
}

func (m *categoryRepositoryMock) ListCategories(ctx context.Context, skip, limit int) ([]domain.Category, error) {
	args := m.Called(ctx, skip, limit)

	var categories []domain.Category
	if value := args.Get(0); value != nil {
		categories = value.([]domain.Category)
	}
	return categories, args.Error(1)
}

func (m *categoryRepositoryMock) GetCategoryByID(ctx context.Context, categoryID uint64) (domain.Category, error) {
	args := m.Called(ctx, categoryID)
	return args.Get(0).(domain.Category), args.Error(1)
}

func (m *categoryRepositoryMock) UpdateCategory(ctx context.Context, category domain.Category) (domain.Category, error) {
	args := m.Called(ctx, category)
	return args.Get(0).(domain.Category), args.Error(1)
}

func (m *categoryRepositoryMock) DeleteCategory(ctx context.Context, categoryID uint64) error {
	return m.Called(ctx, categoryID).Error(0)
}

func (m *categoryRepositoryMock) ListCategoriesModifiedSince(ctx context.Context, since *time.Time) ([]domain.Category, error) {
	args := m.Called(ctx, since)

	var categories []domain.Category
	if value := args.Get(0); value != nil {
		categories = value.([]domain.Category)
	}
	return categories, args.Error(1)
}

type timeBlockRepositoryMock struct {
	mock.Mock
}

func (m *timeBlockRepositoryMock) CreateTimeBlock(ctx context.Context, input domain.CreateTimeBlockInput, now time.Time) (domain.TimeBlock, error) {
	args := m.Called(ctx, input, now)
	return args.Get(0).(domain.TimeBlock), args.Error(1)
}

func (m *timeBlockRepositoryMock) ListTimeBlocks(ctx context.Context, filter domain.TimeBlockFilter) ([]domain.TimeBlock, error) {
	args := m.Called(ctx, filter)

	var blocks []domain.TimeBlock
	if value := args.Get(0); value != nil {
		blocks = value.([]domain.TimeBlock)
	}
	return blocks, args.Error(1)
}

func (m *timeBlockRepositoryMock) GetTimeBlockByID(ctx context.Context, blockID uint64) (domain.TimeBlock, error) {
	args := m.Called(ctx, blockID)
	return args.Get(0).(domain.TimeBlock), args.Error(1)
}

func (m *timeBlockRepositoryMock) UpdateTimeBlock(ctx context.Context, block domain.TimeBlock) (domain.TimeBlock, error) {
	args := m.Called(ctx, block)
	if echo, ok := args.Get(0).(func(context.Context, domain.TimeBlock) domain.TimeBlock); ok {
		return echo(ctx, block), args.Error(1)
	}
	return args.Get(0).(domain.TimeBlock), args.Error(1)
}

func (m *timeBlockRepositoryMock) DeleteTimeBlock(ctx context.Context, blockID uint64) error {
	return m.Called(ctx, blockID).Error(0)
}

func (m *timeBlockRepositoryMock) ListTimeBlocksModifiedSince(ctx context.Context, since *time.Time) ([]domain.TimeBlock, error) {
	args := m.Called(ctx, since)

	var blocks []domain.TimeBlock
	if value := args.Get(0); value != nil {
		blocks = value.([]domain.TimeBlock)
	}
	return blocks, args.Error(1)
}
