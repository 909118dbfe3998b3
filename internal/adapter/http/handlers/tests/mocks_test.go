package tests

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"taskplanner/internal/core/domain"
	"taskplanner/internal/core/ports"
)

var (
	_ ports.TaskService         = (*taskServiceMock)(nil)
	_ ports.CategoryService     = (*categoryServiceMock)(nil)
	_ ports.TimeBlockService    = (*timeBlockServiceMock)(nil)
	_ ports.ProductivityService = (*productivityServiceMock)(nil)
	_ ports.SyncService         = (*syncServiceMock)(nil)
	_ ports.ReminderService     = (*reminderServiceMock)(nil)
)

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time {
	return c.now
}

type taskServiceMock struct {
	mock.Mock
}

func (m *taskServiceMock) CreateTask(ctx context.Context, input domain.CreateTaskInput) (domain.Task, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskServiceMock) ListTasks(ctx context.Context, filter domain.TaskFilter) ([]domain.Task, error) {
	args := m.Called(ctx, filter)

	var tasks []domain.Task
	if value := args.Get(0); value != nil {
		tasks = value.([]domain.Task)
	}
	return tasks, args.Error(1)
}

func (m *taskServiceMock) GetTask(ctx context.Context, taskID uint64) (domain.Task, error) {
	args := m.Called(ctx, taskID)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskServiceMock) UpdateTask(ctx context.Context, taskID uint64, patch domain.TaskPatch) (domain.Task, error) {
	args := m.Called(ctx, taskID, patch)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskServiceMock) DeleteTask(ctx context.Context, taskID uint64) error {
	return m.Called(ctx, taskID).Error(0)
}

// NextOccurrence is not mocked; handlers call it for every task they render.
func (m *taskServiceMock) NextOccurrence(task domain.Task, after *time.Time) *time.Time {
	return nil
}

func (m *taskServiceMock) ListOccurrences(ctx context.Context, taskID uint64, from time.Time, to *time.Time, limit int) ([]time.Time, error) {
	args := m.Called(ctx, taskID, from, to, limit)

	var occurrences []time.Time
	if value := args.Get(0); value != nil {
		occurrences = value.([]time.Time)
	}
	return occurrences, args.Error(1)
}

func (m *taskServiceMock) CreateSubTask(ctx context.Context, input domain.CreateSubTaskInput) (domain.SubTask, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(domain.SubTask), args.Error(1)
}

func (m *taskServiceMock) ListSubTasks(ctx context.Context, taskID uint64) ([]domain.SubTask, error) {
	args := m.Called(ctx, taskID)

	var subtasks []domain.SubTask
	if value := args.Get(0); value != nil {
		subtasks = value.([]domain.SubTask)
	}
	return subtasks, args.Error(1)
}

func (m *taskServiceMock) UpdateSubTask(ctx context.Context, subtaskID uint64, patch domain.SubTaskPatch) (domain.SubTask, error) {
	args := m.Called(ctx, subtaskID, patch)
	return args.Get(0).(domain.SubTask), args.Error(1)
}

func (m *taskServiceMock) DeleteSubTask(ctx context.Context, subtaskID uint64) error {
	return m.Called(ctx, subtaskID).Error(0)
}

type categoryServiceMock struct {
	mock.Mock
}

func (m *categoryServiceMock) CreateCategory(ctx context.Context, input domain.CreateCategoryInput) (domain.Category, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(domain.Category), args.Error(1)
}

func (m *categoryServiceMock) ListCategories(ctx context.Context, skip, limit int) ([]domain.Category, error) {
	args := m.Called(ctx, skip, limit)

	var categories []domain.Category
	if value := args.Get(0); value != nil {
		categories = value.([]domain.Category)
	}
	return categories, args.Error(1)
}

func (m *categoryServiceMock) GetCategory(ctx context.Context, categoryID uint64) (domain.Category, error) {
	args := m.Called(ctx, categoryID)
	return args.Get(0).(domain.Category), args.Error(1)
}

func (m *categoryServiceMock) UpdateCategory(ctx context.Context, categoryID uint64, patch domain.CategoryPatch) (domain.Category, error) {
	args := m.Called(ctx, categoryID, patch)
	return args.Get(0).(domain.Category), args.Error(1)
}

func (m *categoryServiceMock) DeleteCategory(ctx context.Context, categoryID uint64) error {
	return m.Called(ctx, categoryID).Error(0)
}

type timeBlockServiceMock struct {
	mock.Mock
}

func (m *timeBlockServiceMock) CreateTimeBlock(ctx context.Context, input domain.CreateTimeBlockInput) (domain.TimeBlock, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(domain.TimeBlock), args.Error(1)
}

func (m *timeBlockServiceMock) ListTimeBlocks(ctx context.Context, filter domain.TimeBlockFilter) ([]domain.TimeBlock, error) {
	args := m.Called(ctx, filter)

	var blocks []domain.TimeBlock
	if value := args.Get(0); value != nil {
		blocks = value.([]domain.TimeBlock)
	}
	return blocks, args.Error(1)
}

func (m *timeBlockServiceMock) GetTimeBlock(ctx context.Context, blockID uint64) (domain.TimeBlock, error) {
	args := m.Called(ctx, blockID)
	return args.Get(0).(domain.TimeBlock), args.Error(1)
}

func (m *timeBlockServiceMock) UpdateTimeBlock(ctx context.Context, blockID uint64, patch domain.TimeBlockPatch) (domain.TimeBlock, error) {
	args := m.Called(ctx, blockID, patch)
	return args.Get(0).(domain.TimeBlock), args.Error(1)
}

func (m *timeBlockServiceMock) DeleteTimeBlock(ctx context.Context, blockID uint64) error {
	return m.Called(ctx, blockID).Error(0)
}

type productivityServiceMock struct {
	mock.Mock
}

func (m *productivityServiceMock) CalculateDailyScore(ctx context.Context, date time.Time, categoryID *uint64) (float64, error) {
	args := m.Called(ctx, date, categoryID)
	return args.Get(0).(float64), args.Error(1)
}

func (m *productivityServiceMock) GetSummary(ctx context.Context, date time.Time) (domain.ProductivitySummary, error) {
	args := m.Called(ctx, date)
	return args.Get(0).(domain.ProductivitySummary), args.Error(1)
}

func (m *productivityServiceMock) GetCategorySummary(ctx context.Context, categoryID uint64, date time.Time) (domain.CategoryProductivity, error) {
	args := m.Called(ctx, categoryID, date)
	return args.Get(0).(domain.CategoryProductivity), args.Error(1)
}

func (m *productivityServiceMock) UpdateLogs(ctx context.Context, date time.Time) (domain.ProductivitySummary, error) {
	args := m.Called(ctx, date)
	return args.Get(0).(domain.ProductivitySummary), args.Error(1)
}

func (m *productivityServiceMock) ListLogs(ctx context.Context, from, to time.Time) ([]domain.ProductivityLog, error) {
	args := m.Called(ctx, from, to)

	var logs []domain.ProductivityLog
	if value := args.Get(0); value != nil {
		logs = value.([]domain.ProductivityLog)
	}
	return logs, args.Error(1)
}

type syncServiceMock struct {
	mock.Mock
}

func (m *syncServiceMock) Tasks(ctx context.Context, modifiedSince *time.Time) ([]domain.Task, error) {
	args := m.Called(ctx, modifiedSince)

	var tasks []domain.Task
	if value := args.Get(0); value != nil {
		tasks = value.([]domain.Task)
	}
	return tasks, args.Error(1)
}

func (m *syncServiceMock) Categories(ctx context.Context, modifiedSince *time.Time) ([]domain.Category, error) {
	args := m.Called(ctx, modifiedSince)

	var categories []domain.Category
	if value := args.Get(0); value != nil {
		categories = value.([]domain.Category)
	}
	return categories, args.Error(1)
}

func (m *syncServiceMock) TimeBlocks(ctx context.Context, modifiedSince *time.Time) ([]domain.TimeBlock, error) {
	args := m.Called(ctx, modifiedSince)

	var blocks []domain.TimeBlock
	if value := args.Get(0); value != nil {
		blocks = value.([]domain.TimeBlock)
	}
	return blocks, args.Error(1)
}

type reminderServiceMock struct {
	mock.Mock
}

func (m *reminderServiceMock) NextReminder(ctx context.Context) (*domain.Task, error) {
	args := m.Called(ctx)

	var task *domain.Task
	if value := args.Get(0); value != nil {
		task = value.(*domain.Task)
	}
	return task, args.Error(1)
}
