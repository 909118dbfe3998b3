package productivity_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskplanner/internal/core/domain"
	"taskplanner/internal/core/productivity"
)

var day = time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)

func ptr[T any](v T) *T { return &v }

func completedTask(id uint64, priority int, at time.Time, categoryID *uint64) domain.Task {
	return domain.Task{
		ID:          id,
		Title:       "task",
		Priority:    priority,
		IsCompleted: true,
		CompletedAt: &at,
		CategoryID:  categoryID,
	}
}

func block(taskID *uint64, start time.Time, d time.Duration) domain.TimeBlock {
	return domain.TimeBlock{TaskID: taskID, StartTime: start, EndTime: start.Add(d)}
}

func TestDayWindow_Bounds(t *testing.T) {
	w := productivity.DayWindow(time.Date(2024, 5, 10, 17, 45, 0, 0, time.UTC))

	assert.Equal(t, day, w.Start)
	assert.Equal(t, time.Date(2024, 5, 10, 23, 59, 59, 999999000, time.UTC), w.End)
	assert.True(t, w.Contains(w.Start))
	assert.True(t, w.Contains(w.End))
	assert.False(t, w.Contains(w.Start.Add(-time.Nanosecond)))
	assert.False(t, w.Contains(day.Add(24*time.Hour)))
}

func TestDailyScore_Empty(t *testing.T) {
	assert.Equal(t, 0.0, productivity.DailyScore(nil, nil, productivity.DayWindow(day), nil))
}

func TestDailyScore_CompletedTasks(t *testing.T) {
	tasks := []domain.Task{
		completedTask(1, 1, day.Add(2*time.Hour), nil),
		completedTask(2, 2, day.Add(3*time.Hour), nil),
	}

	assert.Equal(t, 20.0, productivity.DailyScore(tasks, nil, productivity.DayWindow(day), nil))
}

func TestDailyScore_HighPriorityBonus(t *testing.T) {
	tasks := []domain.Task{completedTask(1, 4, day.Add(2*time.Hour), nil)}

	score := productivity.DailyScore(tasks, nil, productivity.DayWindow(day), nil)

	assert.Greater(t, score, 10.0)
	assert.Equal(t, 15.0, score)
}

func TestDailyScore_IgnoresIncompleteAndOtherDays(t *testing.T) {
	tasks := []domain.Task{
		completedTask(1, 1, day.Add(-time.Minute), nil),
		completedTask(2, 1, day.Add(24*time.Hour), nil),
		{ID: 3, Priority: 4, IsCompleted: false},
	}

	assert.Equal(t, 0.0, productivity.DailyScore(tasks, nil, productivity.DayWindow(day), nil))
}

func TestDailyScore_TimeBlocksAddAndSaturate(t *testing.T) {
	w := productivity.DayWindow(day)
	tasks := []domain.Task{completedTask(1, 1, day.Add(18*time.Hour), nil)}
	baseline := productivity.DailyScore(tasks, nil, w, nil)

	twoHours := []domain.TimeBlock{block(ptr(uint64(1)), day.Add(9*time.Hour), 2*time.Hour)}
	withTime := productivity.DailyScore(tasks, twoHours, w, nil)
	assert.Greater(t, withTime, baseline)
	assert.Equal(t, 20.0, withTime)

	long := []domain.TimeBlock{block(ptr(uint64(1)), day.Add(time.Hour), 20*time.Hour)}
	assert.Equal(t, baseline+50, productivity.DailyScore(tasks, long, w, nil))
}

func TestDailyScore_BlockMustBeFullyInsideDay(t *testing.T) {
	w := productivity.DayWindow(day)
	blocks := []domain.TimeBlock{block(nil, day.Add(23*time.Hour), 2*time.Hour)}

	assert.Equal(t, 0.0, productivity.DailyScore(nil, blocks, w, nil))
}

func TestDailyScore_FractionalMinutes(t *testing.T) {
	w := productivity.DayWindow(day)
	blocks := []domain.TimeBlock{block(nil, day.Add(time.Hour), 6*time.Minute+30*time.Second)}

	assert.InDelta(t, 0.54, productivity.DailyScore(nil, blocks, w, nil), 1e-9)
}

func TestDailyScore_ClampedAtHundred(t *testing.T) {
	var tasks []domain.Task
	for i := 0; i < 20; i++ {
		tasks = append(tasks, completedTask(uint64(i+1), 4, day.Add(time.Duration(i)*time.Minute), nil))
	}

	assert.Equal(t, 100.0, productivity.DailyScore(tasks, nil, productivity.DayWindow(day), nil))
}

func TestDailyScore_CategoryScopesTimeThroughCompletedTasks(t *testing.T) {
	w := productivity.DayWindow(day)
	work, home := uint64(1), uint64(2)
	tasks := []domain.Task{
		completedTask(10, 1, day.Add(10*time.Hour), &work),
		completedTask(20, 3, day.Add(11*time.Hour), &home),
	}
	blocks := []domain.TimeBlock{
		block(ptr(uint64(10)), day.Add(8*time.Hour), time.Hour),
		block(ptr(uint64(20)), day.Add(12*time.Hour), 2*time.Hour),
		block(ptr(uint64(99)), day.Add(14*time.Hour), 4*time.Hour),
		block(nil, day.Add(19*time.Hour), time.Hour),
	}

	assert.Equal(t, 15.0, productivity.DailyScore(tasks, blocks, w, &work))
	assert.Equal(t, 25.0, productivity.DailyScore(tasks, blocks, w, &home))
	// 2 tasks + 1 bonus + 8 hours (40 points).
	assert.Equal(t, 65.0, productivity.DailyScore(tasks, blocks, w, nil))
}

func TestBuckets_GroupsByTaskAndOwnerCategory(t *testing.T) {
	work, home := uint64(1), uint64(2)
	completed := []domain.Task{
		completedTask(10, 1, day, &work),
		completedTask(11, 1, day, nil),
		completedTask(12, 1, day, &work),
	}
	blocks := []domain.TimeBlock{
		block(ptr(uint64(10)), day, 30*time.Minute),
		block(ptr(uint64(30)), day, 45*time.Minute),
		block(ptr(uint64(404)), day, time.Hour),
		block(nil, day, time.Hour),
	}
	owners := map[uint64]*uint64{10: &work, 30: &home}
	owner := func(taskID uint64) (*uint64, bool) {
		categoryID, ok := owners[taskID]
		return categoryID, ok
	}

	got := productivity.Buckets(completed, blocks, owner)

	require.Len(t, got, 3)
	require.NotNil(t, got[0].CategoryID)
	assert.Equal(t, work, *got[0].CategoryID)
	assert.Equal(t, 2, got[0].TasksCompleted)
	assert.InDelta(t, 30.0, got[0].Minutes, 1e-9)

	assert.Nil(t, got[1].CategoryID)
	assert.Equal(t, 1, got[1].TasksCompleted)
	assert.Zero(t, got[1].Minutes)

	require.NotNil(t, got[2].CategoryID)
	assert.Equal(t, home, *got[2].CategoryID)
	assert.Zero(t, got[2].TasksCompleted)
	assert.InDelta(t, 45.0, got[2].Minutes, 1e-9)
}

func TestBuckets_Empty(t *testing.T) {
	got := productivity.Buckets(nil, nil, func(uint64) (*uint64, bool) { return nil, false })

	assert.Empty(t, got)
}
