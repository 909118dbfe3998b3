// Package productivity scores a day of completed tasks and logged time.
//
// The functions here are pure: callers load a snapshot of tasks and time
// blocks and the package filters, buckets and scores it.
package productivity

import (
	"math"

	"taskplanner/internal/core/domain"
)

const (
	pointsPerTask       = 10
	pointsPerHour       = 5
	maxTimePoints       = 50
	priorityBonusPoints = 5
	MaxScore            = 100
)

// CompletedWithin keeps the completed tasks whose completion timestamp falls
// in w and, when categoryID is set, that belong to that category.
func CompletedWithin(tasks []domain.Task, w Window, categoryID *uint64) []domain.Task {
	out := make([]domain.Task, 0, len(tasks))
	for _, task := range tasks {
		if !task.IsCompleted || task.CompletedAt == nil || !w.Contains(*task.CompletedAt) {
			continue
		}
		if categoryID != nil && (task.CategoryID == nil || *task.CategoryID != *categoryID) {
			continue
		}
		out = append(out, task)
	}
	return out
}

// BlocksWithin keeps the time blocks that start and end inside w.
func BlocksWithin(blocks []domain.TimeBlock, w Window) []domain.TimeBlock {
	out := make([]domain.TimeBlock, 0, len(blocks))
	for _, block := range blocks {
		if w.Contains(block.StartTime) && w.Contains(block.EndTime) {
			out = append(out, block)
		}
	}
	return out
}

// BlocksOwnedBy keeps the time blocks attached to one of tasks.
func BlocksOwnedBy(blocks []domain.TimeBlock, tasks []domain.Task) []domain.TimeBlock {
	ids := make(map[uint64]struct{}, len(tasks))
	for _, task := range tasks {
		ids[task.ID] = struct{}{}
	}

	out := make([]domain.TimeBlock, 0, len(blocks))
	for _, block := range blocks {
		if block.TaskID == nil {
			continue
		}
		if _, ok := ids[*block.TaskID]; ok {
			out = append(out, block)
		}
	}
	return out
}

// TotalMinutes sums block lengths in fractional minutes.
func TotalMinutes(blocks []domain.TimeBlock) float64 {
	var minutes float64
	for _, block := range blocks {
		minutes += block.Minutes()
	}
	return minutes
}

// Score applies the scoring rule to already selected tasks and blocks:
// 10 points per task, 5 per hour logged (at most 50), 5 per task of priority
// 3 or more, the total capped at 100 and rounded to two decimals.
func Score(tasks []domain.Task, blocks []domain.TimeBlock) float64 {
	taskScore := float64(len(tasks) * pointsPerTask)
	timeScore := math.Min(TotalMinutes(blocks)/60*pointsPerHour, maxTimePoints)

	highPriority := 0
	for _, task := range tasks {
		if task.Priority >= domain.HighPriority {
			highPriority++
		}
	}
	priorityBonus := float64(highPriority * priorityBonusPoints)

	return round2(math.Min(taskScore+timeScore+priorityBonus, MaxScore))
}

// DailyScore selects from a snapshot the work that counts for the day and
// scores it. With a category, only completed tasks of that category count,
// and time counts only through blocks attached to those tasks.
func DailyScore(tasks []domain.Task, blocks []domain.TimeBlock, w Window, categoryID *uint64) float64 {
	completed := CompletedWithin(tasks, w, categoryID)
	inDay := BlocksWithin(blocks, w)
	if categoryID != nil {
		inDay = BlocksOwnedBy(inDay, completed)
	}
	return Score(completed, inDay)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
