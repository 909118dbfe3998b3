package domain

import "time"

type SubTask struct {
	ID          uint64
	TaskID      uint64
	Title       string
	IsCompleted bool
	Order       int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type CreateSubTaskInput struct {
	TaskID      uint64
	Title       string
	IsCompleted bool
	Order       int
}

type SubTaskPatch struct {
	Title       *string
	IsCompleted *bool
	Order       *int
}

func (p SubTaskPatch) IsEmpty() bool {
	return p.Title == nil && p.IsCompleted == nil && p.Order == nil
}

func ApplySubTaskPatch(subtask *SubTask, patch SubTaskPatch, now time.Time) {
	if patch.Title != nil {
		subtask.Title = *patch.Title
	}
	if patch.IsCompleted != nil {
		subtask.IsCompleted = *patch.IsCompleted
	}
	if patch.Order != nil {
		subtask.Order = *patch.Order
	}
	subtask.UpdatedAt = now
}
