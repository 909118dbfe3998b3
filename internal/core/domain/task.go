package domain

import "time"

const (
	MinPriority = 0
	MaxPriority = 4
	// HighPriority is the lowest priority that earns a productivity bonus.
	HighPriority = 3
)

type Task struct {
	ID             uint64
	Title          string
	Description    *string
	Notes          *string
	DueDate        *time.Time
	Priority       int
	RecurrenceRule *string
	IsCompleted    bool
	CompletedAt    *time.Time
	CategoryID     *uint64
	ReminderTime   *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
	Category       *Category
	Subtasks       []SubTask
}

type CreateTaskInput struct {
	Title          string
	Description    *string
	Notes          *string
	DueDate        *time.Time
	Priority       int
	RecurrenceRule *string
	CategoryID     *uint64
	ReminderTime   *time.Time
}

type TaskFilter struct {
	Skip        int
	Limit       int
	CategoryID  *uint64
	IsCompleted *bool
}

// TaskPatch lists the fields of a partial task update. A nil pointer leaves the
// field untouched; the XSet flags allow nullable fields to be cleared.
type TaskPatch struct {
	Title             *string
	Description       *string
	DescriptionSet    bool
	Notes             *string
	NotesSet          bool
	DueDate           *time.Time
	DueDateSet        bool
	Priority          *int
	RecurrenceRule    *string
	RecurrenceRuleSet bool
	IsCompleted       *bool
	CategoryID        *uint64
	CategoryIDSet     bool
	ReminderTime      *time.Time
	ReminderTimeSet   bool
}

func (p TaskPatch) IsEmpty() bool {
	return p.Title == nil && !p.DescriptionSet && !p.NotesSet && !p.DueDateSet && p.Priority == nil &&
		!p.RecurrenceRuleSet && p.IsCompleted == nil && !p.CategoryIDSet && !p.ReminderTimeSet
}

// ApplyTaskPatch merges patch into task. Flipping IsCompleted from false to true
// stamps CompletedAt with now; flipping it back clears CompletedAt.
func ApplyTaskPatch(task *Task, patch TaskPatch, now time.Time) {
	if patch.Title != nil {
		task.Title = *patch.Title
	}
	if patch.DescriptionSet {
		task.Description = patch.Description
	}
	if patch.NotesSet {
		task.Notes = patch.Notes
	}
	if patch.DueDateSet {
		task.DueDate = patch.DueDate
	}
	if patch.Priority != nil {
		task.Priority = *patch.Priority
	}
	if patch.RecurrenceRuleSet {
		task.RecurrenceRule = patch.RecurrenceRule
	}
	if patch.IsCompleted != nil {
		switch {
		case *patch.IsCompleted && !task.IsCompleted:
			completedAt := now
			task.CompletedAt = &completedAt
		case !*patch.IsCompleted && task.IsCompleted:
			task.CompletedAt = nil
		}
		task.IsCompleted = *patch.IsCompleted
	}
	if patch.CategoryIDSet {
		task.CategoryID = patch.CategoryID
	}
	if patch.ReminderTimeSet {
		task.ReminderTime = patch.ReminderTime
	}
	task.UpdatedAt = now
}
