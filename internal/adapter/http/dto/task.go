package dto

type TaskItem struct {
	ID             uint64        `json:"id"`
	Title          string        `json:"title"`
	Description    *string       `json:"description"`
	Notes          *string       `json:"notes"`
	DueDate        *string       `json:"due_date"`
	Priority       int           `json:"priority"`
	RecurrenceRule *string       `json:"recurrence_rule"`
	IsCompleted    bool          `json:"is_completed"`
	CompletedAt    *string       `json:"completed_at"`
	CategoryID     *uint64       `json:"category_id"`
	ReminderTime   *string       `json:"reminder_time"`
	NextOccurrence *string       `json:"next_occurrence"`
	CreatedAt      string        `json:"created_at"`
	UpdatedAt      string        `json:"updated_at"`
	Category       *Category     `json:"category,omitempty"`
	Subtasks       []SubTaskItem `json:"subtasks,omitempty"`
}

type CreateTaskRequest struct {
	Title          string  `json:"title" binding:"required,max=200"`
	Description    *string `json:"description" binding:"omitempty,max=65535"`
	Notes          *string `json:"notes" binding:"omitempty,max=65535"`
	DueDate        *string `json:"due_date"`
	Priority       *int    `json:"priority" binding:"omitempty,gte=0,lte=4"`
	RecurrenceRule *string `json:"recurrence_rule" binding:"omitempty,max=500"`
	CategoryID     *uint64 `json:"category_id" binding:"omitempty,gt=0"`
	ReminderTime   *string `json:"reminder_time"`
}

type UpdateTaskRequest struct {
	Title          *string `json:"title" binding:"omitempty,max=200"`
	Description    *string `json:"description" binding:"omitempty,max=65535"`
	Notes          *string `json:"notes" binding:"omitempty,max=65535"`
	DueDate        *string `json:"due_date"`
	Priority       *int    `json:"priority" binding:"omitempty,gte=0,lte=4"`
	RecurrenceRule *string `json:"recurrence_rule" binding:"omitempty,max=500"`
	IsCompleted    *bool   `json:"is_completed"`
	CategoryID     *uint64 `json:"category_id" binding:"omitempty,gt=0"`
	ReminderTime   *string `json:"reminder_time"`
}

type OccurrencesResponse struct {
	TaskID      uint64   `json:"task_id"`
	Occurrences []string `json:"occurrences"`
}

type NextOccurrenceResponse struct {
	TaskID         uint64  `json:"task_id"`
	NextOccurrence *string `json:"next_occurrence"`
}
