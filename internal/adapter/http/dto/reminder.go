package dto

// NextReminderResponse has every field null when nothing is pending.
type NextReminderResponse struct {
	TaskID       *uint64 `json:"task_id"`
	Title        *string `json:"title"`
	ReminderTime *string `json:"reminder_time"`
}
