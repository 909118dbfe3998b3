package mapper

import (
	"time"

	"taskplanner/internal/adapter/http/dto"
	"taskplanner/internal/core/domain"
)

const DateLayout = "2006-01-02"

// NextOccurrenceFunc projects a task's recurrence rule past now.
type NextOccurrenceFunc func(task domain.Task) *time.Time

func ToTaskItems(tasks []domain.Task, next NextOccurrenceFunc) []dto.TaskItem {
	items := make([]dto.TaskItem, 0, len(tasks))
	for _, task := range tasks {
		items = append(items, ToTaskItem(task, next))
	}
	return items
}

func ToTaskItem(task domain.Task, next NextOccurrenceFunc) dto.TaskItem {
	item := dto.TaskItem{
		ID:             task.ID,
		Title:          task.Title,
		Description:    task.Description,
		Notes:          task.Notes,
		DueDate:        FormatTimestampPtr(task.DueDate),
		Priority:       task.Priority,
		RecurrenceRule: task.RecurrenceRule,
		IsCompleted:    task.IsCompleted,
		CompletedAt:    FormatTimestampPtr(task.CompletedAt),
		CategoryID:     task.CategoryID,
		ReminderTime:   FormatTimestampPtr(task.ReminderTime),
		CreatedAt:      FormatTimestamp(task.CreatedAt),
		UpdatedAt:      FormatTimestamp(task.UpdatedAt),
	}

	if next != nil {
		item.NextOccurrence = FormatTimestampPtr(next(task))
	}

	if task.Category != nil {
		item.Category = &dto.Category{
			ID:    task.Category.ID,
			Name:  task.Category.Name,
			Color: task.Category.Color,
		}
	}

	if len(task.Subtasks) > 0 {
		item.Subtasks = ToSubTaskItems(task.Subtasks)
	}

	return item
}

func ToSubTaskItems(subtasks []domain.SubTask) []dto.SubTaskItem {
	items := make([]dto.SubTaskItem, 0, len(subtasks))
	for _, subtask := range subtasks {
		items = append(items, ToSubTaskItem(subtask))
	}
	return items
}

func ToSubTaskItem(subtask domain.SubTask) dto.SubTaskItem {
	return dto.SubTaskItem{
		ID:          subtask.ID,
		TaskID:      subtask.TaskID,
		Title:       subtask.Title,
		IsCompleted: subtask.IsCompleted,
		Order:       subtask.Order,
		CreatedAt:   FormatTimestamp(subtask.CreatedAt),
		UpdatedAt:   FormatTimestamp(subtask.UpdatedAt),
	}
}

func ToOccurrences(taskID uint64, occurrences []time.Time) dto.OccurrencesResponse {
	formatted := make([]string, 0, len(occurrences))
	for _, occurrence := range occurrences {
		formatted = append(formatted, FormatTimestamp(occurrence))
	}
	return dto.OccurrencesResponse{TaskID: taskID, Occurrences: formatted}
}

func ToNextReminder(task *domain.Task) dto.NextReminderResponse {
	if task == nil {
		return dto.NextReminderResponse{}
	}
	id, title := task.ID, task.Title
	return dto.NextReminderResponse{
		TaskID:       &id,
		Title:        &title,
		ReminderTime: FormatTimestampPtr(task.ReminderTime),
	}
}

// FormatTimestamp renders t in UTC as RFC 3339.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

func FormatTimestampPtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	value := FormatTimestamp(*t)
	return &value
}
