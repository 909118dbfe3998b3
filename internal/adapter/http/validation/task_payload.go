package validation

import (
	"encoding/json"
	"errors"
	"strings"

	"taskplanner/internal/adapter/http/dto"
	"taskplanner/internal/core/domain"
)

var ErrInvalidTaskPayload = errors.New("invalid task payload")

func BuildCreateTaskInput(req dto.CreateTaskRequest, raw map[string]json.RawMessage) (domain.CreateTaskInput, error) {
	if hasJSONField(raw, "priority") && req.Priority == nil {
		return domain.CreateTaskInput{}, ErrInvalidTaskPayload
	}

	title := strings.TrimSpace(req.Title)
	if title == "" {
		return domain.CreateTaskInput{}, ErrInvalidTaskPayload
	}

	priority := domain.MinPriority
	if req.Priority != nil {
		priority = *req.Priority
	}

	dueDate, err := parseTimestampPtr(req.DueDate)
	if err != nil {
		return domain.CreateTaskInput{}, ErrInvalidTaskPayload
	}
	reminderTime, err := parseTimestampPtr(req.ReminderTime)
	if err != nil {
		return domain.CreateTaskInput{}, ErrInvalidTaskPayload
	}

	return domain.CreateTaskInput{
		Title:          title,
		Description:    req.Description,
		Notes:          req.Notes,
		DueDate:        dueDate,
		Priority:       priority,
		RecurrenceRule: blankToNil(req.RecurrenceRule),
		CategoryID:     req.CategoryID,
		ReminderTime:   reminderTime,
	}, nil
}

func BuildTaskPatch(req dto.UpdateTaskRequest, raw map[string]json.RawMessage) (domain.TaskPatch, error) {
	if !hasAnyJSONField(raw, "title", "description", "notes", "due_date", "priority", "recurrence_rule", "is_completed", "category_id", "reminder_time") {
		return domain.TaskPatch{}, ErrInvalidTaskPayload
	}

	var title *string
	if hasJSONField(raw, "title") && req.Title == nil {
		return domain.TaskPatch{}, ErrInvalidTaskPayload
	}
	if req.Title != nil {
		value := strings.TrimSpace(*req.Title)
		if value == "" {
			return domain.TaskPatch{}, ErrInvalidTaskPayload
		}
		title = &value
	}

	if hasJSONField(raw, "priority") && req.Priority == nil {
		return domain.TaskPatch{}, ErrInvalidTaskPayload
	}
	if hasJSONField(raw, "is_completed") && req.IsCompleted == nil {
		return domain.TaskPatch{}, ErrInvalidTaskPayload
	}

	descriptionSet, ok := nullableSet(raw, "description", req.Description != nil)
	if !ok {
		return domain.TaskPatch{}, ErrInvalidTaskPayload
	}
	notesSet, ok := nullableSet(raw, "notes", req.Notes != nil)
	if !ok {
		return domain.TaskPatch{}, ErrInvalidTaskPayload
	}
	ruleSet, ok := nullableSet(raw, "recurrence_rule", req.RecurrenceRule != nil)
	if !ok {
		return domain.TaskPatch{}, ErrInvalidTaskPayload
	}
	categoryIDSet, ok := nullableSet(raw, "category_id", req.CategoryID != nil)
	if !ok {
		return domain.TaskPatch{}, ErrInvalidTaskPayload
	}

	dueDateSet, ok := nullableSet(raw, "due_date", req.DueDate != nil)
	if !ok {
		return domain.TaskPatch{}, ErrInvalidTaskPayload
	}
	dueDate, err := parseTimestampPtr(req.DueDate)
	if err != nil {
		return domain.TaskPatch{}, ErrInvalidTaskPayload
	}

	reminderSet, ok := nullableSet(raw, "reminder_time", req.ReminderTime != nil)
	if !ok {
		return domain.TaskPatch{}, ErrInvalidTaskPayload
	}
	reminderTime, err := parseTimestampPtr(req.ReminderTime)
	if err != nil {
		return domain.TaskPatch{}, ErrInvalidTaskPayload
	}

	return domain.TaskPatch{
		Title:             title,
		Description:       req.Description,
		DescriptionSet:    descriptionSet,
		Notes:             req.Notes,
		NotesSet:          notesSet,
		DueDate:           dueDate,
		DueDateSet:        dueDateSet,
		Priority:          req.Priority,
		RecurrenceRule:    blankToNil(req.RecurrenceRule),
		RecurrenceRuleSet: ruleSet,
		IsCompleted:       req.IsCompleted,
		CategoryID:        req.CategoryID,
		CategoryIDSet:     categoryIDSet,
		ReminderTime:      reminderTime,
		ReminderTimeSet:   reminderSet,
	}, nil
}

func blankToNil(value *string) *string {
	if value == nil || strings.TrimSpace(*value) == "" {
		return nil
	}
	trimmed := strings.TrimSpace(*value)
	return &trimmed
}
