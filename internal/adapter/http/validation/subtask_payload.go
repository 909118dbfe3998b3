package validation

import (
	"encoding/json"
	"errors"
	"strings"

	"taskplanner/internal/adapter/http/dto"
	"taskplanner/internal/core/domain"
)

var ErrInvalidSubTaskPayload = errors.New("invalid subtask payload")

func BuildCreateSubTaskInput(taskID uint64, req dto.CreateSubTaskRequest) (domain.CreateSubTaskInput, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return domain.CreateSubTaskInput{}, ErrInvalidSubTaskPayload
	}
	return domain.CreateSubTaskInput{
		TaskID:      taskID,
		Title:       title,
		IsCompleted: req.IsCompleted,
		Order:       req.Order,
	}, nil
}

func BuildSubTaskPatch(req dto.UpdateSubTaskRequest, raw map[string]json.RawMessage) (domain.SubTaskPatch, error) {
	if !hasAnyJSONField(raw, "title", "is_completed", "order") {
		return domain.SubTaskPatch{}, ErrInvalidSubTaskPayload
	}
	if (hasJSONField(raw, "title") && req.Title == nil) ||
		(hasJSONField(raw, "is_completed") && req.IsCompleted == nil) ||
		(hasJSONField(raw, "order") && req.Order == nil) {
		return domain.SubTaskPatch{}, ErrInvalidSubTaskPayload
	}

	var title *string
	if req.Title != nil {
		value := strings.TrimSpace(*req.Title)
		if value == "" {
			return domain.SubTaskPatch{}, ErrInvalidSubTaskPayload
		}
		title = &value
	}

	return domain.SubTaskPatch{
		Title:       title,
		IsCompleted: req.IsCompleted,
		Order:       req.Order,
	}, nil
}
