package validation

import (
	"encoding/json"
	"errors"

	"taskplanner/internal/adapter/http/dto"
	"taskplanner/internal/core/domain"
)

var ErrInvalidTimeBlockPayload = errors.New("invalid time block payload")

// BuildCreateTimeBlockInput parses the block bounds. The start < end rule is
// enforced by the service so it also covers updates.
func BuildCreateTimeBlockInput(req dto.CreateTimeBlockRequest) (domain.CreateTimeBlockInput, error) {
	start, err := ParseTimestamp(req.StartTime)
	if err != nil {
		return domain.CreateTimeBlockInput{}, ErrInvalidTimeBlockPayload
	}
	end, err := ParseTimestamp(req.EndTime)
	if err != nil {
		return domain.CreateTimeBlockInput{}, ErrInvalidTimeBlockPayload
	}

	return domain.CreateTimeBlockInput{
		TaskID:      req.TaskID,
		StartTime:   start,
		EndTime:     end,
		Title:       req.Title,
		Description: req.Description,
	}, nil
}

func BuildTimeBlockPatch(req dto.UpdateTimeBlockRequest, raw map[string]json.RawMessage) (domain.TimeBlockPatch, error) {
	if !hasAnyJSONField(raw, "task_id", "start_time", "end_time", "title", "description") {
		return domain.TimeBlockPatch{}, ErrInvalidTimeBlockPayload
	}
	if (hasJSONField(raw, "start_time") && req.StartTime == nil) ||
		(hasJSONField(raw, "end_time") && req.EndTime == nil) {
		return domain.TimeBlockPatch{}, ErrInvalidTimeBlockPayload
	}

	start, err := parseTimestampPtr(req.StartTime)
	if err != nil {
		return domain.TimeBlockPatch{}, ErrInvalidTimeBlockPayload
	}
	end, err := parseTimestampPtr(req.EndTime)
	if err != nil {
		return domain.TimeBlockPatch{}, ErrInvalidTimeBlockPayload
	}

	taskIDSet, ok := nullableSet(raw, "task_id", req.TaskID != nil)
	if !ok {
		return domain.TimeBlockPatch{}, ErrInvalidTimeBlockPayload
	}
	titleSet, ok := nullableSet(raw, "title", req.Title != nil)
	if !ok {
		return domain.TimeBlockPatch{}, ErrInvalidTimeBlockPayload
	}
	descriptionSet, ok := nullableSet(raw, "description", req.Description != nil)
	if !ok {
		return domain.TimeBlockPatch{}, ErrInvalidTimeBlockPayload
	}

	return domain.TimeBlockPatch{
		TaskID:         req.TaskID,
		TaskIDSet:      taskIDSet,
		StartTime:      start,
		EndTime:        end,
		Title:          req.Title,
		TitleSet:       titleSet,
		Description:    req.Description,
		DescriptionSet: descriptionSet,
	}, nil
}
