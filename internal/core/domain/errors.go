package domain

import "errors"

var (
	ErrTaskNotFound          = errors.New("task not found")
	ErrSubTaskNotFound       = errors.New("subtask not found")
	ErrCategoryNotFound      = errors.New("category not found")
	ErrTimeBlockNotFound     = errors.New("time block not found")
	ErrDefaultCategoryDelete = errors.New("cannot delete default category")
	ErrInvalidTimeRange      = errors.New("start time must be before end time")
)
