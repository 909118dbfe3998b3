package dto

type TimeBlockItem struct {
	ID          uint64  `json:"id"`
	TaskID      *uint64 `json:"task_id"`
	StartTime   string  `json:"start_time"`
	EndTime     string  `json:"end_time"`
	Title       *string `json:"title"`
	Description *string `json:"description"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
}

type CreateTimeBlockRequest struct {
	TaskID      *uint64 `json:"task_id" binding:"omitempty,gt=0"`
	StartTime   string  `json:"start_time" binding:"required"`
	EndTime     string  `json:"end_time" binding:"required"`
	Title       *string `json:"title" binding:"omitempty,max=200"`
	Description *string `json:"description" binding:"omitempty,max=65535"`
}

type UpdateTimeBlockRequest struct {
	TaskID      *uint64 `json:"task_id" binding:"omitempty,gt=0"`
	StartTime   *string `json:"start_time"`
	EndTime     *string `json:"end_time"`
	Title       *string `json:"title" binding:"omitempty,max=200"`
	Description *string `json:"description" binding:"omitempty,max=65535"`
}
