package dto

type SubTaskItem struct {
	ID          uint64 `json:"id"`
	TaskID      uint64 `json:"task_id"`
	Title       string `json:"title"`
	IsCompleted bool   `json:"is_completed"`
	Order       int    `json:"order"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

type CreateSubTaskRequest struct {
	Title       string `json:"title" binding:"required,max=200"`
	IsCompleted bool   `json:"is_completed"`
	Order       int    `json:"order" binding:"gte=0"`
}

type UpdateSubTaskRequest struct {
	Title       *string `json:"title" binding:"omitempty,max=200"`
	IsCompleted *bool   `json:"is_completed"`
	Order       *int    `json:"order" binding:"omitempty,gte=0"`
}
