package dto

// Category is the compact form embedded in task responses.
type Category struct {
	ID    uint64 `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

type CategoryItem struct {
	ID        uint64  `json:"id"`
	Name      string  `json:"name"`
	Color     string  `json:"color"`
	Icon      *string `json:"icon"`
	IsDefault bool    `json:"is_default"`
	CreatedAt string  `json:"created_at"`
	UpdatedAt string  `json:"updated_at"`
}

type CreateCategoryRequest struct {
	Name      string  `json:"name" binding:"required,max=100"`
	Color     *string `json:"color" binding:"omitempty,hexcolor"`
	Icon      *string `json:"icon" binding:"omitempty,max=50"`
	IsDefault bool    `json:"is_default"`
}

type UpdateCategoryRequest struct {
	Name      *string `json:"name" binding:"omitempty,max=100"`
	Color     *string `json:"color" binding:"omitempty,hexcolor"`
	Icon      *string `json:"icon" binding:"omitempty,max=50"`
	IsDefault *bool   `json:"is_default"`
}
