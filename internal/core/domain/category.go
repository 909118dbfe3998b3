package domain

import "time"

const DefaultCategoryColor = "#3B82F6"

type Category struct {
	ID        uint64
	Name      string
	Color     string
	Icon      *string
	IsDefault bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

type CreateCategoryInput struct {
	Name      string
	Color     string
	Icon      *string
	IsDefault bool
}

type CategoryPatch struct {
	Name      *string
	Color     *string
	Icon      *string
	IconSet   bool
	IsDefault *bool
}

func (p CategoryPatch) IsEmpty() bool {
	return p.Name == nil && p.Color == nil && !p.IconSet && p.IsDefault == nil
}

func ApplyCategoryPatch(category *Category, patch CategoryPatch, now time.Time) {
	if patch.Name != nil {
		category.Name = *patch.Name
	}
	if patch.Color != nil {
		category.Color = *patch.Color
	}
	if patch.IconSet {
		category.Icon = patch.Icon
	}
	if patch.IsDefault != nil {
		category.IsDefault = *patch.IsDefault
	}
	category.UpdatedAt = now
}
