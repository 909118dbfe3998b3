package ports

import (
	"context"
	"time"

	"taskplanner/internal/core/domain"
)

type CategoryRepository interface {
	CreateCategory(ctx context.Context, input domain.CreateCategoryInput, now time.Time) (domain.Category, error)
	ListCategories(ctx context.Context, skip, limit int) ([]domain.Category, error)
	GetCategoryByID(ctx context.Context, categoryID uint64) (domain.Category, error)
	UpdateCategory(ctx context.Context, category domain.Category) (domain.Category, error)
	DeleteCategory(ctx context.Context, categoryID uint64) error
	ListCategoriesModifiedSince(ctx context.Context, since *time.Time) ([]domain.Category, error)
}

type CategoryService interface {
	CreateCategory(ctx context.Context, input domain.CreateCategoryInput) (domain.Category, error)
	ListCategories(ctx context.Context, skip, limit int) ([]domain.Category, error)
	GetCategory(ctx context.Context, categoryID uint64) (domain.Category, error)
	UpdateCategory(ctx context.Context, categoryID uint64, patch domain.CategoryPatch) (domain.Category, error)
	DeleteCategory(ctx context.Context, categoryID uint64) error
}
