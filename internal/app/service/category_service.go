package service

import (
	"context"

	"taskplanner/internal/core/domain"
	"taskplanner/internal/core/ports"
)

type CategoryService struct {
	categoryRepository ports.CategoryRepository
	clock              ports.Clock
}

func NewCategoryService(categoryRepository ports.CategoryRepository, clock ports.Clock) *CategoryService {
	return &CategoryService{categoryRepository: categoryRepository, clock: clock}
}

func (s *CategoryService) CreateCategory(ctx context.Context, input domain.CreateCategoryInput) (domain.Category, error) {
	if input.Color == "" {
		input.Color = domain.DefaultCategoryColor
	}
	return s.categoryRepository.CreateCategory(ctx, input, s.clock.Now())
}

func (s *CategoryService) ListCategories(ctx context.Context, skip, limit int) ([]domain.Category, error) {
	return s.categoryRepository.ListCategories(ctx, skip, limit)
}

func (s *CategoryService) GetCategory(ctx context.Context, categoryID uint64) (domain.Category, error) {
	return s.categoryRepository.GetCategoryByID(ctx, categoryID)
}

func (s *CategoryService) UpdateCategory(ctx context.Context, categoryID uint64, patch domain.CategoryPatch) (domain.Category, error) {
	category, err := s.categoryRepository.GetCategoryByID(ctx, categoryID)
	if err != nil {
		return domain.Category{}, err
	}
	domain.ApplyCategoryPatch(&category, patch, s.clock.Now())
	return s.categoryRepository.UpdateCategory(ctx, category)
}

// DeleteCategory refuses to remove the default category. Tasks pointing at a
// deleted category keep the dangling id and read back as uncategorized.
func (s *CategoryService) DeleteCategory(ctx context.Context, categoryID uint64) error {
	category, err := s.categoryRepository.GetCategoryByID(ctx, categoryID)
	if err != nil {
		return err
	}
	if category.IsDefault {
		return domain.ErrDefaultCategoryDelete
	}
	return s.categoryRepository.DeleteCategory(ctx, categoryID)
}

var _ ports.CategoryService = (*CategoryService)(nil)
