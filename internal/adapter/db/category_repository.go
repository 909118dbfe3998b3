package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"taskplanner/internal/core/domain"
	"taskplanner/internal/core/ports"
)

const selectCategoryColumns = `
SELECT id, name, color, icon, is_default, created_at, updated_at
FROM categories
`

type CategoryRepository struct {
	db *sqlx.DB
}

type categoryRow struct {
	ID        uint64         `db:"id"`
	Name      string         `db:"name"`
	Color     string         `db:"color"`
	Icon      sql.NullString `db:"icon"`
	IsDefault bool           `db:"is_default"`
	CreatedAt time.Time      `db:"created_at"`
	UpdatedAt time.Time      `db:"updated_at"`
}

var _ ports.CategoryRepository = (*CategoryRepository)(nil)

func NewCategoryRepository(db *sqlx.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

func (r *CategoryRepository) CreateCategory(ctx context.Context, input domain.CreateCategoryInput, now time.Time) (domain.Category, error) {
	now = now.UTC()
	result, err := r.db.ExecContext(ctx,
		"INSERT INTO categories (name, color, icon, is_default, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?)",
		input.Name, input.Color, nullStringPtr(input.Icon), input.IsDefault, now, now,
	)
	if err != nil {
		return domain.Category{}, fmt.Errorf("insert category: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return domain.Category{}, fmt.Errorf("insert category: %w", err)
	}
	return r.GetCategoryByID(ctx, uint64(id))
}

func (r *CategoryRepository) ListCategories(ctx context.Context, skip, limit int) ([]domain.Category, error) {
	query, args := paginate(selectCategoryColumns+"ORDER BY id\n", nil, skip, limit)
	return selectCategories(ctx, r.db, query, args...)
}

func (r *CategoryRepository) GetCategoryByID(ctx context.Context, categoryID uint64) (domain.Category, error) {
	return getCategoryByID(ctx, r.db, categoryID)
}

func (r *CategoryRepository) UpdateCategory(ctx context.Context, category domain.Category) (domain.Category, error) {
	result, err := r.db.ExecContext(ctx,
		"UPDATE categories SET name = ?, color = ?, icon = ?, is_default = ?, updated_at = ? WHERE id = ?",
		category.Name, category.Color, nullStringPtr(category.Icon), category.IsDefault, category.UpdatedAt.UTC(), category.ID,
	)
	if err != nil {
		return domain.Category{}, fmt.Errorf("update category %d: %w", category.ID, err)
	}
	if err := expectAffected(result, domain.ErrCategoryNotFound); err != nil {
		return domain.Category{}, err
	}
	return r.GetCategoryByID(ctx, category.ID)
}

// DeleteCategory leaves tasks pointing at the category untouched.
func (r *CategoryRepository) DeleteCategory(ctx context.Context, categoryID uint64) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM categories WHERE id = ?", categoryID)
	if err != nil {
		return fmt.Errorf("delete category %d: %w", categoryID, err)
	}
	return expectAffected(result, domain.ErrCategoryNotFound)
}

func (r *CategoryRepository) ListCategoriesModifiedSince(ctx context.Context, since *time.Time) ([]domain.Category, error) {
	if since == nil {
		return selectCategories(ctx, r.db, selectCategoryColumns+"ORDER BY updated_at, id")
	}
	return selectCategories(ctx, r.db, selectCategoryColumns+"WHERE updated_at > ? ORDER BY updated_at, id", since.UTC())
}

func getCategoryByID(ctx context.Context, q sqlx.QueryerContext, categoryID uint64) (domain.Category, error) {
	var row categoryRow
	err := sqlx.GetContext(ctx, q, &row, selectCategoryColumns+"WHERE id = ?", categoryID)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Category{}, domain.ErrCategoryNotFound
	}
	if err != nil {
		return domain.Category{}, fmt.Errorf("get category %d: %w", categoryID, err)
	}
	return mapCategoryRowToDomainCategory(row), nil
}

func selectCategories(ctx context.Context, q sqlx.QueryerContext, query string, args ...any) ([]domain.Category, error) {
	var rows []categoryRow
	if err := sqlx.SelectContext(ctx, q, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select categories: %w", err)
	}

	categories := make([]domain.Category, 0, len(rows))
	for _, row := range rows {
		categories = append(categories, mapCategoryRowToDomainCategory(row))
	}
	return categories, nil
}

func mapCategoryRowToDomainCategory(row categoryRow) domain.Category {
	return domain.Category{
		ID:        row.ID,
		Name:      row.Name,
		Color:     row.Color,
		Icon:      stringPtr(row.Icon),
		IsDefault: row.IsDefault,
		CreatedAt: row.CreatedAt.UTC(),
		UpdatedAt: row.UpdatedAt.UTC(),
	}
}
