package repository

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/d3ads3c/cafepanel-sub000/internal/domain"
	"github.com/d3ads3c/cafepanel-sub000/internal/tenant"
)

// CategoryRepository defines persistence access for menu categories.
type CategoryRepository interface {
	Create(ctx context.Context, category *domain.Category) error
	Update(ctx context.Context, category *domain.Category) error
	Delete(ctx context.Context, id int) error
	GetByID(ctx context.Context, id int) (*domain.Category, error)
	List(ctx context.Context) ([]domain.Category, error)
}

type categoryRepository struct {
	q tenant.Querier
}

// NewCategoryRepository returns a tenant-scoped implementation.
func NewCategoryRepository(q tenant.Querier) CategoryRepository {
	return &categoryRepository{q: q}
}

func (r *categoryRepository) Create(ctx context.Context, category *domain.Category) error {
	const query = `
        INSERT INTO categories (name, sort_order)
        VALUES ($1, $2)
        RETURNING id, created_at, updated_at`

	return r.q.QueryRow(ctx, query, category.Name, category.SortOrder).
		Scan(&category.ID, &category.CreatedAt, &category.UpdatedAt)
}

func (r *categoryRepository) Update(ctx context.Context, category *domain.Category) error {
	const query = `
        UPDATE categories SET name=$1, sort_order=$2, updated_at=NOW()
        WHERE id=$3`

	cmd, err := r.q.Exec(ctx, query, category.Name, category.SortOrder, category.ID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *categoryRepository) Delete(ctx context.Context, id int) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM categories WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *categoryRepository) GetByID(ctx context.Context, id int) (*domain.Category, error) {
	const query = `
        SELECT id, name, sort_order, created_at, updated_at
        FROM categories WHERE id=$1`

	var category domain.Category
	if err := r.q.QueryRow(ctx, query, id).Scan(
		&category.ID,
		&category.Name,
		&category.SortOrder,
		&category.CreatedAt,
		&category.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *categoryRepository) List(ctx context.Context) ([]domain.Category, error) {
	const query = `
        SELECT id, name, sort_order, created_at, updated_at
        FROM categories ORDER BY sort_order, id`

	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []domain.Category
	for rows.Next() {
		var category domain.Category
		if err := rows.Scan(
			&category.ID,
			&category.Name,
			&category.SortOrder,
			&category.CreatedAt,
			&category.UpdatedAt,
		); err != nil {
			return nil, err
		}
		categories = append(categories, category)
	}
	return categories, rows.Err()
}
