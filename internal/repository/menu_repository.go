package repository

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/d3ads3c/cafepanel-sub000/internal/domain"
	"github.com/d3ads3c/cafepanel-sub000/internal/tenant"
)

// MenuRepository defines persistence access for menu items.
type MenuRepository interface {
	Create(ctx context.Context, item *domain.MenuItem) error
	Update(ctx context.Context, item *domain.MenuItem) error
	Delete(ctx context.Context, id int) error
	GetByID(ctx context.Context, id int) (*domain.MenuItem, error)
	List(ctx context.Context, categoryID *int) ([]domain.MenuItem, error)
}

type menuRepository struct {
	q tenant.Querier
}

// NewMenuRepository returns a tenant-scoped implementation.
func NewMenuRepository(q tenant.Querier) MenuRepository {
	return &menuRepository{q: q}
}

func (r *menuRepository) Create(ctx context.Context, item *domain.MenuItem) error {
	const query = `
        INSERT INTO menu_items (category_id, name, description, price, image_url, available)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id, created_at, updated_at`

	return r.q.QueryRow(ctx, query,
		item.CategoryID,
		item.Name,
		item.Description,
		item.Price,
		item.ImageURL,
		item.Available,
	).Scan(&item.ID, &item.CreatedAt, &item.UpdatedAt)
}

func (r *menuRepository) Update(ctx context.Context, item *domain.MenuItem) error {
	const query = `
        UPDATE menu_items
        SET category_id=$1, name=$2, description=$3, price=$4, image_url=$5, available=$6, updated_at=NOW()
        WHERE id=$7`

	cmd, err := r.q.Exec(ctx, query,
		item.CategoryID,
		item.Name,
		item.Description,
		item.Price,
		item.ImageURL,
		item.Available,
		item.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *menuRepository) Delete(ctx context.Context, id int) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM menu_items WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *menuRepository) GetByID(ctx context.Context, id int) (*domain.MenuItem, error) {
	const query = `
        SELECT id, category_id, name, description, price, image_url, available, created_at, updated_at
        FROM menu_items WHERE id=$1`

	var item domain.MenuItem
	if err := r.q.QueryRow(ctx, query, id).Scan(
		&item.ID,
		&item.CategoryID,
		&item.Name,
		&item.Description,
		&item.Price,
		&item.ImageURL,
		&item.Available,
		&item.CreatedAt,
		&item.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *menuRepository) List(ctx context.Context, categoryID *int) ([]domain.MenuItem, error) {
	const query = `
        SELECT id, category_id, name, description, price, image_url, available, created_at, updated_at
        FROM menu_items
        WHERE ($1::int IS NULL OR category_id=$1)
        ORDER BY id`

	rows, err := r.q.Query(ctx, query, categoryID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.MenuItem
	for rows.Next() {
		var item domain.MenuItem
		if err := rows.Scan(
			&item.ID,
			&item.CategoryID,
			&item.Name,
			&item.Description,
			&item.Price,
			&item.ImageURL,
			&item.Available,
			&item.CreatedAt,
			&item.UpdatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}
