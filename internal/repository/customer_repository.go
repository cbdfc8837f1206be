package repository

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/d3ads3c/cafepanel-sub000/internal/domain"
	"github.com/d3ads3c/cafepanel-sub000/internal/tenant"
)

// CustomerRepository defines persistence access for café customers.
type CustomerRepository interface {
	Create(ctx context.Context, customer *domain.Customer) error
	Update(ctx context.Context, customer *domain.Customer) error
	Delete(ctx context.Context, id int) error
	GetByID(ctx context.Context, id int) (*domain.Customer, error)
	List(ctx context.Context) ([]domain.Customer, error)
}

type customerRepository struct {
	q tenant.Querier
}

// NewCustomerRepository returns a tenant-scoped implementation.
func NewCustomerRepository(q tenant.Querier) CustomerRepository {
	return &customerRepository{q: q}
}

func (r *customerRepository) Create(ctx context.Context, customer *domain.Customer) error {
	const query = `
        INSERT INTO customers (name, phone, address, note)
        VALUES ($1, $2, $3, $4)
        RETURNING id, created_at, updated_at`

	return r.q.QueryRow(ctx, query,
		customer.Name,
		customer.Phone,
		customer.Address,
		customer.Note,
	).Scan(&customer.ID, &customer.CreatedAt, &customer.UpdatedAt)
}

func (r *customerRepository) Update(ctx context.Context, customer *domain.Customer) error {
	const query = `
        UPDATE customers SET name=$1, phone=$2, address=$3, note=$4, updated_at=NOW()
        WHERE id=$5`

	cmd, err := r.q.Exec(ctx, query,
		customer.Name,
		customer.Phone,
		customer.Address,
		customer.Note,
		customer.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *customerRepository) Delete(ctx context.Context, id int) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM customers WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *customerRepository) GetByID(ctx context.Context, id int) (*domain.Customer, error) {
	const query = `
        SELECT id, name, phone, address, note, created_at, updated_at
        FROM customers WHERE id=$1`

	var customer domain.Customer
	if err := r.q.QueryRow(ctx, query, id).Scan(
		&customer.ID,
		&customer.Name,
		&customer.Phone,
		&customer.Address,
		&customer.Note,
		&customer.CreatedAt,
		&customer.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &customer, nil
}

func (r *customerRepository) List(ctx context.Context) ([]domain.Customer, error) {
	const query = `
        SELECT id, name, phone, address, note, created_at, updated_at
        FROM customers ORDER BY name, id`

	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var customers []domain.Customer
	for rows.Next() {
		var customer domain.Customer
		if err := rows.Scan(
			&customer.ID,
			&customer.Name,
			&customer.Phone,
			&customer.Address,
			&customer.Note,
			&customer.CreatedAt,
			&customer.UpdatedAt,
		); err != nil {
			return nil, err
		}
		customers = append(customers, customer)
	}
	return customers, rows.Err()
}
