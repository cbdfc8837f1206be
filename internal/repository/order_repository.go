package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/d3ads3c/cafepanel-sub000/internal/domain"
	"github.com/d3ads3c/cafepanel-sub000/internal/tenant"
)

// OrderRepository defines persistence access for orders and their items.
// Create writes multiple rows and must run inside a transaction.
type OrderRepository interface {
	Create(ctx context.Context, q tenant.Querier, order *domain.Order) error
	UpdateStatus(ctx context.Context, id int, status domain.OrderStatus) error
	GetByID(ctx context.Context, id int) (*domain.Order, error)
	List(ctx context.Context, status *domain.OrderStatus) ([]domain.Order, error)
	SalesTotalSince(ctx context.Context, since time.Time) (int64, int, error)
}

type orderRepository struct {
	q tenant.Querier
}

// NewOrderRepository returns a tenant-scoped implementation.
func NewOrderRepository(q tenant.Querier) OrderRepository {
	return &orderRepository{q: q}
}

// Create inserts the order and every line item through the provided querier,
// which the caller supplies from an open transaction.
func (r *orderRepository) Create(ctx context.Context, q tenant.Querier, order *domain.Order) error {
	const insertOrder = `
        INSERT INTO orders (reference, customer_id, table_number, status, total, note)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id, created_at, updated_at`

	if err := q.QueryRow(ctx, insertOrder,
		order.Reference,
		order.CustomerID,
		order.TableNumber,
		order.Status,
		order.Total,
		order.Note,
	).Scan(&order.ID, &order.CreatedAt, &order.UpdatedAt); err != nil {
		return err
	}

	const insertItem = `
        INSERT INTO order_items (order_id, menu_item_id, name, unit_price, quantity)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id`

	for i := range order.Items {
		item := &order.Items[i]
		item.OrderID = order.ID
		if err := q.QueryRow(ctx, insertItem,
			item.OrderID,
			item.MenuItemID,
			item.Name,
			item.UnitPrice,
			item.Quantity,
		).Scan(&item.ID); err != nil {
			return err
		}
	}
	return nil
}

func (r *orderRepository) UpdateStatus(ctx context.Context, id int, status domain.OrderStatus) error {
	const query = `UPDATE orders SET status=$1, updated_at=NOW() WHERE id=$2`

	cmd, err := r.q.Exec(ctx, query, status, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *orderRepository) GetByID(ctx context.Context, id int) (*domain.Order, error) {
	const query = `
        SELECT id, reference, customer_id, table_number, status, total, note, created_at, updated_at
        FROM orders WHERE id=$1`

	var order domain.Order
	if err := r.q.QueryRow(ctx, query, id).Scan(
		&order.ID,
		&order.Reference,
		&order.CustomerID,
		&order.TableNumber,
		&order.Status,
		&order.Total,
		&order.Note,
		&order.CreatedAt,
		&order.UpdatedAt,
	); err != nil {
		return nil, err
	}

	items, err := r.itemsForOrder(ctx, id)
	if err != nil {
		return nil, err
	}
	order.Items = items
	return &order, nil
}

func (r *orderRepository) itemsForOrder(ctx context.Context, orderID int) ([]domain.OrderItem, error) {
	const query = `
        SELECT id, order_id, menu_item_id, name, unit_price, quantity
        FROM order_items WHERE order_id=$1 ORDER BY id`

	rows, err := r.q.Query(ctx, query, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.OrderItem
	for rows.Next() {
		var item domain.OrderItem
		if err := rows.Scan(
			&item.ID,
			&item.OrderID,
			&item.MenuItemID,
			&item.Name,
			&item.UnitPrice,
			&item.Quantity,
		); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *orderRepository) List(ctx context.Context, status *domain.OrderStatus) ([]domain.Order, error) {
	const query = `
        SELECT id, reference, customer_id, table_number, status, total, note, created_at, updated_at
        FROM orders
        WHERE ($1::text IS NULL OR status=$1)
        ORDER BY created_at DESC`

	rows, err := r.q.Query(ctx, query, status)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		var order domain.Order
		if err := rows.Scan(
			&order.ID,
			&order.Reference,
			&order.CustomerID,
			&order.TableNumber,
			&order.Status,
			&order.Total,
			&order.Note,
			&order.CreatedAt,
			&order.UpdatedAt,
		); err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}
	return orders, rows.Err()
}

// SalesTotalSince sums paid order totals from the given instant, for the
// dashboard sales report.
func (r *orderRepository) SalesTotalSince(ctx context.Context, since time.Time) (int64, int, error) {
	const query = `
        SELECT COALESCE(SUM(total), 0), COUNT(*)
        FROM orders WHERE status=$1 AND created_at >= $2`

	var total int64
	var count int
	if err := r.q.QueryRow(ctx, query, domain.OrderStatusPaid, since).Scan(&total, &count); err != nil {
		return 0, 0, err
	}
	return total, count, nil
}
