package domain

import "time"

// OrderStatus enumerates the lifecycle states of an order.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "PENDING"
	OrderStatusPreparing OrderStatus = "PREPARING"
	OrderStatusServed    OrderStatus = "SERVED"
	OrderStatusPaid      OrderStatus = "PAID"
	OrderStatusCancelled OrderStatus = "CANCELLED"
)

// Order is one customer order with its line items.
type Order struct {
	ID          int
	Reference   string
	CustomerID  *int
	TableNumber *int
	Status      OrderStatus
	Total       int64
	Note        string
	Items       []OrderItem
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// OrderItem is one line of an order.
type OrderItem struct {
	ID         int
	OrderID    int
	MenuItemID int
	Name       string
	UnitPrice  int64
	Quantity   int
}

// LineTotal returns the extended price of the line.
func (i OrderItem) LineTotal() int64 {
	return i.UnitPrice * int64(i.Quantity)
}
