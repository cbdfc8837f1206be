package events

import (
	"time"

	"github.com/d3ads3c/cafepanel-sub000/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventOrderCreated       EventType = "order_created"
	EventOrderStatusChanged EventType = "order_status_changed"
	EventInvoiceIssued      EventType = "invoice_issued"
)

// Event represents a domain event emitted by services. CafeName scopes the
// event to the tenant it happened in.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	CafeName  string      `json:"cafename"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// OrderCreatedPayload payload.
type OrderCreatedPayload struct {
	OrderID     int    `json:"order_id"`
	Reference   string `json:"reference"`
	TableNumber *int   `json:"table_number,omitempty"`
	Total       int64  `json:"total"`
	ItemCount   int    `json:"item_count"`
}

// OrderStatusChangedPayload payload.
type OrderStatusChangedPayload struct {
	OrderID   int                `json:"order_id"`
	OldStatus domain.OrderStatus `json:"old_status"`
	NewStatus domain.OrderStatus `json:"new_status"`
}

// InvoiceIssuedPayload payload.
type InvoiceIssuedPayload struct {
	InvoiceID int                `json:"invoice_id"`
	Reference string             `json:"reference"`
	Kind      domain.InvoiceKind `json:"kind"`
	Total     int64              `json:"total"`
}
