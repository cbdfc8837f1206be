package dto

import (
	"time"

	"github.com/d3ads3c/cafepanel-sub000/internal/domain"
)

// OrderLineRequest is one requested line.
type OrderLineRequest struct {
	MenuItemID int `json:"menu_item_id"`
	Quantity   int `json:"quantity"`
}

// CreateOrderRequest payload.
type CreateOrderRequest struct {
	CustomerID  *int               `json:"customer_id"`
	TableNumber *int               `json:"table_number"`
	Note        string             `json:"note"`
	Lines       []OrderLineRequest `json:"lines"`
}

// ChangeOrderStatusRequest payload.
type ChangeOrderStatusRequest struct {
	Status domain.OrderStatus `json:"status"`
}

// OrderItemResponse response.
type OrderItemResponse struct {
	ID         int    `json:"id"`
	MenuItemID int    `json:"menu_item_id"`
	Name       string `json:"name"`
	UnitPrice  int64  `json:"unit_price"`
	Quantity   int    `json:"quantity"`
	LineTotal  int64  `json:"line_total"`
}

// OrderResponse response.
type OrderResponse struct {
	ID          int                 `json:"id"`
	Reference   string              `json:"reference"`
	CustomerID  *int                `json:"customer_id"`
	TableNumber *int                `json:"table_number"`
	Status      domain.OrderStatus  `json:"status"`
	Total       int64               `json:"total"`
	Note        string              `json:"note"`
	Items       []OrderItemResponse `json:"items,omitempty"`
	CreatedAt   time.Time           `json:"created_at"`
	UpdatedAt   time.Time           `json:"updated_at"`
}

// NewOrderResponse maps a domain order.
func NewOrderResponse(o domain.Order) OrderResponse {
	resp := OrderResponse{
		ID:          o.ID,
		Reference:   o.Reference,
		CustomerID:  o.CustomerID,
		TableNumber: o.TableNumber,
		Status:      o.Status,
		Total:       o.Total,
		Note:        o.Note,
		CreatedAt:   o.CreatedAt,
		UpdatedAt:   o.UpdatedAt,
	}
	for _, item := range o.Items {
		resp.Items = append(resp.Items, OrderItemResponse{
			ID:         item.ID,
			MenuItemID: item.MenuItemID,
			Name:       item.Name,
			UnitPrice:  item.UnitPrice,
			Quantity:   item.Quantity,
			LineTotal:  item.LineTotal(),
		})
	}
	return resp
}
