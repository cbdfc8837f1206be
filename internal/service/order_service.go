package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/d3ads3c/cafepanel-sub000/internal/domain"
	"github.com/d3ads3c/cafepanel-sub000/internal/events"
	"github.com/d3ads3c/cafepanel-sub000/internal/repository"
	"github.com/d3ads3c/cafepanel-sub000/internal/tenant"
	apperrors "github.com/d3ads3c/cafepanel-sub000/pkg/util"
)

// OrderLineInput is one requested order line.
type OrderLineInput struct {
	MenuItemID int
	Quantity   int
}

// CreateOrderInput carries everything needed to open an order.
type CreateOrderInput struct {
	CustomerID  *int
	TableNumber *int
	Note        string
	Lines       []OrderLineInput
}

// OrderService coordinates order intake and lifecycle. It is stateless;
// every call works against the caller's resolved tenant database.
type OrderService struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// NewOrderService builds the service.
func NewOrderService(dispatcher events.Dispatcher, logger *zap.Logger) *OrderService {
	return &OrderService{dispatcher: dispatcher, logger: logger}
}

// CreateOrder prices the requested lines from the menu and writes the order
// with its items in one transaction.
func (s *OrderService) CreateOrder(ctx context.Context, db *tenant.DB, input CreateOrderInput) (*domain.Order, error) {
	if len(input.Lines) == 0 {
		return nil, apperrors.NewValidationError("order needs at least one line", nil)
	}

	order := &domain.Order{
		Reference:   uuid.NewString(),
		CustomerID:  input.CustomerID,
		TableNumber: input.TableNumber,
		Status:      domain.OrderStatusPending,
		Note:        input.Note,
	}

	err := db.RunTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		menu := repository.NewMenuRepository(tx)
		for _, line := range input.Lines {
			if line.Quantity <= 0 {
				return apperrors.NewValidationError("quantity must be positive", nil)
			}
			item, err := menu.GetByID(ctx, line.MenuItemID)
			if err != nil {
				if errors.Is(err, pgx.ErrNoRows) {
					return apperrors.NewValidationError("unknown menu item", map[string]any{"menu_item_id": line.MenuItemID})
				}
				return err
			}
			if !item.Available {
				return apperrors.NewValidationError("menu item unavailable", map[string]any{"menu_item_id": item.ID})
			}
			order.Items = append(order.Items, domain.OrderItem{
				MenuItemID: item.ID,
				Name:       item.Name,
				UnitPrice:  item.Price,
				Quantity:   line.Quantity,
			})
		}

		for _, item := range order.Items {
			order.Total += item.LineTotal()
		}

		orders := repository.NewOrderRepository(tx)
		return orders.Create(ctx, tx, order)
	})
	if err != nil {
		return nil, err
	}

	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      events.EventOrderCreated,
		CafeName:  db.CafeName(),
		Timestamp: time.Now(),
		Payload: events.OrderCreatedPayload{
			OrderID:     order.ID,
			Reference:   order.Reference,
			TableNumber: order.TableNumber,
			Total:       order.Total,
			ItemCount:   len(order.Items),
		},
	})
	return order, nil
}

// allowed status transitions
var orderTransitions = map[domain.OrderStatus][]domain.OrderStatus{
	domain.OrderStatusPending:   {domain.OrderStatusPreparing, domain.OrderStatusCancelled},
	domain.OrderStatusPreparing: {domain.OrderStatusServed, domain.OrderStatusCancelled},
	domain.OrderStatusServed:    {domain.OrderStatusPaid},
}

// ChangeStatus advances an order through its lifecycle.
func (s *OrderService) ChangeStatus(ctx context.Context, db *tenant.DB, orderID int, next domain.OrderStatus) (*domain.Order, error) {
	orders := repository.NewOrderRepository(db.Pool())

	order, err := orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if !transitionAllowed(order.Status, next) {
		return nil, apperrors.NewValidationError("invalid status transition", map[string]any{
			"from": order.Status,
			"to":   next,
		})
	}

	if err := orders.UpdateStatus(ctx, orderID, next); err != nil {
		return nil, err
	}

	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      events.EventOrderStatusChanged,
		CafeName:  db.CafeName(),
		Timestamp: time.Now(),
		Payload: events.OrderStatusChangedPayload{
			OrderID:   orderID,
			OldStatus: order.Status,
			NewStatus: next,
		},
	})

	order.Status = next
	return order, nil
}

func transitionAllowed(from, to domain.OrderStatus) bool {
	for _, allowed := range orderTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}
