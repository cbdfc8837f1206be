package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/d3ads3c/cafepanel-sub000/internal/api/dto"
	"github.com/d3ads3c/cafepanel-sub000/internal/domain"
	"github.com/d3ads3c/cafepanel-sub000/internal/repository"
	"github.com/d3ads3c/cafepanel-sub000/internal/service"
	"github.com/d3ads3c/cafepanel-sub000/internal/tenant"
	apperrors "github.com/d3ads3c/cafepanel-sub000/pkg/util"
)

// OrderHandler exposes order intake and lifecycle endpoints.
type OrderHandler struct {
	tenants *tenant.Manager
	orders  *service.OrderService
}

// NewOrderHandler constructs handler.
func NewOrderHandler(tenants *tenant.Manager, orders *service.OrderService) *OrderHandler {
	return &OrderHandler{tenants: tenants, orders: orders}
}

// List handles GET /api/orders.
func (h *OrderHandler) List(c *fiber.Ctx) error {
	db, _, err := resolveTenant(c, h.tenants)
	if err != nil {
		return err
	}

	var status *domain.OrderStatus
	if raw := c.Query("status"); raw != "" {
		s := domain.OrderStatus(raw)
		status = &s
	}

	orders, err := repository.NewOrderRepository(db.Pool()).List(c.UserContext(), status)
	if err != nil {
		return apperrors.MapError(err)
	}

	resp := make([]dto.OrderResponse, 0, len(orders))
	for _, order := range orders {
		resp = append(resp, dto.NewOrderResponse(order))
	}
	return ok(c, http.StatusOK, resp)
}

// Get handles GET /api/orders/:id.
func (h *OrderHandler) Get(c *fiber.Ctx) error {
	db, _, err := resolveTenant(c, h.tenants)
	if err != nil {
		return err
	}

	id, err := c.ParamsInt("id")
	if err != nil {
		return apperrors.NewValidationError("invalid id", nil)
	}

	order, err := repository.NewOrderRepository(db.Pool()).GetByID(c.UserContext(), id)
	if err != nil {
		return apperrors.MapError(err)
	}
	return ok(c, http.StatusOK, dto.NewOrderResponse(*order))
}

// Create handles POST /api/orders.
func (h *OrderHandler) Create(c *fiber.Ctx) error {
	db, _, err := resolveTenant(c, h.tenants)
	if err != nil {
		return err
	}

	var req dto.CreateOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	input := service.CreateOrderInput{
		CustomerID:  req.CustomerID,
		TableNumber: req.TableNumber,
		Note:        req.Note,
	}
	for _, line := range req.Lines {
		input.Lines = append(input.Lines, service.OrderLineInput{
			MenuItemID: line.MenuItemID,
			Quantity:   line.Quantity,
		})
	}

	order, err := h.orders.CreateOrder(c.UserContext(), db, input)
	if err != nil {
		return apperrors.MapError(err)
	}
	return ok(c, http.StatusCreated, dto.NewOrderResponse(*order))
}

// ChangeStatus handles PATCH /api/orders/:id/status.
func (h *OrderHandler) ChangeStatus(c *fiber.Ctx) error {
	db, _, err := resolveTenant(c, h.tenants)
	if err != nil {
		return err
	}

	id, err := c.ParamsInt("id")
	if err != nil {
		return apperrors.NewValidationError("invalid id", nil)
	}

	var req dto.ChangeOrderStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	order, err := h.orders.ChangeStatus(c.UserContext(), db, id, req.Status)
	if err != nil {
		return apperrors.MapError(err)
	}
	return ok(c, http.StatusOK, dto.NewOrderResponse(*order))
}
