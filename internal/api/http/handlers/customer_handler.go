package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/d3ads3c/cafepanel-sub000/internal/api/dto"
	"github.com/d3ads3c/cafepanel-sub000/internal/domain"
	"github.com/d3ads3c/cafepanel-sub000/internal/repository"
	"github.com/d3ads3c/cafepanel-sub000/internal/tenant"
	apperrors "github.com/d3ads3c/cafepanel-sub000/pkg/util"
)

// CustomerHandler exposes customer record CRUD for the caller's café.
type CustomerHandler struct {
	tenants *tenant.Manager
}

// NewCustomerHandler constructs handler.
func NewCustomerHandler(tenants *tenant.Manager) *CustomerHandler {
	return &CustomerHandler{tenants: tenants}
}

// List handles GET /api/customers.
func (h *CustomerHandler) List(c *fiber.Ctx) error {
	db, _, err := resolveTenant(c, h.tenants)
	if err != nil {
		return err
	}

	customers, err := repository.NewCustomerRepository(db.Pool()).List(c.UserContext())
	if err != nil {
		return apperrors.MapError(err)
	}

	resp := make([]dto.CustomerResponse, 0, len(customers))
	for _, customer := range customers {
		resp = append(resp, dto.NewCustomerResponse(customer))
	}
	return ok(c, http.StatusOK, resp)
}

// Get handles GET /api/customers/:id.
func (h *CustomerHandler) Get(c *fiber.Ctx) error {
	db, _, err := resolveTenant(c, h.tenants)
	if err != nil {
		return err
	}

	id, err := c.ParamsInt("id")
	if err != nil {
		return apperrors.NewValidationError("invalid id", nil)
	}

	customer, err := repository.NewCustomerRepository(db.Pool()).GetByID(c.UserContext(), id)
	if err != nil {
		return apperrors.MapError(err)
	}
	return ok(c, http.StatusOK, dto.NewCustomerResponse(*customer))
}

// Create handles POST /api/customers.
func (h *CustomerHandler) Create(c *fiber.Ctx) error {
	db, _, err := resolveTenant(c, h.tenants)
	if err != nil {
		return err
	}

	var req dto.CustomerRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Name == "" {
		return apperrors.NewValidationError("name required", nil)
	}

	customer := &domain.Customer{Name: req.Name, Phone: req.Phone, Address: req.Address, Note: req.Note}
	if err := repository.NewCustomerRepository(db.Pool()).Create(c.UserContext(), customer); err != nil {
		return apperrors.MapError(err)
	}
	return ok(c, http.StatusCreated, dto.NewCustomerResponse(*customer))
}

// Update handles PUT /api/customers/:id.
func (h *CustomerHandler) Update(c *fiber.Ctx) error {
	db, _, err := resolveTenant(c, h.tenants)
	if err != nil {
		return err
	}

	id, err := c.ParamsInt("id")
	if err != nil {
		return apperrors.NewValidationError("invalid id", nil)
	}

	var req dto.CustomerRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	customer := &domain.Customer{ID: id, Name: req.Name, Phone: req.Phone, Address: req.Address, Note: req.Note}
	if err := repository.NewCustomerRepository(db.Pool()).Update(c.UserContext(), customer); err != nil {
		return apperrors.MapError(err)
	}
	return ok(c, http.StatusOK, dto.NewCustomerResponse(*customer))
}

// Delete handles DELETE /api/customers/:id.
func (h *CustomerHandler) Delete(c *fiber.Ctx) error {
	db, _, err := resolveTenant(c, h.tenants)
	if err != nil {
		return err
	}

	id, err := c.ParamsInt("id")
	if err != nil {
		return apperrors.NewValidationError("invalid id", nil)
	}

	if err := repository.NewCustomerRepository(db.Pool()).Delete(c.UserContext(), id); err != nil {
		return apperrors.MapError(err)
	}
	return ok(c, http.StatusOK, fiber.Map{"deleted": id})
}
