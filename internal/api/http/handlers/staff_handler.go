package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/d3ads3c/cafepanel-sub000/internal/api/dto"
	"github.com/d3ads3c/cafepanel-sub000/internal/auth"
	"github.com/d3ads3c/cafepanel-sub000/internal/config"
	"github.com/d3ads3c/cafepanel-sub000/internal/domain"
	"github.com/d3ads3c/cafepanel-sub000/internal/repository"
	apperrors "github.com/d3ads3c/cafepanel-sub000/pkg/util"
)

// StaffHandler manages panel accounts for the caller's café. Accounts live on
// the control database; a café admin only ever sees their own café's staff.
type StaffHandler struct {
	staff repository.StaffRepository
	cfg   config.AuthConfig
}

// NewStaffHandler constructs handler.
func NewStaffHandler(staff repository.StaffRepository, cfg config.AuthConfig) *StaffHandler {
	return &StaffHandler{staff: staff, cfg: cfg}
}

// List handles GET /api/staff.
func (h *StaffHandler) List(c *fiber.Ctx) error {
	claims, found := auth.ClaimsFromContext(c)
	if !found {
		return apperrors.NewUnauthorized("authentication required")
	}

	members, err := h.staff.ListByCafe(c.UserContext(), claims.CafeName)
	if err != nil {
		return apperrors.MapError(err)
	}

	resp := make([]dto.StaffResponse, 0, len(members))
	for _, member := range members {
		resp = append(resp, dto.NewStaffResponse(member))
	}
	return ok(c, http.StatusOK, resp)
}

// Create handles POST /api/staff. The new account inherits the café and plan
// of the caller; permissions are granted explicitly.
func (h *StaffHandler) Create(c *fiber.Ctx) error {
	claims, found := auth.ClaimsFromContext(c)
	if !found {
		return apperrors.NewUnauthorized("authentication required")
	}

	var req dto.CreateStaffRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Username == "" || len(req.Password) < 8 {
		return apperrors.NewValidationError("username and password of at least 8 characters required", nil)
	}

	hash, err := auth.HashPassword(req.Password, h.cfg.BcryptCost)
	if err != nil {
		return apperrors.MapError(err)
	}

	staff := &domain.StaffUser{
		Username:     req.Username,
		PasswordHash: hash,
		CafeName:     claims.CafeName,
		Plan:         claims.Plan,
		Permissions:  req.Permissions,
		Active:       true,
	}
	if err := h.staff.Create(c.UserContext(), staff); err != nil {
		return apperrors.MapError(err)
	}
	return ok(c, http.StatusCreated, dto.NewStaffResponse(*staff))
}

// Update handles PUT /api/staff/:id. Accounts of other cafés are invisible,
// not forbidden.
func (h *StaffHandler) Update(c *fiber.Ctx) error {
	claims, found := auth.ClaimsFromContext(c)
	if !found {
		return apperrors.NewUnauthorized("authentication required")
	}

	id, err := c.ParamsInt("id")
	if err != nil {
		return apperrors.NewValidationError("invalid id", nil)
	}

	staff, err := h.staff.GetByID(c.UserContext(), id)
	if err != nil {
		return apperrors.MapError(err)
	}
	if staff.CafeName != claims.CafeName {
		return apperrors.NewNotFound("staff account", nil)
	}

	var req dto.UpdateStaffRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	if req.Password != nil {
		if len(*req.Password) < 8 {
			return apperrors.NewValidationError("password of at least 8 characters required", nil)
		}
		hash, err := auth.HashPassword(*req.Password, h.cfg.BcryptCost)
		if err != nil {
			return apperrors.MapError(err)
		}
		staff.PasswordHash = hash
	}
	if req.Permissions != nil {
		staff.Permissions = *req.Permissions
	}
	if req.Active != nil {
		staff.Active = *req.Active
	}

	if err := h.staff.Update(c.UserContext(), staff); err != nil {
		return apperrors.MapError(err)
	}
	return ok(c, http.StatusOK, dto.NewStaffResponse(*staff))
}
