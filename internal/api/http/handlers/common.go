package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/d3ads3c/cafepanel-sub000/internal/auth"
	"github.com/d3ads3c/cafepanel-sub000/internal/domain"
	"github.com/d3ads3c/cafepanel-sub000/internal/tenant"
	apperrors "github.com/d3ads3c/cafepanel-sub000/pkg/util"
)

// ok writes the success envelope.
func ok(c *fiber.Ctx, status int, data any) error {
	return c.Status(status).JSON(fiber.Map{"success": true, "data": data})
}

// resolveTenant yields the caller's tenant database. Resolution failures are
// reported as an authentication error; there is no default database.
func resolveTenant(c *fiber.Ctx, tenants *tenant.Manager) (*tenant.DB, *domain.Claims, error) {
	claims, found := auth.ClaimsFromContext(c)
	if !found {
		return nil, nil, apperrors.NewUnauthorized("authentication required")
	}

	db, err := tenants.Resolve(c.UserContext(), claims)
	if err != nil {
		if errors.Is(err, tenant.ErrTenantNotFound) || errors.Is(err, tenant.ErrTenantDisabled) {
			return nil, nil, apperrors.NewUnauthorized("authentication required")
		}
		return nil, nil, apperrors.MapError(err)
	}
	return db, claims, nil
}
