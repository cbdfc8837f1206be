package auth

import (
	"github.com/gofiber/fiber/v2"

	"github.com/d3ads3c/cafepanel-sub000/internal/domain"
	apperrors "github.com/d3ads3c/cafepanel-sub000/pkg/util"
)

const claimsKey = "auth_claims"

// Middleware authenticates requests and enforces permission checks.
type Middleware struct {
	resolver *Resolver
}

// NewMiddleware constructs middleware around a resolver.
func NewMiddleware(resolver *Resolver) *Middleware {
	return &Middleware{resolver: resolver}
}

// Authenticate resolves session claims and rejects the request with a
// generic 401 when none can be recovered.
func (m *Middleware) Authenticate(c *fiber.Ctx) error {
	claims := m.resolver.Resolve(c)
	if claims == nil {
		return apperrors.NewUnauthorized("authentication required")
	}
	c.Locals(claimsKey, claims)
	return c.Next()
}

// RequirePermission enforces the permission-and-plan conjunction for a route.
// The check itself is a single boolean; the axes are re-derived only to pick
// the friendlier 403 message the UI uses for upgrade prompts.
func RequirePermission(permission domain.Permission) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, ok := ClaimsFromContext(c)
		if !ok {
			return apperrors.NewUnauthorized("authentication required")
		}
		if claims.HasPermission(permission) {
			return c.Next()
		}
		if !domain.HasPlanAccess(claims.Plan, domain.RequiredTier(permission)) {
			return apperrors.NewForbidden("plan upgrade required")
		}
		return apperrors.NewForbidden("missing permission")
	}
}

// ClaimsFromContext retrieves the authenticated claims set by Authenticate.
func ClaimsFromContext(c *fiber.Ctx) (*domain.Claims, bool) {
	val := c.Locals(claimsKey)
	if val == nil {
		return nil, false
	}
	claims, ok := val.(*domain.Claims)
	return claims, ok
}
