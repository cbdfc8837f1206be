package auth

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/d3ads3c/cafepanel-sub000/internal/domain"
)

// Resolver recovers the caller's session claims from a request. It is the
// single entry point used by every protected route.
type Resolver struct {
	tokens     *TokenManager
	identity   *IdentityClient
	cookieName string
	logger     *zap.Logger
}

// NewResolver constructs a resolver. identity may be nil to disable the
// fallback verification path.
func NewResolver(tokens *TokenManager, identity *IdentityClient, cookieName string, logger *zap.Logger) *Resolver {
	return &Resolver{tokens: tokens, identity: identity, cookieName: cookieName, logger: logger}
}

// Resolve reads the session cookie and verifies it locally, falling back to
// the identity service when local verification fails. Absent, malformed,
// expired and tampered tokens all collapse to nil; callers cannot
// distinguish the reason.
func (r *Resolver) Resolve(c *fiber.Ctx) *domain.Claims {
	token := c.Cookies(r.cookieName)
	if token == "" {
		return nil
	}

	claims, err := r.tokens.Verify(token)
	if err == nil {
		return claims
	}

	if r.identity == nil {
		return nil
	}

	claims, err = r.identity.WhoAmI(c.UserContext(), token)
	if err != nil || claims == nil {
		r.logger.Debug("identity fallback yielded no claims")
		return nil
	}
	return claims
}
