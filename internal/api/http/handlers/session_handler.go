package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/d3ads3c/cafepanel-sub000/internal/api/dto"
	"github.com/d3ads3c/cafepanel-sub000/internal/auth"
	"github.com/d3ads3c/cafepanel-sub000/internal/config"
	"github.com/d3ads3c/cafepanel-sub000/internal/domain"
	"github.com/d3ads3c/cafepanel-sub000/internal/service"
	apperrors "github.com/d3ads3c/cafepanel-sub000/pkg/util"
)

// SessionHandler exposes login, logout and the current-session endpoint.
type SessionHandler struct {
	sessions *service.SessionService
	cfg      config.AuthConfig
}

// NewSessionHandler constructs handler.
func NewSessionHandler(sessions *service.SessionService, cfg config.AuthConfig) *SessionHandler {
	return &SessionHandler{sessions: sessions, cfg: cfg}
}

// Login handles POST /api/auth/login.
func (h *SessionHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Username == "" || req.Password == "" {
		return apperrors.NewValidationError("username and password required", nil)
	}

	claims, token, err := h.sessions.Login(c.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			return apperrors.NewUnauthorized("invalid credentials")
		}
		return apperrors.MapError(err)
	}

	c.Cookie(&fiber.Cookie{
		Name:     h.cfg.CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(h.sessions.TTL() / time.Second),
		HTTPOnly: true,
		Secure:   h.cfg.CookieSecure,
		SameSite: fiber.CookieSameSiteLaxMode,
	})

	return ok(c, http.StatusOK, sessionResponse(claims))
}

// Logout handles POST /api/auth/logout by expiring the cookie.
func (h *SessionHandler) Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     h.cfg.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HTTPOnly: true,
		Secure:   h.cfg.CookieSecure,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	return ok(c, http.StatusOK, fiber.Map{"loggedOut": true})
}

// Me handles GET /api/auth/me for authenticated callers.
func (h *SessionHandler) Me(c *fiber.Ctx) error {
	claims, found := auth.ClaimsFromContext(c)
	if !found {
		return apperrors.NewUnauthorized("authentication required")
	}
	return ok(c, http.StatusOK, sessionResponse(claims))
}

func sessionResponse(claims *domain.Claims) dto.SessionResponse {
	return dto.SessionResponse{
		UserID:      claims.UserID,
		Username:    claims.Username,
		CafeName:    claims.CafeName,
		Plan:        claims.Tier().String(),
		PlanDisplay: claims.Tier().DisplayName(),
		Permissions: claims.Permissions,
		ExpiresAt:   claims.ExpiresAt,
	}
}
