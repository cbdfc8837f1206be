package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"

	"github.com/d3ads3c/cafepanel-sub000/internal/config"
	"github.com/d3ads3c/cafepanel-sub000/internal/domain"
)

// IdentityClient calls the upstream identity service's "who am I" endpoint
// when a session token cannot be verified locally. The call is authenticated
// with a short-lived HS256 service token.
type IdentityClient struct {
	cfg  config.IdentityConfig
	http *http.Client
}

// NewIdentityClient builds a client; returns nil when no base URL is
// configured, which disables the fallback path entirely.
func NewIdentityClient(cfg config.IdentityConfig) *IdentityClient {
	if cfg.BaseURL == "" {
		return nil
	}
	return &IdentityClient{
		cfg:  cfg,
		http: &http.Client{Timeout: cfg.CallTimeout()},
	}
}

// WhoAmI resends the caller's session token to the identity service and
// adapts the claims-shaped response. Any failure yields (nil, nil): the
// fallback never surfaces backend errors to the auth decision.
func (ic *IdentityClient) WhoAmI(ctx context.Context, sessionToken string) (*domain.Claims, error) {
	body, err := ic.call(ctx, http.MethodGet, sessionToken)
	if err != nil {
		body, err = ic.call(ctx, http.MethodPost, sessionToken)
	}
	if err != nil {
		return nil, nil
	}

	var raw map[string]any
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, nil
	}
	return AdaptClaims(raw), nil
}

func (ic *IdentityClient) call(ctx context.Context, method, sessionToken string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, method, ic.cfg.BaseURL+"/api/auth/me", nil)
	if err != nil {
		return nil, err
	}

	serviceToken, err := ic.serviceToken()
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+serviceToken)
	req.Header.Set("X-Session-Token", sessionToken)

	resp, err := ic.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("identity service status %d", resp.StatusCode)
	}
	return io.ReadAll(io.LimitReader(resp.Body, 1<<20))
}

// serviceToken mints the HS256 token that authenticates this service to the
// identity backend.
func (ic *IdentityClient) serviceToken() (string, error) {
	ttl := ic.cfg.ServiceTokenTTL
	if ttl <= 0 {
		ttl = time.Minute
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Issuer:    "cafepanel",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	})
	return token.SignedString([]byte(ic.cfg.ServiceSecret))
}

// claim field aliases observed across identity service versions.
var (
	userIDAliases   = []string{"userId", "user_id", "id"}
	usernameAliases = []string{"username", "user_name", "name"}
	planAliases     = []string{"plan", "Plan", "subscription"}
	cafeAliases     = []string{"cafename", "cafe_name", "cafe"}
	permAliases     = []string{"permissions", "perms", "access"}
)

// AdaptClaims maps a loosely-shaped identity response onto Claims. The
// "guess the field name" logic lives only here. Returns nil when no tenant
// marker can be recovered, since claims without one are unusable.
func AdaptClaims(raw map[string]any) *domain.Claims {
	if raw == nil {
		return nil
	}
	if nested, ok := raw["data"].(map[string]any); ok {
		raw = nested
	}

	claims := &domain.Claims{
		UserID:   pickInt(raw, userIDAliases),
		Username: pickString(raw, usernameAliases),
		Plan:     pickString(raw, planAliases),
		CafeName: pickString(raw, cafeAliases),
	}
	claims.Permissions = domain.ParsePermissions(pickAny(raw, permAliases))

	if claims.CafeName == "" {
		return nil
	}
	return claims
}

func pickAny(raw map[string]any, aliases []string) any {
	for _, key := range aliases {
		if val, ok := raw[key]; ok && val != nil {
			return val
		}
	}
	return nil
}

func pickString(raw map[string]any, aliases []string) string {
	if s, ok := pickAny(raw, aliases).(string); ok {
		return s
	}
	return ""
}

func pickInt(raw map[string]any, aliases []string) int {
	switch v := pickAny(raw, aliases).(type) {
	case float64:
		return int(v)
	case int:
		return v
	}
	return 0
}
