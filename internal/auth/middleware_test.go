package auth

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/d3ads3c/cafepanel-sub000/internal/domain"
	apperrors "github.com/d3ads3c/cafepanel-sub000/pkg/util"
)

const testCookie = "cafe_session"

func newTestApp(tm *TokenManager) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		err := c.Next()
		if err == nil {
			return nil
		}
		domainErr := apperrors.ToDomainError(err)
		return c.Status(domainErr.HTTPStatus).JSON(fiber.Map{
			"success": false,
			"message": domainErr.Message,
			"code":    domainErr.Code,
		})
	})

	resolver := NewResolver(tm, nil, testCookie, zap.NewNop())
	mw := NewMiddleware(resolver)

	protected := app.Group("/api", mw.Authenticate)
	protected.Get("/me", func(c *fiber.Ctx) error {
		claims, _ := ClaimsFromContext(c)
		return c.JSON(fiber.Map{"success": true, "username": claims.Username})
	})
	protected.Get("/accounting", RequirePermission(domain.PermManageAccounting), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"success": true})
	})
	protected.Get("/staff", RequirePermission(domain.PermManageUsers), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"success": true})
	})
	return app
}

func signedCookie(t *testing.T, tm *TokenManager, claims domain.Claims) *http.Cookie {
	t.Helper()
	token, err := tm.Sign(&claims, time.Hour)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	return &http.Cookie{Name: testCookie, Value: token}
}

func doRequest(t *testing.T, app *fiber.App, path string, cookie *http.Cookie) (*http.Response, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request %s: %v", path, err)
	}
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()

	var parsed map[string]any
	if err := json.Unmarshal(body, &parsed); err != nil {
		t.Fatalf("response body %q: %v", body, err)
	}
	return resp, parsed
}

func TestAuthenticateRejectsMissingCookie(t *testing.T) {
	app := newTestApp(NewTokenManager("test-secret"))

	resp, body := doRequest(t, app, "/api/me", nil)
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", resp.StatusCode)
	}
	if body["success"] != false {
		t.Fatalf("expected failure envelope, got %v", body)
	}
}

func TestAuthenticateRejectsTamperedToken(t *testing.T) {
	tm := NewTokenManager("test-secret")
	app := newTestApp(tm)

	cookie := signedCookie(t, tm, testClaims())
	cookie.Value += "x"
	resp, _ := doRequest(t, app, "/api/me", cookie)
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", resp.StatusCode)
	}
}

func TestAuthenticateAcceptsValidCookie(t *testing.T) {
	tm := NewTokenManager("test-secret")
	app := newTestApp(tm)

	resp, body := doRequest(t, app, "/api/me", signedCookie(t, tm, testClaims()))
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	if body["username"] != "morteza" {
		t.Fatalf("unexpected body: %v", body)
	}
}

func TestRequirePermissionGranted(t *testing.T) {
	tm := NewTokenManager("test-secret")
	app := newTestApp(tm)

	claims := testClaims()
	claims.Permissions = []string{"manage_accounting"}
	resp, _ := doRequest(t, app, "/api/accounting", signedCookie(t, tm, claims))
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
}

func TestRequirePermissionPlanUpgradeMessage(t *testing.T) {
	tm := NewTokenManager("test-secret")
	app := newTestApp(tm)

	// grant held but the plan tier is too low
	claims := testClaims()
	claims.Plan = "basic"
	claims.Permissions = []string{"manage_accounting"}
	resp, body := doRequest(t, app, "/api/accounting", signedCookie(t, tm, claims))
	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", resp.StatusCode)
	}
	if body["message"] != "plan upgrade required" {
		t.Fatalf("message = %v, want plan upgrade prompt", body["message"])
	}
}

func TestRequirePermissionMissingGrantMessage(t *testing.T) {
	tm := NewTokenManager("test-secret")
	app := newTestApp(tm)

	// plan covers the tier but the grant is absent
	claims := testClaims()
	claims.Plan = "advance"
	claims.Permissions = []string{"manage_menu"}
	resp, body := doRequest(t, app, "/api/staff", signedCookie(t, tm, claims))
	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", resp.StatusCode)
	}
	if body["message"] != "missing permission" {
		t.Fatalf("message = %v, want missing permission", body["message"])
	}
}

func TestRequirePermissionAdvanceGate(t *testing.T) {
	tm := NewTokenManager("test-secret")
	app := newTestApp(tm)

	// pro plan holding manage_users must still be refused
	claims := testClaims()
	claims.Plan = "pro"
	claims.Permissions = []string{"manage_users"}
	resp, body := doRequest(t, app, "/api/staff", signedCookie(t, tm, claims))
	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", resp.StatusCode)
	}
	if body["message"] != "plan upgrade required" {
		t.Fatalf("message = %v, want plan upgrade prompt", body["message"])
	}
}
