package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/d3ads3c/cafepanel-sub000/internal/config"
)

func TestAdaptClaims(t *testing.T) {
	claims := AdaptClaims(map[string]any{
		"userId":      float64(7),
		"username":    "sara",
		"plan":        "pro",
		"cafename":    "cafe-baran",
		"permissions": []any{"manage_menu"},
	})
	if claims == nil {
		t.Fatal("expected claims")
	}
	if claims.UserID != 7 || claims.Username != "sara" || claims.CafeName != "cafe-baran" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
	if len(claims.Permissions) != 1 || claims.Permissions[0] != "manage_menu" {
		t.Fatalf("unexpected permissions: %v", claims.Permissions)
	}
}

func TestAdaptClaimsAliases(t *testing.T) {
	claims := AdaptClaims(map[string]any{
		"user_id":      float64(3),
		"user_name":    "ali",
		"subscription": "advance",
		"cafe_name":    "cafe-golestan",
		"perms":        "0",
	})
	if claims == nil {
		t.Fatal("expected claims")
	}
	if claims.UserID != 3 || claims.Plan != "advance" || claims.CafeName != "cafe-golestan" {
		t.Fatalf("alias fields not picked up: %+v", claims)
	}
	if len(claims.Permissions) == 0 {
		t.Fatal("sentinel permissions not expanded")
	}
}

func TestAdaptClaimsNestedData(t *testing.T) {
	claims := AdaptClaims(map[string]any{
		"data": map[string]any{
			"id":      float64(9),
			"name":    "reza",
			"Plan":    "basic",
			"cafe":    "cafe-shadi",
			"access":  []any{"view_dashboard"},
			"ignored": true,
		},
	})
	if claims == nil {
		t.Fatal("expected claims from nested data envelope")
	}
	if claims.UserID != 9 || claims.CafeName != "cafe-shadi" {
		t.Fatalf("nested fields not picked up: %+v", claims)
	}
}

func TestAdaptClaimsRejectsMissingTenant(t *testing.T) {
	claims := AdaptClaims(map[string]any{
		"userId":   float64(1),
		"username": "ghost",
		"plan":     "pro",
	})
	if claims != nil {
		t.Fatalf("claims without cafename must be rejected, got %+v", claims)
	}
	if AdaptClaims(nil) != nil {
		t.Fatal("nil input must yield nil claims")
	}
}

func TestNewIdentityClientDisabled(t *testing.T) {
	if NewIdentityClient(config.IdentityConfig{}) != nil {
		t.Fatal("empty base URL must disable the client")
	}
}

func TestWhoAmI(t *testing.T) {
	var gotSession, gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotSession = r.Header.Get("X-Session-Token")
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data":{"userId":5,"username":"nima","plan":"pro","cafename":"cafe-niloofar","permissions":"manage_menu,manage_orders"}}`))
	}))
	defer server.Close()

	client := NewIdentityClient(config.IdentityConfig{
		BaseURL:        server.URL,
		ServiceSecret:  "service-secret",
		CallTimeoutSec: 2,
	})

	claims, err := client.WhoAmI(context.Background(), "session-abc")
	if err != nil {
		t.Fatalf("WhoAmI: %v", err)
	}
	if claims == nil {
		t.Fatal("expected claims")
	}
	if claims.UserID != 5 || claims.CafeName != "cafe-niloofar" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
	if len(claims.Permissions) != 2 {
		t.Fatalf("csv permissions not split: %v", claims.Permissions)
	}
	if gotSession != "session-abc" {
		t.Errorf("session token header = %q", gotSession)
	}
	if !strings.HasPrefix(gotAuth, "Bearer ") {
		t.Errorf("authorization header = %q", gotAuth)
	}
}

func TestWhoAmIFailureYieldsNil(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewIdentityClient(config.IdentityConfig{
		BaseURL:        server.URL,
		ServiceSecret:  "service-secret",
		CallTimeoutSec: 2,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	claims, err := client.WhoAmI(ctx, "session-abc")
	if err != nil {
		t.Fatalf("fallback must not surface errors, got %v", err)
	}
	if claims != nil {
		t.Fatalf("failing backend must yield nil claims, got %+v", claims)
	}
}
