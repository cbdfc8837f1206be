package tenant

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/d3ads3c/cafepanel-sub000/internal/config"
	"github.com/d3ads3c/cafepanel-sub000/internal/domain"
)

func TestResolveFailsClosed(t *testing.T) {
	m := NewManager(NewRegistry(nil, nil, 0, zap.NewNop()), config.TenantConfig{}, zap.NewNop())

	if _, err := m.Resolve(context.Background(), nil); !errors.Is(err, ErrTenantNotFound) {
		t.Fatalf("nil claims: got %v, want ErrTenantNotFound", err)
	}

	claims := &domain.Claims{UserID: 1, Username: "ali"}
	if _, err := m.Resolve(context.Background(), claims); !errors.Is(err, ErrTenantNotFound) {
		t.Fatalf("claims without cafename: got %v, want ErrTenantNotFound", err)
	}
}

func TestRegistryLookupEmptyName(t *testing.T) {
	r := NewRegistry(nil, nil, 0, zap.NewNop())
	if _, err := r.Lookup(context.Background(), ""); !errors.Is(err, ErrTenantNotFound) {
		t.Fatalf("got %v, want ErrTenantNotFound", err)
	}
}

func TestCacheKeyIsolation(t *testing.T) {
	if cacheKey("cafe-a") == cacheKey("cafe-b") {
		t.Fatal("distinct cafés must not share a cache key")
	}
	if cacheKey("cafe-a") != "tenant:registry:cafe-a" {
		t.Fatalf("unexpected key %q", cacheKey("cafe-a"))
	}
}
