package tenant

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/d3ads3c/cafepanel-sub000/internal/domain"
)

// Sentinel errors for tenant resolution. Both must surface to clients as an
// authentication failure; resolution fails closed, never to a shared database.
var (
	ErrTenantNotFound = errors.New("tenant: not found")
	ErrTenantDisabled = errors.New("tenant: disabled")
)

// Registry resolves a café name to its tenant record. Lookups go through a
// Redis cache with the control database as the source of truth.
type Registry struct {
	control *pgxpool.Pool
	cache   *redis.Client
	ttl     time.Duration
	logger  *zap.Logger
}

// NewRegistry builds a registry. cache may be nil; lookups then always hit
// the control database.
func NewRegistry(control *pgxpool.Pool, cache *redis.Client, ttl time.Duration, logger *zap.Logger) *Registry {
	return &Registry{control: control, cache: cache, ttl: ttl, logger: logger}
}

type cachedTenant struct {
	DSN    string `json:"dsn"`
	Active bool   `json:"active"`
}

// Lookup returns the tenant record for a café name. Unknown and inactive
// tenants are errors; an empty name never matches anything.
func (r *Registry) Lookup(ctx context.Context, cafename string) (*domain.Tenant, error) {
	if cafename == "" {
		return nil, ErrTenantNotFound
	}

	if cached := r.fromCache(ctx, cafename); cached != nil {
		if !cached.Active {
			return nil, ErrTenantDisabled
		}
		return &domain.Tenant{CafeName: cafename, DSN: cached.DSN, Active: true}, nil
	}

	tenant, err := r.fromControl(ctx, cafename)
	if err != nil {
		return nil, err
	}

	r.storeCache(ctx, tenant)

	if !tenant.Active {
		return nil, ErrTenantDisabled
	}
	return tenant, nil
}

func (r *Registry) fromControl(ctx context.Context, cafename string) (*domain.Tenant, error) {
	const query = `
        SELECT id, cafename, dsn, active, created_at, updated_at
        FROM tenants WHERE cafename=$1`

	var tenant domain.Tenant
	err := r.control.QueryRow(ctx, query, cafename).Scan(
		&tenant.ID,
		&tenant.CafeName,
		&tenant.DSN,
		&tenant.Active,
		&tenant.CreatedAt,
		&tenant.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrTenantNotFound
		}
		return nil, err
	}
	return &tenant, nil
}

func (r *Registry) fromCache(ctx context.Context, cafename string) *cachedTenant {
	if r.cache == nil {
		return nil
	}
	raw, err := r.cache.Get(ctx, cacheKey(cafename)).Bytes()
	if err != nil {
		return nil
	}
	var cached cachedTenant
	if err := json.Unmarshal(raw, &cached); err != nil {
		return nil
	}
	return &cached
}

func (r *Registry) storeCache(ctx context.Context, tenant *domain.Tenant) {
	if r.cache == nil {
		return
	}
	raw, err := json.Marshal(cachedTenant{DSN: tenant.DSN, Active: tenant.Active})
	if err != nil {
		return
	}
	if err := r.cache.Set(ctx, cacheKey(tenant.CafeName), raw, r.ttl).Err(); err != nil {
		r.logger.Debug("tenant cache write failed", zap.Error(err))
	}
}

// Invalidate drops the cached record for a café, forcing the next lookup to
// hit the control database.
func (r *Registry) Invalidate(ctx context.Context, cafename string) {
	if r.cache == nil {
		return
	}
	_ = r.cache.Del(ctx, cacheKey(cafename)).Err()
}

func cacheKey(cafename string) string {
	return "tenant:registry:" + cafename
}
