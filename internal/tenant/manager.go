package tenant

import (
	"context"
	"sync"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/d3ads3c/cafepanel-sub000/internal/config"
	"github.com/d3ads3c/cafepanel-sub000/internal/domain"
)

// Manager resolves authenticated claims to their tenant database handle.
// Pools are opened lazily per café and reused across requests; a handle is
// only ever keyed by the café name carried in verified claims, never by
// request input.
type Manager struct {
	registry *Registry
	cfg      config.TenantConfig
	logger   *zap.Logger

	mu    sync.Mutex
	pools map[string]*DB
}

// NewManager builds a tenant database manager.
func NewManager(registry *Registry, cfg config.TenantConfig, logger *zap.Logger) *Manager {
	return &Manager{
		registry: registry,
		cfg:      cfg,
		logger:   logger,
		pools:    make(map[string]*DB),
	}
}

// Resolve returns the database handle for the caller's café. Missing claims,
// an absent tenant marker, and unknown or disabled tenants all fail; there is
// no default database to fall back to.
func (m *Manager) Resolve(ctx context.Context, claims *domain.Claims) (*DB, error) {
	if claims == nil || claims.CafeName == "" {
		return nil, ErrTenantNotFound
	}

	tenant, err := m.registry.Lookup(ctx, claims.CafeName)
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	if db, ok := m.pools[tenant.CafeName]; ok {
		m.mu.Unlock()
		return db, nil
	}
	m.mu.Unlock()

	pool, err := m.openPool(ctx, tenant.DSN)
	if err != nil {
		// the cached DSN may be stale; force the next lookup back to the
		// control database
		m.registry.Invalidate(ctx, tenant.CafeName)
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if db, ok := m.pools[tenant.CafeName]; ok {
		pool.Close()
		return db, nil
	}
	db := &DB{cafename: tenant.CafeName, pool: pool}
	m.pools[tenant.CafeName] = db
	m.logger.Info("opened tenant database pool", zap.String("cafename", tenant.CafeName))
	return db, nil
}

func (m *Manager) openPool(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, err
	}
	if m.cfg.MaxConnsPerTenant > 0 {
		poolCfg.MaxConns = m.cfg.MaxConnsPerTenant
	}
	return pgxpool.NewWithConfig(ctx, poolCfg)
}

// Close releases every open tenant pool.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	for name, db := range m.pools {
		db.pool.Close()
		delete(m.pools, name)
	}
}
