package service

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/d3ads3c/cafepanel-sub000/internal/auth"
	"github.com/d3ads3c/cafepanel-sub000/internal/config"
	"github.com/d3ads3c/cafepanel-sub000/internal/domain"
	"github.com/d3ads3c/cafepanel-sub000/internal/repository"
)

// ErrInvalidCredentials is returned for every login failure, regardless of
// whether the username or the password was wrong.
var ErrInvalidCredentials = errors.New("invalid credentials")

// SessionService handles panel logins and session token issuance.
type SessionService struct {
	staff  repository.StaffRepository
	tokens *auth.TokenManager
	ttl    time.Duration
}

// NewSessionService builds the service.
func NewSessionService(cfg config.AuthConfig, staff repository.StaffRepository, tokens *auth.TokenManager) *SessionService {
	return &SessionService{
		staff:  staff,
		tokens: tokens,
		ttl:    cfg.SessionTTL(),
	}
}

// Login authenticates a staff account and issues a session token.
func (s *SessionService) Login(ctx context.Context, username, password string) (*domain.Claims, string, error) {
	staff, err := s.staff.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}
	if !staff.Active {
		return nil, "", ErrInvalidCredentials
	}
	if err := auth.ComparePassword(staff.PasswordHash, password); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	claims := domain.Claims{
		UserID:      staff.ID,
		Username:    staff.Username,
		Plan:        staff.Plan,
		CafeName:    staff.CafeName,
		Permissions: domain.ParsePermissions(staff.Permissions),
	}

	token, err := s.tokens.Sign(&claims, s.ttl)
	if err != nil {
		return nil, "", err
	}
	return &claims, token, nil
}

// TTL returns the session validity window, used for cookie max-age.
func (s *SessionService) TTL() time.Duration {
	return s.ttl
}
