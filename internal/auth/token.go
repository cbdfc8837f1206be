package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/d3ads3c/cafepanel-sub000/internal/domain"
)

// ErrInvalidToken covers every verification failure: malformed input, tag
// mismatch and expiry. Callers treat it uniformly as "no session".
var ErrInvalidToken = errors.New("invalid token")

// TokenManager signs and verifies session tokens. The wire format is the one
// the upstream panel issues: base64url(JSON claims) + "." + base64url(HMAC-SHA256 tag).
type TokenManager struct {
	secret []byte
	now    func() time.Time
}

// NewTokenManager builds a manager around the server-held signing secret.
func NewTokenManager(secret string) *TokenManager {
	return &TokenManager{secret: []byte(secret), now: time.Now}
}

// Sign stamps the claims with a computed absolute expiry, serializes them and
// appends the authenticity tag. Any ExpiresAt already on the claims is
// overwritten, so the caller's copy matches what the token carries.
func (tm *TokenManager) Sign(claims *domain.Claims, ttl time.Duration) (string, error) {
	claims.ExpiresAt = tm.now().Add(ttl).UnixMilli()

	payload, err := json.Marshal(claims)
	if err != nil {
		return "", err
	}

	encoded := base64.RawURLEncoding.EncodeToString(payload)
	return encoded + "." + tm.tag(encoded), nil
}

// Verify checks the token's authenticity tag and expiry, returning the parsed
// claims only on full success.
func (tm *TokenManager) Verify(token string) (*domain.Claims, error) {
	parts := strings.Split(token, ".")
	if len(parts) != 2 || parts[0] == "" {
		return nil, ErrInvalidToken
	}

	expected := tm.tag(parts[0])
	if !hmac.Equal([]byte(expected), []byte(parts[1])) {
		return nil, ErrInvalidToken
	}

	payload, err := base64.RawURLEncoding.DecodeString(parts[0])
	if err != nil {
		return nil, ErrInvalidToken
	}

	var claims domain.Claims
	if err := json.Unmarshal(payload, &claims); err != nil {
		return nil, ErrInvalidToken
	}
	if claims.ExpiresAt <= 0 || claims.Expired(tm.now()) {
		return nil, ErrInvalidToken
	}
	return &claims, nil
}

func (tm *TokenManager) tag(encodedPayload string) string {
	mac := hmac.New(sha256.New, tm.secret)
	mac.Write([]byte(encodedPayload))
	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}
