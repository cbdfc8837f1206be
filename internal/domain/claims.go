package domain

import (
	"encoding/json"
	"time"
)

// Claims is the decoded, verified session record for a panel user.
// Values are immutable once issued; re-signing produces a new Claims
// with a fresh expiry.
type Claims struct {
	UserID      int      `json:"userId"`
	Username    string   `json:"username"`
	Plan        string   `json:"plan"`
	CafeName    string   `json:"cafename"`
	Permissions []string `json:"permissions"`
	ExpiresAt   int64    `json:"exp"` // epoch milliseconds
}

// UnmarshalJSON decodes a claims payload, normalizing the permissions field
// at the boundary. Upstream tokens carry it as an array, a CSV string or the
// numeric "all" sentinel; downstream code only ever sees the canonical slice.
func (c *Claims) UnmarshalJSON(data []byte) error {
	type wireClaims struct {
		UserID      int    `json:"userId"`
		Username    string `json:"username"`
		Plan        string `json:"plan"`
		CafeName    string `json:"cafename"`
		Permissions any    `json:"permissions"`
		ExpiresAt   int64  `json:"exp"`
	}
	var wire wireClaims
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	*c = Claims{
		UserID:      wire.UserID,
		Username:    wire.Username,
		Plan:        wire.Plan,
		CafeName:    wire.CafeName,
		Permissions: ParsePermissions(wire.Permissions),
		ExpiresAt:   wire.ExpiresAt,
	}
	return nil
}

// Expired reports whether the claims' validity window has passed at now.
func (c *Claims) Expired(now time.Time) bool {
	return now.UnixMilli() >= c.ExpiresAt
}

// HasPermission reports whether the claims grant the named permission.
// Both axes must pass: the permission has to appear in the grant list AND
// the account's plan tier has to cover the permission's minimum tier. Plan
// tier can be downgraded independently of stored grants, so holding the
// name alone is not sufficient.
func (c *Claims) HasPermission(p Permission) bool {
	if c == nil {
		return false
	}
	if !HasPlanAccess(c.Plan, RequiredTier(p)) {
		return false
	}
	for _, name := range c.Permissions {
		if name == string(p) {
			return true
		}
	}
	return false
}

// Tier returns the normalized plan tier for the claims.
func (c *Claims) Tier() Tier {
	if c == nil {
		return TierBasic
	}
	return NormalizeTier(c.Plan)
}
