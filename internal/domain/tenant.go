package domain

import "time"

// Tenant is one café organization and the database that backs it.
type Tenant struct {
	ID        int
	CafeName  string
	DSN       string
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
