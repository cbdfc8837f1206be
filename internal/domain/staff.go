package domain

import "time"

// StaffUser is a panel login account, stored on the control-plane database.
type StaffUser struct {
	ID           int
	Username     string
	PasswordHash string
	CafeName     string
	Plan         string
	Permissions  string // raw grant as stored upstream: CSV or the "0" sentinel
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
