package dto

import (
	"time"

	"github.com/d3ads3c/cafepanel-sub000/internal/domain"
)

// CreateStaffRequest payload for adding a panel account to the café.
type CreateStaffRequest struct {
	Username    string `json:"username"`
	Password    string `json:"password"`
	Permissions string `json:"permissions"` // CSV or the "0" sentinel
}

// UpdateStaffRequest payload for PUT. Absent fields keep their value.
type UpdateStaffRequest struct {
	Password    *string `json:"password"`
	Permissions *string `json:"permissions"`
	Active      *bool   `json:"active"`
}

// StaffResponse response. The password hash never leaves the server.
type StaffResponse struct {
	ID          int       `json:"id"`
	Username    string    `json:"username"`
	Plan        string    `json:"plan"`
	Permissions []string  `json:"permissions"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"created_at"`
}

// NewStaffResponse maps a staff account.
func NewStaffResponse(s domain.StaffUser) StaffResponse {
	return StaffResponse{
		ID:          s.ID,
		Username:    s.Username,
		Plan:        s.Plan,
		Permissions: domain.ParsePermissions(s.Permissions),
		Active:      s.Active,
		CreatedAt:   s.CreatedAt,
	}
}
