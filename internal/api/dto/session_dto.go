package dto

// LoginRequest payload.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// SessionResponse describes the authenticated session for the UI.
type SessionResponse struct {
	UserID      int      `json:"userId"`
	Username    string   `json:"username"`
	CafeName    string   `json:"cafename"`
	Plan        string   `json:"plan"`
	PlanDisplay string   `json:"planDisplay"`
	Permissions []string `json:"permissions"`
	ExpiresAt   int64    `json:"exp"`
}
