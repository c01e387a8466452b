package response

import "time"

type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

type SessionResponse struct {
	Authenticated bool       `json:"authenticated"`
	Method        string     `json:"method,omitempty"`
	ExpiresAt     *time.Time `json:"expires_at,omitempty"`
}
