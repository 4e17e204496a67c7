package dto

import "time"

type LoginRequest struct {
	Username string `json:"username" validate:"required,max=255"`
	Password string `json:"password" validate:"required,max=255"`
}

type LoginResponse struct {
	Message   string    `json:"message"`
	Username  string    `json:"username"`
	Token     string    `json:"access_token"`
	ExpiresAt time.Time `json:"expires_at"`
}

type AuthStatusResponse struct {
	Authenticated bool   `json:"authenticated"`
	Username      string `json:"username,omitempty"`
}
