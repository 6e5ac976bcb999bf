package model

import (
	"time"

	"github.com/muhammadheryan/fw-development/constant"
)

// Session is what the session store keeps for a logged-in user, keyed by token id.
type Session struct {
	ID        string            `json:"id"`
	Username  string            `json:"username"`
	Name      string            `json:"name"`
	Role      constant.UserRole `json:"role"`
	ExpiresAt time.Time         `json:"expiresAt"`
}

func (s *Session) IsAdmin() bool {
	return s != nil && s.Role == constant.RoleAdmin
}

// LoginRequest for admin login
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Username  string    `json:"username"`
	Name      string    `json:"name"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}
