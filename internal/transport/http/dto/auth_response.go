package dto

import (
	"time"

	"github.com/feedbackloop/feedback-service/internal/domain"
)

// UserView is the standard user payload. The password hash never leaves
// the service.
type UserView struct {
	ID        string      `json:"id"`
	Username  string      `json:"username"`
	Email     string      `json:"email"`
	Role      domain.Role `json:"role"`
	CreatedAt time.Time   `json:"created_at"`
}

func NewUserView(u domain.User) UserView {
	return UserView{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}

// TokenView is the standard access token payload.
type TokenView struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"` // "Bearer"
	ExpiresIn   int64  `json:"expires_in"` // seconds
}

// AuthData is returned by register/login.
type AuthData struct {
	User  UserView  `json:"user"`
	Token TokenView `json:"token"`
}

// MeData is returned by /users/me.
type MeData struct {
	User UserView `json:"user"`
}
