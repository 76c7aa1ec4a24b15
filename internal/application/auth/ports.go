package auth

import (
	"context"
	"time"

	"github.com/feedbackloop/feedback-service/internal/domain"
)

/*
UserRepo
--------
Persistence port for users.
Only describes WHAT the account service needs, not HOW it's stored.
*/
type UserRepo interface {
	GetByUsername(ctx context.Context, username string) (domain.User, error)
	GetByID(ctx context.Context, id string) (domain.User, error)
	// Exists reports whether a user with the given username OR email is
	// already registered (case-sensitive exact match).
	Exists(ctx context.Context, username, email string) (bool, error)
	Create(ctx context.Context, u domain.User) (domain.User, error)
}

/*
PasswordHasher
--------------
Abstracts bcrypt.
*/
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash string, password string) error // nil if match
}

/*
TokenSigner
-----------
Issues and verifies bearer tokens (JWT).
Used by the service + auth middleware.
*/
type TokenClaims struct {
	UserID   string
	Username string
	Role     domain.Role
	Exp      time.Time
}

type TokenSigner interface {
	SignToken(userID, username string, role domain.Role, ttl time.Duration) (string, error)
	// VerifyToken returns domain.ErrTokenExpired for well-formed expired
	// tokens and domain.ErrTokenMalformed for everything else that fails.
	VerifyToken(token string) (TokenClaims, error)
}
