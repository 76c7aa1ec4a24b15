package postgres

import (
	"context"
	"log"

	"github.com/google/uuid"

	"github.com/feedbackloop/feedback-service/internal/domain"
)

type SeederHasher interface {
	Hash(password string) (string, error)
}

type SeederRepo interface {
	Create(ctx context.Context, u domain.User) (domain.User, error)
}

// SeedUsers inserts a few well-known dev accounts. Duplicates are ignored so
// the seed is restart safe. Never call this in production.
func SeedUsers(ctx context.Context, repo SeederRepo, hasher SeederHasher) {
	type seedUser struct {
		Username string
		Email    string
		Role     domain.Role
		Pass     string
	}

	seeds := []seedUser{
		{Username: "admin", Email: "admin@example.com", Role: domain.RoleAdmin, Pass: "AdminPassword123!"},
		{Username: "alice", Email: "alice@example.com", Role: domain.RoleEmployee, Pass: "AlicePassword123!"},
		{Username: "bob", Email: "bob@example.com", Role: domain.RoleEmployee, Pass: "BobPassword123!"},
	}

	for _, s := range seeds {
		hash, err := hasher.Hash(s.Pass)
		if err != nil {
			log.Printf("[seed] hash failed (%s): %v", s.Username, err)
			continue
		}

		u := domain.User{
			ID:           uuid.NewString(),
			Username:     s.Username,
			Email:        s.Email,
			PasswordHash: hash,
			Role:         s.Role,
		}

		_, err = repo.Create(ctx, u)
		if err != nil {
			// ignore duplicates (restart safe)
			continue
		}
	}

	log.Println("[seed] postgres users seeded")
}
