package feedback

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/feedbackloop/feedback-service/internal/domain"
)

// Actor is the verified identity performing an operation, as established by
// the auth gate.
type Actor struct {
	UserID   string
	Username string
	Role     domain.Role
}

type Service struct {
	repo  Repo
	users UserReader
}

func NewService(repo Repo, users UserReader) *Service {
	return &Service{repo: repo, users: users}
}

// Create stores a new feedback entry. Only employees create feedback; the
// author's username is resolved from the credential store so a stale token
// for a deleted user cannot write.
func (s *Service) Create(ctx context.Context, actor Actor, body string) (domain.Feedback, error) {
	if actor.Role != domain.RoleEmployee {
		return domain.Feedback{}, domain.ErrEmployeeOnly()
	}

	body = strings.TrimSpace(body)
	if body == "" {
		return domain.Feedback{}, domain.ErrEmptyFeedback()
	}

	u, err := s.users.GetByID(ctx, actor.UserID)
	if err != nil {
		return domain.Feedback{}, err
	}

	f := domain.Feedback{
		ID:       uuid.NewString(),
		Username: u.Username,
		Body:     body,
		UserID:   u.ID,
	}
	return s.repo.Create(ctx, f)
}

// List returns all entries for admins and only the actor's own entries for
// employees, newest first in both cases.
func (s *Service) List(ctx context.Context, actor Actor) ([]domain.Feedback, error) {
	if actor.Role == domain.RoleAdmin {
		return s.repo.ListAll(ctx)
	}
	return s.repo.ListByUser(ctx, actor.UserID)
}

func (s *Service) Get(ctx context.Context, actor Actor, id string) (domain.Feedback, error) {
	f, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return domain.Feedback{}, err
	}
	if actor.Role != domain.RoleAdmin && f.UserID != actor.UserID {
		return domain.Feedback{}, domain.ErrNotOwner()
	}
	return f, nil
}

// Update rewrites the body of an owned entry. Admins cannot update; their
// only write operation is delete.
func (s *Service) Update(ctx context.Context, actor Actor, id, body string) (domain.Feedback, error) {
	if actor.Role != domain.RoleEmployee {
		return domain.Feedback{}, domain.ErrEmployeeOnly()
	}

	body = strings.TrimSpace(body)
	if body == "" {
		return domain.Feedback{}, domain.ErrEmptyFeedback()
	}

	f, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return domain.Feedback{}, err
	}
	if f.UserID != actor.UserID {
		return domain.Feedback{}, domain.ErrNotOwner()
	}

	return s.repo.UpdateBody(ctx, id, body)
}

// Delete removes any entry. The admin-only check lives in the router gate,
// but the service enforces it too so the rule does not depend on wiring.
func (s *Service) Delete(ctx context.Context, actor Actor, id string) error {
	if actor.Role != domain.RoleAdmin {
		return domain.ErrAdminRequired()
	}
	return s.repo.Delete(ctx, id)
}
