package auth

import (
	"context"

	"github.com/feedbackloop/feedback-service/internal/domain"
)

// GetUserByID backs /users/me. A valid token whose user record has since
// been removed surfaces as user_not_found here.
func (s *Service) GetUserByID(ctx context.Context, userID string) (domain.User, error) {
	return s.users.GetByID(ctx, userID)
}
