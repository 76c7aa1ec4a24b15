package feedback

import (
	"context"

	"github.com/feedbackloop/feedback-service/internal/domain"
)

/*
Repo
----
Persistence port for feedback entries. Listings are always newest-first.
*/
type Repo interface {
	Create(ctx context.Context, f domain.Feedback) (domain.Feedback, error)
	GetByID(ctx context.Context, id string) (domain.Feedback, error)
	ListAll(ctx context.Context) ([]domain.Feedback, error)
	ListByUser(ctx context.Context, userID string) ([]domain.Feedback, error)
	UpdateBody(ctx context.Context, id, body string) (domain.Feedback, error)
	Delete(ctx context.Context, id string) error
}

/*
UserReader
----------
The feedback service only needs to resolve the author of a new entry.
*/
type UserReader interface {
	GetByID(ctx context.Context, id string) (domain.User, error)
}
