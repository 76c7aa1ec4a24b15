package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/feedbackloop/feedback-service/internal/domain"
)

// FeedbackRepo is the in-memory counterpart of the postgres feedback repo.
type FeedbackRepo struct {
	mu   sync.RWMutex
	byID map[string]domain.Feedback
}

func NewFeedbackRepo() *FeedbackRepo {
	return &FeedbackRepo{byID: make(map[string]domain.Feedback)}
}

func (r *FeedbackRepo) Create(ctx context.Context, f domain.Feedback) (domain.Feedback, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if f.ID == "" {
		return domain.Feedback{}, domain.ErrInternal(nil)
	}
	now := time.Now()
	f.CreatedAt = now
	f.UpdatedAt = now
	r.byID[f.ID] = f
	return f, nil
}

func (r *FeedbackRepo) GetByID(ctx context.Context, id string) (domain.Feedback, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	f, ok := r.byID[id]
	if !ok {
		return domain.Feedback{}, domain.ErrFeedbackNotFound()
	}
	return f, nil
}

func (r *FeedbackRepo) ListAll(ctx context.Context) ([]domain.Feedback, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Feedback, 0, len(r.byID))
	for _, f := range r.byID {
		out = append(out, f)
	}
	sortNewestFirst(out)
	return out, nil
}

func (r *FeedbackRepo) ListByUser(ctx context.Context, userID string) ([]domain.Feedback, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []domain.Feedback
	for _, f := range r.byID {
		if f.UserID == userID {
			out = append(out, f)
		}
	}
	sortNewestFirst(out)
	return out, nil
}

func (r *FeedbackRepo) UpdateBody(ctx context.Context, id, body string) (domain.Feedback, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	f, ok := r.byID[id]
	if !ok {
		return domain.Feedback{}, domain.ErrFeedbackNotFound()
	}
	f.Body = body
	f.UpdatedAt = time.Now()
	r.byID[id] = f
	return f, nil
}

func (r *FeedbackRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[id]; !ok {
		return domain.ErrFeedbackNotFound()
	}
	delete(r.byID, id)
	return nil
}

func sortNewestFirst(fs []domain.Feedback) {
	sort.SliceStable(fs, func(i, j int) bool {
		return fs[i].CreatedAt.After(fs[j].CreatedAt)
	})
}
