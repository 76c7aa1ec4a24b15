package dto

import (
	"time"

	"github.com/feedbackloop/feedback-service/internal/domain"
)

// -------- Requests --------

type CreateFeedbackRequest struct {
	Feedback string `json:"feedback" validate:"required,max=4000"`
}

func (r *CreateFeedbackRequest) Validate() error {
	return validateStruct(r)
}

type UpdateFeedbackRequest struct {
	Feedback string `json:"feedback" validate:"required,max=4000"`
}

func (r *UpdateFeedbackRequest) Validate() error {
	return validateStruct(r)
}

// -------- Responses --------

type FeedbackView struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Feedback  string    `json:"feedback"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewFeedbackView(f domain.Feedback) FeedbackView {
	return FeedbackView{
		ID:        f.ID,
		Username:  f.Username,
		Feedback:  f.Body,
		CreatedAt: f.CreatedAt,
		UpdatedAt: f.UpdatedAt,
	}
}

func NewFeedbackViews(fs []domain.Feedback) []FeedbackView {
	out := make([]FeedbackView, 0, len(fs))
	for _, f := range fs {
		out = append(out, NewFeedbackView(f))
	}
	return out
}
