package http_handlers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/feedbackloop/feedback-service/internal/application/feedback"
	"github.com/feedbackloop/feedback-service/internal/domain"
	"github.com/feedbackloop/feedback-service/internal/logger"
	"github.com/feedbackloop/feedback-service/internal/transport/http/dto"
	"github.com/feedbackloop/feedback-service/internal/transport/http/middleware"
	"github.com/feedbackloop/feedback-service/internal/transport/http/response"
)

type FeedbackHandler struct {
	svc *feedback.Service
}

func NewFeedbackHandler(svc *feedback.Service) *FeedbackHandler {
	return &FeedbackHandler{svc: svc}
}

// actorFromContext rebuilds the caller identity the auth gate injected.
func actorFromContext(r *http.Request) (feedback.Actor, error) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		return feedback.Actor{}, domain.ErrTokenUnauthorized()
	}
	username, _ := middleware.UsernameFromContext(r.Context())
	role, ok := middleware.RoleFromContext(r.Context())
	if !ok {
		return feedback.Actor{}, domain.ErrTokenUnauthorized()
	}
	return feedback.Actor{UserID: userID, Username: username, Role: role}, nil
}

func feedbackID(r *http.Request) (string, error) {
	id := strings.TrimSpace(chi.URLParam(r, "id"))
	if id == "" {
		return "", domain.ErrMissingField("id")
	}
	return id, nil
}

func (h *FeedbackHandler) Create(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFromContext(r)
	if err != nil {
		response.WriteError(w, r, err)
		return
	}

	var req dto.CreateFeedbackRequest
	if err := response.DecodeJSON(r, &req); err != nil {
		response.WriteError(w, r, err)
		return
	}
	if err := req.Validate(); err != nil {
		response.WriteError(w, r, err)
		return
	}

	f, err := h.svc.Create(r.Context(), actor, req.Feedback)
	if err != nil {
		response.WriteError(w, r, err)
		return
	}

	log := logger.WithCtx(r.Context())
	log.Info().
		Str("feedback_id", f.ID).
		Str("user_id", actor.UserID).
		Msg("feedback_created")

	response.Created(w, dto.NewFeedbackView(f))
}

func (h *FeedbackHandler) List(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFromContext(r)
	if err != nil {
		response.WriteError(w, r, err)
		return
	}

	fs, err := h.svc.List(r.Context(), actor)
	if err != nil {
		response.WriteError(w, r, err)
		return
	}

	response.OK(w, dto.NewFeedbackViews(fs))
}

func (h *FeedbackHandler) Get(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFromContext(r)
	if err != nil {
		response.WriteError(w, r, err)
		return
	}

	id, err := feedbackID(r)
	if err != nil {
		response.WriteError(w, r, err)
		return
	}

	f, err := h.svc.Get(r.Context(), actor, id)
	if err != nil {
		response.WriteError(w, r, err)
		return
	}

	response.OK(w, dto.NewFeedbackView(f))
}

func (h *FeedbackHandler) Update(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFromContext(r)
	if err != nil {
		response.WriteError(w, r, err)
		return
	}

	id, err := feedbackID(r)
	if err != nil {
		response.WriteError(w, r, err)
		return
	}

	var req dto.UpdateFeedbackRequest
	if err := response.DecodeJSON(r, &req); err != nil {
		response.WriteError(w, r, err)
		return
	}
	if err := req.Validate(); err != nil {
		response.WriteError(w, r, err)
		return
	}

	f, err := h.svc.Update(r.Context(), actor, id, req.Feedback)
	if err != nil {
		response.WriteError(w, r, err)
		return
	}

	log := logger.WithCtx(r.Context())
	log.Info().
		Str("feedback_id", f.ID).
		Str("user_id", actor.UserID).
		Msg("feedback_updated")

	response.OK(w, dto.NewFeedbackView(f))
}

func (h *FeedbackHandler) Delete(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFromContext(r)
	if err != nil {
		response.WriteError(w, r, err)
		return
	}

	id, err := feedbackID(r)
	if err != nil {
		response.WriteError(w, r, err)
		return
	}

	if err := h.svc.Delete(r.Context(), actor, id); err != nil {
		response.WriteError(w, r, err)
		return
	}

	log := logger.WithCtx(r.Context())
	log.Info().
		Str("feedback_id", id).
		Str("admin_id", actor.UserID).
		Msg("feedback_deleted")

	response.NoContent(w)
}
