package http_handlers

import (
	"net/http"
	"time"

	"github.com/feedbackloop/feedback-service/internal/application/auth"
	"github.com/feedbackloop/feedback-service/internal/domain"
	"github.com/feedbackloop/feedback-service/internal/logger"
	"github.com/feedbackloop/feedback-service/internal/transport/http/dto"
	"github.com/feedbackloop/feedback-service/internal/transport/http/middleware"
	"github.com/feedbackloop/feedback-service/internal/transport/http/response"
)

type AuthHandler struct {
	svc      *auth.Service
	tokenTTL time.Duration
}

func NewAuthHandler(svc *auth.Service, tokenTTL time.Duration) *AuthHandler {
	return &AuthHandler{svc: svc, tokenTTL: tokenTTL}
}

func (h *AuthHandler) tokenView(token string) dto.TokenView {
	return dto.TokenView{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   int64(h.tokenTTL.Seconds()),
	}
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequest
	if err := response.DecodeJSON(r, &req); err != nil {
		response.WriteError(w, r, err)
		return
	}
	if err := req.Validate(); err != nil {
		response.WriteError(w, r, err)
		return
	}

	res, err := h.svc.Register(r.Context(), req.Username, req.Email, req.Password, req.DomainRole())
	if err != nil {
		response.WriteError(w, r, err)
		return
	}

	log := logger.WithCtx(r.Context())
	log.Info().
		Str("user_id", res.User.ID).
		Str("username", res.User.Username).
		Int("role", int(res.User.Role)).
		Msg("user_registered")

	response.Created(w, dto.AuthData{
		User:  dto.NewUserView(res.User),
		Token: h.tokenView(res.Token),
	})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := response.DecodeJSON(r, &req); err != nil {
		response.WriteError(w, r, err)
		return
	}
	if err := req.Validate(); err != nil {
		response.WriteError(w, r, err)
		return
	}

	res, err := h.svc.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		response.WriteError(w, r, err)
		return
	}

	log := logger.WithCtx(r.Context())
	log.Info().
		Str("user_id", res.User.ID).
		Msg("user_logged_in")

	response.OK(w, dto.AuthData{
		User:  dto.NewUserView(res.User),
		Token: h.tokenView(res.Token),
	})
}

// Me handles GET /users/me. Returns 404 when the token's subject no longer
// exists in the store.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		response.WriteError(w, r, domain.ErrTokenUnauthorized())
		return
	}

	u, err := h.svc.GetUserByID(r.Context(), userID)
	if err != nil {
		response.WriteError(w, r, err)
		return
	}

	response.OK(w, dto.MeData{User: dto.NewUserView(u)})
}
