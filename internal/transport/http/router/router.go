package router

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"

	"github.com/feedbackloop/feedback-service/internal/domain"
	"github.com/feedbackloop/feedback-service/internal/transport/http/middleware"
	"github.com/feedbackloop/feedback-service/internal/transport/http/response"
)

type HealthHandler interface {
	Healthz(w http.ResponseWriter, r *http.Request)
	Readyz(w http.ResponseWriter, r *http.Request)
}

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
	Me(w http.ResponseWriter, r *http.Request)
}

type FeedbackHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type Deps struct {
	Health   HealthHandler
	Auth     AuthHandler
	Feedback FeedbackHandler

	AuthMW  func(http.Handler) http.Handler
	AdminMW func(http.Handler) http.Handler

	// CORSOrigins is the allow-list for browser clients. Empty disables CORS.
	CORSOrigins []string

	// AuthRateLimit caps register/login attempts per client IP per minute.
	// Zero disables the limiter (tests).
	AuthRateLimit int
}

func New(deps Deps) (http.Handler, error) {
	if deps.Health == nil {
		return nil, fmt.Errorf("nil Health handler")
	}
	if deps.Auth == nil {
		return nil, fmt.Errorf("nil Auth handler")
	}
	if deps.Feedback == nil {
		return nil, fmt.Errorf("nil Feedback handler")
	}
	if deps.AuthMW == nil {
		return nil, fmt.Errorf("nil Auth middleware")
	}
	if deps.AdminMW == nil {
		return nil, fmt.Errorf("nil Admin middleware")
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)

	if len(deps.CORSOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   deps.CORSOrigins,
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", middleware.HeaderXRequestID},
			AllowCredentials: true,
			MaxAge:           300,
		}))
	}

	r.Get("/healthz", deps.Health.Healthz)
	r.Get("/readyz", deps.Health.Readyz)

	r.Route("/auth", func(r chi.Router) {
		if deps.AuthRateLimit > 0 {
			r.Use(httprate.Limit(
				deps.AuthRateLimit,
				time.Minute,
				httprate.WithKeyFuncs(httprate.KeyByIP),
				httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
					response.WriteError(w, r, domain.ErrRateLimited("auth"))
				}),
			))
		}

		r.Post("/register", deps.Auth.Register)
		r.Post("/login", deps.Auth.Login)
	})

	r.With(deps.AuthMW).Get("/users/me", deps.Auth.Me)

	r.Route("/feedback", func(r chi.Router) {
		r.Use(deps.AuthMW)

		r.Post("/", deps.Feedback.Create)
		r.Get("/", deps.Feedback.List)
		r.Get("/{id}", deps.Feedback.Get)
		r.Put("/{id}", deps.Feedback.Update)
		r.With(deps.AdminMW).Delete("/{id}", deps.Feedback.Delete)
	})

	return r, nil
}
