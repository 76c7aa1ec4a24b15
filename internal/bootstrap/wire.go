package bootstrap

import (
	"context"
	"database/sql"
	"net/http"

	"github.com/feedbackloop/feedback-service/internal/application/auth"
	"github.com/feedbackloop/feedback-service/internal/application/feedback"
	"github.com/feedbackloop/feedback-service/internal/config"
	"github.com/feedbackloop/feedback-service/internal/infrastructure/db/postgres"
	"github.com/feedbackloop/feedback-service/internal/infrastructure/memory"
	"github.com/feedbackloop/feedback-service/internal/infrastructure/security"
	"github.com/feedbackloop/feedback-service/internal/logger"
	http_handlers "github.com/feedbackloop/feedback-service/internal/transport/http/handlers"
	"github.com/feedbackloop/feedback-service/internal/transport/http/middleware"
	"github.com/feedbackloop/feedback-service/internal/transport/http/response"
	"github.com/feedbackloop/feedback-service/internal/transport/http/router"
)

// bcryptCost matches what the original deployment used. 4 and below is
// test-only territory; 12+ gets slow on login-heavy workloads.
const bcryptCost = 10

/*
========================
 Public entry (prod)
========================
*/

func NewServer() (*http.Server, func(), error) {
	return newServer(defaultDeps())
}

// NewServerWithDeps allows injecting dependencies for testing.
func NewServerWithDeps(deps Deps) (*http.Server, func(), error) {
	return newServer(deps)
}

/*
========================
 Dependency injection
========================
*/

type Deps struct {
	LoadConfig func() (*config.Config, error)

	NewDB func(dsn string, debug bool) (*sql.DB, error)

	NewRouter func(router.Deps) (http.Handler, error)
}

/*
========================
 Core bootstrap logic
========================
*/

func newServer(deps Deps) (*http.Server, func(), error) {
	// 0) config
	cfg, err := deps.LoadConfig()
	if err != nil {
		return nil, nil, err
	}

	var cleanupFns []func()

	// 1) storage: postgres when configured, in-memory in dev otherwise
	var (
		sqlDB    *sql.DB
		userRepo auth.UserRepo
		fbRepo   feedback.Repo
	)

	hasher := security.NewBcryptHasher(bcryptCost)

	if cfg.DatabaseURL == "" {
		logger.Logger.Warn().Msg("DATABASE_URL empty; using in-memory store (dev only)")
		userRepo = memory.NewUserRepo()
		fbRepo = memory.NewFeedbackRepo()
	} else {
		db, err := deps.NewDB(cfg.DatabaseURL, cfg.DBDebug)
		if err != nil {
			return nil, nil, err
		}
		cleanupFns = append(cleanupFns, func() { _ = db.Close() })

		if err := postgres.EnsureSchema(context.Background(), db); err != nil {
			runCleanup(cleanupFns)
			return nil, nil, err
		}

		sqlDB = db
		pgUsers := postgres.NewUserRepo(db)
		userRepo = pgUsers
		fbRepo = postgres.NewFeedbackRepo(db)

		// seed (dev only)
		if cfg.Env == "dev" {
			postgres.SeedUsers(context.Background(), pgUsers, hasher)
		}
	}

	// 2) security
	logger.Logger.Info().Str("issuer", cfg.JWTIssuer).Msg("initializing jwt signer")
	signer := security.NewJWTSigner(cfg.JWTSecret, cfg.JWTIssuer)

	// 3) services
	authSvc := auth.NewService(userRepo, hasher, signer, auth.Config{
		TokenTTL:         cfg.TokenTTL,
		AllowAdminSignup: cfg.AllowAdminSignup,
	})
	fbSvc := feedback.NewService(fbRepo, userRepo)

	// 4) handlers + middleware
	authH := http_handlers.NewAuthHandler(authSvc, cfg.TokenTTL)
	fbH := http_handlers.NewFeedbackHandler(fbSvc)
	healthH := http_handlers.NewHealthHandler(sqlDB)

	authMW := middleware.Auth(signer, response.WriteError)
	adminMW := middleware.RequireAdmin(response.WriteError)

	// 5) router
	mux, err := deps.NewRouter(router.Deps{
		Health:   healthH,
		Auth:     authH,
		Feedback: fbH,

		AuthMW:  authMW,
		AdminMW: adminMW,

		CORSOrigins:   cfg.CORSOrigins,
		AuthRateLimit: cfg.AuthRateLimit,
	})
	if err != nil {
		runCleanup(cleanupFns)
		return nil, nil, err
	}

	// 6) server
	srv := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      mux,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}

	cleanup := func() {
		runCleanup(cleanupFns)
	}

	return srv, cleanup, nil
}

/*
========================
 Default deps (prod)
========================
*/

func defaultDeps() Deps {
	return Deps{
		LoadConfig: config.Load,
		NewDB:      config.NewDB,
		NewRouter:  router.New,
	}
}

/*
========================
 helpers
========================
*/

func runCleanup(fns []func()) {
	for i := len(fns) - 1; i >= 0; i-- {
		fns[i]()
	}
}
