package http_handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/feedbackloop/feedback-service/internal/application/auth"
	"github.com/feedbackloop/feedback-service/internal/application/feedback"
	"github.com/feedbackloop/feedback-service/internal/domain"
	"github.com/feedbackloop/feedback-service/internal/infrastructure/memory"
	"github.com/feedbackloop/feedback-service/internal/infrastructure/security"
	"github.com/feedbackloop/feedback-service/internal/transport/http/middleware"
	"github.com/feedbackloop/feedback-service/internal/transport/http/response"
)

// testEnv wires real services on top of the in-memory repos, so handler
// tests exercise the whole slice below the router.
type testEnv struct {
	users    *memory.UserRepo
	entries  *memory.FeedbackRepo
	authSvc  *auth.Service
	fbSvc    *feedback.Service
	authH    *AuthHandler
	fbH      *FeedbackHandler
	tokenTTL time.Duration
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	users := memory.NewUserRepo()
	entries := memory.NewFeedbackRepo()
	hasher := security.NewBcryptHasher(4)
	signer := security.NewJWTSigner("test-secret", "feedback-service")
	ttl := time.Hour

	authSvc := auth.NewService(users, hasher, signer, auth.Config{
		TokenTTL:         ttl,
		AllowAdminSignup: true,
	})
	fbSvc := feedback.NewService(entries, users)

	return &testEnv{
		users:    users,
		entries:  entries,
		authSvc:  authSvc,
		fbSvc:    fbSvc,
		authH:    NewAuthHandler(authSvc, ttl),
		fbH:      NewFeedbackHandler(fbSvc),
		tokenTTL: ttl,
	}
}

// register creates an account through the service and returns the user.
func (e *testEnv) register(t *testing.T, username string, role domain.Role) domain.User {
	t.Helper()

	res, err := e.authSvc.Register(context.Background(),
		username, username+"@example.com", "Password1", role)
	if err != nil {
		t.Fatalf("register %s: %v", username, err)
	}
	return res.User
}

// mustJSONBody marshals v to JSON and returns an io.Reader for request body.
func mustJSONBody(t *testing.T, v any) io.Reader {
	t.Helper()

	b, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("json marshal: %v", err)
	}
	return bytes.NewReader(b)
}

// mustReadData decodes the {"data": ...} envelope into out.
func mustReadData(t *testing.T, r io.Reader, out any) {
	t.Helper()

	raw, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}

	wrapped := struct {
		Data json.RawMessage `json:"data"`
	}{}
	if err := json.Unmarshal(raw, &wrapped); err != nil || len(wrapped.Data) == 0 {
		t.Fatalf("decode json failed; body=%s", string(raw))
	}
	if err := json.Unmarshal(wrapped.Data, out); err != nil {
		t.Fatalf("decode wrapped.data failed; body=%s err=%v", string(raw), err)
	}
}

// errCode extracts the error code from a WriteError response body.
func errCode(t *testing.T, r io.Reader) string {
	t.Helper()

	var body response.ErrorBody
	if err := json.NewDecoder(r).Decode(&body); err != nil {
		t.Fatalf("decode error body: %v", err)
	}
	return body.Error.Code
}

// asUser injects the caller identity the auth gate would have set.
func asUser(req *http.Request, u domain.User) *http.Request {
	ctx := middleware.WithUser(req.Context(), u.ID, u.Username, u.Role)
	return req.WithContext(ctx)
}

// withURLParam injects a chi URL param (e.g. /feedback/{id}).
func withURLParam(req *http.Request, key, val string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, val)

	ctx := context.WithValue(req.Context(), chi.RouteCtxKey, rctx)
	return req.WithContext(ctx)
}
