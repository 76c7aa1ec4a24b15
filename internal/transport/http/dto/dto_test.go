package dto

import (
	"testing"

	"github.com/feedbackloop/feedback-service/internal/domain"
)

func requireErrCode(t *testing.T, err error, code string) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected error with code %q, got nil", code)
	}
	if !domain.Is(err, code) {
		t.Fatalf("expected code %q, got %v", code, err)
	}
}

func validRegister() RegisterRequest {
	return RegisterRequest{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "Password1",
	}
}

func TestRegisterRequest_Valid(t *testing.T) {
	t.Parallel()

	req := validRegister()
	if err := req.Validate(); err != nil {
		t.Fatalf("expected valid, got %v", err)
	}
	if req.DomainRole() != domain.RoleEmployee {
		t.Fatalf("expected default role employee, got %v", req.DomainRole())
	}
}

func TestRegisterRequest_TrimsWhitespace(t *testing.T) {
	t.Parallel()

	req := validRegister()
	req.Username = "  alice  "
	req.Email = "  alice@example.com "
	if err := req.Validate(); err != nil {
		t.Fatalf("expected valid, got %v", err)
	}
	if req.Username != "alice" || req.Email != "alice@example.com" {
		t.Fatalf("not trimmed: %q %q", req.Username, req.Email)
	}
}

func TestRegisterRequest_MissingFields(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		name   string
		mutate func(*RegisterRequest)
	}{
		{"username", func(r *RegisterRequest) { r.Username = "" }},
		{"email", func(r *RegisterRequest) { r.Email = "" }},
		{"password", func(r *RegisterRequest) { r.Password = "" }},
	} {
		req := validRegister()
		tc.mutate(&req)
		requireErrCode(t, req.Validate(), "missing_field")
	}
}

func TestRegisterRequest_InvalidFields(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		name   string
		mutate func(*RegisterRequest)
	}{
		{"short_username", func(r *RegisterRequest) { r.Username = "ab" }},
		{"bad_username_chars", func(r *RegisterRequest) { r.Username = "al ice!" }},
		{"bad_email", func(r *RegisterRequest) { r.Email = "not-an-email" }},
		{"short_password", func(r *RegisterRequest) { r.Password = "short" }},
	} {
		req := validRegister()
		tc.mutate(&req)
		requireErrCode(t, req.Validate(), "invalid_field")
	}
}

func TestRegisterRequest_Role(t *testing.T) {
	t.Parallel()

	admin := 1
	req := validRegister()
	req.Role = &admin
	if err := req.Validate(); err != nil {
		t.Fatalf("expected valid, got %v", err)
	}
	if req.DomainRole() != domain.RoleAdmin {
		t.Fatalf("expected admin, got %v", req.DomainRole())
	}

	bad := 7
	req = validRegister()
	req.Role = &bad
	requireErrCode(t, req.Validate(), "invalid_role")
}

func TestLoginRequest_Validate(t *testing.T) {
	t.Parallel()

	req := LoginRequest{Username: "alice", Password: "pw"}
	if err := req.Validate(); err != nil {
		t.Fatalf("expected valid, got %v", err)
	}

	req = LoginRequest{Password: "pw"}
	requireErrCode(t, req.Validate(), "missing_field")

	req = LoginRequest{Username: "alice"}
	requireErrCode(t, req.Validate(), "missing_field")
}

func TestFeedbackRequests_Validate(t *testing.T) {
	t.Parallel()

	c := CreateFeedbackRequest{Feedback: "good team"}
	if err := c.Validate(); err != nil {
		t.Fatalf("expected valid, got %v", err)
	}

	c = CreateFeedbackRequest{}
	requireErrCode(t, c.Validate(), "missing_field")

	u := UpdateFeedbackRequest{}
	requireErrCode(t, u.Validate(), "missing_field")
}

func TestNewFeedbackViews_EmptyIsNotNil(t *testing.T) {
	t.Parallel()

	views := NewFeedbackViews(nil)
	if views == nil {
		t.Fatalf("expected empty slice, got nil")
	}
	if len(views) != 0 {
		t.Fatalf("expected empty, got %d", len(views))
	}
}
