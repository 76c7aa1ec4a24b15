package dto

import (
	"strconv"
	"strings"

	"github.com/feedbackloop/feedback-service/internal/domain"
)

// -------- Core auth --------

type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=32,username_format"`
	Email    string `json:"email" validate:"required,email,max=254"`
	Password string `json:"password" validate:"required,min=8,max=72"`
	// Role is optional. Absent means employee.
	Role *int `json:"role,omitempty"`
}

func (r *RegisterRequest) Validate() error {
	r.Username = strings.TrimSpace(r.Username)
	r.Email = strings.TrimSpace(r.Email)

	if err := validateStruct(r); err != nil {
		return err
	}
	if r.Role != nil && !domain.IsValidRole(domain.Role(*r.Role)) {
		return domain.ErrInvalidRole(strconv.Itoa(*r.Role))
	}
	return nil
}

// DomainRole resolves the requested role, defaulting to employee.
func (r *RegisterRequest) DomainRole() domain.Role {
	if r.Role == nil {
		return domain.RoleEmployee
	}
	return domain.Role(*r.Role)
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

func (r *LoginRequest) Validate() error {
	r.Username = strings.TrimSpace(r.Username)
	return validateStruct(r)
}
