package domain

import (
	"encoding/json"
	"fmt"
)

// Role is a closed two-variant enumeration. It crosses the wire as a JSON
// number (0 or 1); anything else is rejected at decode time rather than
// coerced downstream.
type Role int

const (
	// Employees create and manage their own feedback entries.
	RoleEmployee Role = 0
	// Admins see every feedback entry and may delete any of them.
	RoleAdmin Role = 1
)

func IsValidRole(r Role) bool {
	return r == RoleEmployee || r == RoleAdmin
}

func (r Role) String() string {
	switch r {
	case RoleEmployee:
		return "employee"
	case RoleAdmin:
		return "admin"
	default:
		return fmt.Sprintf("role(%d)", int(r))
	}
}

func (r Role) MarshalJSON() ([]byte, error) {
	if !IsValidRole(r) {
		return nil, fmt.Errorf("invalid role: %d", int(r))
	}
	return json.Marshal(int(r))
}

func (r *Role) UnmarshalJSON(b []byte) error {
	var n int
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("role must be a number: %w", err)
	}
	cand := Role(n)
	if !IsValidRole(cand) {
		return fmt.Errorf("invalid role: %d", n)
	}
	*r = cand
	return nil
}
