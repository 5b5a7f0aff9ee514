// Copyright (c) 2026 SafeTour. All rights reserved.
// Author: dev@safetour.app

package sec

// # User Roles

// UserRole represents the authorization level granted to an account.
type UserRole string

const (
	// Unrestricted system access (admin dashboard consumers)
	RoleAdmin UserRole = "admin"

	// Default role for standard registered users. The registration endpoint
	// always assigns this role; callers cannot self-elevate.
	RoleUser UserRole = "user"
)

// Valid reports whether the role is one of the known enumeration values.
func (r UserRole) Valid() bool {
	return r == RoleAdmin || r == RoleUser
}
