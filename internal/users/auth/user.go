// Copyright (c) 2026 SafeTour. All rights reserved.
// Author: dev@safetour.app

/*
Package auth implements the user identity layer for SafeTour.

It defines the core domain entities (User, Profile) and the registration and
login flows that mint bearer tokens.

# Architecture

This layer is the "Truth" of the system. Entities defined here have no
transport dependencies and encapsulate all business rules related to identity.
*/
package auth

import (
	"time"

	"github.com/safetour/api/internal/platform/sec"
)

// # Domain Entities

// User represents a registered SafeTour account.
type User struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	Email        string       `json:"email"`
	PasswordHash string       `json:"-"` // Explicitly omitted from JSON for security.
	Phone        *string      `json:"phone,omitempty"`
	AvatarURL    *string      `json:"avatar,omitempty"`
	Role         sec.UserRole `json:"role"`
	CreatedAt    time.Time    `json:"created_at"`
}

// Profile is the public identity projection of a [User].
//
// It is what protected resource listings and the /me endpoint expose: the
// password hash is not even selected from storage, so it can never leak
// through this type.
type Profile struct {
	ID        string       `json:"id"`
	Name      string       `json:"name"`
	Email     string       `json:"email"`
	Phone     *string      `json:"phone,omitempty"`
	AvatarURL *string      `json:"avatar,omitempty"`
	Role      sec.UserRole `json:"role"`
	CreatedAt time.Time    `json:"created_at"`
}

// # Field Identifiers

// Field names for validation and identity mapping in the authentication domain.
const (
	FieldName     = "name"
	FieldEmail    = "email"
	FieldPassword = "password"
	FieldPhone    = "phone"
)
