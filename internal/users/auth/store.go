// Copyright (c) 2026 SafeTour. All rights reserved.
// Author: dev@safetour.app

package auth

import (
	"context"
)

// # User Data Access

// UserRepository defines the data access contract for user accounts
// (the Credential Store).
type UserRepository interface {

	/*
		FindByEmail returns the account with the given email.

		The match is exact and case-sensitive on the stored column; no
		normalization is performed anywhere in the lookup path.

		Parameters:
		  - context: context.Context
		  - email: string

		Returns:
		  - *User: Hydrated entity including the password hash
		  - error: apperr.NotFound or database retrieval failures
	*/
	FindByEmail(context context.Context, email string) (*User, error)

	/*
		Create persists a brand-new user account to the storage.

		A duplicate email surfaces as apperr.Conflict, translated from the
		database's unique constraint — distinct from generic persistence
		failures, and immune to the check-then-insert race.

		Parameters:
		  - context: context.Context
		  - user: *User

		Returns:
		  - error: apperr.Conflict on duplicate email, or persistence failures
	*/
	Create(context context.Context, user *User) error

	/*
		FindPublicByID returns the public identity projection for an account.

		Parameters:
		  - context: context.Context
		  - id: string

		Returns:
		  - *Profile: Projection excluding the password hash
		  - error: apperr.NotFound or database retrieval failures
	*/
	FindPublicByID(context context.Context, id string) (*Profile, error)
}
