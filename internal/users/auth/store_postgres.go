// Copyright (c) 2026 SafeTour. All rights reserved.
// Author: dev@safetour.app

package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/safetour/api/internal/platform/apperr"
	"github.com/safetour/api/internal/platform/dberr"
)

// # User Repository

// PostgresUserRepository implements the UserRepository interface using pgx.
//
// Storage-specific errors (pgx.ErrNoRows, SQLSTATE 23505) are mapped to
// domain-friendly [apperr.AppError] types so callers never see pgx details.
type PostgresUserRepository struct {
	pool *pgxpool.Pool
}

// NewUserRepository creates a new PostgreSQL implementation of the UserRepository.
func NewUserRepository(pool *pgxpool.Pool) *PostgresUserRepository {
	return &PostgresUserRepository{pool: pool}
}

/*
Create persists a new user record into the users.account table.

Description: The email column carries a UNIQUE constraint; a violation is
translated to apperr.Conflict here, at the store boundary. This — not the
service-level pre-check — is the authoritative uniqueness mechanism.

Parameters:
  - context: context.Context
  - user: *User (Entity to persist)

Returns:
  - error: apperr.Conflict on duplicate email, or connectivity errors
*/
func (repository *PostgresUserRepository) Create(context context.Context, user *User) error {
	const query = `
		INSERT INTO users.account (
			id, name, email, passwordhash, phone, avatarurl, role, createdat
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now()
	}

	_, err := repository.pool.Exec(context, query,
		user.ID,
		user.Name,
		user.Email,
		user.PasswordHash,
		user.Phone,
		user.AvatarURL,
		user.Role,
		user.CreatedAt,
	)

	if err != nil {
		if dberr.IsUniqueViolation(err) {
			return apperr.Conflict("User already exists")
		}
		return fmt.Errorf("postgres_user_repo_create_failed: %w", err)
	}

	return nil
}

/*
FindByEmail retrieves a user record by their email address.

Description: Exact, case-sensitive equality on the stored email column.

Parameters:
  - context: context.Context
  - email: string

Returns:
  - *User: Hydrated account entity (including the password hash)
  - error: apperr.NotFound or database errors
*/
func (repository *PostgresUserRepository) FindByEmail(context context.Context, email string) (*User, error) {
	const query = `
		SELECT id, name, email, passwordhash, phone, avatarurl, role, createdat
		FROM users.account
		WHERE email = $1`

	user := &User{}
	err := repository.pool.QueryRow(context, query, email).Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.PasswordHash,
		&user.Phone,
		&user.AvatarURL,
		&user.Role,
		&user.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("User")
		}
		return nil, fmt.Errorf("postgres_user_repo_find_by_email_failed: %w", err)
	}

	return user, nil
}

/*
FindPublicByID retrieves the public identity projection for an account.

Description: The password hash column is not part of the SELECT list, so it
cannot appear in the projection regardless of downstream serialization.

Parameters:
  - context: context.Context
  - id: string (UUIDv7)

Returns:
  - *Profile: Public projection
  - error: apperr.NotFound or execution errors
*/
func (repository *PostgresUserRepository) FindPublicByID(context context.Context, id string) (*Profile, error) {
	const query = `
		SELECT id, name, email, phone, avatarurl, role, createdat
		FROM users.account
		WHERE id = $1`

	profile := &Profile{}
	err := repository.pool.QueryRow(context, query, id).Scan(
		&profile.ID,
		&profile.Name,
		&profile.Email,
		&profile.Phone,
		&profile.AvatarURL,
		&profile.Role,
		&profile.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("User")
		}
		return nil, fmt.Errorf("postgres_user_repo_find_public_failed: %w", err)
	}

	return profile, nil
}
