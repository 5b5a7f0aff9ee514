// Copyright (c) 2026 SafeTour. All rights reserved.
// Author: dev@safetour.app

package contact

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/safetour/api/internal/platform/apperr"
)

// PostgresRepository implements [Repository] using pgx.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository constructs a PostgreSQL backed contact store.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

/*
Create persists a new contact message row.

Parameters:
  - context: context.Context
  - message: *Message

Returns:
  - error: Database or connectivity errors
*/
func (repository *PostgresRepository) Create(context context.Context, message *Message) error {
	const query = `
		INSERT INTO safety.contactmessage (id, name, email, subject, message, createdat)
		VALUES ($1, $2, $3, $4, $5, $6)`

	if message.CreatedAt.IsZero() {
		message.CreatedAt = time.Now()
	}

	_, err := repository.db.Exec(context, query,
		message.ID,
		message.Name,
		message.Email,
		message.Subject,
		message.Message,
		message.CreatedAt,
	)

	if err != nil {
		return fmt.Errorf("postgres_contact_repo_create_failed: %w", err)
	}

	return nil
}

/*
FindByID retrieves a single contact message by its primary key.

Parameters:
  - context: context.Context
  - id: string

Returns:
  - *Message: Hydrated entity
  - error: apperr.NotFound or database errors
*/
func (repository *PostgresRepository) FindByID(context context.Context, id string) (*Message, error) {
	const query = `
		SELECT id, name, email, subject, message, createdat
		FROM safety.contactmessage
		WHERE id = $1`

	message := &Message{}
	err := repository.db.QueryRow(context, query, id).Scan(
		&message.ID,
		&message.Name,
		&message.Email,
		&message.Subject,
		&message.Message,
		&message.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("Contact message")
		}
		return nil, fmt.Errorf("postgres_contact_repo_find_failed: %w", err)
	}

	return message, nil
}
