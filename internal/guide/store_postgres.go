// Copyright (c) 2026 SafeTour. All rights reserved.
// Author: dev@safetour.app

package guide

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

// PostgresRepository implements [Repository] using pgx.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository constructs a PostgreSQL backed guide request store.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

/*
Create persists a new guide request row.

Description: UserID may be nil; the column is nullable by design for
anonymous submissions.

Parameters:
  - context: context.Context
  - request: *Request

Returns:
  - error: Database constraint violations or connectivity errors
*/
func (repository *PostgresRepository) Create(context context.Context, request *Request) error {
	const query = `
		INSERT INTO safety.guiderequest (
			id, userid, name, email, phone, destination, startdate, enddate,
			groupsize, language, specialrequests, createdat
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

	if request.CreatedAt.IsZero() {
		request.CreatedAt = time.Now()
	}

	_, err := repository.db.Exec(context, query,
		request.ID,
		request.UserID,
		request.Name,
		request.Email,
		request.Phone,
		request.Destination,
		request.StartDate,
		request.EndDate,
		request.GroupSize,
		request.Language,
		request.SpecialRequests,
		request.CreatedAt,
	)

	if err != nil {
		return fmt.Errorf("postgres_guide_repo_create_failed: %w", err)
	}

	return nil
}

/*
FindByID retrieves a single guide request by its primary key.

Parameters:
  - context: context.Context
  - id: string

Returns:
  - *Request: Hydrated entity
  - error: apperr.NotFound or database errors
*/
func (repository *PostgresRepository) FindByID(context context.Context, id string) (*Request, error) {
	const query = `
		SELECT id, userid, name, email, phone, destination, startdate, enddate,
			groupsize, language, specialrequests, createdat
		FROM safety.guiderequest
		WHERE id = $1`

	request := &Request{}
	err := repository.db.QueryRow(context, query, id).Scan(
		&request.ID,
		&request.UserID,
		&request.Name,
		&request.Email,
		&request.Phone,
		&request.Destination,
		&request.StartDate,
		&request.EndDate,
		&request.GroupSize,
		&request.Language,
		&request.SpecialRequests,
		&request.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("Guide request")
		}
		return nil, fmt.Errorf("postgres_guide_repo_find_failed: %w", err)
	}

	return request, nil
}

/*
ListAll returns every guide request joined with the requester projection.

Description: LEFT JOIN — anonymous submissions have no account row, and the
projection fields stay null for them. Newest first. No pagination.

Parameters:
  - context: context.Context

Returns:
  - []*ListedRequest: All requests (empty slice, never nil)
  - error: Retrieval failures
*/
func (repository *PostgresRepository) ListAll(context context.Context) ([]*ListedRequest, error) {
	const query = `
		SELECT
			g.id, g.userid, g.name, g.email, g.phone, g.destination,
			g.startdate, g.enddate, g.groupsize, g.language, g.specialrequests,
			g.createdat,
			u.name AS requester_name, u.email AS requester_email
		FROM safety.guiderequest g
		LEFT JOIN users.account u ON u.id = g.userid
		ORDER BY g.createdat DESC`

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "")
	}
	defer rows.Close()

	requests := make([]*ListedRequest, 0)
	for rows.Next() {
		listed := &ListedRequest{}
		err := rows.Scan(
			&listed.ID, &listed.UserID, &listed.Name, &listed.Email, &listed.Phone,
			&listed.Destination, &listed.StartDate, &listed.EndDate, &listed.GroupSize,
			&listed.Language, &listed.SpecialRequests, &listed.CreatedAt,
			&listed.RequesterName, &listed.RequesterEmail,
		)
		if err != nil {
			return nil, fmt.Errorf("postgres_guide_repo_scan_failed: %w", err)
		}
		requests = append(requests, listed)
	}

	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, "")
	}

	return requests, nil
}
