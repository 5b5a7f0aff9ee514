// Copyright (c) 2026 SafeTour. All rights reserved.
// Author: dev@safetour.app

package report

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

// NewPostgresRepository constructs a PostgreSQL backed report store.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

/*
Create persists a new report row.

Parameters:
  - context: context.Context
  - report: *Report

Returns:
  - error: Database constraint violations or connectivity errors
*/
func (repository *PostgresRepository) Create(context context.Context, report *Report) error {
	const query = `
		INSERT INTO safety.report (
			id, userid, title, description, latitude, longitude, severity, createdat
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	if report.CreatedAt.IsZero() {
		report.CreatedAt = time.Now()
	}

	_, err := repository.db.Exec(context, query,
		report.ID,
		report.UserID,
		report.Title,
		report.Description,
		report.Latitude,
		report.Longitude,
		report.Severity,
		report.CreatedAt,
	)

	if err != nil {
		return fmt.Errorf("postgres_report_repo_create_failed: %w", err)
	}

	return nil
}

/*
FindByID retrieves a single report by its primary key.

Parameters:
  - context: context.Context
  - id: string

Returns:
  - *Report: Hydrated entity
  - error: apperr.NotFound or database errors
*/
func (repository *PostgresRepository) FindByID(context context.Context, id string) (*Report, error) {
	const query = `
		SELECT id, userid, title, description, latitude, longitude, severity, createdat
		FROM safety.report
		WHERE id = $1`

	report := &Report{}
	err := repository.db.QueryRow(context, query, id).Scan(
		&report.ID,
		&report.UserID,
		&report.Title,
		&report.Description,
		&report.Latitude,
		&report.Longitude,
		&report.Severity,
		&report.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("Report")
		}
		return nil, fmt.Errorf("postgres_report_repo_find_failed: %w", err)
	}

	return report, nil
}

/*
ListAll returns every report joined with the reporter projection.

Description: LEFT JOIN so a report survives its reporter row disappearing.
Ordered by creation time, most recent first. No pagination.

Parameters:
  - context: context.Context

Returns:
  - []*ListedReport: All reports (empty slice, never nil)
  - error: Retrieval failures
*/
func (repository *PostgresRepository) ListAll(context context.Context) ([]*ListedReport, error) {
	const query = `
		SELECT
			r.id, r.userid, r.title, r.description, r.latitude, r.longitude,
			r.severity, r.createdat,
			u.name AS reporter_name, u.email AS reporter_email
		FROM safety.report r
		LEFT JOIN users.account u ON u.id = r.userid
		ORDER BY r.createdat DESC`

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "")
	}
	defer rows.Close()

	reports := make([]*ListedReport, 0)
	for rows.Next() {
		listed := &ListedReport{}
		err := rows.Scan(
			&listed.ID, &listed.UserID, &listed.Title, &listed.Description,
			&listed.Latitude, &listed.Longitude, &listed.Severity, &listed.CreatedAt,
			&listed.ReporterName, &listed.ReporterEmail,
		)
		if err != nil {
			return nil, fmt.Errorf("postgres_report_repo_scan_failed: %w", err)
		}
		reports = append(reports, listed)
	}

	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, "")
	}

	return reports, nil
}
