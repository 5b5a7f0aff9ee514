// Copyright (c) 2026 SafeTour. All rights reserved.
// Author: dev@safetour.app

package report

import (
	"context"
	"log/slog"

	"github.com/safetour/api/pkg/uuid"
)

// Service implements the report use cases.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService constructs a report [Service].
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// CreateInput holds the submission payload for a new report.
// Every field is optional; severity defaults to low when absent.
type CreateInput struct {
	Title       *string
	Description *string
	Latitude    *float64
	Longitude   *float64
	Severity    string
}

// Create persists a new report owned by userID and reads it back by its
// generated id, returning the stored record exactly as the database holds it.
func (service *Service) Create(context context.Context, userID string, input CreateInput) (*Report, error) {
	severity := input.Severity
	if severity == "" {
		severity = SeverityLow
	}

	report := &Report{
		ID:          uuid.New(),
		UserID:      userID,
		Title:       input.Title,
		Description: input.Description,
		Latitude:    input.Latitude,
		Longitude:   input.Longitude,
		Severity:    severity,
	}

	if err := service.repo.Create(context, report); err != nil {
		return nil, err
	}

	// Read-back by generated id: the response is the stored record, not the
	// in-memory echo of the request.
	return service.repo.FindByID(context, report.ID)
}

// List returns every report with its reporter projection, newest first.
func (service *Service) List(context context.Context) ([]*ListedReport, error) {
	return service.repo.ListAll(context)
}
