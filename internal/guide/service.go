// Copyright (c) 2026 SafeTour. All rights reserved.
// Author: dev@safetour.app

package guide

import (
	"context"
	"log/slog"
	"time"

	"github.com/safetour/api/pkg/uuid"
)

// Service implements the guide request use cases.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService constructs a guide [Service].
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// CreateInput holds the submission payload for a new guide request.
type CreateInput struct {
	Name            string
	Email           string
	Phone           string
	Destination     string
	StartDate       *time.Time
	EndDate         *time.Time
	GroupSize       *int
	Language        string
	SpecialRequests *string
}

// Create persists a new guide request and reads it back by its generated id.
//
// ownerID is the nullable owner reference: callers pass nil when the
// submission carried no verifiable identity. The service never distinguishes
// the two cases beyond storing the reference.
func (service *Service) Create(context context.Context, ownerID *string, input CreateInput) (*Request, error) {
	language := input.Language
	if language == "" {
		language = DefaultLanguage
	}

	groupSize := DefaultGroupSize
	if input.GroupSize != nil {
		groupSize = *input.GroupSize
	}

	request := &Request{
		ID:              uuid.New(),
		UserID:          ownerID,
		Name:            input.Name,
		Email:           input.Email,
		Phone:           input.Phone,
		Destination:     input.Destination,
		StartDate:       input.StartDate,
		EndDate:         input.EndDate,
		GroupSize:       groupSize,
		Language:        language,
		SpecialRequests: input.SpecialRequests,
	}

	if err := service.repo.Create(context, request); err != nil {
		return nil, err
	}

	return service.repo.FindByID(context, request.ID)
}

// List returns every guide request with its requester projection, newest first.
func (service *Service) List(context context.Context) ([]*ListedRequest, error) {
	return service.repo.ListAll(context)
}
