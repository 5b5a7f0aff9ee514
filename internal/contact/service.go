// Copyright (c) 2026 SafeTour. All rights reserved.
// Author: dev@safetour.app

package contact

import (
	"context"
	"log/slog"

	"github.com/safetour/api/pkg/uuid"
)

// Service implements the contact message use cases.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService constructs a contact [Service].
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// CreateInput holds the submission payload for a contact message.
type CreateInput struct {
	Name    string
	Email   string
	Subject string
	Message string
}

// Create persists a new contact message and reads it back by its generated id.
func (service *Service) Create(context context.Context, input CreateInput) (*Message, error) {
	message := &Message{
		ID:      uuid.New(),
		Name:    input.Name,
		Email:   input.Email,
		Subject: input.Subject,
		Message: input.Message,
	}

	if err := service.repo.Create(context, message); err != nil {
		return nil, err
	}

	return service.repo.FindByID(context, message.ID)
}
