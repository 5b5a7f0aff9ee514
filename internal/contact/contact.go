// Copyright (c) 2026 SafeTour. All rights reserved.
// Author: dev@safetour.app

/*
Package contact implements the public contact-form inbox.

Contact messages are the simplest resource in the system: fully anonymous,
no owner reference at all, write-only from the API's perspective.
*/
package contact

import (
	"context"
	"time"
)

// Message represents a submitted contact-form message.
type Message struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// Repository defines the data access contract for contact messages.
type Repository interface {

	/*
		Create persists a new contact message.

		Parameters:
		  - context: context.Context
		  - message: *Message

		Returns:
		  - error: Persistence failures
	*/
	Create(context context.Context, message *Message) error

	/*
		FindByID retrieves a single message by its primary key.

		Parameters:
		  - context: context.Context
		  - id: string

		Returns:
		  - *Message: Hydrated entity
		  - error: apperr.NotFound or retrieval failures
	*/
	FindByID(context context.Context, id string) (*Message, error)
}

// # Field Identifiers

const (
	FieldName    = "name"
	FieldEmail   = "email"
	FieldSubject = "subject"
	FieldMessage = "message"
)
