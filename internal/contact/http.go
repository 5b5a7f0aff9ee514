// Copyright (c) 2026 SafeTour. All rights reserved.
// Author: dev@safetour.app

package contact

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/safetour/api/internal/platform/request"
	"github.com/safetour/api/internal/platform/respond"
	"github.com/safetour/api/internal/platform/validate"
)

// Handler implements the HTTP layer for contact messages.
type Handler struct {
	service *Service
}

// NewHandler constructs a contact [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the contact routes. Fully public, no access policy.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Post("/", handler.createMessage)
	return router
}

type createContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

/*
createMessage submits a contact-form message.

POST /api/contacts

Request:
  - Body: createContactRequest (all fields required)

Response:
  - 200: The stored record, read back by its generated id
  - 400: Missing required fields
*/
func (handler *Handler) createMessage(writer http.ResponseWriter, request *http.Request) {
	var input createContactRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	validator := &validate.Validator{}
	validator.Required(FieldName, input.Name).
		Required(FieldEmail, input.Email).
		Email(FieldEmail, input.Email).
		Required(FieldSubject, input.Subject).
		Required(FieldMessage, input.Message)

	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	created, err := handler.service.Create(request.Context(), CreateInput{
		Name:    input.Name,
		Email:   input.Email,
		Subject: input.Subject,
		Message: input.Message,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, created)
}
