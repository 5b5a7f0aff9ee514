// Copyright (c) 2026 SafeTour. All rights reserved.
// Author: dev@safetour.app

package guide

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/safetour/api/internal/platform/request"
	"github.com/safetour/api/internal/platform/respond"
	"github.com/safetour/api/internal/platform/validate"
)

// dateLayout is the wire format for travel dates.
const dateLayout = "2006-01-02"

// Handler implements the HTTP layer for guide requests.
type Handler struct {
	service *Service
}

// NewHandler constructs a guide [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the guide request routes.
//
// The server mounts these behind TryIdentity: creation reads whatever
// identity the best-effort policy established, which may be none.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Post("/", handler.createRequest)
	router.Get("/", handler.listRequests)
	return router
}

// createGuideRequest uses the client-facing camelCase field names — these are
// the API contract, distinct from the snake_case storage representation.
type createGuideRequest struct {
	Name            string  `json:"name"`
	Email           string  `json:"email"`
	Phone           string  `json:"phone"`
	Destination     string  `json:"destination"`
	StartDate       *string `json:"startDate"`
	EndDate         *string `json:"endDate"`
	GroupSize       *int    `json:"groupSize"`
	Language        string  `json:"language"`
	SpecialRequests *string `json:"specialRequests"`
}

/*
createRequest submits a new guide booking request.

POST /api/guides

Description: Works for anonymous and authenticated callers alike. A missing,
malformed, or expired bearer token yields a null owner — never a 401. That
swallow-and-proceed behavior is contract-level and must not be "fixed".

Request:
  - Body: createGuideRequest (name, email, phone, destination required)

Response:
  - 200: The stored record, read back by its generated id
  - 400: Missing required fields or malformed dates
*/
func (handler *Handler) createRequest(writer http.ResponseWriter, request *http.Request) {
	var input createGuideRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	validator := &validate.Validator{}
	validator.Required(FieldName, input.Name).
		Required(FieldEmail, input.Email).
		Email(FieldEmail, input.Email).
		Required(FieldPhone, input.Phone).
		Required(FieldDestination, input.Destination)
	if input.GroupSize != nil {
		validator.Custom(FieldGroupSize, *input.GroupSize < 1, "Must be at least 1")
	}

	startDate, startErr := parseDate(input.StartDate)
	validator.Custom(FieldStartDate, startErr != nil, "Must be a YYYY-MM-DD date")
	endDate, endErr := parseDate(input.EndDate)
	validator.Custom(FieldEndDate, endErr != nil, "Must be a YYYY-MM-DD date")

	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	// Best-effort owner: nil claims means an anonymous record.
	var ownerID *string
	if claims := requestutil.Identity(request); claims != nil {
		ownerID = &claims.UserID
	}

	created, err := handler.service.Create(request.Context(), ownerID, CreateInput{
		Name:            input.Name,
		Email:           input.Email,
		Phone:           input.Phone,
		Destination:     input.Destination,
		StartDate:       startDate,
		EndDate:         endDate,
		GroupSize:       input.GroupSize,
		Language:        input.Language,
		SpecialRequests: input.SpecialRequests,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, created)
}

/*
listRequests returns all guide requests with the requester projection.

GET /api/guides

Response:
  - 200: Array of requests + requester name/email, newest first, unpaginated
*/
func (handler *Handler) listRequests(writer http.ResponseWriter, request *http.Request) {
	requests, err := handler.service.List(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, requests)
}

// parseDate converts an optional YYYY-MM-DD string into a *time.Time.
func parseDate(value *string) (*time.Time, error) {
	if value == nil || *value == "" {
		return nil, nil
	}
	parsed, err := time.Parse(dateLayout, *value)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}
