// Copyright (c) 2026 SafeTour. All rights reserved.
// Author: dev@safetour.app

package report

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/safetour/api/internal/platform/request"
	"github.com/safetour/api/internal/platform/respond"
	"github.com/safetour/api/internal/platform/validate"
)

// Handler implements the HTTP layer for incident reports.
type Handler struct {
	service *Service
}

// NewHandler constructs a report [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the report routes.
//
// The two endpoints carry different access policies: creation sits behind the
// strict policy passed in by the server, while the listing stays public.
func (handler *Handler) Routes(strict func(http.Handler) http.Handler) chi.Router {
	router := chi.NewRouter()
	router.With(strict).Post("/", handler.createReport)
	router.Get("/", handler.listReports)
	return router
}

type createReportRequest struct {
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
	Severity    string   `json:"severity"`
}

/*
createReport files a new incident report owned by the caller.

POST /api/reports

Request:
  - Body: createReportRequest (all fields optional)

Response:
  - 200: The stored record, read back by its generated id
  - 400: Out-of-range coordinates or unknown severity
  - 401: Rejected by the strict access policy before this runs
*/
func (handler *Handler) createReport(writer http.ResponseWriter, request *http.Request) {
	claims, err := requestutil.RequiredIdentity(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input createReportRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	validator := &validate.Validator{}
	if input.Severity != "" {
		validator.OneOf(FieldSeverity, input.Severity, SeverityLow, SeverityMedium, SeverityHigh)
	}
	if input.Latitude != nil {
		validator.FloatRange(FieldLatitude, *input.Latitude, -90, 90)
	}
	if input.Longitude != nil {
		validator.FloatRange(FieldLongitude, *input.Longitude, -180, 180)
	}

	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	created, err := handler.service.Create(request.Context(), claims.UserID, CreateInput{
		Title:       input.Title,
		Description: input.Description,
		Latitude:    input.Latitude,
		Longitude:   input.Longitude,
		Severity:    input.Severity,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, created)
}

/*
listReports returns all reports with the reporter projection.

GET /api/reports

Response:
  - 200: Array of reports + reporter name/email, newest first, unpaginated
*/
func (handler *Handler) listReports(writer http.ResponseWriter, request *http.Request) {
	reports, err := handler.service.List(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, reports)
}
