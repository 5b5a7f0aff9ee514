// Copyright (c) 2026 SafeTour. All rights reserved.
// Author: dev@safetour.app

package account

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/safetour/api/internal/platform/request"
	"github.com/safetour/api/internal/platform/respond"
)

// Handler implements the HTTP layer for the authenticated user's profile.
type Handler struct {
	accountService *Service
}

// NewHandler constructs a new account [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{accountService: service}
}

// Routes returns a [chi.Router] with the account endpoints.
//
// The whole group is mounted behind the strict access policy in the server —
// every route here assumes verified claims are present in context.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/me", handler.getMe)

	return router
}

/*
getMe retrieves the public profile of the authenticated caller.

GET /api/users/me

Response:
  - 200: Profile (never includes the password hash field)
  - 401: Missing/invalid token (rejected by middleware before this runs)
  - 404: Account row vanished after the token was issued
*/
func (handler *Handler) getMe(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	profile, err := handler.accountService.GetProfile(request.Context(), userID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, profile)
}
