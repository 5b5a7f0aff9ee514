// Copyright (c) 2026 SafeTour. All rights reserved.
// Author: dev@safetour.app

/*
Package requestutil provides utilities for extracting data from HTTP requests.

It abstracts away the underlying router's parameter extraction and common
body decoding patterns, ensuring consistent error handling and type safety.
*/
package requestutil

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/safetour/api/internal/platform/apperr"
	"github.com/safetour/api/internal/platform/ctxutil"
	"github.com/safetour/api/internal/platform/sec"
	"github.com/safetour/api/internal/platform/validate"
)

// DecodeJSON reads the request body and decodes it into the target structure.
// Returns [validate.ErrInvalidJSON] if decoding fails.
func DecodeJSON(request *http.Request, target interface{}) error {
	if err := json.NewDecoder(request.Body).Decode(target); err != nil {
		return validate.ErrInvalidJSON
	}
	return nil
}

// Param retrieves a named URL parameter from the request.
func Param(request *http.Request, name string) string {
	return chi.URLParam(request, name)
}

// Identity extracts the verified bearer claims from the request context.
//
// Returns nil if the request is anonymous. Endpoints under the optional
// access policy use this directly and treat nil as "no owner".
func Identity(request *http.Request) *sec.AuthClaims {
	return ctxutil.GetIdentity(request.Context())
}

// RequiredIdentity ensures the request carries verified claims.
//
// Returns apperr.Unauthenticated when the request is anonymous. Under the
// strict access policy this never fires — the middleware rejects first — but
// it protects handlers against being mounted without the guard.
func RequiredIdentity(request *http.Request) (*sec.AuthClaims, error) {
	claims := ctxutil.GetIdentity(request.Context())
	if claims == nil {
		return nil, apperr.Unauthenticated("Authentication required")
	}
	return claims, nil
}

// RequiredUserID returns the user ID of the currently authenticated caller.
func RequiredUserID(request *http.Request) (string, error) {
	claims, err := RequiredIdentity(request)
	if err != nil {
		return "", err
	}
	return claims.UserID, nil
}
