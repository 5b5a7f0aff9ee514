// Copyright (c) 2026 SafeTour. All rights reserved.
// Author: dev@safetour.app

package middleware

import (
	"net/http"
	"strings"

	"github.com/safetour/api/internal/platform/apperr"
	"github.com/safetour/api/internal/platform/constants"
	"github.com/safetour/api/internal/platform/ctxutil"
	"github.com/safetour/api/internal/platform/respond"
	"github.com/safetour/api/internal/platform/sec"
)

// TokenVerifier defines the interface needed to verify bearer tokens.
//
// # Why an interface?
//
// Defining TokenVerifier here decouples the middleware from the concrete
// [sec.TokenService], allowing us to easily inject mocks during unit testing.
type TokenVerifier interface {
	VerifyToken(tokenStr string) (*sec.AuthClaims, error)
}

// RequireIdentity is the strict access policy.
//
// # Flow
//  1. Extract the 'Authorization: Bearer <token>' header.
//  2. Header absent or malformed → 401, the wrapped handler never runs.
//  3. Verification fails (bad signature, malformed, expired) → 401.
//  4. Otherwise inject [*sec.AuthClaims] into the request context and proceed.
//
// RequireIdentity and [TryIdentity] are deliberately two separate middlewares
// rather than one conditionally-behaving guard, so the strict and best-effort
// behaviors are independently testable and cannot drift together.
func RequireIdentity(verifier TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			claims, ok := parseBearer(request, verifier)
			if !ok {
				respond.Error(writer, request, apperr.Unauthenticated("Invalid or missing token"))
				return
			}

			ctx := ctxutil.WithIdentity(request.Context(), claims)
			next.ServeHTTP(writer, request.WithContext(ctx))
		})
	}
}

// TryIdentity is the optional (best-effort) access policy.
//
// It attempts to parse and verify a bearer token if one is present. On ANY
// failure — missing header, malformed scheme, expired or forged token — the
// request simply proceeds anonymously. It never writes a 401. Endpoints that
// accept anonymous submissions (guide requests) mount this policy and read
// the owner from context, treating nil as "no owner".
//
// Swallowing verification failures here is intentional, contract-level
// behavior; do not upgrade it to reject.
func TryIdentity(verifier TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			claims, ok := parseBearer(request, verifier)
			if !ok {
				next.ServeHTTP(writer, request)
				return
			}

			ctx := ctxutil.WithIdentity(request.Context(), claims)
			next.ServeHTTP(writer, request.WithContext(ctx))
		})
	}
}

// parseBearer extracts and verifies the Authorization header.
// The second return value reports whether verified claims were obtained.
func parseBearer(request *http.Request, verifier TokenVerifier) (*sec.AuthClaims, bool) {
	authHeader := request.Header.Get(constants.HeaderAuthorization)
	if authHeader == "" {
		return nil, false
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], constants.BearerScheme) {
		return nil, false
	}

	claims, err := verifier.VerifyToken(parts[1])
	if err != nil {
		return nil, false
	}

	return claims, true
}
