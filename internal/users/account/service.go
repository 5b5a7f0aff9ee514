// Copyright (c) 2026 SafeTour. All rights reserved.
// Author: dev@safetour.app

/*
Package account handles the authenticated user's view of their own identity.

It serves the profile endpoint behind the strict access policy, fronted by a
short-lived Redis cache.

# Architecture

  - Domain: This package depends on the auth package for the Profile entity.
  - Caching: Read-through; safe because profiles are immutable in scope
    (no update or delete endpoints exist).
*/
package account

import (
	"context"
	"log/slog"
	"time"

	"github.com/safetour/api/internal/users/auth"
)

// ProfileTTL is how long a cached profile projection stays valid.
const ProfileTTL = 5 * time.Minute

// # Repository Contracts

// ProfileReader is the slice of the credential store this package needs.
type ProfileReader interface {
	/*
		FindPublicByID retrieves the public identity projection for an account.

		Parameters:
		  - context: context.Context
		  - id: string

		Returns:
		  - *auth.Profile: Projection excluding the password hash
		  - error: apperr.NotFound or storage failures
	*/
	FindPublicByID(context context.Context, id string) (*auth.Profile, error)
}

// ProfileCache is the volatile store for profile projections.
type ProfileCache interface {
	/*
		Get retrieves a cached profile.

		Parameters:
		  - context: context.Context
		  - userID: string

		Returns:
		  - *auth.Profile: Cached projection, or nil on a miss
		  - error: Connectivity failures (a miss is not an error)
	*/
	Get(context context.Context, userID string) (*auth.Profile, error)

	/*
		Set stores a profile projection with the standard TTL.

		Parameters:
		  - context: context.Context
		  - profile: *auth.Profile

		Returns:
		  - error: Connectivity failures
	*/
	Set(context context.Context, profile *auth.Profile) error
}

// Service implements profile retrieval with read-through caching.
type Service struct {
	profiles ProfileReader
	cache    ProfileCache
	logger   *slog.Logger
}

// NewService constructs an account [Service].
func NewService(profiles ProfileReader, cache ProfileCache, logger *slog.Logger) *Service {
	return &Service{
		profiles: profiles,
		cache:    cache,
		logger:   logger,
	}
}

// GetProfile returns the public profile for the given user id.
//
// Cache failures are logged and ignored — the database remains the source of
// truth, so a degraded Redis never breaks the endpoint.
func (service *Service) GetProfile(context context.Context, userID string) (*auth.Profile, error) {
	if cached, err := service.cache.Get(context, userID); err == nil && cached != nil {
		return cached, nil
	} else if err != nil {
		service.logger.Warn("profile_cache_read_failed", slog.Any("error", err))
	}

	profile, err := service.profiles.FindPublicByID(context, userID)
	if err != nil {
		return nil, err
	}

	if err := service.cache.Set(context, profile); err != nil {
		service.logger.Warn("profile_cache_write_failed", slog.Any("error", err))
	}

	return profile, nil
}
