// Copyright (c) 2026 SafeTour. All rights reserved.
// Author: dev@safetour.app

package account

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/safetour/api/internal/platform/constants"
	"github.com/safetour/api/internal/users/auth"
)

// RedisProfileCache implements [ProfileCache] using Redis with JSON values.
type RedisProfileCache struct {
	client *redis.Client
}

// NewProfileCache creates a new Redis-backed profile cache.
func NewProfileCache(client *redis.Client) *RedisProfileCache {
	return &RedisProfileCache{client: client}
}

/*
Get retrieves a cached profile projection.

Description: A missing key is a cache miss, reported as (nil, nil) — only
connectivity problems surface as errors.

Parameters:
  - context: context.Context
  - userID: string

Returns:
  - *auth.Profile: Decoded projection or nil
  - error: Connectivity or decoding failures
*/
func (cache *RedisProfileCache) Get(context context.Context, userID string) (*auth.Profile, error) {
	key := constants.RedisPrefixProfile + userID

	payload, err := cache.client.Get(context, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("redis_profile_cache_get_failed: %w", err)
	}

	profile := &auth.Profile{}
	if err := json.Unmarshal(payload, profile); err != nil {
		return nil, fmt.Errorf("redis_profile_cache_decode_failed: %w", err)
	}

	return profile, nil
}

/*
Set stores a profile projection under the standard TTL.

Parameters:
  - context: context.Context
  - profile: *auth.Profile

Returns:
  - error: Encoding or connectivity failures
*/
func (cache *RedisProfileCache) Set(context context.Context, profile *auth.Profile) error {
	key := constants.RedisPrefixProfile + profile.ID

	payload, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("redis_profile_cache_encode_failed: %w", err)
	}

	if err := cache.client.Set(context, key, payload, ProfileTTL).Err(); err != nil {
		return fmt.Errorf("redis_profile_cache_set_failed: %w", err)
	}

	return nil
}
