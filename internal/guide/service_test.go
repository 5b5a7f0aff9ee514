// Copyright (c) 2026 SafeTour. All rights reserved.
// Author: dev@safetour.app

package guide_test

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/safetour/api/internal/guide"
	"github.com/safetour/api/internal/platform/apperr"
	"github.com/safetour/api/pkg/pointer"
)

// fakeRepository is an in-memory guide request store preserving insertion order.
type fakeRepository struct {
	requests []*guide.Request
}

func (f *fakeRepository) Create(_ context.Context, r *guide.Request) error {
	stored := *r
	stored.CreatedAt = time.Now()
	f.requests = append(f.requests, &stored)
	return nil
}

func (f *fakeRepository) FindByID(_ context.Context, id string) (*guide.Request, error) {
	for _, r := range f.requests {
		if r.ID == id {
			return r, nil
		}
	}
	return nil, apperr.NotFound("Guide request")
}

func (f *fakeRepository) ListAll(_ context.Context) ([]*guide.ListedRequest, error) {
	listed := make([]*guide.ListedRequest, 0, len(f.requests))
	for i := len(f.requests) - 1; i >= 0; i-- {
		listed = append(listed, &guide.ListedRequest{Request: *f.requests[i]})
	}
	return listed, nil
}

func baseInput() guide.CreateInput {
	return guide.CreateInput{
		Name:        "Mina",
		Email:       "mina@safetour.app",
		Phone:       "+33123456789",
		Destination: "Paris",
	}
}

/*
TestCreate_AnonymousOwner verifies that a nil owner is stored as a null
reference, not rejected.
*/
func TestCreate_AnonymousOwner(t *testing.T) {
	service := guide.NewService(&fakeRepository{}, slog.Default())

	created, err := service.Create(context.Background(), nil, baseInput())
	require.NoError(t, err)

	assert.NotEmpty(t, created.ID)
	assert.Nil(t, created.UserID)
}

/*
TestCreate_LinkedOwner verifies owner linkage for authenticated submissions.
*/
func TestCreate_LinkedOwner(t *testing.T) {
	service := guide.NewService(&fakeRepository{}, slog.Default())

	created, err := service.Create(context.Background(), pointer.To("user-1"), baseInput())
	require.NoError(t, err)

	require.NotNil(t, created.UserID)
	assert.Equal(t, "user-1", *created.UserID)
}

/*
TestCreate_Defaults verifies the group size and language fallbacks.
*/
func TestCreate_Defaults(t *testing.T) {
	service := guide.NewService(&fakeRepository{}, slog.Default())

	created, err := service.Create(context.Background(), nil, baseInput())
	require.NoError(t, err)

	assert.Equal(t, guide.DefaultGroupSize, created.GroupSize)
	assert.Equal(t, guide.DefaultLanguage, created.Language)

	input := baseInput()
	input.GroupSize = pointer.To(4)
	input.Language = "French"

	custom, err := service.Create(context.Background(), nil, input)
	require.NoError(t, err)

	assert.Equal(t, 4, custom.GroupSize)
	assert.Equal(t, "French", custom.Language)
}

/*
TestList verifies newest-first ordering.
*/
func TestList(t *testing.T) {
	service := guide.NewService(&fakeRepository{}, slog.Default())

	first, err := service.Create(context.Background(), nil, baseInput())
	require.NoError(t, err)
	second, err := service.Create(context.Background(), pointer.To("user-1"), baseInput())
	require.NoError(t, err)

	listed, err := service.List(context.Background())
	require.NoError(t, err)
	require.Len(t, listed, 2)

	assert.Equal(t, second.ID, listed[0].ID)
	assert.Equal(t, first.ID, listed[1].ID)
}
