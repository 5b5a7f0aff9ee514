// Copyright (c) 2026 SafeTour. All rights reserved.
// Author: dev@safetour.app

package report_test

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/safetour/api/internal/platform/apperr"
	"github.com/safetour/api/internal/report"
	"github.com/safetour/api/pkg/pointer"
)

// fakeRepository is an in-memory report store preserving insertion order.
type fakeRepository struct {
	reports []*report.Report
}

func (f *fakeRepository) Create(_ context.Context, r *report.Report) error {
	stored := *r
	stored.CreatedAt = time.Now()
	f.reports = append(f.reports, &stored)
	return nil
}

func (f *fakeRepository) FindByID(_ context.Context, id string) (*report.Report, error) {
	for _, r := range f.reports {
		if r.ID == id {
			return r, nil
		}
	}
	return nil, apperr.NotFound("Report")
}

func (f *fakeRepository) ListAll(_ context.Context) ([]*report.ListedReport, error) {
	listed := make([]*report.ListedReport, 0, len(f.reports))
	for i := len(f.reports) - 1; i >= 0; i-- {
		listed = append(listed, &report.ListedReport{Report: *f.reports[i]})
	}
	return listed, nil
}

/*
TestCreate verifies ownership, id generation, and the read-back contract.
*/
func TestCreate(t *testing.T) {
	repo := &fakeRepository{}
	service := report.NewService(repo, slog.Default())

	created, err := service.Create(context.Background(), "user-1", report.CreateInput{
		Title:    pointer.To("Pickpocket near station"),
		Severity: report.SeverityHigh,
		Latitude: pointer.To(48.8566),
	})
	require.NoError(t, err)

	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "user-1", created.UserID)
	assert.Equal(t, report.SeverityHigh, created.Severity)
	// The response is the stored record, so CreatedAt comes from the store.
	assert.False(t, created.CreatedAt.IsZero())
}

/*
TestCreate_SeverityDefaultsLow verifies the missing-severity default.
*/
func TestCreate_SeverityDefaultsLow(t *testing.T) {
	repo := &fakeRepository{}
	service := report.NewService(repo, slog.Default())

	created, err := service.Create(context.Background(), "user-1", report.CreateInput{})
	require.NoError(t, err)

	assert.Equal(t, report.SeverityLow, created.Severity)
	assert.Nil(t, created.Title)
	assert.Nil(t, created.Latitude)
}

/*
TestList verifies newest-first ordering and the empty-slice guarantee.
*/
func TestList(t *testing.T) {
	repo := &fakeRepository{}
	service := report.NewService(repo, slog.Default())

	// Empty store must list as [], not null.
	empty, err := service.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Len(t, empty, 0)

	first, err := service.Create(context.Background(), "user-1", report.CreateInput{Title: pointer.To("first")})
	require.NoError(t, err)
	second, err := service.Create(context.Background(), "user-1", report.CreateInput{Title: pointer.To("second")})
	require.NoError(t, err)

	listed, err := service.List(context.Background())
	require.NoError(t, err)
	require.Len(t, listed, 2)

	assert.Equal(t, second.ID, listed[0].ID)
	assert.Equal(t, first.ID, listed[1].ID)
}
