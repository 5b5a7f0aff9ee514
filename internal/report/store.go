// Copyright (c) 2026 SafeTour. All rights reserved.
// Author: dev@safetour.app

package report

import "context"

// Repository defines the data access contract for incident reports.
type Repository interface {

	/*
		Create persists a new report record.

		Parameters:
		  - context: context.Context
		  - report: *Report

		Returns:
		  - error: Persistence failures
	*/
	Create(context context.Context, report *Report) error

	/*
		FindByID retrieves a single report by its primary key.

		Parameters:
		  - context: context.Context
		  - id: string

		Returns:
		  - *Report: Hydrated entity
		  - error: apperr.NotFound or retrieval failures
	*/
	FindByID(context context.Context, id string) (*Report, error)

	/*
		ListAll returns every report joined with the reporter projection,
		newest first. Unbounded by design — pagination is an explicit
		non-goal for the admin listing.

		Parameters:
		  - context: context.Context

		Returns:
		  - []*ListedReport: All reports, most recent first
		  - error: Retrieval failures
	*/
	ListAll(context context.Context) ([]*ListedReport, error)
}
