// Copyright (c) 2026 SafeTour. All rights reserved.
// Author: dev@safetour.app

package guide

import "context"

// Repository defines the data access contract for guide requests.
type Repository interface {

	/*
		Create persists a new guide request record.

		Parameters:
		  - context: context.Context
		  - request: *Request

		Returns:
		  - error: Persistence failures
	*/
	Create(context context.Context, request *Request) error

	/*
		FindByID retrieves a single guide request by its primary key.

		Parameters:
		  - context: context.Context
		  - id: string

		Returns:
		  - *Request: Hydrated entity
		  - error: apperr.NotFound or retrieval failures
	*/
	FindByID(context context.Context, id string) (*Request, error)

	/*
		ListAll returns every guide request joined with the requester
		projection, newest first, unpaginated.

		Parameters:
		  - context: context.Context

		Returns:
		  - []*ListedRequest: All requests, most recent first
		  - error: Retrieval failures
	*/
	ListAll(context context.Context) ([]*ListedRequest, error)
}
