// Copyright (c) 2026 SafeTour. All rights reserved.
// Author: dev@safetour.app

/*
Package guide implements tour-guide booking requests.

Guide requests are the canonical optional-ownership resource: submission works
for anonymous visitors and logged-in users alike. When a valid bearer token
accompanies the request the record is linked to that account; when the token
is missing, malformed, or expired the record is simply stored with a null
owner — the request is never rejected for a bad token.
*/
package guide

import "time"

// # Defaults

const (
	// DefaultGroupSize applies when the submission omits a group size.
	DefaultGroupSize = 1

	// DefaultLanguage applies when the submission omits a preferred language.
	DefaultLanguage = "English"
)

// # Domain Entities

// Request represents a tour-guide booking request.
//
// UserID is the nullable owner reference: nil when identity could not be
// established at submission time.
type Request struct {
	ID              string     `json:"id"`
	UserID          *string    `json:"user_id"`
	Name            string     `json:"name"`
	Email           string     `json:"email"`
	Phone           string     `json:"phone"`
	Destination     string     `json:"destination"`
	StartDate       *time.Time `json:"start_date"`
	EndDate         *time.Time `json:"end_date"`
	GroupSize       int        `json:"group_size"`
	Language        string     `json:"language"`
	SpecialRequests *string    `json:"special_requests"`
	CreatedAt       time.Time  `json:"created_at"`
}

// ListedRequest is a [Request] joined with the requester's public identity.
// Both projection fields are nil for anonymous submissions.
type ListedRequest struct {
	Request
	RequesterName  *string `json:"requester_name"`
	RequesterEmail *string `json:"requester_email"`
}

// # Field Identifiers

const (
	FieldName        = "name"
	FieldEmail       = "email"
	FieldPhone       = "phone"
	FieldDestination = "destination"
	FieldStartDate   = "startDate"
	FieldEndDate     = "endDate"
	FieldGroupSize   = "groupSize"
)
