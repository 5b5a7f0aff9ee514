// Copyright (c) 2026 SafeTour. All rights reserved.
// Author: dev@safetour.app

/*
Package report implements safety incident reports filed by authenticated tourists.

Reports are owned resources: creation sits behind the strict access policy, so
the owner reference is always the verified token subject. The public listing
joins each report with a minimal reporter projection for the admin dashboard.
*/
package report

import "time"

// # Severity Levels

const (
	SeverityLow    = "low"
	SeverityMedium = "medium"
	SeverityHigh   = "high"
)

// # Domain Entities

// Report represents a filed safety incident.
//
// All payload fields are optional on submission; severity defaults to low.
type Report struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Title       *string   `json:"title"`
	Description *string   `json:"description"`
	Latitude    *float64  `json:"latitude"`
	Longitude   *float64  `json:"longitude"`
	Severity    string    `json:"severity"`
	CreatedAt   time.Time `json:"created_at"`
}

// ListedReport is a [Report] joined with its reporter's public identity.
//
// The reporter fields are nullable: the join is a LEFT JOIN so listings
// survive reporter rows disappearing out-of-band.
type ListedReport struct {
	Report
	ReporterName  *string `json:"reporter_name"`
	ReporterEmail *string `json:"reporter_email"`
}

// # Field Identifiers

const (
	FieldTitle       = "title"
	FieldDescription = "description"
	FieldLatitude    = "latitude"
	FieldLongitude   = "longitude"
	FieldSeverity    = "severity"
)
