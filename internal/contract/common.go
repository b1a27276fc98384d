// Package contract re-exports the application-layer request and response
// shapes consumed by the UI and command layers.
package contract

import "github.com/oahconnect/carelink/internal/app"

type ValidationErrorCode = app.ValidationErrorCode

const (
	ErrEmptyDescription ValidationErrorCode = app.ErrEmptyDescription
	ErrBelowMinimum     ValidationErrorCode = app.ErrBelowMinimum
	ErrTaskUnavailable  ValidationErrorCode = app.ErrTaskUnavailable
)

type ValidationError = app.ValidationError

type CountBucket = app.CountBucket

type DayTotal = app.DayTotal
