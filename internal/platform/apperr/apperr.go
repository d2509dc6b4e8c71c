// Copyright (c) 2026 Lister. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package apperr is the error vocabulary shared by services, stores and the
HTTP layer.

Every failure a client can act on leaves the service layer as an [*AppError]:
a stable code, a message safe to show, the HTTP status it maps to and, for
validation, per-field details. Anything else is treated as a 500 by the
respond package.
*/
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// # Error Codes

const (
	CodeNotFound         = "NOT_FOUND"
	CodeUnauthorized     = "UNAUTHORIZED"
	CodeConflict         = "CONFLICT"
	CodeValidation       = "VALIDATION_ERROR"
	CodeCapacityExceeded = "CAPACITY_EXCEEDED"
	CodeRateLimited      = "RATE_LIMITED"
	CodeInternal         = "INTERNAL_ERROR"
)

// AppError is a client-facing failure. Cause is logged, never rendered.
type AppError struct {
	Code       string       `json:"code"`
	Message    string       `json:"error"`
	HTTPStatus int          `json:"-"`
	Cause      error        `json:"-"`
	Details    []FieldError `json:"details,omitempty"`
}

// FieldError names the input field a validation rule rejected.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *AppError) Error() string { return e.Message }

func (e *AppError) Unwrap() error { return e.Cause }

// IsValidation reports a 400-class input problem; a full list counts as one.
func (e *AppError) IsValidation() bool {
	return e.Code == CodeValidation || e.Code == CodeCapacityExceeded
}

func newError(status int, code, message string) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: status}
}

// # Constructors

// NotFound reports a missing resource, e.g. NotFound("List") is "List not found".
func NotFound(resource string) *AppError {
	return newError(http.StatusNotFound, CodeNotFound, resource+" not found")
}

func Unauthorized(message string) *AppError {
	return newError(http.StatusUnauthorized, CodeUnauthorized, message)
}

// Conflict reports a uniqueness clash such as a second list for one slot.
func Conflict(message string) *AppError {
	return newError(http.StatusConflict, CodeConflict, message)
}

func ValidationError(message string, details ...FieldError) *AppError {
	err := newError(http.StatusBadRequest, CodeValidation, message)
	err.Details = details
	return err
}

// CapacityExceeded rejects an insert into a list that already holds limit items.
func CapacityExceeded(limit int) *AppError {
	return newError(http.StatusBadRequest, CodeCapacityExceeded, fmt.Sprintf("List is full (maximum %d items)", limit))
}

func RateLimited(retryAfterSeconds int) *AppError {
	return newError(http.StatusTooManyRequests, CodeRateLimited, fmt.Sprintf("Too many requests. Try again in %ds.", retryAfterSeconds))
}

// Internal hides cause behind a generic message.
func Internal(cause error) *AppError {
	err := newError(http.StatusInternalServerError, CodeInternal, "An unexpected error occurred")
	err.Cause = cause
	return err
}

// # Inspection

// As returns the first [*AppError] in err's chain, or nil.
func As(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}

// HasCode reports whether err's chain carries an [*AppError] with code.
func HasCode(err error, code string) bool {
	appErr := As(err)
	return appErr != nil && appErr.Code == code
}
