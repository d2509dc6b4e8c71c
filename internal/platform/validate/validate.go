// Copyright (c) 2026 Lister. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package validate collects field-level failures and reports them as one
// VALIDATION_ERROR.
//
// Services build a [Validator] per operation, chain the rules, and return
// [Validator.Err]. Handlers and stores never validate.
package validate

import (
	"fmt"
	"net/mail"
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/taibuivan/lister/internal/platform/apperr"
	"github.com/taibuivan/lister/pkg/slug"
)

// ErrInvalidJSON is returned when a request body does not decode.
var ErrInvalidJSON = apperr.ValidationError("Invalid JSON payload")

// Validator accumulates failures. The zero value is ready to use; it is not
// safe for concurrent use.
type Validator struct {
	errs []apperr.FieldError
}

// check records message against field unless ok holds.
func (v *Validator) check(ok bool, field, message string) *Validator {
	if !ok {
		v.errs = append(v.errs, apperr.FieldError{Field: field, Message: message})
	}
	return v
}

// Required fails on empty or whitespace-only values.
func (v *Validator) Required(field, value string) *Validator {
	return v.check(strings.TrimSpace(value) != "", field, "This field is required")
}

// MaxLen counts runes, not bytes.
func (v *Validator) MaxLen(field, value string, limit int) *Validator {
	return v.check(utf8.RuneCountInString(value) <= limit, field, fmt.Sprintf("Maximum %d characters", limit))
}

// MinLen counts runes, not bytes.
func (v *Validator) MinLen(field, value string, limit int) *Validator {
	return v.check(utf8.RuneCountInString(value) >= limit, field, fmt.Sprintf("Minimum %d characters", limit))
}

// Range is inclusive at both ends.
func (v *Validator) Range(field string, value, low, high int) *Validator {
	return v.check(low <= value && value <= high, field, fmt.Sprintf("Must be between %d and %d", low, high))
}

// Email accepts a bare address only; display-name forms are rejected.
func (v *Validator) Email(field, value string) *Validator {
	address, err := mail.ParseAddress(value)
	return v.check(err == nil && address.Address == value, field, "Must be a valid email address")
}

// Slug requires lowercase ASCII letters and digits joined by single hyphens.
func (v *Validator) Slug(field, value string) *Validator {
	return v.check(slug.Is(value), field, "Must be a valid URL slug (lowercase letters, digits, hyphens only)")
}

// URL accepts an empty value or an absolute http(s) URL with a host.
func (v *Validator) URL(field, value string) *Validator {
	if value == "" {
		return v
	}
	parsed, err := url.Parse(value)
	ok := err == nil && parsed.Host != "" && (parsed.Scheme == "http" || parsed.Scheme == "https")
	return v.check(ok, field, "Must be a valid http(s) URL")
}

// Custom records message when failed is true.
//
//	v.Custom("id", seen[id], "Duplicate id "+id)
func (v *Validator) Custom(field string, failed bool, message string) *Validator {
	return v.check(!failed, field, message)
}

// HasErrors reports whether any rule has failed so far.
func (v *Validator) HasErrors() bool {
	return len(v.errs) > 0
}

// Err ends the chain: nil when every rule passed.
func (v *Validator) Err() error {
	if !v.HasErrors() {
		return nil
	}
	return apperr.ValidationError("Validation failed", v.errs...)
}

// FieldError builds a single-field failure whose headline is the message itself,
// e.g. "Title is required".
func FieldError(field, message string) *apperr.AppError {
	return apperr.ValidationError(message, apperr.FieldError{Field: field, Message: message})
}
