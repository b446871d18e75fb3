// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 the wechat-connect authors

// Package apierror defines the fixed error taxonomy that provider
// bindings translate third-party API failures into.
//
// Each category is a sentinel error value; concrete failures are
// [*Error] values that wrap exactly one sentinel plus an optional
// transport-level cause. Callers branch with [errors.Is] against the
// sentinels and never need to know which provider produced the error:
//
//	if errors.Is(err, apierror.ErrNotAuthorized) { ... }
package apierror

import (
	"errors"
	"fmt"
)

// Category sentinels. The set mirrors the categories a social-API
// client framework distinguishes; individual providers typically raise
// only a subset.
var (
	ErrNotAuthorized          = errors.New("not authorized")
	ErrInvalidAuthorization   = errors.New("invalid authorization")
	ErrExpiredAuthorization   = errors.New("expired authorization")
	ErrRevokedAuthorization   = errors.New("revoked authorization")
	ErrMissingAuthorization   = errors.New("missing authorization")
	ErrOperationNotPermitted  = errors.New("operation not permitted")
	ErrInsufficientPermission = errors.New("insufficient permission")
	ErrResourceNotFound       = errors.New("resource not found")
	ErrRateLimitExceeded      = errors.New("rate limit exceeded")
	ErrDuplicateStatus        = errors.New("duplicate status")
	ErrInternalServer         = errors.New("internal server error")
	ErrUncategorized          = errors.New("uncategorized api error")
)

// Error is a categorized failure reported by a provider binding.
type Error struct {
	// Provider identifies the external API the error originated from,
	// e.g. "wechat".
	Provider string
	// Message is the provider-supplied diagnostic text.
	Message string

	kind  error
	cause error
}

// New constructs an *Error of the given category. kind must be one of
// the package sentinels.
func New(kind error, provider, message string) *Error {
	return &Error{Provider: provider, Message: message, kind: kind}
}

// Wrap is like [New] but records cause as the underlying failure so it
// stays reachable through [errors.Is] and [errors.As].
func Wrap(kind error, provider, message string, cause error) *Error {
	return &Error{Provider: provider, Message: message, kind: kind, cause: cause}
}

// Kind returns the category sentinel the error was constructed with.
func (e *Error) Kind() error {
	return e.kind
}

func (e *Error) Error() string {
	msg := fmt.Sprintf("%s: %s: %s", e.Provider, e.kind, e.Message)
	if e.cause != nil {
		msg += ": " + e.cause.Error()
	}
	return msg
}

// Unwrap exposes both the category sentinel and the cause, so
// errors.Is matches either.
func (e *Error) Unwrap() []error {
	if e.cause == nil {
		return []error{e.kind}
	}
	return []error{e.kind, e.cause}
}
