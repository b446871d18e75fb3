// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 the wechat-connect authors

package wechat

import (
	"net/http"
	"strings"

	"github.com/rs/zerolog"

	"github.com/gosocial/wechat-connect/apierror"
)

// Provider is the tag carried by every error raised from this binding.
const Provider = "wechat"

// noDetailsMessage is the diagnostic used when the body yields no
// parsable envelope and classification falls through to the fallback.
const noDetailsMessage = "No error details from available information"

// WeChat application error codes with a dedicated category. Everything
// else maps to resource-not-found.
const (
	codeNotAuthorized         = "40029" // invalid oauth code
	codeInvalidAuthorization  = "40030" // invalid refresh token
	codeOperationNotPermitted = "40003" // invalid openid
)

// ErrorHandler inspects buffered WeChat responses and raises one
// category from the apierror taxonomy. It is stateless across calls
// and safe for concurrent use.
type ErrorHandler struct {
	fallback FallbackHandler
	logger   zerolog.Logger
	strict   bool
}

// Option customises an [ErrorHandler].
type Option func(*ErrorHandler)

// WithFallback replaces the default [StatusFallback] used when the
// body carries no parsable envelope.
func WithFallback(f FallbackHandler) Option {
	return func(h *ErrorHandler) { h.fallback = f }
}

// WithLogger sets the logger that receives the debug dump of raw error
// bodies. The default discards it.
func WithLogger(l zerolog.Logger) Option {
	return func(h *ErrorHandler) { h.logger = l }
}

// WithStrictCheck switches [ErrorHandler.HasError] from the historical
// substring heuristic to a schema check: the body must parse as a JSON
// object whose errcode is non-empty and not "0". Stricter, but no
// longer bug-compatible with the upstream envelope convention.
func WithStrictCheck() Option {
	return func(h *ErrorHandler) { h.strict = true }
}

// NewErrorHandler constructs an [ErrorHandler] with the default
// status-based fallback and a no-op logger.
func NewErrorHandler(opts ...Option) *ErrorHandler {
	h := &ErrorHandler{
		fallback: StatusFallback{},
		logger:   zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// HasError reports whether resp carries a WeChat application error.
//
// The default check is deliberately crude, matching the provider's
// envelope convention rather than a JSON schema: the body must contain
// both field-name substrings, and the segment starting at the first
// errmsg occurrence must not contain "ok" (WeChat reports success as
// {"errcode":0,"errmsg":"ok"}). False positives are possible when "ok"
// or the field names appear inside unrelated message text; use
// [WithStrictCheck] to trade bug-compatibility for a schema check.
func (h *ErrorHandler) HasError(resp *Response) bool {
	if h.strict {
		details, ok := extractErrorDetails(resp.Body)
		return ok && details.Code != "" && details.Code != "0"
	}

	body := string(resp.Body)
	msgAt := strings.Index(body, errMsgField)
	if msgAt < 0 || !strings.Contains(body, errCodeField) {
		return false
	}
	return !strings.Contains(body[msgAt:], "ok")
}

// HandleError maps resp to exactly one category from the apierror
// taxonomy. It always returns a non-nil error; it is meant to be
// invoked only after [ErrorHandler.HasError] reported true.
//
// The status line takes precedence over the payload code: any
// non-200 response with a parsable envelope is resource-not-found
// regardless of the errcode inside. Only an unparsable body reaches
// the fallback handler, whose outcome is wrapped as uncategorized.
func (h *ErrorHandler) HandleError(resp *Response) error {
	h.logger.Debug().
		Str("provider", Provider).
		Int("status", resp.StatusCode).
		Bytes("body", resp.Body).
		Msg("error response from wechat")

	details, ok := extractErrorDetails(resp.Body)
	if !ok {
		return h.handleUncategorized(resp)
	}

	msg := details.diagnostic()
	if resp.StatusCode != http.StatusOK {
		return apierror.New(apierror.ErrResourceNotFound, Provider, msg)
	}

	switch details.Code {
	case codeNotAuthorized:
		return apierror.New(apierror.ErrNotAuthorized, Provider, msg)
	case codeInvalidAuthorization:
		return apierror.New(apierror.ErrInvalidAuthorization, Provider, msg)
	case codeOperationNotPermitted:
		return apierror.New(apierror.ErrOperationNotPermitted, Provider, msg)
	default:
		return apierror.New(apierror.ErrResourceNotFound, Provider, msg)
	}
}

func (h *ErrorHandler) handleUncategorized(resp *Response) error {
	if cause := h.fallback.HandleError(resp); cause != nil {
		return apierror.Wrap(apierror.ErrUncategorized, Provider, noDetailsMessage, cause)
	}
	return apierror.New(apierror.ErrUncategorized, Provider, noDetailsMessage)
}
