// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 the wechat-connect authors

// Package wechat translates error responses of the WeChat connect API
// into the categorized taxonomy defined in package apierror.
//
// WeChat signals application-level failures inside HTTP 200 payloads
// using a small JSON envelope of the form
//
//	{"errcode":"40029","errmsg":"invalid code"}
//
// rather than via the HTTP status line. [ErrorHandler] detects such
// envelopes ([ErrorHandler.HasError]) and maps them to taxonomy
// categories ([ErrorHandler.HandleError]). When the body carries no
// parsable envelope the decision is delegated to a [FallbackHandler],
// by default the status-line based [StatusFallback].
//
// The handler can be bolted onto an existing resty client with
// [Attach], so callers receive *apierror.Error values directly from
// their requests:
//
//	client := wechat.Attach(resty.New(), wechat.NewErrorHandler())
//	_, err := client.R().Get(url)
//	if errors.Is(err, apierror.ErrNotAuthorized) { ... }
package wechat
