package wechat

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gosocial/wechat-connect/apierror"
)

//go:generate mockgen -source=fallback.go -destination=../internal/mock/fallback_mock.go -package=mock

// FallbackHandler classifies a response that carried no parsable error
// envelope. Implementations return the error the response should
// surface as, or nil if they have nothing to report (e.g. the status
// line looks healthy).
type FallbackHandler interface {
	HandleError(resp *Response) error
}

// StatusFallback is the default [FallbackHandler]: it ignores the body
// and maps the HTTP status line alone to a taxonomy category.
type StatusFallback struct{}

// HandleError implements [FallbackHandler].
func (StatusFallback) HandleError(resp *Response) error {
	if resp.StatusCode < http.StatusBadRequest {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body))
	if body == "" {
		body = http.StatusText(resp.StatusCode)
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return apierror.New(apierror.ErrNotAuthorized, Provider, body)
	case resp.StatusCode == http.StatusForbidden:
		return apierror.New(apierror.ErrInsufficientPermission, Provider, body)
	case resp.StatusCode == http.StatusNotFound:
		return apierror.New(apierror.ErrResourceNotFound, Provider, body)
	case resp.StatusCode == http.StatusTooManyRequests:
		return apierror.New(apierror.ErrRateLimitExceeded, Provider, body)
	case resp.StatusCode >= http.StatusInternalServerError:
		return apierror.New(apierror.ErrInternalServer, Provider, body)
	default:
		return apierror.New(apierror.ErrUncategorized, Provider,
			fmt.Sprintf("http %d: %s", resp.StatusCode, body))
	}
}
