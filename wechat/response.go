package wechat

import (
	"fmt"
	"io"
	"net/http"
)

// Response is a buffered view of an HTTP response: the status code and
// the fully read body. Both the error-presence check and the envelope
// extraction run against the same buffered bytes, so a non-rewindable
// body stream is never consumed twice.
type Response struct {
	StatusCode int
	Body       []byte
}

// NewResponse buffers res into a [Response]. The body is read in full;
// closing it remains the caller's responsibility.
func NewResponse(res *http.Response) (*Response, error) {
	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}
	return &Response{StatusCode: res.StatusCode, Body: body}, nil
}
