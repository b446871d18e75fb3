package wechat

import (
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("connection reset") }

func TestNewResponse_BuffersBody(t *testing.T) {
	res := &http.Response{
		StatusCode: http.StatusOK,
		Body:       io.NopCloser(strings.NewReader(`{"errcode":"40029","errmsg":"invalid code"}`)),
	}

	resp, err := NewResponse(res)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, `{"errcode":"40029","errmsg":"invalid code"}`, string(resp.Body))

	// The buffered copy serves both checks without re-reading the stream.
	h := NewErrorHandler()
	assert.True(t, h.HasError(resp))
	require.Error(t, h.HandleError(resp))
}

func TestNewResponse_ReadFailure(t *testing.T) {
	res := &http.Response{
		StatusCode: http.StatusOK,
		Body:       io.NopCloser(failingReader{}),
	}

	_, err := NewResponse(res)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "read response body")
}
