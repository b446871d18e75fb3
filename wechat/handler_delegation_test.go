package wechat_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/gosocial/wechat-connect/apierror"
	"github.com/gosocial/wechat-connect/internal/mock"
	"github.com/gosocial/wechat-connect/wechat"
)

func TestHandleError_DelegatesToFallbackOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	fb := mock.NewMockFallbackHandler(ctrl)

	resp := &wechat.Response{StatusCode: http.StatusBadGateway, Body: []byte("<html>bad gateway</html>")}
	cause := errors.New("upstream unavailable")
	fb.EXPECT().HandleError(resp).Return(cause).Times(1)

	h := wechat.NewErrorHandler(wechat.WithFallback(fb))
	err := h.HandleError(resp)

	require.Error(t, err)
	assert.ErrorIs(t, err, apierror.ErrUncategorized)
	assert.ErrorIs(t, err, cause)

	var apiErr *apierror.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "No error details from available information", apiErr.Message)
}

func TestHandleError_FallbackReportsNothing(t *testing.T) {
	ctrl := gomock.NewController(t)
	fb := mock.NewMockFallbackHandler(ctrl)

	resp := &wechat.Response{StatusCode: http.StatusOK, Body: []byte("not json at all")}
	fb.EXPECT().HandleError(resp).Return(nil).Times(1)

	h := wechat.NewErrorHandler(wechat.WithFallback(fb))
	err := h.HandleError(resp)

	// Classification is still terminal even when the fallback declines.
	require.Error(t, err)
	assert.ErrorIs(t, err, apierror.ErrUncategorized)
}

func TestHandleError_ParsableBodyNeverReachesFallback(t *testing.T) {
	ctrl := gomock.NewController(t)
	fb := mock.NewMockFallbackHandler(ctrl)
	// No EXPECT: any call to the fallback fails the test.

	h := wechat.NewErrorHandler(wechat.WithFallback(fb))
	resp := &wechat.Response{StatusCode: http.StatusOK, Body: []byte(`{"errcode":"40030","errmsg":"invalid refresh_token"}`)}

	err := h.HandleError(resp)

	assert.ErrorIs(t, err, apierror.ErrInvalidAuthorization)
}
