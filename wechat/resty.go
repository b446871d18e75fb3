package wechat

import (
	"github.com/go-resty/resty/v2"
)

// Attach installs h on c as response middleware and returns c. Every
// response is screened with [ErrorHandler.HasError]; detected
// application errors surface as the request error, so callers can use
// errors.Is against the apierror sentinels directly. resty buffers
// response bodies by default, which satisfies the single-read
// discipline of [Response].
func Attach(c *resty.Client, h *ErrorHandler) *resty.Client {
	c.OnAfterResponse(func(_ *resty.Client, r *resty.Response) error {
		resp := &Response{StatusCode: r.StatusCode(), Body: r.Body()}
		if h.HasError(resp) {
			return h.HandleError(resp)
		}
		return nil
	})
	return c
}
