package wechat

import (
	"bytes"
	"fmt"

	json "github.com/goccy/go-json"
)

const (
	errCodeField = "errcode"
	errMsgField  = "errmsg"
)

// errorDetails is the parsed error envelope. It is either fully
// populated from the body or absent altogether; there is no partially
// constructed state across error paths.
type errorDetails struct {
	Code    string
	Message string
}

// diagnostic renders the envelope in the fixed errcode=...,errmsg=...
// form carried by every raised error.
func (d errorDetails) diagnostic() string {
	return fmt.Sprintf("%s=%s,%s=%s", errCodeField, d.Code, errMsgField, d.Message)
}

// extractErrorDetails decodes body as a generic JSON object and reads
// out the errcode/errmsg fields. WeChat is inconsistent about whether
// errcode is a number or a string, so both are accepted. The second
// return value is false when the body is not a JSON object, which is
// not an error in itself, only a signal to fall back to status-based
// handling.
func extractErrorDetails(body []byte) (errorDetails, bool) {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var raw map[string]any
	if err := dec.Decode(&raw); err != nil || raw == nil {
		return errorDetails{}, false
	}

	return errorDetails{
		Code:    stringField(raw, errCodeField),
		Message: stringField(raw, errMsgField),
	}, true
}

func stringField(m map[string]any, key string) string {
	switch v := m[key].(type) {
	case string:
		return v
	case json.Number:
		return v.String()
	}
	return ""
}
