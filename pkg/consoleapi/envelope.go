package consoleapi

import (
	"encoding/json"
	"fmt"

	"github.com/tidwall/gjson"
)

// defaultFailure is the message used when a failing envelope has none.
const defaultFailure = "request failed"

// Envelope is the response wrapper used by most endpoints. Code 0 means the
// operation succeeded.
type Envelope struct {
	Code      int    `json:"code"`
	Message   string `json:"message,omitempty"`
	RequestID string `json:"requestId,omitempty"`
	Data      any    `json:"data,omitempty"`
}

// Shape is the response contract of an endpoint.
type Shape int

const (
	// ShapeAuto treats a body with a numeric code as an envelope and passes
	// anything else through.
	ShapeAuto Shape = iota

	// ShapeEnvelope requires a numeric code.
	ShapeEnvelope

	// ShapeBare decodes the body as-is without looking for a code.
	ShapeBare
)

func (s Shape) String() string {
	switch s {
	case ShapeEnvelope:
		return "envelope"
	case ShapeBare:
		return "bare"
	default:
		return "auto"
	}
}

// parsedEnvelope is an envelope read straight out of a raw body.
type parsedEnvelope struct {
	Code      int
	Message   string
	RequestID string
	Data      gjson.Result
}

func (e parsedEnvelope) err(status int) *APIError {
	msg := e.Message
	if msg == "" {
		msg = defaultFailure
	}
	return &APIError{StatusCode: status, Code: e.Code, Message: msg, RequestID: e.RequestID}
}

// detectEnvelope reports whether body is a JSON object whose code field is a
// number.
func detectEnvelope(body []byte) (parsedEnvelope, bool) {
	if !gjson.ValidBytes(body) {
		return parsedEnvelope{}, false
	}
	root := gjson.ParseBytes(body)
	if !root.IsObject() {
		return parsedEnvelope{}, false
	}
	code := root.Get("code")
	if code.Type != gjson.Number {
		return parsedEnvelope{}, false
	}
	return parsedEnvelope{
		Code:      int(code.Int()),
		Message:   root.Get("message").String(),
		RequestID: root.Get("requestId").String(),
		Data:      root.Get("data"),
	}, true
}

// Decode decodes body into out following shape. A failing envelope is
// returned as *APIError. An envelope without data, or with null data, leaves
// out untouched.
func Decode(body []byte, shape Shape, out any) error {
	if shape != ShapeBare {
		env, ok := detectEnvelope(body)
		switch {
		case ok && env.Code != CodeOK:
			return env.err(0)
		case ok:
			if !env.Data.Exists() || env.Data.Type == gjson.Null || out == nil {
				return nil
			}
			return unmarshal([]byte(env.Data.Raw), out)
		case shape == ShapeEnvelope:
			return ErrNotEnveloped
		}
	}
	if out == nil || len(body) == 0 {
		return nil
	}
	return unmarshal(body, out)
}

// Unwrap returns the data of an envelope, or the whole body when it carries
// no numeric code. {"code":0} yields the zero value of T.
func Unwrap[T any](body []byte) (T, error) {
	var out T
	err := Decode(body, ShapeAuto, &out)
	return out, err
}

// MaybeUnwrap is the lenient entry point for endpoints whose success body may
// or may not be wrapped. It unwraps only when a numeric code is present and
// otherwise returns the payload unchanged.
func MaybeUnwrap[T any](body []byte) (T, error) {
	if _, ok := detectEnvelope(body); !ok {
		var out T
		if len(body) == 0 {
			return out, nil
		}
		return out, unmarshal(body, &out)
	}
	return Unwrap[T](body)
}

func unmarshal(raw []byte, out any) error {
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("consoleapi: failed to decode response: %w", err)
	}
	return nil
}
