package http

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/aussiebroadwan/riskconsole/internal/mockapi/service"
	"github.com/aussiebroadwan/riskconsole/internal/mockapi/store"
	"github.com/aussiebroadwan/riskconsole/pkg/consoleapi"
	"github.com/aussiebroadwan/riskconsole/pkg/httpx"
	"github.com/aussiebroadwan/riskconsole/pkg/slogx"
	"github.com/google/uuid"
)

// writeOK answers with a successful envelope.
func writeOK(w http.ResponseWriter, message string, data any) {
	httpx.WriteJSON(w, http.StatusOK, consoleapi.Envelope{
		Code:      consoleapi.CodeOK,
		Message:   message,
		RequestID: uuid.NewString(),
		Data:      data,
	})
}

// writeBare answers with v as the whole body.
func writeBare(w http.ResponseWriter, v any) {
	httpx.WriteJSON(w, http.StatusOK, v)
}

// writeError maps err onto an envelope code and status. Refused parameters
// are answered with 200 and the parameter code, the way the production
// backend does.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, code, msg := http.StatusInternalServerError, consoleapi.CodeServerError, "internal server error"

	var pe *service.ParamError
	switch {
	case errors.As(err, &pe):
		status, code, msg = http.StatusOK, consoleapi.CodeParameter, pe.Msg
	case errors.Is(err, store.ErrNotFound):
		status, code, msg = http.StatusNotFound, consoleapi.CodeNotFound, "not found"
	case errors.Is(err, store.ErrAlreadyExists):
		status, code, msg = http.StatusOK, consoleapi.CodeParameter, "already exists"
	case errors.Is(err, service.ErrInvalidCredentials):
		status, code, msg = http.StatusUnauthorized, consoleapi.CodeUnauthorized, "invalid identity or password"
	case errors.Is(err, service.ErrInvalidRefresh):
		status, code, msg = http.StatusUnauthorized, consoleapi.CodeUnauthorized, "invalid refresh token"
	case errors.Is(err, errBadBody):
		status, code, msg = http.StatusBadRequest, consoleapi.CodeParameter, err.Error()
	default:
		slogx.FromContext(r.Context()).Error("request failed", "error", err)
	}

	httpx.WriteJSON(w, status, consoleapi.Envelope{
		Code:      code,
		Message:   msg,
		RequestID: uuid.NewString(),
	})
}

var errBadBody = errors.New("invalid request body")

// decode reads the JSON body into v. A missing body leaves v untouched.
func decode(r *http.Request, v any) error {
	err := httpx.DecodeJSON(r, v)
	if err == nil || errors.Is(err, httpx.ErrEmptyBody) {
		return nil
	}
	return errBadBody
}

// actor is who a mutation is recorded against: the username the console
// sent, or the identity of the bearer token when it sent none.
func actor(r *http.Request, username string) string {
	if u := strings.TrimSpace(username); u != "" {
		return u
	}
	if c, ok := httpx.ClaimsFromCtx(r.Context()); ok {
		return c.Identity
	}
	return ""
}

func pathInt(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(r.PathValue(name), 10, 64)
	if err != nil {
		return 0, &service.ParamError{Msg: name + " must be a number", Err: service.ErrInvalidValue}
	}
	return id, nil
}
