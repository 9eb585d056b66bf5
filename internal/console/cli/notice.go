package cli

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/aussiebroadwan/riskconsole/internal/console/session"
	"github.com/aussiebroadwan/riskconsole/pkg/consoleapi"
)

// Notice renders err as the one line shown to the operator. A server message
// wins over the generic session hint, so a rejected login reads as such.
func Notice(err error) string {
	var (
		apiErr  *consoleapi.APIError
		httpErr *consoleapi.HTTPError
	)

	switch {
	case errors.Is(err, session.ErrNoSession):
		return fmt.Sprintf("not logged in: run `%s login`", Program)
	case errors.As(err, &apiErr):
		if apiErr.RequestID != "" {
			return fmt.Sprintf("error: %s (code %d, request %s)", apiErr.Message, apiErr.Code, apiErr.RequestID)
		}
		return fmt.Sprintf("error: %s (code %d)", apiErr.Message, apiErr.Code)
	case consoleapi.IsSessionExpired(err):
		return fmt.Sprintf("session expired: run `%s login`", Program)
	case errors.As(err, &httpErr):
		return fmt.Sprintf("error: server answered %d %s", httpErr.StatusCode, http.StatusText(httpErr.StatusCode))
	case errors.Is(err, consoleapi.ErrTransport):
		return fmt.Sprintf("error: cannot reach the API (%v)", err)
	case errors.Is(err, consoleapi.ErrNotEnveloped):
		return "error: the API answered in an unexpected format"
	default:
		return "error: " + err.Error()
	}
}
