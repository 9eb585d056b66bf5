package service

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidCredentials = errors.New("invalid_credentials")
	ErrInvalidRefresh     = errors.New("invalid_refresh_token")

	ErrMissingField     = errors.New("missing_field")
	ErrInvalidValue     = errors.New("invalid_value")
	ErrDuplicate        = errors.New("duplicate")
	ErrLimitExceeded    = errors.New("limit_exceeded")
	ErrInvalidAccessKey = errors.New("invalid_access_key")
)

// ParamError is a request refused on its content. Msg is meant for the
// operator; Err is one of the sentinels above for errors.Is.
type ParamError struct {
	Msg string
	Err error
}

func (e *ParamError) Error() string { return e.Msg }
func (e *ParamError) Unwrap() error { return e.Err }

func paramErr(kind error, format string, args ...any) error {
	return &ParamError{Msg: fmt.Sprintf(format, args...), Err: kind}
}

// requireFields reports the first empty field among name/value pairs.
func requireFields(pairs ...string) error {
	for i := 0; i+1 < len(pairs); i += 2 {
		if strings.TrimSpace(pairs[i+1]) == "" {
			return paramErr(ErrMissingField, "%s is required", pairs[i])
		}
	}
	return nil
}
