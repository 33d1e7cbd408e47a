package api

import (
	"errors"
	"fmt"
)

// ErrSessionExpired signals that the server rejected the credential
// (HTTP 401). Callers must treat the session as gone.
var ErrSessionExpired = errors.New("session expired")

// Error is an application-level failure: the server produced an envelope
// whose code is not 200. Match with errors.As to read code and message.
type Error struct {
	Code    int
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("server error %d: %s", e.Code, e.Message)
}

// AsError unwraps err into *Error, or returns nil if err is not one.
func AsError(err error) *Error {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr
	}
	return nil
}
