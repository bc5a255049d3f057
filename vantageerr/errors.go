// Package vantageerr defines the error taxonomy shared by the config and
// command clients.
package vantageerr

import (
	"errors"
	"fmt"
)

// Sentinel kinds, tested with errors.Is against the wrapped errors returned
// by configclient and commandclient.
var (
	// ErrConnection indicates a socket open/read/write failure.
	ErrConnection = errors.New("connection error")

	// ErrTimeout indicates a wait exceeded its deadline. It wraps
	// ErrConnection, so errors.Is(err, ErrConnection) is also true for
	// timeouts.
	ErrTimeout = fmt.Errorf("%w: timed out", ErrConnection)

	// ErrResponse indicates a syntactically valid reply that lacked the
	// expected structure (missing <return>, out-of-order R: line, mismatched
	// command token).
	ErrResponse = errors.New("malformed response")

	// ErrLoginRequired is Host-Command error code 21.
	ErrLoginRequired = errors.New("login required")

	// ErrLoginFailed is Host-Command error code 23. Fatal at startup.
	ErrLoginFailed = errors.New("login failed")

	// ErrDecode indicates an XML document or token sequence could not be
	// decoded against its declared type.
	ErrDecode = errors.New("decode error")
)

// CommandError is any other non-zero Host-Command error, carrying the
// numeric code and message the controller returned.
type CommandError struct {
	Code    int
	Message string
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("command error %d: %s", e.Code, e.Message)
}

// NewCommandError classifies a Host-Command error code/message pair into the
// appropriate sentinel, or a *CommandError for anything else, per spec:
//
//	21 -> LoginRequired
//	23 -> LoginFailed
//	any other -> CommandError
func NewCommandError(code int, message string) error {
	switch code {
	case 21:
		return fmt.Errorf("%w: %s", ErrLoginRequired, message)
	case 23:
		return fmt.Errorf("%w: %s", ErrLoginFailed, message)
	default:
		return &CommandError{Code: code, Message: message}
	}
}
