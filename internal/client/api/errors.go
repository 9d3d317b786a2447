package api

import "errors"

// ErrUnavailable marks transport-level failures: the service could not be
// reached, the connection dropped, or the request timed out. Callers match
// it with errors.Is.
var ErrUnavailable = errors.New("service unavailable")

// Error is an application-level rejection: the service answered with an
// envelope whose success flag is false. Message is the display string shown
// to the user, preferring the server-supplied message over the generic
// per-operation fallback.
type Error struct {
	Message string
}

func (e *Error) Error() string {
	return e.Message
}
