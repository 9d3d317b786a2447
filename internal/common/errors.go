// Package common defines shared constants and sentinel errors used across
// the TerraBond client layers. Callers should use errors.Is to match these
// values.
package common

import "errors"

var (
	// ErrorUnauthorized reports a request the service rejected with 401.
	ErrorUnauthorized = errors.New("unauthorized")

	// ErrCorruptSession reports a persisted session that cannot be
	// restored: a stored token without a matching user record (or the
	// reverse), or a user record that does not parse.
	ErrCorruptSession = errors.New("corrupt session")
)
