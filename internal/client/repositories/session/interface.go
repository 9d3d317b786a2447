// Package session implements the persistent session store: a small
// key-value table surviving restarts that holds the session token and the
// serialized user record under fixed keys.
package session

import "context"

// Repository is the durable storage behind the session manager. The token
// and user entries are always written and removed as a pair; SaveUser is
// the single exception, used after profile edits.
type Repository interface {
	// Load returns the stored token and serialized user. Missing entries
	// come back as zero values, not errors.
	Load(ctx context.Context) (token string, user []byte, err error)

	// Save persists both entries in one transaction.
	Save(ctx context.Context, token string, user []byte) error

	// SaveUser replaces the user entry only, leaving the token untouched.
	SaveUser(ctx context.Context, user []byte) error

	// Clear removes both entries in one transaction. Clearing an empty
	// store is a no-op.
	Clear(ctx context.Context) error
}
