package session

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/terrabond/terrabond-cli/internal/dbx"
)

// Storage keys, kept identical to the web client's localStorage entries so
// the durable format is recognizable across clients.
const (
	tokenKey = "terrabond_token"
	userKey  = "terrabond_user"
)

// SQLiteRepository stores the session pair in the local SQLite database.
type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func getValue(ctx context.Context, q dbx.DBTX, key string) ([]byte, error) {
	var value []byte
	err := q.QueryRowContext(ctx, `SELECT value FROM session WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get session[%s]: %w", key, err)
	}
	return value, nil
}

func setValue(ctx context.Context, q dbx.DBTX, key string, value []byte) error {
	_, err := q.ExecContext(ctx, `
		INSERT INTO session (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		return fmt.Errorf("failed to set session[%s]: %w", key, err)
	}
	return nil
}

func (r *SQLiteRepository) Load(ctx context.Context) (string, []byte, error) {
	token, err := getValue(ctx, r.db, tokenKey)
	if err != nil {
		return "", nil, err
	}
	user, err := getValue(ctx, r.db, userKey)
	if err != nil {
		return "", nil, err
	}
	return string(token), user, nil
}

func (r *SQLiteRepository) Save(ctx context.Context, token string, user []byte) error {
	return dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := setValue(ctx, tx, tokenKey, []byte(token)); err != nil {
			return err
		}
		return setValue(ctx, tx, userKey, user)
	})
}

func (r *SQLiteRepository) SaveUser(ctx context.Context, user []byte) error {
	return setValue(ctx, r.db, userKey, user)
}

func (r *SQLiteRepository) Clear(ctx context.Context) error {
	return dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM session WHERE key IN (?, ?)`, tokenKey, userKey); err != nil {
			return fmt.Errorf("failed to clear session: %w", err)
		}
		return nil
	})
}
