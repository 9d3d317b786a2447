package session

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *SQLiteRepository {
	t.Helper()
	db, err := sql.Open("sqlite", "file:sessionrepo?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE IF NOT EXISTS session (
  key   TEXT PRIMARY KEY,
  value BLOB NOT NULL
);
`)
	require.NoError(t, err)
	_, err = db.Exec(`DELETE FROM session`)
	require.NoError(t, err)
	return NewSQLiteRepository(db)
}

func TestLoad_EmptyStore(t *testing.T) {
	repo := setupDB(t)

	token, user, err := repo.Load(context.Background())
	require.NoError(t, err)
	require.Empty(t, token)
	require.Nil(t, user)
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	repo := setupDB(t)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, "tok-1", []byte(`{"id":7}`)))

	token, user, err := repo.Load(ctx)
	require.NoError(t, err)
	require.Equal(t, "tok-1", token)
	require.JSONEq(t, `{"id":7}`, string(user))
}

func TestSave_OverwritesPreviousPair(t *testing.T) {
	repo := setupDB(t)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, "tok-1", []byte(`{"id":1}`)))
	require.NoError(t, repo.Save(ctx, "tok-2", []byte(`{"id":2}`)))

	token, user, err := repo.Load(ctx)
	require.NoError(t, err)
	require.Equal(t, "tok-2", token)
	require.JSONEq(t, `{"id":2}`, string(user))
}

func TestSaveUser_LeavesTokenUntouched(t *testing.T) {
	repo := setupDB(t)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, "tok-1", []byte(`{"id":1}`)))
	require.NoError(t, repo.SaveUser(ctx, []byte(`{"id":1,"bio":"updated"}`)))

	token, user, err := repo.Load(ctx)
	require.NoError(t, err)
	require.Equal(t, "tok-1", token)
	require.Contains(t, string(user), "updated")
}

func TestClear_RemovesBothEntries(t *testing.T) {
	repo := setupDB(t)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, "tok-1", []byte(`{"id":1}`)))
	require.NoError(t, repo.Clear(ctx))

	token, user, err := repo.Load(ctx)
	require.NoError(t, err)
	require.Empty(t, token)
	require.Nil(t, user)
}

func TestClear_EmptyStoreIsNoop(t *testing.T) {
	repo := setupDB(t)
	require.NoError(t, repo.Clear(context.Background()))
	require.NoError(t, repo.Clear(context.Background()))
}

func TestOpen_RunsMigrations(t *testing.T) {
	db, err := Open(context.Background(), "file:sessionopen?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	repo := NewSQLiteRepository(db)
	require.NoError(t, repo.Save(context.Background(), "t", []byte(`{}`)))
}
