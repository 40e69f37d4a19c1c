package store

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"

	"github.com/omccomas/terminal/internal/common"
)

func setupDB(t *testing.T) *Store {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE prefs (
  key   TEXT PRIMARY KEY,
  value TEXT NOT NULL
);
CREATE TABLE session (
  id            INTEGER PRIMARY KEY CHECK (id = 1),
  login         TEXT NOT NULL,
  username      TEXT NOT NULL DEFAULT '',
  access_token  TEXT NOT NULL,
  refresh_token TEXT NOT NULL
);`)
	require.NoError(t, err)
	return New(db)
}

func TestPrefs_UpsertAndGet(t *testing.T) {
	s := setupDB(t)
	ctx := context.Background()

	v, err := s.GetPref(ctx, PrefColor)
	require.NoError(t, err)
	assert.Empty(t, v, "unset pref reads as empty")

	require.NoError(t, s.SetPref(ctx, PrefColor, "#00FF00"))
	require.NoError(t, s.SetPref(ctx, PrefColor, "#FFFFFF"))

	v, err = s.GetPref(ctx, PrefColor)
	require.NoError(t, err)
	assert.Equal(t, "#FFFFFF", v)
}

func TestSession_SaveLoadClear(t *testing.T) {
	s := setupDB(t)
	ctx := context.Background()

	_, err := s.LoadSession(ctx)
	assert.ErrorIs(t, err, common.ErrorNotFound)

	require.NoError(t, s.SaveSession(ctx, &Session{
		Login:        "alice",
		Username:     "al",
		AccessToken:  "acc",
		RefreshToken: "ref",
	}))

	sess, err := s.LoadSession(ctx)
	require.NoError(t, err)
	assert.Equal(t, "alice", sess.Login)
	assert.Equal(t, "acc", sess.AccessToken)

	// a second save overwrites the single row
	require.NoError(t, s.SaveSession(ctx, &Session{Login: "bob", AccessToken: "a2", RefreshToken: "r2"}))
	sess, err = s.LoadSession(ctx)
	require.NoError(t, err)
	assert.Equal(t, "bob", sess.Login)

	require.NoError(t, s.ClearSession(ctx))
	_, err = s.LoadSession(ctx)
	assert.ErrorIs(t, err, common.ErrorNotFound)
}
