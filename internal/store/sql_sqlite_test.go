package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-gated-site/internal/config"
	"github.com/MKhiriev/go-gated-site/internal/logger"
	"github.com/MKhiriev/go-gated-site/models"
)

// newSQLiteDB opens a migrated SQLite database in a temp dir.
func newSQLiteDB(t *testing.T) *DB {
	t.Helper()
	dsn := "file:" + filepath.Join(t.TempDir(), "site.db") + "?_foreign_keys=on"

	db, err := NewConnectSQLite(context.Background(), config.DB{Driver: config.DriverSQLite, DSN: dsn}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, db.Migrate())
	return db
}

func TestSQLite_UserRepository(t *testing.T) {
	db := newSQLiteDB(t)
	repo := NewUserRepository(db, logger.Nop())
	ctx := context.Background()

	created, err := repo.CreateUser(ctx, models.User{Username: "alice", Email: "alice@example.com", PasswordHash: "h"})
	require.NoError(t, err)
	assert.NotZero(t, created.UserID)
	assert.False(t, created.CreatedAt.IsZero())

	_, err = repo.CreateUser(ctx, models.User{Username: "alice", Email: "new@example.com", PasswordHash: "h"})
	assert.ErrorIs(t, err, ErrUsernameAlreadyExists)

	_, err = repo.CreateUser(ctx, models.User{Username: "bob", Email: "alice@example.com", PasswordHash: "h"})
	assert.ErrorIs(t, err, ErrEmailAlreadyExists)

	found, err := repo.FindUserByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, created.UserID, found.UserID)
	assert.Equal(t, "h", found.PasswordHash)

	_, err = repo.FindUserByUsername(ctx, "ghost")
	assert.ErrorIs(t, err, ErrNoUserWasFound)

	exists, err := repo.UsernameExists(ctx, "alice")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.EmailExists(ctx, "bob@example.com")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestSQLite_SessionRepository(t *testing.T) {
	db := newSQLiteDB(t)
	users := NewUserRepository(db, logger.Nop())
	ctx := context.Background()

	user, err := users.CreateUser(ctx, models.User{Username: "alice", Email: "alice@example.com", PasswordHash: "h"})
	require.NoError(t, err)

	repo := NewSessionRepository(db, logger.Nop()).(*sessionRepository)
	now := fixedNow
	repo.now = func() time.Time { return now }

	s := models.Session{
		TokenHash: "hash-1",
		UserID:    user.UserID,
		Username:  user.Username,
		CreatedAt: fixedNow,
		ExpiresAt: fixedNow.Add(time.Hour),
	}
	require.NoError(t, repo.CreateSession(ctx, s))
	assert.ErrorIs(t, repo.CreateSession(ctx, s), ErrSessionAlreadyExists)

	found, err := repo.FindSession(ctx, "hash-1")
	require.NoError(t, err)
	assert.Equal(t, user.UserID, found.UserID)
	assert.Equal(t, "alice", found.Username)

	now = fixedNow.Add(2 * time.Hour)
	_, err = repo.FindSession(ctx, "hash-1")
	assert.ErrorIs(t, err, ErrSessionNotFound)

	removed, err := repo.DeleteExpiredSessions(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), removed)

	require.NoError(t, repo.DeleteSession(ctx, "hash-1"))
}
