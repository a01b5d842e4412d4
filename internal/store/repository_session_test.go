package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-gated-site/models"
)

var sessionRowColumns = []string{"token_hash", "user_id", "username", "created_at", "expires_at"}

func testSession() models.Session {
	return models.Session{
		TokenHash: "abc123",
		UserID:    1,
		Username:  "alice",
		CreatedAt: fixedNow,
		ExpiresAt: fixedNow.Add(time.Hour),
	}
}

func TestCreateSession_Success(t *testing.T) {
	repo, mock, db := newTestSessionRepo(t)
	defer db.Close()

	s := testSession()
	mock.ExpectExec(`INSERT INTO sessions \(token_hash,user_id,username,created_at,expires_at\) VALUES \(\$1,\$2,\$3,\$4,\$5\)`).
		WithArgs(s.TokenHash, s.UserID, s.Username, s.CreatedAt, s.ExpiresAt).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.CreateSession(context.Background(), s))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateSession_Duplicate(t *testing.T) {
	repo, mock, db := newTestSessionRepo(t)
	defer db.Close()

	mock.ExpectExec("INSERT INTO sessions").
		WillReturnError(pgConstraintError(pgerrcode.UniqueViolation, sessionsPKConstraint))

	err := repo.CreateSession(context.Background(), testSession())
	assert.ErrorIs(t, err, ErrSessionAlreadyExists)
}

func TestCreateSession_DBError(t *testing.T) {
	repo, mock, db := newTestSessionRepo(t)
	defer db.Close()

	mock.ExpectExec("INSERT INTO sessions").WillReturnError(errors.New("boom"))

	err := repo.CreateSession(context.Background(), testSession())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected DB error")
}

func TestFindSession_Success(t *testing.T) {
	repo, mock, db := newTestSessionRepo(t)
	defer db.Close()

	s := testSession()
	mock.ExpectQuery(`SELECT token_hash, user_id, username, created_at, expires_at FROM sessions WHERE token_hash = \$1 AND expires_at > \$2`).
		WithArgs(s.TokenHash, fixedNow).
		WillReturnRows(sqlmock.NewRows(sessionRowColumns).AddRow(s.TokenHash, s.UserID, s.Username, s.CreatedAt, s.ExpiresAt))

	found, err := repo.FindSession(context.Background(), s.TokenHash)
	require.NoError(t, err)
	assert.Equal(t, s, found)
}

// TestFindSession_NotFound covers both unknown and expired sessions: the
// query filters on expires_at so an expired row yields no rows.
func TestFindSession_NotFound(t *testing.T) {
	repo, mock, db := newTestSessionRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT .* FROM sessions").
		WithArgs("missing", sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows(sessionRowColumns))

	_, err := repo.FindSession(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestFindSession_DBError(t *testing.T) {
	repo, mock, db := newTestSessionRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT .* FROM sessions").WillReturnError(errors.New("boom"))

	_, err := repo.FindSession(context.Background(), "abc")
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrSessionNotFound))
}

func TestDeleteSession(t *testing.T) {
	repo, mock, db := newTestSessionRepo(t)
	defer db.Close()

	mock.ExpectExec(`DELETE FROM sessions WHERE token_hash = \$1`).
		WithArgs("abc123").
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.DeleteSession(context.Background(), "abc123"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteSession_DBError(t *testing.T) {
	repo, mock, db := newTestSessionRepo(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM sessions").WillReturnError(errors.New("boom"))

	assert.ErrorIs(t, repo.DeleteSession(context.Background(), "abc123"), ErrExecutingQuery)
}

func TestDeleteExpiredSessions(t *testing.T) {
	repo, mock, db := newTestSessionRepo(t)
	defer db.Close()

	mock.ExpectExec(`DELETE FROM sessions WHERE expires_at <= \$1`).
		WithArgs(fixedNow).
		WillReturnResult(sqlmock.NewResult(0, 3))

	removed, err := repo.DeleteExpiredSessions(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(3), removed)
}
