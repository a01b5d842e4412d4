package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-gated-site/models"
)

// UserRepository persists site accounts. Username and email are each unique;
// accounts are never updated or deleted.
type UserRepository interface {
	// CreateUser inserts user and returns it with UserID and CreatedAt set.
	// A uniqueness violation yields ErrUsernameAlreadyExists or
	// ErrEmailAlreadyExists depending on the violated column.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByUsername returns ErrNoUserWasFound when nothing matches.
	FindUserByUsername(ctx context.Context, username string) (models.User, error)

	UsernameExists(ctx context.Context, username string) (bool, error)
	EmailExists(ctx context.Context, email string) (bool, error)
}

// SessionRepository persists server-side sessions keyed by the hash of
// their token.
type SessionRepository interface {
	CreateSession(ctx context.Context, session models.Session) error

	// FindSession returns ErrSessionNotFound for unknown or expired sessions.
	FindSession(ctx context.Context, tokenHash string) (models.Session, error)

	// DeleteSession removes the session; deleting an absent session is not
	// an error.
	DeleteSession(ctx context.Context, tokenHash string) error
}

// ExpiredSessionPurger is implemented by session stores that keep expired
// records around until they are explicitly removed. Redis expires keys on
// its own and does not implement it.
type ExpiredSessionPurger interface {
	DeleteExpiredSessions(ctx context.Context) (int64, error)
}
