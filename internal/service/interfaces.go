package service

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-gated-site/models"
)

// AuthService registers accounts and verifies credentials.
type AuthService interface {
	// Signup validates form and creates the account. Rejections wrap
	// ErrValidation or ErrUniquenessConflict.
	Signup(ctx context.Context, form models.SignupForm) (models.User, error)

	// Login returns the user whose credentials match. Rejections wrap
	// ErrValidation or ErrAuthentication.
	Login(ctx context.Context, form models.LoginForm) (models.User, error)
}

// SessionService owns the server-side lifecycle of login sessions.
type SessionService interface {
	// Create starts a session for user. The returned Session carries the
	// plain Token, which must be handed to the client and is not stored.
	Create(ctx context.Context, user models.User) (models.Session, error)

	// Current resolves a client token to its live session or ErrNoSession.
	Current(ctx context.Context, token string) (models.Session, error)

	// Destroy ends the session behind token. Unknown or empty tokens are
	// not an error.
	Destroy(ctx context.Context, token string) error

	// PurgeExpired removes expired sessions from stores that keep them.
	PurgeExpired(ctx context.Context) (int64, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
