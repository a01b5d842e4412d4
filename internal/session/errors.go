package session

import "errors"

var (
	// ErrShortCookieHashKey is returned when the cookie hash key is too short
	// to authenticate the cookie.
	ErrShortCookieHashKey = errors.New("cookie hash key must be at least 32 bytes")

	ErrSavingCookie = errors.New("error saving session cookie")
)
