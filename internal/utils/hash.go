package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"errors"

	"github.com/gorilla/securecookie"
)

// sessionTokenBytes is the amount of randomness in a session token.
const sessionTokenBytes = 32

// ErrTokenGeneration is returned when the system random source fails.
var ErrTokenGeneration = errors.New("could not generate random token")

// NewToken returns a URL-safe random token with 256 bits of entropy.
//
// Tokens identify sessions and CSRF secrets; they are handed to the client
// and only their HMAC is stored server-side (see HashString).
func NewToken() (string, error) {
	raw := securecookie.GenerateRandomKey(sessionTokenBytes)
	if raw == nil {
		return "", ErrTokenGeneration
	}

	return base64.RawURLEncoding.EncodeToString(raw), nil
}

// HashString computes an HMAC-SHA256 signature over the given string
// using the provided hash key and returns the result as a hex-encoded string.
//
// Example usage:
//
//	tokenHash := utils.HashString(token, cfg.App.SessionHashKey)
func HashString(data string, hashKey string) string {
	return hex.EncodeToString(hashString([]byte(data), hashKey))
}

// hashString computes an HMAC-SHA256 digest over the given byte slice
// using the provided hash key.
func hashString(data []byte, hashKey string) []byte {
	hasher := hmac.New(sha256.New, []byte(hashKey))
	hasher.Write(data)
	return hasher.Sum(nil)
}
