package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-gated-site/internal/validators"
)

// Validation family: user input rejected before touching credentials.
// Re-exported so callers only depend on this package.
var (
	ErrValidation          = validators.ErrValidation
	ErrFieldsRequired      = validators.ErrFieldsRequired
	ErrInvalidEmail        = validators.ErrInvalidEmail
	ErrPasswordTooShort    = validators.ErrPasswordTooShort
	ErrPasswordTooLong     = validators.ErrPasswordTooLong
	ErrPasswordsMismatch   = validators.ErrPasswordsMismatch
	ErrLoginFieldsRequired = validators.ErrLoginFieldsRequired
)

// Authentication family. Unknown user and wrong password share one error so
// callers cannot tell them apart.
var (
	ErrAuthentication     = errors.New("authentication failed")
	ErrInvalidCredentials = fmt.Errorf("%w: invalid credentials", ErrAuthentication)
)

// Uniqueness family: the account collides with an existing one.
var (
	ErrUniquenessConflict = errors.New("uniqueness conflict")
	ErrUsernameTaken      = fmt.Errorf("%w: username already taken", ErrUniquenessConflict)
	ErrEmailTaken         = fmt.Errorf("%w: email already registered", ErrUniquenessConflict)
)

var (
	// ErrNoSession is returned when a request carries no live session.
	ErrNoSession = errors.New("no active session")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
