package validators

import (
	"errors"
	"fmt"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")
)

// ErrValidation is the family of user input rejections. Every rule error
// below wraps it, so errors.Is(err, ErrValidation) holds for all of them.
var ErrValidation = errors.New("validation failed")

var (
	ErrFieldsRequired      = fmt.Errorf("%w: all fields are required", ErrValidation)
	ErrInvalidEmail        = fmt.Errorf("%w: invalid email address", ErrValidation)
	ErrPasswordTooShort    = fmt.Errorf("%w: password too short", ErrValidation)
	ErrPasswordTooLong     = fmt.Errorf("%w: password too long", ErrValidation)
	ErrPasswordsMismatch   = fmt.Errorf("%w: passwords do not match", ErrValidation)
	ErrLoginFieldsRequired = fmt.Errorf("%w: username and password are required", ErrValidation)
)
