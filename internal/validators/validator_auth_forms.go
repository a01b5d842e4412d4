package validators

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-gated-site/models"
)

// Rule names accepted by AuthFormValidator.Validate.
const (
	FieldRequired        = "required"
	FieldEmail           = "email"
	FieldPasswordLength  = "password_length"
	FieldConfirmPassword = "confirm_password"
)

// MinPasswordLength counts characters. MaxPasswordBytes counts bytes, since
// bcrypt ignores input past 72 bytes.
const (
	MinPasswordLength = 6
	MaxPasswordBytes  = 72
)

// emailPattern accepts word characters in any script, dots and hyphens on
// both sides of the @ and needs at least one dot in the domain.
var emailPattern = regexp.MustCompile(`^[\p{L}\p{N}_.-]+@[\p{L}\p{N}_.-]+\.[\p{L}\p{N}_]+$`)

var signupRuleOrder = []string{FieldRequired, FieldEmail, FieldPasswordLength, FieldConfirmPassword}

// AuthFormValidator checks the signup and login forms.
type AuthFormValidator struct {
}

func NewAuthFormValidator() Validator {
	return &AuthFormValidator{}
}

// Validate checks a [models.SignupForm] or [models.LoginForm].
//
// For signup forms, fields selects which rules run and in which order; with
// no fields every rule runs in the canonical order. Login forms only have
// the required-fields rule.
func (v *AuthFormValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.SignupForm:
		return v.validateSignupForm(ctx, value, fields...)
	case *models.SignupForm:
		return v.validateSignupForm(ctx, *value, fields...)

	case models.LoginForm:
		return v.validateLoginForm(ctx, value)
	case *models.LoginForm:
		return v.validateLoginForm(ctx, *value)

	default:
		return ErrUnsupportedType
	}
}

func (v *AuthFormValidator) validateSignupForm(_ context.Context, form models.SignupForm, fields ...string) error {
	if len(fields) == 0 {
		fields = signupRuleOrder
	}

	for _, field := range fields {
		var err error
		switch field {
		case FieldRequired:
			if isBlank(form.Username) || isBlank(form.Email) || isBlank(form.Password) || isBlank(form.ConfirmPassword) {
				err = ErrFieldsRequired
			}
		case FieldEmail:
			if !emailPattern.MatchString(form.Email) {
				err = ErrInvalidEmail
			}
		case FieldPasswordLength:
			switch {
			case utf8.RuneCountInString(form.Password) < MinPasswordLength:
				err = ErrPasswordTooShort
			case len(form.Password) > MaxPasswordBytes:
				err = ErrPasswordTooLong
			}
		case FieldConfirmPassword:
			if form.Password != form.ConfirmPassword {
				err = ErrPasswordsMismatch
			}
		default:
			err = fmt.Errorf("%w: %s", ErrUnknownField, field)
		}

		if err != nil {
			return err
		}
	}

	return nil
}

func (v *AuthFormValidator) validateLoginForm(_ context.Context, form models.LoginForm) error {
	if isBlank(form.Username) || form.Password == "" {
		return ErrLoginFieldsRequired
	}
	return nil
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
