package validators

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-gated-site/models"
)

func validSignupForm() models.SignupForm {
	return models.SignupForm{
		Username:        "alice",
		Email:           "alice@example.com",
		Password:        "secret1",
		ConfirmPassword: "secret1",
	}
}

func TestAuthFormValidator_Signup(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(f *models.SignupForm)
		wantErr error
	}{
		{name: "valid", mutate: func(f *models.SignupForm) {}},
		{name: "empty username", mutate: func(f *models.SignupForm) { f.Username = "" }, wantErr: ErrFieldsRequired},
		{name: "whitespace email", mutate: func(f *models.SignupForm) { f.Email = "   " }, wantErr: ErrFieldsRequired},
		{name: "whitespace password", mutate: func(f *models.SignupForm) { f.Password = " \t" }, wantErr: ErrFieldsRequired},
		{name: "empty confirm", mutate: func(f *models.SignupForm) { f.ConfirmPassword = "" }, wantErr: ErrFieldsRequired},
		{name: "email without at", mutate: func(f *models.SignupForm) { f.Email = "alice.example.com" }, wantErr: ErrInvalidEmail},
		{name: "email without dot in domain", mutate: func(f *models.SignupForm) { f.Email = "alice@localhost" }, wantErr: ErrInvalidEmail},
		{name: "email with space", mutate: func(f *models.SignupForm) { f.Email = "al ice@example.com" }, wantErr: ErrInvalidEmail},
		{name: "email with plus", mutate: func(f *models.SignupForm) { f.Email = "alice+x@example.com" }, wantErr: ErrInvalidEmail},
		{name: "email with dots and hyphens", mutate: func(f *models.SignupForm) { f.Email = "a.l-ice@mail.ex-ample.co" }},
		{name: "email with accented letters", mutate: func(f *models.SignupForm) { f.Email = "josé@exämple.com" }},
		{name: "email with non-latin tld", mutate: func(f *models.SignupForm) { f.Email = "ivan@пример.рф" }},
		{name: "email with symbol in local part", mutate: func(f *models.SignupForm) { f.Email = "jo§é@example.com" }, wantErr: ErrInvalidEmail},
		{name: "short password", mutate: func(f *models.SignupForm) { f.Password, f.ConfirmPassword = "abc12", "abc12" }, wantErr: ErrPasswordTooShort},
		{
			name:    "longer than bcrypt accepts",
			mutate:  func(f *models.SignupForm) { f.Password = strings.Repeat("a", 73); f.ConfirmPassword = f.Password },
			wantErr: ErrPasswordTooLong,
		},
		{name: "three multibyte chars", mutate: func(f *models.SignupForm) { f.Password, f.ConfirmPassword = "ééé", "ééé" }, wantErr: ErrPasswordTooShort},
		{name: "six multibyte chars", mutate: func(f *models.SignupForm) { f.Password, f.ConfirmPassword = "éééééé", "éééééé" }},
		{
			name:    "under 72 chars but over 72 bytes",
			mutate:  func(f *models.SignupForm) { f.Password = strings.Repeat("é", 40); f.ConfirmPassword = f.Password },
			wantErr: ErrPasswordTooLong,
		},
		{name: "six chars is enough", mutate: func(f *models.SignupForm) { f.Password, f.ConfirmPassword = "abc123", "abc123" }},
		{name: "mismatch", mutate: func(f *models.SignupForm) { f.ConfirmPassword = "secret2" }, wantErr: ErrPasswordsMismatch},
		{
			name:    "empty wins over bad email",
			mutate:  func(f *models.SignupForm) { f.Username = ""; f.Email = "bad" },
			wantErr: ErrFieldsRequired,
		},
		{
			name:    "short wins over mismatch",
			mutate:  func(f *models.SignupForm) { f.Password = "abc"; f.ConfirmPassword = "xyz" },
			wantErr: ErrPasswordTooShort,
		},
	}

	v := NewAuthFormValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := validSignupForm()
			tt.mutate(&form)

			err := v.Validate(context.Background(), form)
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestAuthFormValidator_Signup_ScopedRules(t *testing.T) {
	v := NewAuthFormValidator()
	form := validSignupForm()
	form.Password, form.ConfirmPassword = "abc", "xyz"

	// length and match rules are not selected
	require.NoError(t, v.Validate(context.Background(), form, FieldRequired, FieldEmail))

	// order of fields decides which failure is reported
	err := v.Validate(context.Background(), &form, FieldConfirmPassword, FieldPasswordLength)
	assert.ErrorIs(t, err, ErrPasswordsMismatch)
}

func TestAuthFormValidator_UnknownField(t *testing.T) {
	err := NewAuthFormValidator().Validate(context.Background(), validSignupForm(), "nickname")
	assert.ErrorIs(t, err, ErrUnknownField)
	assert.False(t, errors.Is(err, ErrValidation))
}

func TestAuthFormValidator_Login(t *testing.T) {
	tests := []struct {
		name    string
		form    models.LoginForm
		wantErr error
	}{
		{name: "valid", form: models.LoginForm{Username: "alice", Password: "secret1"}},
		{name: "empty username", form: models.LoginForm{Password: "secret1"}, wantErr: ErrLoginFieldsRequired},
		{name: "blank username", form: models.LoginForm{Username: "  ", Password: "secret1"}, wantErr: ErrLoginFieldsRequired},
		{name: "empty password", form: models.LoginForm{Username: "alice"}, wantErr: ErrLoginFieldsRequired},
	}

	v := NewAuthFormValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(context.Background(), &tt.form)
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestAuthFormValidator_UnsupportedType(t *testing.T) {
	err := NewAuthFormValidator().Validate(context.Background(), models.User{})
	assert.ErrorIs(t, err, ErrUnsupportedType)
}
