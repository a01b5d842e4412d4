package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/go-gated-site/internal/logger"
	"github.com/MKhiriev/go-gated-site/internal/store"
	"github.com/MKhiriev/go-gated-site/internal/validators"
	"github.com/MKhiriev/go-gated-site/models"
)

// authService is the concrete implementation of AuthService.
// It validates the signup and login forms, checks uniqueness against the
// UserRepository and stores passwords as bcrypt hashes.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// validator checks the signup and login forms.
	validator validators.Validator

	// cost is the bcrypt work factor used for new password hashes.
	cost int

	// dummyHash is compared against when the username is unknown so that
	// both failed-login paths spend the same bcrypt time.
	dummyHash []byte

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given
// UserRepository and form validator.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, validator validators.Validator, logger *logger.Logger) AuthService {
	return newAuthService(userRepository, validator, bcrypt.DefaultCost, logger)
}

func newAuthService(userRepository store.UserRepository, validator validators.Validator, cost int, logger *logger.Logger) *authService {
	dummyHash, err := bcrypt.GenerateFromPassword([]byte("not-a-real-password"), cost)
	if err != nil {
		logger.Err(err).Msg("error generating dummy password hash")
	}

	return &authService{
		userRepository: userRepository,
		validator:      validator,
		cost:           cost,
		dummyHash:      dummyHash,
		logger:         logger,
	}
}

// Signup creates a new user account.
//
// Username and email are trimmed; passwords are taken verbatim. Checks run
// in this order and the first failure is returned:
//  1. all fields present;
//  2. email format;
//  3. username not taken ([ErrUsernameTaken]);
//  4. email not registered ([ErrEmailTaken]);
//  5. password length;
//  6. password confirmation matches.
//
// A uniqueness violation reported by the store at insert time (two signups
// racing for the same name) is mapped onto the same errors as the pre-checks.
func (a *authService) Signup(ctx context.Context, form models.SignupForm) (models.User, error) {
	log := logger.FromContext(ctx)

	form.Username = strings.TrimSpace(form.Username)
	form.Email = strings.TrimSpace(form.Email)

	if err := a.validator.Validate(ctx, form, validators.FieldRequired, validators.FieldEmail); err != nil {
		return models.User{}, err
	}

	taken, err := a.userRepository.UsernameExists(ctx, form.Username)
	if err != nil {
		return models.User{}, fmt.Errorf("error checking username: %w", err)
	}
	if taken {
		return models.User{}, ErrUsernameTaken
	}

	registered, err := a.userRepository.EmailExists(ctx, form.Email)
	if err != nil {
		return models.User{}, fmt.Errorf("error checking email: %w", err)
	}
	if registered {
		return models.User{}, ErrEmailTaken
	}

	if err = a.validator.Validate(ctx, form, validators.FieldPasswordLength, validators.FieldConfirmPassword); err != nil {
		return models.User{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(form.Password), a.cost)
	if err != nil {
		log.Err(err).Msg("error hashing password")
		return models.User{}, fmt.Errorf("error hashing password: %w", err)
	}

	user, err := a.userRepository.CreateUser(ctx, models.User{
		Username:     form.Username,
		Email:        form.Email,
		PasswordHash: string(hash),
	})
	switch {
	case errors.Is(err, store.ErrUsernameAlreadyExists):
		return models.User{}, ErrUsernameTaken
	case errors.Is(err, store.ErrEmailAlreadyExists):
		return models.User{}, ErrEmailTaken
	case err != nil:
		log.Err(err).Str("username", form.Username).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	log.Info().Int64("user_id", user.UserID).Str("username", user.Username).Msg("user signed up")
	return user, nil
}

// Login verifies a username/password pair.
//
// Returns the stored user on success, [ErrLoginFieldsRequired] when either
// field is empty and [ErrInvalidCredentials] for an unknown user or a wrong
// password alike.
func (a *authService) Login(ctx context.Context, form models.LoginForm) (models.User, error) {
	log := logger.FromContext(ctx)

	form.Username = strings.TrimSpace(form.Username)

	if err := a.validator.Validate(ctx, form); err != nil {
		return models.User{}, err
	}

	user, err := a.userRepository.FindUserByUsername(ctx, form.Username)
	if errors.Is(err, store.ErrNoUserWasFound) {
		_ = bcrypt.CompareHashAndPassword(a.dummyHash, []byte(form.Password))
		log.Debug().Str("username", form.Username).Msg("login for unknown user")
		return models.User{}, ErrInvalidCredentials
	}
	if err != nil {
		log.Err(err).Msg("error finding user")
		return models.User{}, fmt.Errorf("error finding user: %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(form.Password)); err != nil {
		log.Debug().Str("username", form.Username).Msg("login with wrong password")
		return models.User{}, ErrInvalidCredentials
	}

	return user, nil
}
