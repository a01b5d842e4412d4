package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-gated-site/internal/logger"
	"github.com/MKhiriev/go-gated-site/models"
)

// userRepository is the SQL implementation of [UserRepository] over the
// "users" table. It works with both Postgres and SQLite connections.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new user record and returns the fully populated
// [models.User] with server-assigned fields (UserID, CreatedAt).
//
// Error handling:
//   - unique violation on username → [ErrUsernameAlreadyExists].
//   - unique violation on email → [ErrEmailAlreadyExists].
//   - any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertUserQuery(r.db.builder(), user)
	if err != nil {
		return models.User{}, err
	}

	var created models.User
	row := r.db.QueryRowContext(ctx, query, args...)
	err = row.Err()
	if err == nil {
		err = row.Scan(&created.UserID, &created.Username, &created.Email, &created.PasswordHash, &created.CreatedAt)
	}

	if err != nil {
		classified := r.db.classify(err)
		if errors.Is(classified, ErrUsernameAlreadyExists) || errors.Is(classified, ErrEmailAlreadyExists) {
			log.Debug().Err(classified).Str("func", "*userRepository.CreateUser").Msg("uniqueness violation")
			return models.User{}, classified
		}

		log.Err(err).Str("func", "*userRepository.CreateUser").Str("pg_code", postgresError(err)).Msg("error inserting user")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return created, nil
}

// FindUserByUsername retrieves the user whose username matches exactly.
//
// Error handling:
//   - no matching row → [ErrNoUserWasFound].
//   - any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectUserByUsernameQuery(r.db.builder(), username)
	if err != nil {
		return models.User{}, err
	}

	var found models.User
	row := r.db.QueryRowContext(ctx, query, args...)
	if err = row.Err(); err == nil {
		err = row.Scan(&found.UserID, &found.Username, &found.Email, &found.PasswordHash, &found.CreatedAt)
	}

	switch {
	case err == nil:
		return found, nil
	case errors.Is(err, sql.ErrNoRows), errors.Is(r.db.classify(err), ErrNoUserWasFound):
		return models.User{}, ErrNoUserWasFound
	default:
		log.Err(err).Str("func", "*userRepository.FindUserByUsername").Msg("error finding user")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}
}

func (r *userRepository) UsernameExists(ctx context.Context, username string) (bool, error) {
	return r.exists(ctx, "username", username)
}

func (r *userRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	return r.exists(ctx, "email", email)
}

func (r *userRepository) exists(ctx context.Context, column, value string) (bool, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUserExistsQuery(r.db.builder(), column, value)
	if err != nil {
		return false, err
	}

	var exists bool
	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&exists); err != nil {
		log.Err(err).Str("func", "*userRepository.exists").Str("column", column).Msg("error checking user existence")
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return exists, nil
}
