package store

import (
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-gated-site/models"
)

var (
	userColumns    = []string{"user_id", "username", "email", "password_hash", "created_at"}
	sessionColumns = []string{"token_hash", "user_id", "username", "created_at", "expires_at"}
)

// buildInsertUserQuery returns an INSERT ... RETURNING statement. Both
// Postgres and SQLite (3.35+) support RETURNING.
func buildInsertUserQuery(b sq.StatementBuilderType, user models.User) (string, []any, error) {
	query, args, err := b.
		Insert(models.User{}.TableName()).
		Columns("username", "email", "password_hash").
		Values(user.Username, user.Email, user.PasswordHash).
		Suffix("RETURNING " + strings.Join(userColumns, ", ")).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildSelectUserByUsernameQuery(b sq.StatementBuilderType, username string) (string, []any, error) {
	query, args, err := b.
		Select(userColumns...).
		From(models.User{}.TableName()).
		Where(sq.Eq{"username": username}).
		Limit(1).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildUserExistsQuery builds SELECT EXISTS(...) over a single users column.
func buildUserExistsQuery(b sq.StatementBuilderType, column, value string) (string, []any, error) {
	inner := b.
		Select("1").
		From(models.User{}.TableName()).
		Where(sq.Eq{column: value})

	query, args, err := b.Select().Column(sq.Expr("EXISTS(?)", inner)).ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildInsertSessionQuery(b sq.StatementBuilderType, session models.Session) (string, []any, error) {
	query, args, err := b.
		Insert(models.Session{}.TableName()).
		Columns(sessionColumns...).
		Values(session.TokenHash, session.UserID, session.Username, session.CreatedAt, session.ExpiresAt).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildSelectSessionQuery only matches sessions still alive at now.
func buildSelectSessionQuery(b sq.StatementBuilderType, tokenHash string, now time.Time) (string, []any, error) {
	query, args, err := b.
		Select(sessionColumns...).
		From(models.Session{}.TableName()).
		Where(sq.Eq{"token_hash": tokenHash}).
		Where(sq.Gt{"expires_at": now}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildDeleteSessionQuery(b sq.StatementBuilderType, tokenHash string) (string, []any, error) {
	query, args, err := b.
		Delete(models.Session{}.TableName()).
		Where(sq.Eq{"token_hash": tokenHash}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildDeleteExpiredSessionsQuery removes every session that expired at or before now.
func buildDeleteExpiredSessionsQuery(b sq.StatementBuilderType, now time.Time) (string, []any, error) {
	query, args, err := b.
		Delete(models.Session{}.TableName()).
		Where(sq.LtOrEq{"expires_at": now}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}
