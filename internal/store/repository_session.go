package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-gated-site/internal/logger"
	"github.com/MKhiriev/go-gated-site/models"
)

// sessionRepository is the SQL implementation of [SessionRepository] over
// the "sessions" table.
type sessionRepository struct {
	logger *logger.Logger
	db     *DB
	now    func() time.Time
}

func NewSessionRepository(db *DB, logger *logger.Logger) SessionRepository {
	logger.Debug().Msg("creating session repository")
	return &sessionRepository{
		db:     db,
		logger: logger,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

func (r *sessionRepository) CreateSession(ctx context.Context, session models.Session) error {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertSessionQuery(r.db.builder(), session)
	if err != nil {
		return err
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		if classified := r.db.classify(err); errors.Is(classified, ErrSessionAlreadyExists) {
			return classified
		}
		log.Err(err).Str("func", "*sessionRepository.CreateSession").Msg("error inserting session")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	return nil
}

// FindSession returns the stored session if it has not expired yet.
func (r *sessionRepository) FindSession(ctx context.Context, tokenHash string) (models.Session, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectSessionQuery(r.db.builder(), tokenHash, r.now())
	if err != nil {
		return models.Session{}, err
	}

	var s models.Session
	err = r.db.QueryRowContext(ctx, query, args...).
		Scan(&s.TokenHash, &s.UserID, &s.Username, &s.CreatedAt, &s.ExpiresAt)
	switch {
	case err == nil:
		return s, nil
	case errors.Is(err, sql.ErrNoRows):
		return models.Session{}, ErrSessionNotFound
	default:
		log.Err(err).Str("func", "*sessionRepository.FindSession").Msg("error finding session")
		return models.Session{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
}

func (r *sessionRepository) DeleteSession(ctx context.Context, tokenHash string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteSessionQuery(r.db.builder(), tokenHash)
	if err != nil {
		return err
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*sessionRepository.DeleteSession").Msg("error deleting session")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

// DeleteExpiredSessions purges sessions that can no longer be used and
// returns how many were removed.
func (r *sessionRepository) DeleteExpiredSessions(ctx context.Context) (int64, error) {
	query, args, err := buildDeleteExpiredSessionsQuery(r.db.builder(), r.now())
	if err != nil {
		return 0, err
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return res.RowsAffected()
}
