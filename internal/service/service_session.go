package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-gated-site/internal/config"
	"github.com/MKhiriev/go-gated-site/internal/logger"
	"github.com/MKhiriev/go-gated-site/internal/store"
	"github.com/MKhiriev/go-gated-site/internal/utils"
	"github.com/MKhiriev/go-gated-site/models"
)

type sessionService struct {
	sessionRepository store.SessionRepository

	// hashKey keys the HMAC that turns client tokens into storage keys.
	hashKey string
	maxAge  time.Duration

	now      func() time.Time
	newToken func() (string, error)

	logger *logger.Logger
}

func NewSessionService(sessionRepository store.SessionRepository, app config.App, cfg config.Session, logger *logger.Logger) SessionService {
	return &sessionService{
		sessionRepository: sessionRepository,
		hashKey:           app.SessionHashKey,
		maxAge:            cfg.MaxAge,
		now:               func() time.Time { return time.Now().UTC() },
		newToken:          utils.NewToken,
		logger:            logger,
	}
}

func (s *sessionService) Create(ctx context.Context, user models.User) (models.Session, error) {
	log := logger.FromContext(ctx)

	token, err := s.newToken()
	if err != nil {
		log.Err(err).Msg("error generating session token")
		return models.Session{}, fmt.Errorf("error generating session token: %w", err)
	}

	now := s.now()
	session := models.Session{
		Token:     token,
		TokenHash: utils.HashString(token, s.hashKey),
		UserID:    user.UserID,
		Username:  user.Username,
		CreatedAt: now,
		ExpiresAt: now.Add(s.maxAge),
	}

	if err = s.sessionRepository.CreateSession(ctx, session); err != nil {
		log.Err(err).Int64("user_id", user.UserID).Msg("error storing session")
		return models.Session{}, fmt.Errorf("error storing session: %w", err)
	}

	log.Info().Int64("user_id", user.UserID).Time("expires_at", session.ExpiresAt).Msg("session created")
	return session, nil
}

func (s *sessionService) Current(ctx context.Context, token string) (models.Session, error) {
	if token == "" {
		return models.Session{}, ErrNoSession
	}

	session, err := s.sessionRepository.FindSession(ctx, utils.HashString(token, s.hashKey))
	if errors.Is(err, store.ErrSessionNotFound) {
		return models.Session{}, ErrNoSession
	}
	if err != nil {
		return models.Session{}, fmt.Errorf("error loading session: %w", err)
	}

	if session.IsExpired(s.now()) {
		return models.Session{}, ErrNoSession
	}

	return session, nil
}

func (s *sessionService) Destroy(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}

	if err := s.sessionRepository.DeleteSession(ctx, utils.HashString(token, s.hashKey)); err != nil {
		logger.FromContext(ctx).Err(err).Msg("error deleting session")
		return fmt.Errorf("error deleting session: %w", err)
	}

	return nil
}

func (s *sessionService) PurgeExpired(ctx context.Context) (int64, error) {
	purger, ok := s.sessionRepository.(store.ExpiredSessionPurger)
	if !ok {
		return 0, nil
	}

	removed, err := purger.DeleteExpiredSessions(ctx)
	if err != nil {
		return 0, fmt.Errorf("error purging expired sessions: %w", err)
	}

	return removed, nil
}
