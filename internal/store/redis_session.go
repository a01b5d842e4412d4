package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/MKhiriev/go-gated-site/internal/logger"
	"github.com/MKhiriev/go-gated-site/models"
)

const sessionKeyPrefix = "session:"

// redisSessionRepository keeps sessions as JSON values whose key TTL equals
// the remaining session lifetime, so Redis drops them on expiry.
type redisSessionRepository struct {
	rdb    *redis.Client
	logger *logger.Logger
	now    func() time.Time
}

func NewRedisSessionRepository(rdb *redis.Client, logger *logger.Logger) SessionRepository {
	logger.Debug().Msg("creating redis session repository")
	return &redisSessionRepository{
		rdb:    rdb,
		logger: logger,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// NewRedisClient parses url and verifies the server is reachable.
func NewRedisClient(ctx context.Context, url string, log *logger.Logger) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("invalid redis url: %w", err)
	}

	rdb := redis.NewClient(opts)
	if err = rdb.Ping(ctx).Err(); err != nil {
		log.Err(err).Str("func", "NewRedisClient").Msg("error connecting redis (ping)")
		_ = rdb.Close()
		return nil, err
	}
	log.Info().Str("func", "NewRedisClient").Msg("connected to redis successfully")

	return rdb, nil
}

func (r *redisSessionRepository) CreateSession(ctx context.Context, session models.Session) error {
	ttl := session.ExpiresAt.Sub(r.now())
	if ttl <= 0 {
		return nil
	}

	payload, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncodingSession, err)
	}

	created, err := r.rdb.SetNX(ctx, sessionKey(session.TokenHash), payload, ttl).Result()
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*redisSessionRepository.CreateSession").Msg("error storing session")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if !created {
		return ErrSessionAlreadyExists
	}

	return nil
}

func (r *redisSessionRepository) FindSession(ctx context.Context, tokenHash string) (models.Session, error) {
	data, err := r.rdb.Get(ctx, sessionKey(tokenHash)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return models.Session{}, ErrSessionNotFound
		}
		logger.FromContext(ctx).Err(err).Str("func", "*redisSessionRepository.FindSession").Msg("error loading session")
		return models.Session{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	var session models.Session
	if err = json.Unmarshal(data, &session); err != nil {
		return models.Session{}, fmt.Errorf("%w: %w", ErrEncodingSession, err)
	}
	session.TokenHash = tokenHash

	// key TTL has second granularity
	if session.IsExpired(r.now()) {
		return models.Session{}, ErrSessionNotFound
	}

	return session, nil
}

func (r *redisSessionRepository) DeleteSession(ctx context.Context, tokenHash string) error {
	if err := r.rdb.Del(ctx, sessionKey(tokenHash)).Err(); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*redisSessionRepository.DeleteSession").Msg("error deleting session")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return nil
}

func sessionKey(tokenHash string) string {
	return sessionKeyPrefix + tokenHash
}
