package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-gated-site/internal/config"
	"github.com/MKhiriev/go-gated-site/internal/logger"
)

// Storages groups the repositories used by the service layer together with
// the connections backing them.
type Storages struct {
	UserRepository    UserRepository
	SessionRepository SessionRepository

	closers []func() error
}

// NewStorages opens the configured user database and session backend.
//
// For SQL drivers the embedded migrations are applied before the
// repositories are returned. Connections opened before a failure are closed.
func NewStorages(ctx context.Context, cfg *config.StructuredConfig, log *logger.Logger) (*Storages, error) {
	log.Info().Str("driver", cfg.Storage.DB.Driver).Str("session_backend", cfg.Session.Backend).Msg("creating new storages...")

	s := &Storages{}

	var db *DB
	switch cfg.Storage.DB.Driver {
	case config.DriverPostgres, config.DriverSQLite:
		var err error
		if cfg.Storage.DB.Driver == config.DriverPostgres {
			db, err = NewConnectPostgres(ctx, cfg.Storage.DB, log)
		} else {
			db, err = NewConnectSQLite(ctx, cfg.Storage.DB, log)
		}
		if err != nil {
			return nil, fmt.Errorf("database connection error: %w", err)
		}
		s.closers = append(s.closers, db.Close)

		if err = db.Migrate(); err != nil {
			_ = s.Close()
			return nil, fmt.Errorf("migration failed: %w", err)
		}
		s.UserRepository = NewUserRepository(db, log)
	case config.DriverMemory:
		s.UserRepository = NewMemoryUserRepository()
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, cfg.Storage.DB.Driver)
	}

	switch cfg.Session.Backend {
	case config.SessionBackendSQL:
		if db == nil {
			_ = s.Close()
			return nil, fmt.Errorf("%w: sql sessions need a database", ErrUnsupportedDriver)
		}
		s.SessionRepository = NewSessionRepository(db, log)
	case config.SessionBackendRedis:
		rdb, err := NewRedisClient(ctx, cfg.Storage.Redis.URL, log)
		if err != nil {
			_ = s.Close()
			return nil, fmt.Errorf("redis connection error: %w", err)
		}
		s.closers = append(s.closers, rdb.Close)
		s.SessionRepository = NewRedisSessionRepository(rdb, log)
	case config.SessionBackendMemory:
		s.SessionRepository = NewMemorySessionRepository()
	default:
		_ = s.Close()
		return nil, fmt.Errorf("%w: session backend %q", ErrUnsupportedDriver, cfg.Session.Backend)
	}

	return s, nil
}

// NewMemoryStorages returns storages that live only in process memory.
func NewMemoryStorages() *Storages {
	return &Storages{
		UserRepository:    NewMemoryUserRepository(),
		SessionRepository: NewMemorySessionRepository(),
	}
}

// Close releases every connection opened by NewStorages, last opened first.
func (s *Storages) Close() error {
	var errs []error
	for i := len(s.closers) - 1; i >= 0; i-- {
		errs = append(errs, s.closers[i]())
	}
	s.closers = nil
	return errors.Join(errs...)
}
