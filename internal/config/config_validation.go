// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"slices"

	"github.com/rs/zerolog"
)

// MinCookieHashKeyLength is the shortest accepted cookie hash key, in bytes.
const MinCookieHashKeyLength = 32

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	if err := cfg.App.validate(); err != nil {
		return err
	}

	if err := cfg.Storage.DB.validate(); err != nil {
		return err
	}

	return cfg.validateSession()
}

func (a App) validate() error {
	if a.SessionHashKey == "" {
		return fmt.Errorf("%w: session hash key is required", ErrInvalidAppConfigs)
	}

	if len(a.CookieHashKey) < MinCookieHashKeyLength {
		return fmt.Errorf("%w: cookie hash key must be at least %d bytes", ErrInvalidAppConfigs, MinCookieHashKeyLength)
	}

	if a.CookieBlockKey != "" && !slices.Contains([]int{16, 24, 32}, len(a.CookieBlockKey)) {
		return fmt.Errorf("%w: cookie block key must be 16, 24 or 32 bytes", ErrInvalidAppConfigs)
	}

	if a.LogoutRedirect != RouteSignup && a.LogoutRedirect != RouteLogin {
		return fmt.Errorf("%w: unknown logout redirect %q", ErrInvalidAppConfigs, a.LogoutRedirect)
	}

	if _, err := zerolog.ParseLevel(a.LogLevel); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidAppConfigs, err)
	}

	return nil
}

func (db DB) validate() error {
	switch db.Driver {
	case DriverPostgres, DriverSQLite:
		if db.DSN == "" {
			return fmt.Errorf("%w: DSN is required for driver %q", ErrInvalidStorageConfigs, db.Driver)
		}
	case DriverMemory:
	default:
		return fmt.Errorf("%w: unknown driver %q", ErrInvalidStorageConfigs, db.Driver)
	}

	return nil
}

func (cfg *StructuredConfig) validateSession() error {
	if cfg.Session.CookieName == "" || cfg.Session.MaxAge <= 0 {
		return ErrInvalidSessionConfigs
	}

	switch cfg.Session.Backend {
	case SessionBackendSQL:
		if cfg.Storage.DB.Driver == DriverMemory {
			return fmt.Errorf("%w: sql session backend needs a database driver", ErrInvalidSessionConfigs)
		}
	case SessionBackendRedis:
		if cfg.Storage.Redis.URL == "" {
			return fmt.Errorf("%w: redis session backend needs a redis URL", ErrInvalidSessionConfigs)
		}
	case SessionBackendMemory:
	default:
		return fmt.Errorf("%w: unknown backend %q", ErrInvalidSessionConfigs, cfg.Session.Backend)
	}

	return nil
}
