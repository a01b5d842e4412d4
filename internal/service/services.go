package service

import (
	"fmt"

	"github.com/MKhiriev/go-gated-site/internal/config"
	"github.com/MKhiriev/go-gated-site/internal/logger"
	"github.com/MKhiriev/go-gated-site/internal/store"
	"github.com/MKhiriev/go-gated-site/internal/validators"
)

type Services struct {
	AuthService    AuthService
	SessionService SessionService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, cfg *config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	return &Services{
		AuthService:    NewAuthService(storages.UserRepository, validators.NewAuthFormValidator(), logger),
		SessionService: NewSessionService(storages.SessionRepository, cfg.App, cfg.Session, logger),
		AppInfoService: appInfoService,
	}, nil
}
