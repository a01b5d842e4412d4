package handler

import (
	"fmt"

	"github.com/MKhiriev/go-gated-site/internal/config"
	"github.com/MKhiriev/go-gated-site/internal/handler/http"
	"github.com/MKhiriev/go-gated-site/internal/logger"
	"github.com/MKhiriev/go-gated-site/internal/service"
	"github.com/MKhiriev/go-gated-site/internal/session"
)

type Handlers struct {
	HTTP *http.Handler
}

// NewHandlers builds the transport handlers of the site: the cookie session
// manager and the HTML handler on top of it.
func NewHandlers(services *service.Services, cfg *config.StructuredConfig, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.Server.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	sessions, err := session.NewManager(cfg.App, cfg.Session)
	if err != nil {
		return nil, fmt.Errorf("error creating session manager: %w", err)
	}

	httpHandler, err := http.NewHandler(services, sessions, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating http handler: %w", err)
	}

	return &Handlers{HTTP: httpHandler}, nil
}
