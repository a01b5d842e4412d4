package http

import (
	"fmt"
	"html/template"
	"time"

	"github.com/MKhiriev/go-gated-site/internal/config"
	"github.com/MKhiriev/go-gated-site/internal/logger"
	"github.com/MKhiriev/go-gated-site/internal/service"
	"github.com/MKhiriev/go-gated-site/internal/session"
	"github.com/MKhiriev/go-gated-site/internal/utils"
)

type Handler struct {
	services *service.Services
	sessions *session.Manager

	pages map[string]*template.Template

	// logoutRedirect is the route name users land on after logout.
	logoutRedirect string
	requestTimeout time.Duration

	traceIDs *utils.UUIDGenerator

	logger *logger.Logger
}

func NewHandler(services *service.Services, sessions *session.Manager, cfg *config.StructuredConfig, logger *logger.Logger) (*Handler, error) {
	pages, err := parsePages()
	if err != nil {
		return nil, fmt.Errorf("error parsing templates: %w", err)
	}

	logoutRedirect := cfg.App.LogoutRedirect
	if _, ok := routePaths[logoutRedirect]; !ok {
		logoutRedirect = routeSignup
	}

	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		sessions:       sessions,
		pages:          pages,
		logoutRedirect: logoutRedirect,
		requestTimeout: cfg.Server.RequestTimeout,
		traceIDs:       utils.NewUUIDGenerator(),
		logger:         logger,
	}, nil
}
