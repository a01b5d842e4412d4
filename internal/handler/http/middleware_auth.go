package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-gated-site/internal/logger"
	"github.com/MKhiriev/go-gated-site/internal/service"
	"github.com/MKhiriev/go-gated-site/internal/utils"
	"github.com/MKhiriev/go-gated-site/models"
)

// currentSession resolves the token held in the session cookie through
// [service.SessionService.Current]. It reports false for anonymous
// browsers, unknown or expired sessions and store failures alike; failures
// are logged.
func (h *Handler) currentSession(r *http.Request) (models.Session, bool) {
	token := h.sessions.Token(r)
	if token == "" {
		return models.Session{}, false
	}

	s, err := h.services.SessionService.Current(r.Context(), token)
	if err != nil {
		if !errors.Is(err, service.ErrNoSession) {
			logger.FromRequest(r).Err(err).Msg("error resolving session")
		}
		return models.Session{}, false
	}

	return s, true
}

// requireLogin is the access guard of the protected pages.
//
// Requests without a live session are redirected to the login page; for the
// rest the session is stored in the request context under
// [utils.SessionCtxKey] before delegating to the next handler.
func (h *Handler) requireLogin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s, ok := h.currentSession(r)
		if !ok {
			redirectTo(w, r, routeLogin)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithSession(r.Context(), s)))
	})
}

// redirectIfAuthenticated sends logged-in users away from the login and
// signup pages to home, for every method.
func (h *Handler) redirectIfAuthenticated(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := h.currentSession(r); ok {
			redirectTo(w, r, routeHome)
			return
		}

		next.ServeHTTP(w, r)
	})
}
