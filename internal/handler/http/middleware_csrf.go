package http

import (
	"net/http"

	"github.com/MKhiriev/go-gated-site/internal/app"
	"github.com/MKhiriev/go-gated-site/internal/logger"
)

const csrfFormField = "csrf_token"

// withCSRF rejects state-changing requests whose csrf_token form field does
// not match the token held in the session cookie with 403 Forbidden.
func (h *Handler) withCSRF(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet, http.MethodHead, http.MethodOptions:
			next.ServeHTTP(w, r)
			return
		}

		if !h.sessions.ValidCSRF(r, r.PostFormValue(csrfFormField)) {
			logger.FromRequest(r).Warn().Str("uri", r.RequestURI).Msg("invalid csrf token")
			http.Error(w, app.MsgInvalidCSRFToken, http.StatusForbidden)
			return
		}

		next.ServeHTTP(w, r)
	})
}
