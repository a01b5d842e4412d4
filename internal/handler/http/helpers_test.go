package http

import (
	"net/http"
	"net/http/httptest"
	"regexp"
	"testing"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-gated-site/internal/config"
	"github.com/MKhiriev/go-gated-site/internal/logger"
	"github.com/MKhiriev/go-gated-site/internal/service"
	"github.com/MKhiriev/go-gated-site/internal/session"
)

const testCookieHashKey = "0123456789abcdef0123456789abcdef"

var csrfFieldPattern = regexp.MustCompile(`name="csrf_token" value="([^"]+)"`)

func testConfig() *config.StructuredConfig {
	cfg := config.Defaults()
	cfg.App.Version = "1.2.3"
	cfg.App.CookieHashKey = testCookieHashKey
	cfg.App.SessionHashKey = "session-hash-key"
	cfg.Session.MaxAge = time.Hour
	return cfg
}

// newTestHandler builds a Handler over the given services and the cookie
// session manager configured by cfg.
func newTestHandler(t *testing.T, services *service.Services, cfg *config.StructuredConfig) *Handler {
	t.Helper()

	sessions, err := session.NewManager(cfg.App, cfg.Session)
	require.NoError(t, err)

	h, err := NewHandler(services, sessions, cfg, logger.Nop())
	require.NoError(t, err)
	return h
}

// newTestClient starts h on an httptest server and returns a resty client
// with a cookie jar that does not follow redirects.
func newTestClient(t *testing.T, h *Handler) (*resty.Client, string) {
	t.Helper()

	srv := httptest.NewServer(h.Init())
	t.Cleanup(srv.Close)

	client := resty.New().
		SetBaseURL(srv.URL).
		SetRedirectPolicy(resty.RedirectPolicyFunc(func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		}))

	return client, srv.URL
}

// csrfToken loads the form page at path and returns the token embedded in
// it.
func csrfToken(t *testing.T, client *resty.Client, path string) string {
	t.Helper()

	resp, err := client.R().Get(path)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode(), resp.String())

	m := csrfFieldPattern.FindStringSubmatch(resp.String())
	require.Len(t, m, 2, "no csrf token on %s", path)
	return m[1]
}

// postForm submits fields to path together with a fresh CSRF token.
func postForm(t *testing.T, client *resty.Client, path string, fields map[string]string) *resty.Response {
	t.Helper()

	data := map[string]string{csrfFormField: csrfToken(t, client, path)}
	for k, v := range fields {
		data[k] = v
	}

	resp, err := client.R().SetFormData(data).Post(path)
	require.NoError(t, err)
	return resp
}

func get(t *testing.T, client *resty.Client, path string) *resty.Response {
	t.Helper()

	resp, err := client.R().Get(path)
	require.NoError(t, err)
	return resp
}
