// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package session

import (
	"crypto/subtle"
	"encoding/gob"
	"fmt"
	"net/http"

	"github.com/gorilla/sessions"

	"github.com/MKhiriev/go-gated-site/internal/config"
	"github.com/MKhiriev/go-gated-site/internal/utils"
	"github.com/MKhiriev/go-gated-site/models"
)

// Keys of the values kept in the cookie session.
const (
	tokenKey = "token"
	csrfKey  = "csrf"
)

func init() {
	// Flashes are stored as interface values and must be known to gob.
	gob.Register(models.Flash{})
}

// Manager reads and writes the signed session cookie.
//
// All methods load the cookie through the request-scoped gorilla registry,
// so several calls during one request work on the same values. Methods that
// change the cookie save it right away.
type Manager struct {
	store   sessions.Store
	options *sessions.Options
	name    string

	newToken func() (string, error)
}

// NewManager builds a Manager backed by a securecookie-signed CookieStore.
//
// app.CookieHashKey authenticates the cookie; a non-empty app.CookieBlockKey
// additionally encrypts it. The cookie lives as long as a server-side
// session (cfg.MaxAge), is HttpOnly and SameSite=Lax, and is Secure when
// cfg.Secure is set.
func NewManager(app config.App, cfg config.Session) (*Manager, error) {
	if len(app.CookieHashKey) < config.MinCookieHashKeyLength {
		return nil, ErrShortCookieHashKey
	}

	keys := [][]byte{[]byte(app.CookieHashKey)}
	if app.CookieBlockKey != "" {
		keys = append(keys, []byte(app.CookieBlockKey))
	}

	store := sessions.NewCookieStore(keys...)
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   int(cfg.MaxAge.Seconds()),
		HttpOnly: true,
		Secure:   cfg.Secure,
		SameSite: http.SameSiteLaxMode,
	}

	return &Manager{
		store:    store,
		options:  store.Options,
		name:     cfg.CookieName,
		newToken: utils.NewToken,
	}, nil
}

// get returns the cookie session of r. A cookie that fails to decode (for
// example after a key rotation) yields the fresh, empty session gorilla
// hands back alongside the error.
func (m *Manager) get(r *http.Request) *sessions.Session {
	s, err := m.store.Get(r, m.name)
	if err != nil && s == nil {
		s = sessions.NewSession(m.store, m.name)
		opts := *m.options
		s.Options = &opts
		s.IsNew = true
	}
	return s
}

func (m *Manager) save(w http.ResponseWriter, r *http.Request, s *sessions.Session) error {
	if err := s.Save(r, w); err != nil {
		return fmt.Errorf("%w: %w", ErrSavingCookie, err)
	}
	return nil
}

// Token returns the session token stored in the cookie, or "" when the
// browser is anonymous.
func (m *Manager) Token(r *http.Request) string {
	token, _ := m.get(r).Values[tokenKey].(string)
	return token
}

// SetToken stores the token issued at login in the cookie.
//
// The CSRF token is rotated at the same time so a token seen before login
// cannot be replayed afterwards.
func (m *Manager) SetToken(w http.ResponseWriter, r *http.Request, token string) error {
	s := m.get(r)
	s.Values[tokenKey] = token
	delete(s.Values, csrfKey)
	return m.save(w, r, s)
}

// ClearToken removes the session token from the cookie. Pending flashes are
// kept.
func (m *Manager) ClearToken(w http.ResponseWriter, r *http.Request) error {
	s := m.get(r)
	delete(s.Values, tokenKey)
	return m.save(w, r, s)
}

// AddFlash queues a one-time message for the next rendered page.
func (m *Manager) AddFlash(w http.ResponseWriter, r *http.Request, flash models.Flash) error {
	s := m.get(r)
	s.AddFlash(flash)
	return m.save(w, r, s)
}

// Prepare returns the pending flashes, consuming them, together with the
// CSRF token of the browser, creating one if needed. The cookie is saved
// once.
func (m *Manager) Prepare(w http.ResponseWriter, r *http.Request) ([]models.Flash, string, error) {
	s := m.get(r)

	var flashes []models.Flash
	for _, v := range s.Flashes() {
		if flash, ok := v.(models.Flash); ok {
			flashes = append(flashes, flash)
		}
	}

	csrf, ok := s.Values[csrfKey].(string)
	if !ok || csrf == "" {
		var err error
		if csrf, err = m.newToken(); err != nil {
			return nil, "", err
		}
		s.Values[csrfKey] = csrf
	}

	if err := m.save(w, r, s); err != nil {
		return nil, "", err
	}

	return flashes, csrf, nil
}

// ValidCSRF reports whether token matches the CSRF token held in the cookie.
func (m *Manager) ValidCSRF(r *http.Request, token string) bool {
	expected, _ := m.get(r).Values[csrfKey].(string)
	if expected == "" || token == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(expected), []byte(token)) == 1
}
