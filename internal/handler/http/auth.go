package http

import (
	"net/http"

	"github.com/MKhiriev/go-gated-site/internal/app"
	"github.com/MKhiriev/go-gated-site/internal/logger"
	"github.com/MKhiriev/go-gated-site/models"
)

func (h *Handler) signupPage(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, pageSignup)
}

// signup creates an account from the submitted form. Every outcome is a
// flash message followed by a 303 redirect: to login on success, back to
// signup otherwise.
func (h *Handler) signup(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	form := models.SignupForm{
		Username:        r.PostFormValue("username"),
		Email:           r.PostFormValue("email"),
		Password:        r.PostFormValue("password"),
		ConfirmPassword: r.PostFormValue("confirm_password"),
	}

	user, err := h.services.AuthService.Signup(r.Context(), form)
	if err != nil {
		h.reject(w, r, err, routeSignup)
		return
	}

	log.Debug().Int64("id", user.UserID).Msg("user successfully signed up")
	h.flash(w, r, models.FlashSuccess, app.MsgSignupSuccessful)
	redirectTo(w, r, routeLogin)
}

func (h *Handler) loginPage(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, pageLogin)
}

// login checks the credentials, opens a server-side session and stores its
// token in the session cookie.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	form := models.LoginForm{
		Username: r.PostFormValue("username"),
		Password: r.PostFormValue("password"),
	}

	user, err := h.services.AuthService.Login(ctx, form)
	if err != nil {
		h.reject(w, r, err, routeLogin)
		return
	}

	s, err := h.services.SessionService.Create(ctx, user)
	if err != nil {
		h.reject(w, r, err, routeLogin)
		return
	}

	if err = h.sessions.SetToken(w, r, s.Token); err != nil {
		log.Err(err).Msg("error writing session cookie")
		h.reject(w, r, err, routeLogin)
		return
	}

	log.Debug().Int64("id", user.UserID).Msg("user successfully logged in")
	redirectTo(w, r, routeHome)
}

// logout destroys the server-side session, if any, and clears the token
// from the cookie. Logging out twice is harmless.
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	if err := h.services.SessionService.Destroy(r.Context(), h.sessions.Token(r)); err != nil {
		log.Err(err).Msg("error destroying session")
	}

	if err := h.sessions.ClearToken(w, r); err != nil {
		log.Err(err).Msg("error clearing session cookie")
	}

	h.flash(w, r, models.FlashSuccess, app.MsgLoggedOut)
	redirectTo(w, r, h.logoutRedirect)
}

// reject flashes the message matching err and redirects to route.
func (h *Handler) reject(w http.ResponseWriter, r *http.Request, err error, route string) {
	text, expected := flashFromError(err)
	if expected {
		logger.FromRequest(r).Debug().Err(err).Msg("request rejected")
	} else {
		logger.FromRequest(r).Err(err).Msg("unexpected error")
	}

	h.flash(w, r, models.FlashError, text)
	redirectTo(w, r, route)
}

func (h *Handler) flash(w http.ResponseWriter, r *http.Request, kind models.FlashKind, text string) {
	if err := h.sessions.AddFlash(w, r, models.Flash{Kind: kind, Text: text}); err != nil {
		logger.FromRequest(r).Err(err).Msg("error adding flash message")
	}
}
