package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/MKhiriev/go-gated-site/internal/config"
)

// Route names. Redirects and templates refer to routes by name only.
const (
	routeLogin   = config.RouteLogin
	routeSignup  = config.RouteSignup
	routeLogout  = "logout"
	routeHome    = "home"
	routeAbout   = "about"
	routeContact = "contact"
)

// routePaths maps route names to their canonical paths.
var routePaths = map[string]string{
	routeLogin:   "/login/",
	routeSignup:  "/signup/",
	routeLogout:  "/logout/",
	routeHome:    "/home/",
	routeAbout:   "/about/",
	routeContact: "/contact/",
}

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withGZip)
	router.Use(noCache)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	// anonymous pages
	router.Group(func(r chi.Router) {
		r.Use(h.redirectIfAuthenticated)
		r.Use(h.withCSRF)

		r.Get(routePaths[routeLogin], h.loginPage)
		r.Post(routePaths[routeLogin], h.login)
		r.Get(routePaths[routeSignup], h.signupPage)
		r.Post(routePaths[routeSignup], h.signup)
	})

	router.Get(routePaths[routeLogout], h.logout)

	// pages behind the access guard
	router.Group(func(r chi.Router) {
		r.Use(h.requireLogin)

		r.Get("/", h.home)
		r.Get(routePaths[routeHome], h.home)
		r.Get(routePaths[routeAbout], h.about)
		r.Get(routePaths[routeContact], h.contact)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}

// redirectTo answers with 303 See Other to the path of the named route.
func redirectTo(w http.ResponseWriter, r *http.Request, route string) {
	http.Redirect(w, r, routePaths[route], http.StatusSeeOther)
}
