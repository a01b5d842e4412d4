// Package http implements the HTML transport layer of the site.
//
// It exposes route wiring, the signup, login and logout handlers, the
// guarded pages and the middleware in front of them. Cross-cutting concerns
// such as the access guard, CSRF checks, cache headers, request tracing,
// access logging and response compression are handled in this package
// before requests are delegated to the service layer.
package http
