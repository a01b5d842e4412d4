// Package session carries per-browser state in a signed cookie.
//
// The cookie holds the opaque session token issued at login, pending flash
// messages and the CSRF token of the browser. It never holds user data: the
// token is resolved server-side by service.SessionService on every request.
package session
