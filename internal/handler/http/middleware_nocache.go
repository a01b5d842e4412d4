package http

import "net/http"

// noCache forbids browsers and proxies to store any page, so the back button
// never shows a protected page after logout.
func noCache(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := w.Header()
		header.Set("Cache-Control", "no-cache, no-store, must-revalidate, private, max-age=0")
		header.Set("Pragma", "no-cache")
		header.Set("Expires", "0")

		next.ServeHTTP(w, r)
	})
}
