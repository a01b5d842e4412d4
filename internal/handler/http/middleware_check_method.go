// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// CheckHTTPMethod returns a handler meant to be registered with
// [chi.Mux.MethodNotAllowed].
//
// Chi answers 405 Method Not Allowed when a path is known but the method is
// not. The returned handler answers 404 Not Found instead, so a page such as
// /logout/ looks absent to a POST. When the method turns out to be
// registered for the exact route pattern, the request goes through the
// router as usual.
//
// Only exact pattern matches are considered; parameterised or wildcard
// segments are not expanded.
func CheckHTTPMethod(router *chi.Mux) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		var found chi.Route
		for _, route := range router.Routes() {
			if route.Pattern == r.URL.Path {
				found = route
				break
			}
		}

		if _, ok := found.Handlers[r.Method]; !ok {
			http.NotFound(w, r)
			return
		}

		router.ServeHTTP(w, r)
	}
}
