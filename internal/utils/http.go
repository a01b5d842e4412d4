package utils

import (
	"bytes"
	"fmt"
	"html/template"
	"net/http"
)

// WriteHTML executes the named template into a buffer and writes it to the
// HTTP response with the given status code.
//
// Rendering into a buffer first means a template error never leaves a
// half-written page behind: on failure it responds with
// 500 Internal Server Error and returns a wrapped error.
//
// Example usage:
//
//	WriteHTML(w, tmpl, "login.html", page, http.StatusOK)
func WriteHTML(w http.ResponseWriter, tmpl *template.Template, name string, data any, statusCode int) (int, error) {
	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return 0, fmt.Errorf("error rendering template %q: %w", name, err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(statusCode)

	return w.Write(buf.Bytes())
}
