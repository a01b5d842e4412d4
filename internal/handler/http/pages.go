package http

import "net/http"

func (h *Handler) home(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, pageHome)
}

func (h *Handler) about(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, pageAbout)
}

func (h *Handler) contact(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, pageContact)
}
