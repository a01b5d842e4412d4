package http

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/MKhiriev/go-gated-site/internal/logger"
	"github.com/MKhiriev/go-gated-site/internal/utils"
	"github.com/MKhiriev/go-gated-site/models"
)

//go:embed templates/*.html
var templatesFS embed.FS

const layoutTemplate = "templates/layout.html"

// Page template names, without the templates/ prefix and .html suffix.
const (
	pageLogin   = "login"
	pageSignup  = "signup"
	pageHome    = "home"
	pageAbout   = "about"
	pageContact = "contact"
)

var pageTitles = map[string]string{
	pageLogin:   "Login",
	pageSignup:  "Sign up",
	pageHome:    "Home",
	pageAbout:   "About",
	pageContact: "Contact",
}

// parsePages builds one template set per page: the shared layout plus the
// page's "content" block.
func parsePages() (map[string]*template.Template, error) {
	pages := make(map[string]*template.Template, len(pageTitles))
	for name := range pageTitles {
		tmpl, err := template.ParseFS(templatesFS, layoutTemplate, "templates/"+name+".html")
		if err != nil {
			return nil, err
		}
		pages[name] = tmpl
	}
	return pages, nil
}

// render writes the named page with the pending flashes, the CSRF token,
// the app version and, behind the access guard, the current username.
func (h *Handler) render(w http.ResponseWriter, r *http.Request, page string) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	flashes, csrfToken, err := h.sessions.Prepare(w, r)
	if err != nil {
		log.Err(err).Msg("error preparing session cookie")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	data := models.Page{
		Title:     pageTitles[page],
		Flashes:   flashes,
		CSRFToken: csrfToken,
		Version:   h.services.AppInfoService.GetAppVersion(ctx),
		URLs:      routePaths,
	}
	if s, ok := utils.GetSessionFromContext(ctx); ok {
		data.Username = s.Username
	}

	if _, err = utils.WriteHTML(w, h.pages[page], "layout", data, http.StatusOK); err != nil {
		log.Err(err).Str("page", page).Msg("error rendering page")
	}
}
