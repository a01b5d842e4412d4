package models

// Page carries everything a template needs to render one HTML page.
type Page struct {
	// Title is rendered into the <title> element and the page header.
	Title string

	// Username is the name of the logged-in user; empty for anonymous pages.
	Username string

	// Flashes are pending one-time notifications, already consumed.
	Flashes []Flash

	// CSRFToken is embedded into every form as a hidden field.
	CSRFToken string

	// Version is the running application version shown in the footer.
	Version string

	// URLs maps route names to paths so templates never hardcode links.
	URLs map[string]string
}
