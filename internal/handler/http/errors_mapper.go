package http

import (
	"errors"

	"github.com/MKhiriev/go-gated-site/internal/app"
	"github.com/MKhiriev/go-gated-site/internal/service"
)

// errorFlashMap translates service errors into the text shown to the user.
var errorFlashMap = map[error]string{
	service.ErrFieldsRequired:    app.MsgFieldsRequired,
	service.ErrInvalidEmail:      app.MsgInvalidEmail,
	service.ErrUsernameTaken:     app.MsgUsernameTaken,
	service.ErrEmailTaken:        app.MsgEmailTaken,
	service.ErrPasswordTooShort:  app.MsgPasswordTooShort,
	service.ErrPasswordTooLong:   app.MsgPasswordTooLong,
	service.ErrPasswordsMismatch: app.MsgPasswordsMismatch,

	service.ErrLoginFieldsRequired: app.MsgLoginFieldsRequired,
	service.ErrInvalidCredentials:  app.MsgInvalidCredentials,
}

// flashFromError returns the flash text for err and whether err is an
// expected rejection. Unexpected errors map to a generic message.
func flashFromError(err error) (string, bool) {
	for target, text := range errorFlashMap {
		if errors.Is(err, target) {
			return text, true
		}
	}
	return app.MsgSomethingWentWrong, false
}
