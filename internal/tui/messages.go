package tui

import "github.com/MKhiriev/go-auth-keeper/models"

// Page names known to [RootModel].
const (
	pageMenu     = "menu"
	pageRegister = "register"
	pageLogin    = "login"
	pageProfile  = "profile"
)

// NavigateTo switches the active page. A non-nil Payload is delivered to the
// new page instead of calling its Init.
type NavigateTo struct {
	Page    string
	Payload any
}

// RegisterResult is produced by the register command.
type RegisterResult struct {
	Err   error
	Email string
}

// RegisterSuccessNotice is shown on the menu after a registration.
type RegisterSuccessNotice struct {
	Email string
}

// LoginResult is produced by the login command.
type LoginResult struct {
	Err    error
	Email  string
	UserID string
}

// ProfileLoaded carries the result of a details request.
type ProfileLoaded struct {
	Profile models.Profile
	Err     error
}

// LoggedOut is sent by the profile page after the token was dropped.
type LoggedOut struct{}

type copiedMsg struct {
	err error
}

type clearStatusMsg struct{}
