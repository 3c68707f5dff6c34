package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-auth-keeper/internal/app"
	"github.com/MKhiriev/go-auth-keeper/internal/service"
	"github.com/MKhiriev/go-auth-keeper/internal/store"
	"github.com/MKhiriev/go-auth-keeper/internal/utils"
	"github.com/MKhiriev/go-auth-keeper/models"
)

// errorStatusMap lists every error with a dedicated status. Entries must not
// overlap with conflicting statuses: an error wrapping two keys has to map to
// the same status through both.
var errorStatusMap = map[error]int{
	service.ErrValidation:         http.StatusBadRequest,
	service.ErrDuplicateEmail:     http.StatusBadRequest,
	service.ErrUserNotFound:       http.StatusNotFound,
	service.ErrInvalidCredentials: http.StatusUnauthorized,

	service.ErrMissingToken:      http.StatusUnauthorized,
	service.ErrTokenIsExpired:    http.StatusUnauthorized,
	service.ErrTokenIsInvalid:    http.StatusUnauthorized,
	service.ErrTokenUserNotFound: http.StatusUnauthorized,

	ErrInvalidJSON:                      http.StatusBadRequest,
	utils.ErrInvalidAuthorizationHeader: http.StatusUnauthorized,

	store.ErrEmailAlreadyExists:   http.StatusBadRequest,
	store.ErrDirectoryUnavailable: http.StatusServiceUnavailable,
}

var errorMessageMap = map[error]string{
	service.ErrValidation:         app.MsgInvalidDataProvided,
	service.ErrDuplicateEmail:     app.MsgEmailAlreadyExists,
	service.ErrUserNotFound:       app.MsgUserNotFound,
	service.ErrInvalidCredentials: app.MsgInvalidPassword,

	service.ErrMissingToken:      app.MsgTokenIsMissing,
	service.ErrTokenIsExpired:    app.MsgTokenIsExpired,
	service.ErrTokenIsInvalid:    app.MsgTokenIsInvalid,
	service.ErrTokenUserNotFound: app.MsgTokenUserNotFound,

	ErrInvalidJSON:                      app.MsgInvalidDataProvided,
	utils.ErrInvalidAuthorizationHeader: app.MsgTokenIsInvalid,

	store.ErrEmailAlreadyExists:   app.MsgEmailAlreadyExists,
	store.ErrDirectoryUnavailable: app.MsgServiceUnavailable,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// messageFromError returns the stable message for err. Service errors are
// checked before store errors they may wrap.
func messageFromError(err error) string {
	for _, target := range []error{
		service.ErrDuplicateEmail,
		service.ErrUserNotFound,
		service.ErrTokenUserNotFound,
	} {
		if errors.Is(err, target) {
			return errorMessageMap[target]
		}
	}

	for target, message := range errorMessageMap {
		if errors.Is(err, target) {
			return message
		}
	}
	return app.MsgInternalServerError
}

// writeError answers with the JSON error body matching err.
func writeError(w http.ResponseWriter, err error) {
	_, _ = utils.WriteJSON(w, models.ErrorResponse{
		Success: false,
		Message: messageFromError(err),
	}, statusFromError(err))
}
