package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-auth-keeper/internal/logger"
	"github.com/MKhiriev/go-auth-keeper/internal/service"
	"github.com/MKhiriev/go-auth-keeper/internal/utils"
	"github.com/MKhiriev/go-auth-keeper/models"
)

// auth resolves the caller from the Authorization header and stores the user
// record in the request context. Both "Bearer <token>" and a bare token are
// accepted; anything else is rejected as an invalid token.
//
// Rejections are answered with the JSON error body of the failure, so an
// expired token and an unknown subject are told apart by message.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		rawToken, err := utils.ParseBearerToken(r.Header.Get("Authorization"))
		if err != nil {
			log.Err(err).Msg("malformed authorization header")
			writeError(w, fmt.Errorf("%w: %w", service.ErrTokenIsInvalid, err))
			return
		}

		ctx := r.Context()
		user, err := h.services.AuthService.Authorize(ctx, rawToken)
		if err != nil {
			log.Err(err).Msg("authorization failed")
			writeError(w, err)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithUser(ctx, user)))
	})
}

// withUser adapts a handler that needs the authorized caller. It must be
// mounted behind auth.
func withUser(fn func(w http.ResponseWriter, r *http.Request, user models.User)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := utils.GetUserFromContext(r.Context())
		if !ok {
			logger.FromRequest(r).Error().Err(ErrNoUserInContext).Send()
			writeError(w, ErrNoUserInContext)
			return
		}
		fn(w, r, user)
	}
}
