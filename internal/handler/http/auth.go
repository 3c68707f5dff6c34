package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-auth-keeper/internal/app"
	"github.com/MKhiriev/go-auth-keeper/internal/logger"
	"github.com/MKhiriev/go-auth-keeper/internal/utils"
	"github.com/MKhiriev/go-auth-keeper/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.RegisterRequest
	if err := utils.ReadJSON(r.Body, &request); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeError(w, fmt.Errorf("%w: %w", ErrInvalidJSON, err))
		return
	}

	user, err := h.services.AuthService.Register(ctx, request)
	if err != nil {
		log.Err(err).Int("status", statusFromError(err)).Msg("registration failed")
		writeError(w, err)
		return
	}

	log.Info().Str("user_id", user.UserID).Msg("user registered")
	_, _ = utils.WriteJSON(w, models.MessageResponse{Message: app.MsgUserRegistered}, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var credentials models.Credentials
	if err := utils.ReadJSON(r.Body, &credentials); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeError(w, fmt.Errorf("%w: %w", ErrInvalidJSON, err))
		return
	}

	token, err := h.services.AuthService.Login(ctx, credentials)
	if err != nil {
		log.Err(err).Int("status", statusFromError(err)).Msg("login failed")
		writeError(w, err)
		return
	}

	log.Debug().Str("user_id", token.UserID).Msg("user successfully logged in")
	_, _ = utils.WriteJSON(w, models.LoginResponse{
		Success: true,
		Message: app.MsgLoginSucceeded,
		Data:    models.LoginData{Token: token.SignedString},
	}, http.StatusOK)
}
