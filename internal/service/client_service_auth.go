package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-auth-keeper/internal/adapter"
	"github.com/MKhiriev/go-auth-keeper/internal/logger"
	"github.com/MKhiriev/go-auth-keeper/internal/utils"
	"github.com/MKhiriev/go-auth-keeper/models"
)

type clientAuthService struct {
	adapter adapter.ServerAdapter
	logger  *logger.Logger
}

func NewClientAuthService(serverAdapter adapter.ServerAdapter, logger *logger.Logger) ClientAuthService {
	return &clientAuthService{adapter: serverAdapter, logger: logger}
}

func (a *clientAuthService) Register(ctx context.Context, req models.RegisterRequest) error {
	if req.Email == "" || req.Password == "" {
		return ErrValidation
	}

	if err := a.adapter.Register(ctx, req); err != nil {
		a.logger.Err(err).Str("email", req.Email).Msg("register on server failed")
		return mapAdapterError(err)
	}

	return nil
}

func (a *clientAuthService) Login(ctx context.Context, credentials models.Credentials) (string, error) {
	if credentials.Email == "" || credentials.Password == "" {
		return "", ErrValidation
	}

	token, err := a.adapter.Login(ctx, credentials)
	if err != nil {
		a.logger.Err(err).Str("email", credentials.Email).Msg("login on server failed")
		return "", mapAdapterError(err)
	}

	userID, err := utils.ParseUserIDFromJWT(token)
	if err != nil {
		a.adapter.SetToken("")
		return "", fmt.Errorf("%w: %w", ErrTokenIsInvalid, err)
	}

	return userID, nil
}

func (a *clientAuthService) Profile(ctx context.Context) (models.Profile, error) {
	if a.adapter.Token() == "" {
		return models.Profile{}, ErrNotLoggedIn
	}

	profile, err := a.adapter.Details(ctx)
	if err != nil {
		a.logger.Err(err).Msg("fetching profile failed")
		return models.Profile{}, mapAdapterError(err)
	}

	return profile, nil
}

func (a *clientAuthService) Token() string {
	return a.adapter.Token()
}

func (a *clientAuthService) Logout() {
	a.adapter.SetToken("")
}
