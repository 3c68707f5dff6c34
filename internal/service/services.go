package service

import (
	"fmt"
	"time"

	"github.com/MKhiriev/go-auth-keeper/internal/config"
	"github.com/MKhiriev/go-auth-keeper/internal/logger"
	"github.com/MKhiriev/go-auth-keeper/internal/store"
	"github.com/MKhiriev/go-auth-keeper/internal/utils"
	"github.com/MKhiriev/go-auth-keeper/models"
	"go.opentelemetry.io/otel"
)

type Services struct {
	AuthService    AuthService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, cfg *config.StructuredConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	tokens, err := NewTokenService(cfg.App, time.Now, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating token service: %w", err)
	}

	appInfo, err := NewAppInfoService(cfg.App, buildInfo, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	auth := NewAuthService(
		storages.UserDirectory,
		utils.NewPasswordHasher(cfg.App.PasswordHashCost),
		tokens,
		utils.NewUUIDGenerator(),
		time.Now,
		logger,
	)

	return &Services{
		AuthService:    NewAuthServiceTracingWrapper(otel.GetTracerProvider()).Wrap(auth),
		AppInfoService: appInfo,
	}, nil
}
