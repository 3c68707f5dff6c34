package service

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-auth-keeper/internal/config"
	"github.com/MKhiriev/go-auth-keeper/internal/logger"
	"github.com/MKhiriev/go-auth-keeper/models"
)

type appInfoService struct {
	version string
}

// NewAppInfoService reports cfg.Version when set and the linked build
// version otherwise. It fails when neither is known.
func NewAppInfoService(cfg config.App, buildInfo models.AppBuildInfo, logger *logger.Logger) (AppInfoService, error) {
	version := strings.TrimSpace(cfg.Version)
	if version == "" {
		version = buildInfo.BuildVersion()
	}
	if version == "" || version == models.NotAvailable {
		logger.Error().Msg("neither APP_VERSION nor the build version is set")
		return nil, ErrVersionIsNotSpecified
	}

	logger.Info().Str("version", version).Msg("app info service created")
	return &appInfoService{version: version}, nil
}

func (s *appInfoService) GetAppVersion(context.Context) string {
	return s.version
}
