package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-auth-keeper/internal/logger"
	"github.com/MKhiriev/go-auth-keeper/internal/service"
)

// UI is the interactive front end driven by [App].
type UI interface {
	Run(ctx context.Context) error
}

type App struct {
	services *service.ClientServices
	ui       UI
	logger   *logger.Logger
}

func NewApp(services *service.ClientServices, ui UI, logger *logger.Logger) (*App, error) {
	if services == nil || services.AuthService == nil {
		return nil, errors.New("client: services are required")
	}
	if ui == nil {
		return nil, errors.New("client: ui is required")
	}

	return &App{services: services, ui: ui, logger: logger}, nil
}

// Run blocks until the UI exits. Quitting with Ctrl+C is a normal exit; the
// token held by the session is dropped either way.
func (a *App) Run(ctx context.Context) error {
	defer a.services.AuthService.Logout()

	a.logger.Info().Msg("client started")
	err := a.ui.Run(ctx)
	switch {
	case err == nil, errors.Is(err, errUserQuit):
		a.logger.Info().Msg("client stopped")
		return nil
	case ctx.Err() != nil:
		a.logger.Info().Msg("client interrupted")
		return nil
	default:
		return fmt.Errorf("ui: %w", err)
	}
}
