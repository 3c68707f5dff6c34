// Package tui implements the terminal interface of the auth client.
package tui

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-auth-keeper/internal/logger"
	"github.com/MKhiriev/go-auth-keeper/internal/service"
	"github.com/MKhiriev/go-auth-keeper/models"
	tea "github.com/charmbracelet/bubbletea"
)

var ErrUserQuit = errors.New("user quit")

type TUI struct {
	services  *service.ClientServices
	buildInfo models.AppBuildInfo
	logger    *logger.Logger

	// options are passed to every program; tests swap input and output.
	options []tea.ProgramOption
}

func New(services *service.ClientServices, buildInfo models.AppBuildInfo, logger *logger.Logger) (*TUI, error) {
	if services == nil || services.AuthService == nil {
		return nil, errors.New("tui: client auth service is required")
	}
	return &TUI{
		services:  services,
		buildInfo: buildInfo,
		logger:    logger,
		options:   []tea.ProgramOption{tea.WithAltScreen()},
	}, nil
}

// Run shows the menu and blocks until the user quits. Ctrl+C is reported as
// [ErrUserQuit].
func (t *TUI) Run(ctx context.Context) error {
	root := NewRootModel(t.pages(ctx), pageMenu, t.buildInfo)

	options := append([]tea.ProgramOption{tea.WithContext(ctx)}, t.options...)
	finalModel, err := tea.NewProgram(root, options...).Run()
	if err != nil {
		return err
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitByUser {
		t.logger.Info().Msg("user interrupted the client")
		return ErrUserQuit
	}

	return nil
}

func (t *TUI) pages(ctx context.Context) map[string]tea.Model {
	auth := t.services.AuthService
	return map[string]tea.Model{
		pageMenu:     NewMenuModel(),
		pageRegister: NewRegisterModel(ctx, auth),
		pageLogin:    NewLoginModel(ctx, auth),
		pageProfile:  NewProfileModel(ctx, auth),
	}
}
