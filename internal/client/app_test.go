package client

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-auth-keeper/internal/logger"
	"github.com/MKhiriev/go-auth-keeper/internal/mock"
	"github.com/MKhiriev/go-auth-keeper/internal/service"
	"github.com/MKhiriev/go-auth-keeper/internal/tui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type stubUI struct {
	err error
}

func (s stubUI) Run(context.Context) error {
	return s.err
}

type cancelUI struct {
	cancel context.CancelFunc
}

func (c cancelUI) Run(context.Context) error {
	c.cancel()
	return errors.New("program was killed")
}

func TestNewApp_Validation(t *testing.T) {
	auth := mock.NewMockClientAuthService(gomock.NewController(t))

	_, err := NewApp(nil, stubUI{}, logger.Nop())
	assert.Error(t, err)

	_, err = NewApp(&service.ClientServices{AuthService: auth}, nil, logger.Nop())
	assert.Error(t, err)

	app, err := NewApp(&service.ClientServices{AuthService: auth}, stubUI{}, logger.Nop())
	require.NoError(t, err)
	assert.NotNil(t, app)
}

func TestApp_Run(t *testing.T) {
	uiErr := errors.New("terminal is gone")

	tests := []struct {
		name    string
		uiErr   error
		wantErr error
	}{
		{name: "normal exit", uiErr: nil},
		{name: "ctrl+c", uiErr: tui.ErrUserQuit},
		{name: "ui failure", uiErr: uiErr, wantErr: uiErr},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			auth := mock.NewMockClientAuthService(gomock.NewController(t))
			auth.EXPECT().Logout()

			app, err := NewApp(&service.ClientServices{AuthService: auth}, stubUI{err: tt.uiErr}, logger.Nop())
			require.NoError(t, err)

			err = app.Run(context.Background())
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestApp_RunCancelled(t *testing.T) {
	auth := mock.NewMockClientAuthService(gomock.NewController(t))
	auth.EXPECT().Logout()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	app, err := NewApp(&service.ClientServices{AuthService: auth}, cancelUI{cancel: cancel}, logger.Nop())
	require.NoError(t, err)

	assert.NoError(t, app.Run(ctx))
}
