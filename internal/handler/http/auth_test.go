package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/MKhiriev/go-auth-keeper/internal/app"
	"github.com/MKhiriev/go-auth-keeper/internal/service"
	"github.com/MKhiriev/go-auth-keeper/internal/store"
	"github.com/MKhiriev/go-auth-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func intPtr(v int) *int { return &v }

// ─────────────────────────────────────────────
// POST /auth/register
// ─────────────────────────────────────────────

func TestRegister_Success(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"lowercase keys", `{"email":"a@x.com","password":"p1","name":"A","age":30,"address":"X"}`},
		{"capitalised keys", `{"Email":"a@x.com","Password":"p1","Name":"A","Age":30,"Address":"X"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, m := newMockedRouter(t)
			want := models.RegisterRequest{Email: "a@x.com", Password: "p1", Name: "A", Age: intPtr(30), Address: "X"}

			m.auth.EXPECT().Register(gomock.Any(), want).Return(models.User{UserID: "u-1", Email: "a@x.com"}, nil)

			rr := doRequest(t, router, http.MethodPost, "/auth/register", tt.body, nil)

			require.Equal(t, http.StatusCreated, rr.Code)
			var resp models.MessageResponse
			require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
			assert.Equal(t, app.MsgUserRegistered, resp.Message)
		})
	}
}

func TestRegister_Failures(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		serviceErr  error
		wantStatus  int
		wantMessage string
	}{
		{
			name:        "empty email or password",
			body:        `{"email":"","password":"p1"}`,
			serviceErr:  service.ErrValidation,
			wantStatus:  http.StatusBadRequest,
			wantMessage: app.MsgInvalidDataProvided,
		},
		{
			name:        "duplicate found on lookup",
			body:        `{"email":"a@x.com","password":"p1"}`,
			serviceErr:  service.ErrDuplicateEmail,
			wantStatus:  http.StatusBadRequest,
			wantMessage: app.MsgEmailAlreadyExists,
		},
		{
			name:        "duplicate rejected by unique index",
			body:        `{"email":"a@x.com","password":"p1"}`,
			serviceErr:  fmt.Errorf("%w: %w", service.ErrDuplicateEmail, store.ErrEmailAlreadyExists),
			wantStatus:  http.StatusBadRequest,
			wantMessage: app.MsgEmailAlreadyExists,
		},
		{
			name:        "directory unavailable",
			body:        `{"email":"a@x.com","password":"p1"}`,
			serviceErr:  fmt.Errorf("lookup email: %w", store.ErrDirectoryUnavailable),
			wantStatus:  http.StatusServiceUnavailable,
			wantMessage: app.MsgServiceUnavailable,
		},
		{
			name:        "unexpected error",
			body:        `{"email":"a@x.com","password":"p1"}`,
			serviceErr:  errors.New("boom"),
			wantStatus:  http.StatusInternalServerError,
			wantMessage: app.MsgInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, m := newMockedRouter(t)
			m.auth.EXPECT().Register(gomock.Any(), gomock.Any()).Return(models.User{}, tt.serviceErr)

			rr := doRequest(t, router, http.MethodPost, "/auth/register", tt.body, nil)

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantMessage, decodeErrorResponse(t, rr).Message)
		})
	}
}

func TestRegister_BadJSONNeverReachesService(t *testing.T) {
	for _, body := range []string{"", "{", "not json", `{"email": 5}`} {
		t.Run(body, func(t *testing.T) {
			router, _ := newMockedRouter(t)

			rr := doRequest(t, router, http.MethodPost, "/auth/register", body, nil)

			assert.Equal(t, http.StatusBadRequest, rr.Code)
			assert.Equal(t, app.MsgInvalidDataProvided, decodeErrorResponse(t, rr).Message)
		})
	}
}

// ─────────────────────────────────────────────
// POST /auth/login
// ─────────────────────────────────────────────

func TestLogin_Success(t *testing.T) {
	router, m := newMockedRouter(t)
	creds := models.Credentials{Email: "a@x.com", Password: "p1"}

	m.auth.EXPECT().Login(gomock.Any(), creds).Return(models.Token{SignedString: "tok", UserID: "u-1"}, nil)

	rr := doRequest(t, router, http.MethodPost, "/auth/login", `{"Email":"a@x.com","Password":"p1"}`, nil)

	require.Equal(t, http.StatusOK, rr.Code)
	var resp models.LoginResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.True(t, resp.Success)
	assert.Equal(t, app.MsgLoginSucceeded, resp.Message)
	assert.Equal(t, "tok", resp.Data.Token)
}

func TestLogin_Failures(t *testing.T) {
	tests := []struct {
		name        string
		serviceErr  error
		wantStatus  int
		wantMessage string
	}{
		{"missing fields", service.ErrValidation, http.StatusBadRequest, app.MsgInvalidDataProvided},
		{"unknown email", fmt.Errorf("%w: %w", service.ErrUserNotFound, store.ErrNoUserWasFound), http.StatusNotFound, app.MsgUserNotFound},
		{"wrong password", service.ErrInvalidCredentials, http.StatusUnauthorized, app.MsgInvalidPassword},
		{"token signing failed", fmt.Errorf("%w: empty subject", service.ErrTokenCreationFailed), http.StatusInternalServerError, app.MsgInternalServerError},
		{"directory unavailable", fmt.Errorf("%w: timeout", store.ErrDirectoryUnavailable), http.StatusServiceUnavailable, app.MsgServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, m := newMockedRouter(t)
			m.auth.EXPECT().Login(gomock.Any(), gomock.Any()).Return(models.Token{}, tt.serviceErr)

			rr := doRequest(t, router, http.MethodPost, "/auth/login", `{"email":"a@x.com","password":"p1"}`, nil)

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantMessage, decodeErrorResponse(t, rr).Message)
		})
	}
}

func TestLogin_BadJSON(t *testing.T) {
	router, _ := newMockedRouter(t)

	rr := doRequest(t, router, http.MethodPost, "/auth/login", `{"email":`, nil)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, app.MsgInvalidDataProvided, decodeErrorResponse(t, rr).Message)
}
