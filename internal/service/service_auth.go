// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-auth-keeper/internal/logger"
	"github.com/MKhiriev/go-auth-keeper/internal/store"
	"github.com/MKhiriev/go-auth-keeper/internal/utils"
	"github.com/MKhiriev/go-auth-keeper/internal/validators"
	"github.com/MKhiriev/go-auth-keeper/models"
)

// authService is the concrete implementation of AuthService.
//
// It holds no mutable state: the directory, hasher, token service and
// id generator are all safe for concurrent use, so one instance serves
// every request.
type authService struct {
	// directory is the persistence layer for user records.
	directory store.UserDirectory

	// hasher digests passwords at registration and checks them at login.
	hasher CredentialHasher

	// tokens issues tokens at login and verifies them in Authorize.
	tokens TokenService

	// ids assigns user_id to new records.
	ids IDGenerator

	// now stamps CreatedAt on new records.
	now func() time.Time

	validator validators.Validator

	logger *logger.Logger
}

// NewAuthService constructs an AuthService from its collaborators. A nil
// clock defaults to time.Now.
func NewAuthService(directory store.UserDirectory, hasher CredentialHasher, tokens TokenService, ids IDGenerator, now func() time.Time, logger *logger.Logger) AuthService {
	if now == nil {
		now = time.Now
	}

	return &authService{
		directory: directory,
		hasher:    hasher,
		tokens:    tokens,
		ids:       ids,
		now:       now,
		validator: validators.NewUserValidator(),
		logger:    logger,
	}
}

// Register creates a new user record.
//
// The uniqueness lookup and the insert are not atomic. A concurrent
// registration with the same email that slips past the lookup is rejected
// by the directory's unique index and reported as ErrDuplicateEmail as well.
//
// Returns the stored record or:
//   - ErrValidation if email or password is empty or the password is too long;
//   - ErrDuplicateEmail if the email is already registered;
//   - a wrapped store error if the directory fails.
func (a *authService) Register(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, req); err != nil {
		log.Error().Err(err).Str("email", req.Email).Msg("invalid registration data provided")
		return models.User{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	_, err := a.directory.FindUserByEmail(ctx, req.Email)
	switch {
	case err == nil:
		log.Info().Str("email", req.Email).Msg("email is already registered")
		return models.User{}, ErrDuplicateEmail
	case !errors.Is(err, store.ErrNoUserWasFound):
		log.Err(err).Str("email", req.Email).Msg("error looking up email")
		return models.User{}, fmt.Errorf("error looking up email: %w", err)
	}

	digest, err := a.hasher.Hash(req.Password)
	if err != nil {
		if errors.Is(err, utils.ErrPasswordTooLong) {
			return models.User{}, fmt.Errorf("%w: %w", ErrValidation, err)
		}
		log.Err(err).Msg("error hashing password")
		return models.User{}, fmt.Errorf("error hashing password: %w", err)
	}

	user := models.User{
		UserID:         a.ids.Generate(),
		Email:          req.Email,
		PasswordDigest: digest,
		Name:           req.Name,
		Age:            req.Age,
		Address:        req.Address,
		CreatedAt:      a.now().UTC(),
	}

	created, err := a.directory.CreateUser(ctx, user)
	if err != nil {
		if errors.Is(err, store.ErrEmailAlreadyExists) {
			log.Info().Str("email", req.Email).Msg("email was registered concurrently")
			return models.User{}, fmt.Errorf("%w: %w", ErrDuplicateEmail, err)
		}
		log.Err(err).Str("email", req.Email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	log.Info().Str("user_id", created.UserID).Msg("user registered")
	return created, nil
}

// Login checks credentials and issues a token for the matching record.
//
// A wrong password is always ErrInvalidCredentials, never ErrUserNotFound.
func (a *authService) Login(ctx context.Context, credentials models.Credentials) (models.Token, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, credentials); err != nil {
		log.Error().Err(err).Str("email", credentials.Email).Msg("invalid login data provided")
		return models.Token{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	user, err := a.directory.FindUserByEmail(ctx, credentials.Email)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			log.Info().Str("email", credentials.Email).Msg("login for unknown email")
			return models.Token{}, fmt.Errorf("%w: %w", ErrUserNotFound, err)
		}
		log.Err(err).Str("email", credentials.Email).Msg("error finding user")
		return models.Token{}, fmt.Errorf("error finding user: %w", err)
	}

	if err = a.hasher.Compare(user.PasswordDigest, credentials.Password); err != nil {
		log.Info().Str("user_id", user.UserID).Msg("password mismatch")
		return models.Token{}, fmt.Errorf("%w: %w", ErrInvalidCredentials, err)
	}

	token, err := a.tokens.Issue(ctx, user.UserID)
	if err != nil {
		log.Err(err).Str("user_id", user.UserID).Msg("error issuing token")
		return models.Token{}, err
	}

	return token, nil
}

// Authorize is the gatekeeping check: it verifies rawToken and resolves
// the record named by its subject. A valid token for a user that is no
// longer resolvable is ErrTokenUserNotFound, which callers report as 401.
func (a *authService) Authorize(ctx context.Context, rawToken string) (models.User, error) {
	log := logger.FromContext(ctx)

	if rawToken == "" {
		return models.User{}, ErrMissingToken
	}

	token, err := a.tokens.Verify(ctx, rawToken)
	if err != nil {
		return models.User{}, err
	}

	user, err := a.directory.FindUserByID(ctx, token.UserID)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			log.Warn().Str("user_id", token.UserID).Msg("token subject not found")
			return models.User{}, fmt.Errorf("%w: %w", ErrTokenUserNotFound, err)
		}
		log.Err(err).Str("user_id", token.UserID).Msg("error resolving token subject")
		return models.User{}, fmt.Errorf("error resolving token subject: %w", err)
	}

	return user, nil
}

// Details returns the profile view of user.
func (a *authService) Details(_ context.Context, user models.User) models.Profile {
	return user.Profile()
}
