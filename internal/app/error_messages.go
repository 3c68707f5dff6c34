// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used by the
// go-auth-keeper server handlers and by the client error mapper.
//
// The Msg* constants are the stable message strings written into HTTP
// response bodies. Clients match on them, so the wording must not change
// once released.
package app

// Success messages.
const (
	// MsgAPIAvailable is returned by the root endpoint.
	MsgAPIAvailable = "Success fetching the API"

	// MsgUserRegistered is returned after a record was created.
	MsgUserRegistered = "User registered successfully!"

	// MsgLoginSucceeded accompanies the issued token.
	MsgLoginSucceeded = "Login successful"
)

// Failure messages.
const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded or a required field (email, password) is empty.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgEmailAlreadyExists is returned when registration is attempted with
	// an email that already has a record.
	MsgEmailAlreadyExists = "email already registered"

	// MsgUserNotFound is returned by login when no record has the email.
	MsgUserNotFound = "user not found"

	// MsgInvalidPassword is returned by login when the password does not
	// match the stored digest.
	MsgInvalidPassword = "invalid password"

	// MsgTokenIsMissing is returned when a protected endpoint is called
	// without a token.
	MsgTokenIsMissing = "token is missing"

	// MsgTokenIsExpired is returned when a token is well-formed and signed
	// but its expiry has passed.
	MsgTokenIsExpired = "token is expired"

	// MsgTokenIsInvalid is returned when a token cannot be verified.
	MsgTokenIsInvalid = "token is invalid"

	// MsgTokenUserNotFound is returned when a valid token names a user that
	// is not in the directory.
	MsgTokenUserNotFound = "token user not found"

	// MsgServiceUnavailable is returned when the user directory cannot be
	// reached.
	MsgServiceUnavailable = "service temporarily unavailable"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"
)
