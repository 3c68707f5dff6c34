package models

// MessageResponse is the body of endpoints that only report an outcome,
// e.g. the root endpoint or a successful registration.
type MessageResponse struct {
	Message string `json:"message"`
}

// LoginData carries the issued token inside a [LoginResponse].
type LoginData struct {
	Token string `json:"token"`
}

// LoginResponse is the body returned by a successful login.
type LoginResponse struct {
	Success bool      `json:"success"`
	Message string    `json:"message"`
	Data    LoginData `json:"data"`
}

// ErrorResponse is the body of every failed request. Message is stable for
// a given failure kind so that clients may rely on it.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
