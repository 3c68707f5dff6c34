package server

import "errors"

var (
	errNoServersAreCreated = errors.New("no servers are created")
	errHandlersAreNil      = errors.New("server needs handlers")
)
