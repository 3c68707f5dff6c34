// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Variable names understood for compatibility with deployments that only
// export the bare SECRET_KEY and PORT variables.
const (
	legacySecretKeyEnv = "SECRET_KEY"
	legacyPortEnv      = "PORT"

	dotEnvPathEnv = "DOTENV"
	defaultDotEnv = ".env"
)

// parseEnv populates cfg from environment variables using the caarlos0/env
// library. Struct fields are mapped via their `env` and `envPrefix` tags
// defined on [StructuredConfig] and its nested types.
//
// SECRET_KEY and PORT fill the signing key and HTTP address when their
// prefixed counterparts are unset.
func parseEnv(cfg *StructuredConfig) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	if cfg.App.TokenSignKey == "" {
		cfg.App.TokenSignKey = os.Getenv(legacySecretKeyEnv)
	}
	if port := os.Getenv(legacyPortEnv); cfg.Server.HTTPAddress == "" && port != "" {
		cfg.Server.HTTPAddress = ":" + port
	}

	return nil
}

// loadDotEnv exports the variables of the .env file (path taken from DOTENV)
// into the process environment. Variables already set are not overwritten.
// A missing file is not an error.
func loadDotEnv() error {
	path := os.Getenv(dotEnvPathEnv)
	if path == "" {
		path = defaultDotEnv
	}

	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("error loading %s: %w", path, err)
	}

	return nil
}
