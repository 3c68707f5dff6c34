// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// validate checks that the final merged [StructuredConfig] can start the
// server. A missing signing key is fatal: no token could be issued or
// verified without it.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.TokenSignKey == "" {
		return ErrMissingTokenSignKey
	}

	if cost := cfg.App.PasswordHashCost; cost != 0 && (cost < bcrypt.MinCost || cost > bcrypt.MaxCost) {
		return fmt.Errorf("%w: password hash cost %d out of range [%d, %d]",
			ErrInvalidAppConfigs, cost, bcrypt.MinCost, bcrypt.MaxCost)
	}

	dir := cfg.Storage.Directory
	switch dir.Driver {
	case DriverMemory:
	case DriverMongo, DriverPostgres, DriverSQLite:
		if dir.DSN == "" {
			return fmt.Errorf("%w: empty DSN for driver %q", ErrInvalidStorageConfigs, dir.Driver)
		}
	default:
		return fmt.Errorf("%w: unknown directory driver %q", ErrInvalidStorageConfigs, dir.Driver)
	}

	if cfg.Storage.Cache.RedisAddress != "" && cfg.Storage.Cache.TTL <= 0 {
		return fmt.Errorf("%w: non-positive cache ttl", ErrInvalidStorageConfigs)
	}

	if cfg.Server.HTTPAddress == "" && cfg.Server.GRPCAddress == "" {
		return ErrInvalidServerConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	return nil
}
