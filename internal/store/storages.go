package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-auth-keeper/internal/config"
	"github.com/MKhiriev/go-auth-keeper/internal/logger"
)

// Storages groups the storage components handed to the service layer.
type Storages struct {
	UserDirectory UserDirectory
}

// NewStorages opens the directory selected by cfg.Directory.Driver,
// running migrations for the SQL drivers, and wraps it with the redis
// cache when one is configured.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	log.Info().Str("driver", cfg.Directory.Driver).Msg("creating new storages...")

	directory, err := newUserDirectory(ctx, cfg.Directory, log)
	if err != nil {
		return nil, err
	}

	if cfg.Cache.RedisAddress != "" {
		client, err := NewRedisClient(ctx, cfg.Cache)
		if err != nil {
			_ = directory.Close(ctx)
			return nil, err
		}
		directory = NewCachedUserDirectory(directory, client, cfg.Cache.TTL, log)
		log.Info().Str("address", cfg.Cache.RedisAddress).Dur("ttl", cfg.Cache.TTL).Msg("user cache enabled")
	}

	return &Storages{UserDirectory: directory}, nil
}

func newUserDirectory(ctx context.Context, cfg config.Directory, log *logger.Logger) (UserDirectory, error) {
	switch cfg.Driver {
	case config.DriverMongo:
		return NewMongoUserDirectory(ctx, cfg, log)
	case config.DriverPostgres:
		db, err := NewConnectPostgres(ctx, cfg, log)
		if err != nil {
			return nil, fmt.Errorf("postgres connection error: %w", err)
		}
		return migrateSQL(db, log)
	case config.DriverSQLite:
		db, err := NewConnectSQLite(ctx, cfg, log)
		if err != nil {
			return nil, fmt.Errorf("sqlite connection error: %w", err)
		}
		return migrateSQL(db, log)
	case config.DriverMemory:
		log.Warn().Msg("using in-memory user directory; records are lost on restart")
		return NewMemoryUserDirectory(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, cfg.Driver)
	}
}

func migrateSQL(db *DB, log *logger.Logger) (UserDirectory, error) {
	if err := db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return NewSQLUserDirectory(db, log), nil
}
