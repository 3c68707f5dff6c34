package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-auth-keeper/internal/config"
	"github.com/MKhiriev/go-auth-keeper/internal/logger"
	"github.com/MKhiriev/go-auth-keeper/models"
	"github.com/redis/go-redis/v9"
)

const userCacheKeyPrefix = "auth:user"

// cachedUser is the cached form of a record. The digest is included because
// cached records are handed to the same callers as directory records.
type cachedUser struct {
	UserID         string    `json:"user_id"`
	Email          string    `json:"email"`
	PasswordDigest string    `json:"password_digest"`
	Name           string    `json:"name"`
	Age            *int      `json:"age,omitempty"`
	Address        string    `json:"address"`
	CreatedAt      time.Time `json:"created_at"`
}

// cachedUserDirectory decorates a [UserDirectory] with a redis read-through
// cache for FindUserByID, the lookup performed on every authorized request.
// Records are immutable, so entries only expire by TTL.
//
// Redis failures never fail a lookup: they are logged and the call falls
// through to the wrapped directory.
type cachedUserDirectory struct {
	UserDirectory
	redis  *redis.Client
	ttl    time.Duration
	logger *logger.Logger
}

// NewCachedUserDirectory wraps next with a redis cache.
func NewCachedUserDirectory(next UserDirectory, client *redis.Client, ttl time.Duration, log *logger.Logger) UserDirectory {
	return &cachedUserDirectory{
		UserDirectory: next,
		redis:         client,
		ttl:           ttl,
		logger:        log,
	}
}

// NewRedisClient builds a client from cfg and checks the connection.
func NewRedisClient(ctx context.Context, cfg config.Cache) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddress,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("error connecting redis: %w", err)
	}

	return client, nil
}

func (c *cachedUserDirectory) key(userID string) string {
	return userCacheKeyPrefix + ":" + userID
}

func (c *cachedUserDirectory) FindUserByID(ctx context.Context, userID string) (models.User, error) {
	log := logger.FromContext(ctx)

	raw, err := c.redis.Get(ctx, c.key(userID)).Bytes()
	switch {
	case err == nil:
		var cached cachedUser
		if err = json.Unmarshal(raw, &cached); err == nil {
			return models.User(cached), nil
		}
		log.Warn().Err(err).Str("func", "*cachedUserDirectory.FindUserByID").Msg("dropping undecodable cache entry")
	case !errors.Is(err, redis.Nil):
		log.Warn().Err(err).Str("func", "*cachedUserDirectory.FindUserByID").Msg("cache read failed")
	}

	user, err := c.UserDirectory.FindUserByID(ctx, userID)
	if err != nil {
		return models.User{}, err
	}

	c.store(ctx, user)
	return user, nil
}

func (c *cachedUserDirectory) store(ctx context.Context, user models.User) {
	payload, err := json.Marshal(cachedUser(user))
	if err != nil {
		return
	}

	if err = c.redis.Set(ctx, c.key(user.UserID), payload, c.ttl).Err(); err != nil {
		logger.FromContext(ctx).Warn().Err(err).Str("func", "*cachedUserDirectory.store").Msg("cache write failed")
	}
}

// Close closes the redis client and the wrapped directory.
func (c *cachedUserDirectory) Close(ctx context.Context) error {
	return errors.Join(c.redis.Close(), c.UserDirectory.Close(ctx))
}
