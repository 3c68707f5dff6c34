// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-auth-keeper/internal/logger"
	"github.com/MKhiriev/go-auth-keeper/models"
	sq "github.com/Masterminds/squirrel"
)

var userColumns = []string{"user_id", "email", "password_digest", "name", "age", "address", "created_at"}

// sqlUserDirectory is the SQL-backed implementation of [UserDirectory]. It
// works against the "users" table on PostgreSQL and SQLite; statements are
// built with squirrel using the placeholder format of the connection.
//
// All methods obtain a context-scoped logger via [logger.FromContext].
type sqlUserDirectory struct {
	db      *DB
	builder sq.StatementBuilderType
	logger  *logger.Logger
}

// NewSQLUserDirectory constructs a [UserDirectory] backed by db.
func NewSQLUserDirectory(db *DB, logger *logger.Logger) UserDirectory {
	logger.Debug().Msg("creating sql user directory")
	return &sqlUserDirectory{
		db:      db,
		builder: sq.StatementBuilder.PlaceholderFormat(db.placeholder),
		logger:  logger,
	}
}

// CreateUser inserts a new record.
//
// Error handling:
//   - unique violation on email or user_id → [ErrEmailAlreadyExists]
//   - any other driver-level error → wrapped [ErrDirectoryUnavailable]
func (r *sqlUserDirectory) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.builder.
		Insert(user.TableName()).
		Columns(userColumns...).
		Values(user.UserID, user.Email, user.PasswordDigest, user.Name, nullableAge(user.Age), user.Address, user.CreatedAt).
		ToSql()
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		class := r.db.errorClassificator.Classify(err)
		log.Err(err).
			Str("func", "*sqlUserDirectory.CreateUser").
			Stringer("classification", class).
			Msg("error inserting user")

		if class == UniqueViolation {
			return models.User{}, ErrEmailAlreadyExists
		}
		return models.User{}, fmt.Errorf("%w: %w", ErrDirectoryUnavailable, err)
	}

	return user, nil
}

// FindUserByEmail performs an exact-match lookup on email.
func (r *sqlUserDirectory) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	return r.findOne(ctx, "*sqlUserDirectory.FindUserByEmail", sq.Eq{"email": email})
}

// FindUserByID performs a lookup on the primary key.
func (r *sqlUserDirectory) FindUserByID(ctx context.Context, userID string) (models.User, error) {
	return r.findOne(ctx, "*sqlUserDirectory.FindUserByID", sq.Eq{"user_id": userID})
}

func (r *sqlUserDirectory) findOne(ctx context.Context, funcName string, where sq.Eq) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.builder.
		Select(userColumns...).
		From(models.User{}.TableName()).
		Where(where).
		Limit(1).
		ToSql()
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var (
		user models.User
		age  sql.NullInt64
	)
	err = r.db.QueryRowContext(ctx, query, args...).
		Scan(&user.UserID, &user.Email, &user.PasswordDigest, &user.Name, &age, &user.Address, &user.CreatedAt)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.User{}, ErrNoUserWasFound
	case err != nil:
		log.Err(err).
			Str("func", funcName).
			Stringer("classification", r.db.errorClassificator.Classify(err)).
			Msg("error selecting user")
		return models.User{}, fmt.Errorf("%w: %w: %w", ErrDirectoryUnavailable, ErrScanningRow, err)
	}

	if age.Valid {
		v := int(age.Int64)
		user.Age = &v
	}

	return user, nil
}

func (r *sqlUserDirectory) Ping(ctx context.Context) error {
	if err := r.db.Ping(ctx); err != nil {
		return fmt.Errorf("%w: %w", ErrDirectoryUnavailable, err)
	}

	return nil
}

func (r *sqlUserDirectory) Close(context.Context) error {
	return r.db.Close()
}

func nullableAge(age *int) sql.NullInt64 {
	if age == nil {
		return sql.NullInt64{}
	}

	return sql.NullInt64{Int64: int64(*age), Valid: true}
}
