package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-auth-keeper/internal/config"
	"github.com/MKhiriev/go-auth-keeper/internal/logger"
	"github.com/MKhiriev/go-auth-keeper/models"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
)

const emailIndexName = "email_unique"

// userDocument is the stored shape of a user record. The user id doubles
// as the document _id.
type userDocument struct {
	UserID         string    `bson:"_id"`
	Email          string    `bson:"email"`
	PasswordDigest string    `bson:"password_digest"`
	Name           string    `bson:"name"`
	Age            *int      `bson:"age,omitempty"`
	Address        string    `bson:"address,omitempty"`
	CreatedAt      time.Time `bson:"created_at"`
}

func newUserDocument(u models.User) userDocument {
	return userDocument{
		UserID:         u.UserID,
		Email:          u.Email,
		PasswordDigest: u.PasswordDigest,
		Name:           u.Name,
		Age:            u.Age,
		Address:        u.Address,
		CreatedAt:      u.CreatedAt.UTC(),
	}
}

func (d userDocument) toModel() models.User {
	return models.User{
		UserID:         d.UserID,
		Email:          d.Email,
		PasswordDigest: d.PasswordDigest,
		Name:           d.Name,
		Age:            d.Age,
		Address:        d.Address,
		CreatedAt:      d.CreatedAt,
	}
}

// mongoUserDirectory is the MongoDB-backed implementation of [UserDirectory].
type mongoUserDirectory struct {
	client     *mongo.Client
	collection *mongo.Collection
	logger     *logger.Logger
}

// NewMongoUserDirectory connects to cfg.DSN, checks the connection and
// ensures the unique index on email exists.
func NewMongoUserDirectory(ctx context.Context, cfg config.Directory, log *logger.Logger) (UserDirectory, error) {
	client, err := mongo.Connect(options.Client().ApplyURI(cfg.DSN).SetConnectTimeout(cfg.ConnectTimeout))
	if err != nil {
		log.Err(err).Str("func", "NewMongoUserDirectory").Msg("error creating mongo client")
		return nil, fmt.Errorf("%w: %w", ErrDirectoryUnavailable, err)
	}

	initCtx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
	defer cancel()

	if err = client.Ping(initCtx, readpref.Primary()); err != nil {
		log.Err(err).Str("func", "NewMongoUserDirectory").Msg("error connecting mongo (ping)")
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("%w: %w", ErrDirectoryUnavailable, err)
	}

	collection := client.Database(cfg.Database).Collection(cfg.Collection)
	_, err = collection.Indexes().CreateOne(initCtx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true).SetName(emailIndexName),
	})
	if err != nil {
		log.Err(err).Str("func", "NewMongoUserDirectory").Msg("error creating email index")
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("%w: %w", ErrDirectoryUnavailable, err)
	}

	log.Info().
		Str("func", "NewMongoUserDirectory").
		Str("database", cfg.Database).
		Str("collection", cfg.Collection).
		Msg("connected to mongo successfully")

	return &mongoUserDirectory{client: client, collection: collection, logger: log}, nil
}

func (m *mongoUserDirectory) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	if _, err := m.collection.InsertOne(ctx, newUserDocument(user)); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return models.User{}, ErrEmailAlreadyExists
		}
		logger.FromContext(ctx).Err(err).Str("func", "*mongoUserDirectory.CreateUser").Msg("error inserting user")
		return models.User{}, fmt.Errorf("%w: %w", ErrDirectoryUnavailable, err)
	}

	return user, nil
}

func (m *mongoUserDirectory) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	return m.findOne(ctx, "*mongoUserDirectory.FindUserByEmail", bson.D{{Key: "email", Value: email}})
}

func (m *mongoUserDirectory) FindUserByID(ctx context.Context, userID string) (models.User, error) {
	return m.findOne(ctx, "*mongoUserDirectory.FindUserByID", bson.D{{Key: "_id", Value: userID}})
}

func (m *mongoUserDirectory) findOne(ctx context.Context, funcName string, filter bson.D) (models.User, error) {
	var doc userDocument
	err := m.collection.FindOne(ctx, filter).Decode(&doc)
	switch {
	case errors.Is(err, mongo.ErrNoDocuments):
		return models.User{}, ErrNoUserWasFound
	case err != nil:
		logger.FromContext(ctx).Err(err).Str("func", funcName).Msg("error finding user")
		return models.User{}, fmt.Errorf("%w: %w", ErrDirectoryUnavailable, err)
	}

	return doc.toModel(), nil
}

func (m *mongoUserDirectory) Ping(ctx context.Context) error {
	if err := m.client.Ping(ctx, readpref.Primary()); err != nil {
		return fmt.Errorf("%w: %w", ErrDirectoryUnavailable, err)
	}

	return nil
}

func (m *mongoUserDirectory) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}
