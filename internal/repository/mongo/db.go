package mongo

import (
	"context"
	"fmt"
	"time"

	"github.com/Rrens/focusbot/internal/config"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collection names
const (
	usersCollection    = "users"
	chatsCollection    = "chats"
	subjectsCollection = "user_subjects"
)

// DB wraps the mongo client and the application database
type DB struct {
	Client   *mongo.Client
	Database *mongo.Database
}

// NewDB connects to MongoDB and verifies the connection
func NewDB(ctx context.Context, cfg config.MongoConfig) (*DB, error) {
	clientOpts := options.Client().ApplyURI(cfg.URI)
	if cfg.ConnectTimeout > 0 {
		clientOpts.SetConnectTimeout(cfg.ConnectTimeout)
		clientOpts.SetServerSelectionTimeout(cfg.ConnectTimeout)
	}

	client, err := mongo.Connect(ctx, clientOpts)
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping: %w", err)
	}

	return &DB{
		Client:   client,
		Database: client.Database(cfg.Database),
	}, nil
}

// Ping verifies database connectivity
func (db *DB) Ping(ctx context.Context) error {
	return db.Client.Ping(ctx, nil)
}

// Close disconnects the client
func (db *DB) Close(ctx context.Context) error {
	if db.Client == nil {
		return nil
	}
	return db.Client.Disconnect(ctx)
}

// EnsureIndexes creates the indexes the repositories rely on.
// Unique indexes back the duplicate checks for users and subjects.
func (db *DB) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := map[string][]mongo.IndexModel{
		usersCollection: {
			{
				Keys:    bson.D{{Key: "email", Value: 1}},
				Options: options.Index().SetUnique(true),
			},
		},
		subjectsCollection: {
			{
				Keys:    bson.D{{Key: "user", Value: 1}, {Key: "subject", Value: 1}},
				Options: options.Index().SetUnique(true),
			},
		},
		chatsCollection: {
			{
				Keys: bson.D{{Key: "user", Value: 1}, {Key: "timestamp", Value: -1}},
			},
		},
	}

	for name, models := range indexes {
		if _, err := db.Database.Collection(name).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("failed to create indexes on %s: %w", name, err)
		}
	}
	return nil
}
