package db

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// DB wraps a mongo.Client scoped to a single database.
// It serves as the main entry point for collection access.
type DB struct {
	client   *mongo.Client
	database string
}

type Config struct {
	// URI is the full connection string, e.g. mongodb://localhost:27017.
	URI string

	Database string

	// Username/Password are optional; when set they override any
	// credentials embedded in the URI (authSource admin).
	Username string
	Password string
}

// New connects to MongoDB with the given configuration and verifies the
// connection with a ping. The caller owns the returned DB and must Close it.
func New(ctx context.Context, cfg Config) (*DB, error) {
	opts := options.Client().ApplyURI(cfg.URI)

	if cfg.Username != "" {
		opts.SetAuth(options.Credential{
			Username:   cfg.Username,
			Password:   cfg.Password,
			AuthSource: "admin",
		})
	}

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("connecting to mongodb: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("pinging mongodb: %w", err)
	}

	return &DB{client: client, database: cfg.Database}, nil
}

func (db *DB) Close(ctx context.Context) error {
	return db.client.Disconnect(ctx)
}

// Collection returns a handle to a named collection in the configured database.
func (db *DB) Collection(name string) *mongo.Collection {
	return db.client.Database(db.database).Collection(name)
}

// Contacts returns the contacts collection.
func (db *DB) Contacts() *mongo.Collection {
	return db.Collection("contacts")
}

// Users returns the users collection.
func (db *DB) Users() *mongo.Collection {
	return db.Collection("users")
}

// AuthTokens returns the auth tokens collection.
func (db *DB) AuthTokens() *mongo.Collection {
	return db.Collection("auth_tokens")
}
