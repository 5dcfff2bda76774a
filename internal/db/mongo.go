// Package db manages the MongoDB connection. A missing or unreachable
// database is a degraded state, not a startup failure: the returned handle
// reports Connected()==false and the repository layer turns every operation
// into an empty result.
package db

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/dishaportal/disha-backend/internal/config"
	"github.com/dishaportal/disha-backend/internal/pkg/helpers"
	"github.com/dishaportal/disha-backend/internal/pkg/logger"
)

// Mongo wraps the client and selected database. Both are nil when running
// disconnected.
type Mongo struct {
	Client   *mongo.Client
	Database *mongo.Database
}

// Connect establishes the MongoDB connection described by the configuration.
// An empty URI or a failed ping yields a disconnected handle and no error.
func Connect(ctx context.Context, cfg *config.Config) (*Mongo, error) {
	if cfg.Database.URI == "" {
		logger.Warn().Msg("MONGODB_URI not set, starting in disconnected mode")
		return &Mongo{}, nil
	}

	timeout := helpers.ParseDuration(cfg.Database.Timeout, 5*time.Second)
	connectCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(cfg.Database.URI))
	if err != nil {
		logger.Warn().Err(err).Msg("Failed to connect to MongoDB, starting in disconnected mode")
		return &Mongo{}, nil
	}

	pingCtx, cancelPing := context.WithTimeout(ctx, timeout)
	defer cancelPing()
	if err := client.Ping(pingCtx, nil); err != nil {
		logger.Warn().Err(err).Msg("MongoDB unreachable, starting in disconnected mode")
		_ = client.Disconnect(context.Background())
		return &Mongo{}, nil
	}

	database := client.Database(cfg.Database.Name)
	logger.Info().Str("database", cfg.Database.Name).Msg("Connected to MongoDB")

	m := &Mongo{Client: client, Database: database}
	if err := m.ensureIndexes(ctx); err != nil {
		logger.Error().Err(err).Msg("Failed to ensure indexes, proceeding anyway")
	}
	return m, nil
}

// Connected reports whether a live database handle is available.
func (m *Mongo) Connected() bool {
	return m != nil && m.Database != nil
}

// Close disconnects the client.
func (m *Mongo) Close(ctx context.Context) error {
	if m == nil || m.Client == nil {
		return nil
	}
	return m.Client.Disconnect(ctx)
}

// ensureIndexes creates the unique indexes the data model relies on:
// users.scholar_no and users.email.
func (m *Mongo) ensureIndexes(ctx context.Context) error {
	users := m.Database.Collection("users")
	_, err := users.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "scholar_no", Value: 1}},
			Options: options.Index().SetUnique(true).SetSparse(true),
		},
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	})
	return err
}
