package repository

import (
	"context"
	"fmt"
	"time"

	"liebrero-server/internal/domain"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const connectTimeout = 10 * time.Second

// ConnectMongo opens the MongoDB connection and verifies it with a ping.
// The returned database handle is shared read-only across repositories.
func ConnectMongo(config domain.Config, logger domain.Logger) (*mongo.Database, error) {
	uri := config.GetMongoURI()
	if uri == "" {
		return nil, fmt.Errorf("MongoDB URI must be provided")
	}

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to create MongoDB client: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, fmt.Errorf("failed to reach MongoDB: %w", err)
	}

	logger.Info("MongoDB connection established", "database", config.GetMongoDatabase())
	return client.Database(config.GetMongoDatabase()), nil
}
