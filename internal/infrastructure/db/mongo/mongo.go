package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/hotelhub/booking-system/internal/pkg/config"
	"github.com/hotelhub/booking-system/pkg/logger"
)

const connectTimeout = 10 * time.Second

// Connect establishes the MongoDB client backing the reservation audit
// trail and verifies connectivity with a ping. Returns both the client
// (for shutdown) and the selected database.
func Connect(ctx context.Context, cfg config.MongoConfig) (*mongo.Client, *mongo.Database, error) {
	connectCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, nil, fmt.Errorf("mongo connect: %w", err)
	}

	if err := client.Ping(connectCtx, nil); err != nil {
		_ = client.Disconnect(connectCtx)
		return nil, nil, fmt.Errorf("mongo ping: %w", err)
	}

	log := logger.Get()
	log.Info().Str("database", cfg.Database).Msg("connected to mongodb")
	return client, client.Database(cfg.Database), nil
}
