// Package mongostore keeps the reservation documents in MongoDB. Multi-document
// changes run inside a snapshot transaction; the driver re-runs the body on
// transient write conflicts.
package mongostore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"campus-reserve/internal/pkg/config"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	collFests         = "fests"
	collEvents        = "events"
	collRegistrations = "registrations"
	collMerch         = "merch"
	collOrders        = "merch_orders"

	codeNamespaceExists = 48
)

func Connect(ctx context.Context, cfg config.MongoConfig) (*mongo.Client, func(), error) {
	ctx, cancel := context.WithTimeout(ctx, cfg.Timeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to mongo: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, nil, fmt.Errorf("failed to ping mongo: %w", err)
	}

	cleanup := func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = client.Disconnect(ctx)
	}
	return client, cleanup, nil
}

// EnsureSchema creates the collections up front (transactions cannot create
// them on older servers) along with the secondary indexes.
func EnsureSchema(ctx context.Context, db *mongo.Database) error {
	for _, name := range []string{collFests, collEvents, collRegistrations, collMerch, collOrders} {
		err := db.CreateCollection(ctx, name)
		var cmdErr mongo.CommandError
		if err != nil && !(errors.As(err, &cmdErr) && cmdErr.Code == codeNamespaceExists) {
			return fmt.Errorf("create collection %s: %w", name, err)
		}
	}

	indexes := map[string][]mongo.IndexModel{
		collEvents: {
			{
				Keys:    bson.D{{Key: "fest_id", Value: 1}, {Key: "starts_at", Value: 1}},
				Options: options.Index().SetName("events_fest_starts_at"),
			},
			{
				Keys:    bson.D{{Key: "organizer_id", Value: 1}, {Key: "starts_at", Value: 1}},
				Options: options.Index().SetName("events_organizer_starts_at"),
			},
		},
		collRegistrations: {
			{
				Keys:    bson.D{{Key: "event_id", Value: 1}, {Key: "registered_at", Value: 1}},
				Options: options.Index().SetName("registrations_event_registered_at"),
			},
		},
		collOrders: {
			{
				Keys:    bson.D{{Key: "merch_id", Value: 1}, {Key: "created_at", Value: -1}, {Key: "_id", Value: -1}},
				Options: options.Index().SetName("orders_merch_created_at"),
			},
		},
	}
	for name, models := range indexes {
		if _, err := db.Collection(name).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("%s indexes: %w", name, err)
		}
	}
	return nil
}
