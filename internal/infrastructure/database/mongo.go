package database

import (
	"context"
	"fmt"
	"time"

	"doctors-portal-server/config"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const connectTimeout = 10 * time.Second

func NewMongoConnection(cfg config.MongoConfig) (*mongo.Client, *mongo.Database, error) {
	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	logrus.Info("Successfully connected to MongoDB")

	return client, client.Database(cfg.Database), nil
}

// EnsureIndexes creates the indexes the API relies on. The unique compound
// index on bookings closes the check-then-insert race: a concurrent
// duplicate submission fails with a duplicate-key error instead of
// producing a second booking.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	bookingIndex := mongo.IndexModel{
		Keys: bson.D{
			{Key: "treatment", Value: 1},
			{Key: "date", Value: 1},
			{Key: "patient", Value: 1},
		},
		Options: options.Index().SetUnique(true).SetName("uniq_treatment_date_patient"),
	}
	if _, err := db.Collection("bookings").Indexes().CreateOne(ctx, bookingIndex); err != nil {
		return fmt.Errorf("failed to create booking index: %w", err)
	}

	userIndex := mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("uniq_email"),
	}
	if _, err := db.Collection("users").Indexes().CreateOne(ctx, userIndex); err != nil {
		return fmt.Errorf("failed to create user index: %w", err)
	}

	return nil
}
