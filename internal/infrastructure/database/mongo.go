package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoDBClient wraps the driver client with the application database handle.
type MongoDBClient struct {
	client *mongo.Client
	db     *mongo.Database
}

// NewMongoDBClient connects to MongoDB and pings it before returning.
func NewMongoDBClient(ctx context.Context, uri, dbName string) (*MongoDBClient, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}
	return &MongoDBClient{client: client, db: client.Database(dbName)}, nil
}

// Database returns the application database handle.
func (c *MongoDBClient) Database() *mongo.Database {
	return c.db
}

// Collection returns a collection handle by name.
func (c *MongoDBClient) Collection(name string) *mongo.Collection {
	return c.db.Collection(name)
}

// Disconnect closes the underlying client.
func (c *MongoDBClient) Disconnect(ctx context.Context) error {
	return c.client.Disconnect(ctx)
}

// EnsureIndexes creates the indexes the repositories rely on. Tag uniqueness
// on (name, kind) is what turns concurrent duplicate creations into E11000
// write errors instead of silent duplicates.
func (c *MongoDBClient) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := c.Collection("users").Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "username", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "membership_status", Value: 1}},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to create user indexes: %w", err)
	}

	_, err = c.Collection("tags").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "name", Value: 1}, {Key: "kind", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("failed to create tag index: %w", err)
	}

	for _, coll := range []string{"posts", "projects"} {
		_, err = c.Collection(coll).Indexes().CreateMany(ctx, []mongo.IndexModel{
			{
				Keys: bson.D{{Key: "tags", Value: 1}},
			},
			{
				Keys: bson.D{{Key: "created_at", Value: -1}},
			},
		})
		if err != nil {
			return fmt.Errorf("failed to create %s indexes: %w", coll, err)
		}
	}

	_, err = c.Collection("comments").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "parent.kind", Value: 1},
			{Key: "parent.id", Value: 1},
			{Key: "created_at", Value: -1},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to create comment index: %w", err)
	}
	return nil
}
