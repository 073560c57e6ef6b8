package kv

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	mongoConnectTimeout = 10 * time.Second
	mongoCallTimeout    = 10 * time.Second
	collectionKV        = "kv"
)

// MongoOptions captures the minimal settings required to establish a MongoDB
// connection.
type MongoOptions struct {
	URI      string
	Database string
	Timeout  time.Duration
}

// ConnectMongo establishes a MongoDB client, verifies connectivity with a
// ping, and returns both the client and the selected database.
func ConnectMongo(ctx context.Context, opts MongoOptions) (*mongo.Client, *mongo.Database, error) {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = mongoConnectTimeout
	}

	connectCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(opts.URI))
	if err != nil {
		return nil, nil, fmt.Errorf("mongo connect: %w", err)
	}

	if err := client.Ping(connectCtx, nil); err != nil {
		_ = client.Disconnect(connectCtx)
		return nil, nil, fmt.Errorf("mongo ping: %w", err)
	}

	return client, client.Database(opts.Database), nil
}

type kvDocument struct {
	Key   string `bson:"_id"`
	Value string `bson:"value"`
}

// Mongo adapts a MongoDB collection of {_id, value} documents to the
// key/value port.
type Mongo struct {
	client *mongo.Client
	col    *mongo.Collection
}

func NewMongo(client *mongo.Client, db *mongo.Database) *Mongo {
	return &Mongo{client: client, col: db.Collection(collectionKV)}
}

func (m *Mongo) Get(ctx context.Context, key string) (string, bool, error) {
	ctx, cancel := context.WithTimeout(ctx, mongoCallTimeout)
	defer cancel()

	var doc kvDocument
	err := m.col.FindOne(ctx, bson.M{"_id": key}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return doc.Value, true, nil
}

func (m *Mongo) Set(ctx context.Context, key, value string) error {
	ctx, cancel := context.WithTimeout(ctx, mongoCallTimeout)
	defer cancel()

	_, err := m.col.ReplaceOne(ctx,
		bson.M{"_id": key},
		kvDocument{Key: key, Value: value},
		options.Replace().SetUpsert(true))
	return err
}

func (m *Mongo) Delete(ctx context.Context, key string) error {
	ctx, cancel := context.WithTimeout(ctx, mongoCallTimeout)
	defer cancel()

	_, err := m.col.DeleteOne(ctx, bson.M{"_id": key})
	return err
}

func (m *Mongo) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), mongoCallTimeout)
	defer cancel()
	return m.client.Disconnect(ctx)
}
