package mongodb

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

type Options struct {
	// URI is a full mongodb:// connection string.
	URI string

	// Database selects the database; empty falls back to "movify".
	Database string
}

const connectTimeout = 10 * time.Second

// NewConnection opens a client, verifies it with a ping and returns the
// selected database. Connection failure is reported here, once, at startup.
func NewConnection(ctx context.Context, opts Options) (*mongo.Database, error) {
	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(opts.URI))
	if err != nil {
		return nil, err
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, err
	}

	if opts.Database == "" {
		opts.Database = "movify"
	}
	return client.Database(opts.Database), nil
}
