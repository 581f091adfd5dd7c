package mongodb

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"moviecatalog/movie"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
)

const defaultTimeout = 10 * time.Second

type Options struct {
	URI     string
	Timeout time.Duration
}

// NewClient connects to MongoDB and pings the primary, so an unreachable
// server is reported here rather than on the first query. Connection
// failures are StoreUnavailable; a missing URI is a configuration error.
func NewClient(ctx context.Context, opts Options) (*mongo.Client, error) {
	uri := strings.TrimSpace(opts.URI)
	if uri == "" {
		return nil, errors.New("mongodb: uri is required")
	}

	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	client, err := mongo.Connect(options.Client().ApplyURI(uri).SetTimeout(timeout))
	if err != nil {
		return nil, movie.StoreUnavailable(fmt.Errorf("mongodb: connect: %w", err))
	}

	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, movie.StoreUnavailable(fmt.Errorf("mongodb: ping: %w", err))
	}

	return client, nil
}
