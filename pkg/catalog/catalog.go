package catalog

import (
	"context"
	"fmt"
	"strconv"

	"moviecatalog/dynamodb"
	"moviecatalog/mongodb"
	"moviecatalog/movie"
	"moviecatalog/pkg/config"
	"moviecatalog/postgres"
)

// Store is a catalog repository that can also be seeded.
type Store interface {
	movie.Repository
	movie.Importer
}

// Open connects to the store named by cfg.DB.Driver. The returned func
// releases the connection. The adapters report unreachable stores as
// StoreUnavailable; configuration mistakes come back as plain errors.
func Open(ctx context.Context, cfg *config.Config) (Store, func() error, error) {
	switch cfg.DB.Driver {
	case config.DriverMongoDB, "":
		client, err := mongodb.NewClient(ctx, mongodb.Options{
			URI:     cfg.Mongo.URI,
			Timeout: cfg.Mongo.Timeout,
		})
		if err != nil {
			return nil, nil, err
		}
		repo := mongodb.NewMovieRepository(client.Database(cfg.Mongo.Database), cfg.Mongo.Collection)
		return repo, func() error { return client.Disconnect(context.Background()) }, nil

	case config.DriverPostgres:
		db, err := postgres.NewConnection(postgres.Options{
			DBName:   cfg.DB.Name,
			DBUser:   cfg.DB.User,
			Password: cfg.DB.Pass,
			Host:     cfg.DB.Host,
			Port:     strconv.Itoa(cfg.DB.Port),
			SSLMode:  cfg.DB.EnableSSL,

			MaxOpenConns: cfg.DB.MaxConns,
		})
		if err != nil {
			return nil, nil, err
		}
		sqlDB, err := db.DB()
		if err != nil {
			return nil, nil, fmt.Errorf("postgres: get db instance: %w", err)
		}
		return postgres.NewMovieRepository(db), sqlDB.Close, nil

	case config.DriverDynamoDB:
		client, err := dynamodb.NewClient(ctx, dynamodb.Options{
			Region:       cfg.DynamoDB.Region,
			Endpoint:     cfg.DynamoDB.Endpoint,
			AccessKey:    cfg.DynamoDB.AccessKey,
			SecretKey:    cfg.DynamoDB.SecretKey,
			SessionToken: cfg.DynamoDB.SessionToken,
		})
		if err != nil {
			return nil, nil, err
		}
		repo := dynamodb.NewMovieRepository(client, cfg.DynamoDB.MoviesTable)
		return repo, func() error { return nil }, nil
	}

	return nil, nil, fmt.Errorf("catalog: unsupported driver %q", cfg.DB.Driver)
}
