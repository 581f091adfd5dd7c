package dynamodb

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"moviecatalog/movie"

	"github.com/aws/aws-sdk-go-v2/aws"
	awscfg "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const tableWaitTimeout = 2 * time.Minute

// Options configures the DynamoDB client. Endpoint points the client at
// DynamoDB Local or another compatible server.
type Options struct {
	Region       string
	Endpoint     string
	AccessKey    string
	SecretKey    string
	SessionToken string
}

func NewClient(ctx context.Context, opts Options) (*dynamodb.Client, error) {
	loadOpts, err := opts.loadOptions()
	if err != nil {
		return nil, err
	}

	cfg, err := awscfg.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("dynamodb: load aws config: %w", err)
	}

	endpoint := strings.TrimSpace(opts.Endpoint)
	return dynamodb.NewFromConfig(cfg, func(o *dynamodb.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
		}
	}), nil
}

func (opts Options) loadOptions() ([]func(*awscfg.LoadOptions) error, error) {
	region := strings.TrimSpace(opts.Region)
	if region == "" {
		return nil, errors.New("dynamodb: region is required")
	}
	loadOpts := []func(*awscfg.LoadOptions) error{awscfg.WithRegion(region)}

	static := opts.AccessKey != "" || opts.SecretKey != "" || opts.SessionToken != ""
	if !static {
		return loadOpts, nil
	}
	if opts.AccessKey == "" || opts.SecretKey == "" {
		return nil, errors.New("dynamodb: access key and secret key must be set together")
	}
	provider := credentials.NewStaticCredentialsProvider(opts.AccessKey, opts.SecretKey, opts.SessionToken)
	return append(loadOpts, awscfg.WithCredentialsProvider(provider)), nil
}

// EnsureMoviesTable creates the movies table keyed by "id" when it does not
// exist yet and waits until it is active.
func EnsureMoviesTable(ctx context.Context, client *dynamodb.Client, table string) error {
	if err := validateTable(table); err != nil {
		return err
	}

	_, err := client.DescribeTable(ctx, &dynamodb.DescribeTableInput{TableName: aws.String(table)})
	if err == nil {
		return nil
	}
	var notFound *types.ResourceNotFoundException
	if !errors.As(err, &notFound) {
		return movie.StoreUnavailable(fmt.Errorf("dynamodb: describe table: %w", err))
	}

	_, err = client.CreateTable(ctx, moviesTableInput(table))
	if err != nil {
		return movie.StoreUnavailable(fmt.Errorf("dynamodb: create table: %w", err))
	}

	waiter := dynamodb.NewTableExistsWaiter(client)
	err = waiter.Wait(ctx, &dynamodb.DescribeTableInput{TableName: aws.String(table)}, tableWaitTimeout)
	if err != nil {
		return movie.StoreUnavailable(fmt.Errorf("dynamodb: wait for table: %w", err))
	}
	return nil
}

func moviesTableInput(table string) *dynamodb.CreateTableInput {
	return &dynamodb.CreateTableInput{
		TableName:   aws.String(table),
		BillingMode: types.BillingModePayPerRequest,
		AttributeDefinitions: []types.AttributeDefinition{
			{AttributeName: aws.String("id"), AttributeType: types.ScalarAttributeTypeS},
		},
		KeySchema: []types.KeySchemaElement{
			{AttributeName: aws.String("id"), KeyType: types.KeyTypeHash},
		},
	}
}

func validateTable(table string) error {
	if strings.TrimSpace(table) == "" {
		return errors.New("dynamodb: table name is required")
	}
	return nil
}
