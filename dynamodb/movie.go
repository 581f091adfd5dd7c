package dynamodb

import (
	"context"
	"fmt"
	"strings"

	"moviecatalog/movie"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
)

// MovieRepository implements movie.Repository on a DynamoDB table.
// DynamoDB has no regular expressions, so every item carries lowercased
// copies of its title and joined cast for contains() filters.
type MovieRepository struct {
	client *dynamodb.Client
	table  string
}

type movieItem struct {
	ID             string   `dynamodbav:"id"`
	Title          string   `dynamodbav:"title"`
	TitleLower     string   `dynamodbav:"title_lower"`
	Year           int      `dynamodbav:"year"`
	Genre          string   `dynamodbav:"genre"`
	Rating         float64  `dynamodbav:"rating"`
	Cast           []string `dynamodbav:"cast"`
	CastLower      string   `dynamodbav:"cast_lower"`
	Classification string   `dynamodbav:"classification"`
	Synopsis       string   `dynamodbav:"synopsis"`
}

func NewMovieRepository(client *dynamodb.Client, table string) *MovieRepository {
	return &MovieRepository{
		client: client,
		table:  table,
	}
}

func (r *MovieRepository) SearchByTitle(ctx context.Context, title string) ([]movie.Record, error) {
	if err := validateTable(r.table); err != nil {
		return nil, err
	}
	return r.scan(ctx, titleScanInput(r.table, title))
}

// SearchByCommonActorCandidates requires both fragments somewhere in the
// cast, in any order. This admits at least everything A.*B|B.*A does.
func (r *MovieRepository) SearchByCommonActorCandidates(ctx context.Context, actor1, actor2 string) ([]movie.Record, error) {
	if err := validateTable(r.table); err != nil {
		return nil, err
	}
	return r.scan(ctx, candidateScanInput(r.table, actor1, actor2))
}

// ImportMovies creates the table if needed, then puts one item per record
// and returns how many were stored.
func (r *MovieRepository) ImportMovies(ctx context.Context, records []movie.Record) (int, error) {
	if err := EnsureMoviesTable(ctx, r.client, r.table); err != nil {
		return 0, err
	}

	for i, rec := range records {
		av, err := attributevalue.MarshalMap(newMovieItem(rec))
		if err != nil {
			return i, fmt.Errorf("dynamodb: marshal movie: %w", err)
		}

		_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
			TableName: &r.table,
			Item:      av,
		})
		if err != nil {
			return i, movie.StoreUnavailable(fmt.Errorf("dynamodb: put movie: %w", err))
		}
	}

	return len(records), nil
}

func (r *MovieRepository) scan(ctx context.Context, input *dynamodb.ScanInput) ([]movie.Record, error) {
	records := []movie.Record{}
	paginator := dynamodb.NewScanPaginator(r.client, input)
	for paginator.HasMorePages() {
		out, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, movie.StoreUnavailable(fmt.Errorf("dynamodb: scan movies: %w", err))
		}

		page, err := decodeItems(out.Items)
		if err != nil {
			return nil, err
		}
		records = append(records, page...)
	}

	return records, nil
}

// decodeItems converts scanned items to records. A malformed item is a data
// error, not StoreUnavailable.
func decodeItems(items []map[string]types.AttributeValue) ([]movie.Record, error) {
	var decoded []movieItem
	if err := attributevalue.UnmarshalListOfMaps(items, &decoded); err != nil {
		return nil, fmt.Errorf("dynamodb: unmarshal movies: %w", err)
	}
	records := make([]movie.Record, len(decoded))
	for i, item := range decoded {
		records[i] = item.record()
	}
	return records, nil
}

func newMovieItem(r movie.Record) movieItem {
	m := movie.NewMovie(r)
	return movieItem{
		ID:             uuid.NewString(),
		Title:          m.Title,
		TitleLower:     strings.ToLower(m.Title),
		Year:           m.Year,
		Genre:          m.Genre,
		Rating:         m.Rating,
		Cast:           m.Cast,
		CastLower:      strings.ToLower(strings.Join(m.Cast, movie.CastSeparator)),
		Classification: m.Classification,
		Synopsis:       m.Synopsis,
	}
}

func (i movieItem) record() movie.Record {
	return movie.Record{
		Title:          i.Title,
		Year:           i.Year,
		Genre:          i.Genre,
		Rating:         i.Rating,
		Cast:           i.Cast,
		Classification: i.Classification,
		Synopsis:       i.Synopsis,
	}
}

// titleScanInput scans the whole table when title is empty, matching the
// regex adapters where an empty pattern matches everything.
func titleScanInput(table, title string) *dynamodb.ScanInput {
	input := &dynamodb.ScanInput{TableName: aws.String(table)}

	q := strings.ToLower(title)
	if q == "" {
		return input
	}

	input.FilterExpression = aws.String("contains(title_lower, :q)")
	input.ExpressionAttributeValues = map[string]types.AttributeValue{
		":q": &types.AttributeValueMemberS{Value: q},
	}
	return input
}

func candidateScanInput(table, actor1, actor2 string) *dynamodb.ScanInput {
	input := &dynamodb.ScanInput{TableName: aws.String(table)}

	var conds []string
	values := map[string]types.AttributeValue{}
	for i, actor := range []string{actor1, actor2} {
		a := strings.ToLower(actor)
		if a == "" {
			continue
		}
		key := fmt.Sprintf(":a%d", i+1)
		conds = append(conds, fmt.Sprintf("contains(cast_lower, %s)", key))
		values[key] = &types.AttributeValueMemberS{Value: a}
	}
	if len(conds) == 0 {
		return input
	}

	input.FilterExpression = aws.String(strings.Join(conds, " AND "))
	input.ExpressionAttributeValues = values
	return input
}
