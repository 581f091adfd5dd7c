package mongodb

import (
	"context"
	"fmt"
	"strings"

	"moviecatalog/movie"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

const (
	fieldTitle = "Título"
	fieldCast  = "Actor Protagonista"
)

// MovieDocument is the stored shape of a catalog record. The cast is kept
// raw because older documents store it as one comma separated string
// instead of an array.
type MovieDocument struct {
	ID             bson.ObjectID `bson:"_id,omitempty"`
	Title          string        `bson:"Título"`
	Year           int           `bson:"Año"`
	Genre          string        `bson:"Género"`
	Rating         float64       `bson:"Puntuación"`
	Cast           bson.RawValue `bson:"Actor Protagonista"`
	Classification interface{}   `bson:"Clasificación"`
	Synopsis       string        `bson:"Sinopsis"`
}

// Record converts the document into a raw catalog record. An array cast is
// taken as is; a string cast is split on movie.CastSeparator.
func (d MovieDocument) Record() (movie.Record, error) {
	cast, err := decodeCast(d.Cast)
	if err != nil {
		return movie.Record{}, err
	}
	return movie.Record{
		Title:          d.Title,
		Year:           d.Year,
		Genre:          d.Genre,
		Rating:         d.Rating,
		Cast:           cast,
		Classification: d.Classification,
		Synopsis:       d.Synopsis,
	}, nil
}

func decodeCast(v bson.RawValue) ([]string, error) {
	if v.Type == 0 || v.Type == bson.TypeNull {
		return []string{}, nil
	}

	if s, ok := v.StringValueOK(); ok {
		cast := []string{}
		for _, name := range strings.Split(s, movie.CastSeparator) {
			if name = strings.TrimSpace(name); name != "" {
				cast = append(cast, name)
			}
		}
		return cast, nil
	}

	arr, ok := v.ArrayOK()
	if !ok {
		return nil, fmt.Errorf("cast has unsupported type %s", v.Type)
	}
	values, err := arr.Values()
	if err != nil {
		return nil, err
	}
	cast := make([]string, len(values))
	for i, e := range values {
		name, ok := e.StringValueOK()
		if !ok {
			return nil, fmt.Errorf("cast entry %d has unsupported type %s", i, e.Type)
		}
		cast[i] = name
	}
	return cast, nil
}

func newMovieDocument(r movie.Record) bson.D {
	cast := r.Cast
	if cast == nil {
		cast = []string{}
	}
	return bson.D{
		{Key: fieldTitle, Value: r.Title},
		{Key: "Año", Value: r.Year},
		{Key: "Género", Value: r.Genre},
		{Key: "Puntuación", Value: r.Rating},
		{Key: fieldCast, Value: cast},
		{Key: "Clasificación", Value: r.Classification},
		{Key: "Sinopsis", Value: r.Synopsis},
	}
}

// MovieRepository implements movie.Repository on a MongoDB collection.
type MovieRepository struct {
	coll *mongo.Collection
}

func NewMovieRepository(db *mongo.Database, collection string) *MovieRepository {
	return &MovieRepository{coll: db.Collection(collection)}
}

func (r *MovieRepository) SearchByTitle(ctx context.Context, title string) ([]movie.Record, error) {
	filter := bson.D{
		{Key: fieldTitle, Value: bson.Regex{Pattern: movie.TitlePattern(title), Options: "i"}},
	}
	return r.find(ctx, filter)
}

func (r *MovieRepository) SearchByCommonActorCandidates(ctx context.Context, actor1, actor2 string) ([]movie.Record, error) {
	filter := bson.D{
		{Key: "$expr", Value: bson.D{
			{Key: "$regexMatch", Value: bson.D{
				{Key: "input", Value: castText()},
				{Key: "regex", Value: movie.CandidatePattern(actor1, actor2)},
				{Key: "options", Value: "i"},
			}},
		}},
	}
	return r.find(ctx, filter)
}

// ImportMovies inserts records as new documents and returns how many were stored.
func (r *MovieRepository) ImportMovies(ctx context.Context, records []movie.Record) (int, error) {
	if len(records) == 0 {
		return 0, nil
	}

	docs := make([]interface{}, len(records))
	for i, rec := range records {
		docs[i] = newMovieDocument(rec)
	}

	res, err := r.coll.InsertMany(ctx, docs)
	if err != nil {
		return 0, movie.StoreUnavailable(fmt.Errorf("mongodb: insert movies: %w", err))
	}
	return len(res.InsertedIDs), nil
}

// find wraps cursor failures in StoreUnavailable. A document that does not
// decode is a data fault and is returned as a plain error.
func (r *MovieRepository) find(ctx context.Context, filter bson.D) ([]movie.Record, error) {
	cur, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, movie.StoreUnavailable(fmt.Errorf("mongodb: find movies: %w", err))
	}
	defer cur.Close(ctx)

	records := []movie.Record{}
	for cur.Next(ctx) {
		var doc MovieDocument
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("mongodb: decode movie: %w", err)
		}
		rec, err := doc.Record()
		if err != nil {
			return nil, fmt.Errorf("mongodb: decode movie %q: %w", doc.Title, err)
		}
		records = append(records, rec)
	}
	if err := cur.Err(); err != nil {
		return nil, movie.StoreUnavailable(fmt.Errorf("mongodb: read movies: %w", err))
	}
	return records, nil
}

// castText renders the cast field as one string: array entries joined with
// movie.CastSeparator, or the stored value when the cast is not an array.
func castText() bson.D {
	path := "$" + fieldCast
	join := bson.D{
		{Key: "$reduce", Value: bson.D{
			{Key: "input", Value: path},
			{Key: "initialValue", Value: ""},
			{Key: "in", Value: bson.D{
				{Key: "$concat", Value: bson.A{
					"$$value",
					bson.D{{Key: "$cond", Value: bson.A{
						bson.D{{Key: "$eq", Value: bson.A{"$$value", ""}}},
						"",
						movie.CastSeparator,
					}}},
					"$$this",
				}},
			}},
		}},
	}

	return bson.D{
		{Key: "$cond", Value: bson.D{
			{Key: "if", Value: bson.D{{Key: "$isArray", Value: path}}},
			{Key: "then", Value: join},
			{Key: "else", Value: bson.D{{Key: "$toString", Value: bson.D{{Key: "$ifNull", Value: bson.A{path, ""}}}}}},
		}},
	}
}
