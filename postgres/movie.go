package postgres

import (
	"context"
	"fmt"

	"moviecatalog/movie"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// MovieModel represents the database model for movies.
// The cast lives in "starring" since CAST is a reserved word.
type MovieModel struct {
	ID             uint           `gorm:"primaryKey"`
	Title          string         `gorm:"not null"`
	Year           int            `gorm:"not null;default:0"`
	Genre          string         `gorm:"not null;default:''"`
	Rating         float64        `gorm:"not null;default:0"`
	Starring       pq.StringArray `gorm:"type:text[];not null;default:'{}'"`
	Classification string         `gorm:"not null;default:''"`
	Synopsis       string         `gorm:"not null;default:''"`
}

// TableName specifies the table name for GORM
func (MovieModel) TableName() string {
	return "movies"
}

// MovieRepository implements movie.Repository interface
// with PostgreSQL case-insensitive regular expressions.
type MovieRepository struct {
	db *gorm.DB
}

// NewMovieRepository creates a new movie repository
func NewMovieRepository(db *gorm.DB) *MovieRepository {
	return &MovieRepository{db: db}
}

func (r *MovieRepository) SearchByTitle(ctx context.Context, title string) ([]movie.Record, error) {
	var models []MovieModel
	err := r.db.WithContext(ctx).
		Where("title ~* ?", movie.TitlePattern(title)).
		Order("id").
		Find(&models).Error
	if err != nil {
		return nil, movie.StoreUnavailable(fmt.Errorf("postgres: search by title: %w", err))
	}
	return toRecords(models), nil
}

func (r *MovieRepository) SearchByCommonActorCandidates(ctx context.Context, actor1, actor2 string) ([]movie.Record, error) {
	var models []MovieModel
	err := r.db.WithContext(ctx).
		Where("array_to_string(starring, ?) ~* ?", movie.CastSeparator, movie.CandidatePattern(actor1, actor2)).
		Order("id").
		Find(&models).Error
	if err != nil {
		return nil, movie.StoreUnavailable(fmt.Errorf("postgres: search common actors: %w", err))
	}
	return toRecords(models), nil
}

// ImportMovies inserts records in one batch and returns how many were stored.
func (r *MovieRepository) ImportMovies(ctx context.Context, records []movie.Record) (int, error) {
	if len(records) == 0 {
		return 0, nil
	}

	models := make([]MovieModel, len(records))
	for i, rec := range records {
		models[i] = MovieModel{
			Title:          rec.Title,
			Year:           rec.Year,
			Genre:          rec.Genre,
			Rating:         rec.Rating,
			Starring:       pq.StringArray(rec.Cast),
			Classification: movie.NewMovie(rec).Classification,
			Synopsis:       rec.Synopsis,
		}
	}

	res := r.db.WithContext(ctx).Create(&models)
	if res.Error != nil {
		return 0, movie.StoreUnavailable(fmt.Errorf("postgres: insert movies: %w", res.Error))
	}
	return int(res.RowsAffected), nil
}

func toRecords(models []MovieModel) []movie.Record {
	records := make([]movie.Record, len(models))
	for i, model := range models {
		records[i] = movie.Record{
			Title:          model.Title,
			Year:           model.Year,
			Genre:          model.Genre,
			Rating:         model.Rating,
			Cast:           []string(model.Starring),
			Classification: model.Classification,
			Synopsis:       model.Synopsis,
		}
	}
	return records
}
