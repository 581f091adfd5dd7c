package postgres_test

import (
	"context"
	"testing"

	"moviecatalog/movie"
	"moviecatalog/postgres"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var catalog = []movie.Record{
	{Title: "Heat", Year: 1995, Genre: "Crime", Rating: 8.3, Cast: []string{"Robert De Niro", "Al Pacino"}, Classification: "R", Synopsis: "A heist crew and a detective."},
	{Title: "Righteous Kill", Year: 2008, Genre: "Crime", Rating: 6, Cast: []string{"Al Pacino", "Robert De Niro"}, Classification: 18, Synopsis: "Two veteran detectives."},
	{Title: "Scarface", Year: 1983, Genre: "Drama", Rating: 8.3, Cast: []string{"Al Pacino"}, Classification: "R", Synopsis: "A Cuban refugee rises."},
}

func TestMovieRepository_SearchByTitle(t *testing.T) {
	// Arrange - Setup shared database container and connection
	dbName, dbUser, dbPass := "movie_title_test", "testuser", "testpass"
	db := CreateConnection(t, dbName, dbUser, dbPass)
	MigrateTestDatabase(t, db, "../migrations")
	repo := postgres.NewMovieRepository(db)
	mustImportMovies(t, repo, catalog)

	t.Run("matches case-insensitive substring", func(t *testing.T) {
		// Act
		records, err := repo.SearchByTitle(context.Background(), "heat")

		// Assert
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, "Heat", records[0].Title)
		assert.Equal(t, []string{"Robert De Niro", "Al Pacino"}, records[0].Cast)
		assert.Equal(t, 8.3, records[0].Rating)
	})

	t.Run("empty title matches all in insertion order", func(t *testing.T) {
		// Act
		records, err := repo.SearchByTitle(context.Background(), "")

		// Assert
		require.NoError(t, err)
		assert.Equal(t, []string{"Heat", "Righteous Kill", "Scarface"}, recordTitles(records))
	})

	t.Run("stores integer classification as text", func(t *testing.T) {
		// Act
		records, err := repo.SearchByTitle(context.Background(), "KILL")

		// Assert
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, "18", records[0].Classification)
	})
}

func TestMovieRepository_SearchByCommonActorCandidates(t *testing.T) {
	// Arrange
	dbName, dbUser, dbPass := "movie_common_test", "testuser", "testpass"
	db := CreateConnection(t, dbName, dbUser, dbPass)
	MigrateTestDatabase(t, db, "../migrations")
	repo := postgres.NewMovieRepository(db)
	mustImportMovies(t, repo, catalog)

	t.Run("matches both cast orders", func(t *testing.T) {
		// Act
		records, err := repo.SearchByCommonActorCandidates(context.Background(), "al pacino", "robert de niro")

		// Assert
		require.NoError(t, err)
		assert.Equal(t, []string{"Heat", "Righteous Kill"}, recordTitles(records))
	})

	t.Run("verified search drops fragments", func(t *testing.T) {
		// Act
		movies, err := movie.NewUsecase(repo).FindCommon(context.Background(), "Al", "Robert")

		// Assert
		require.NoError(t, err)
		assert.Empty(t, movies)
	})

	t.Run("fails with closed database connection", func(t *testing.T) {
		// Arrange
		mustCloseDBConnection(db)

		// Act
		_, err := repo.SearchByCommonActorCandidates(context.Background(), "a", "b")

		// Assert
		assert.True(t, movie.IsStoreUnavailable(err))
	})
}

func mustImportMovies(t *testing.T, repo *postgres.MovieRepository, records []movie.Record) {
	t.Helper()
	n, err := repo.ImportMovies(context.Background(), records)
	require.NoError(t, err)
	require.Equal(t, len(records), n)
}

func mustCloseDBConnection(db *gorm.DB) {
	sqlDB, _ := db.DB()
	sqlDB.Close()
}

func recordTitles(records []movie.Record) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.Title
	}
	return out
}
