package main

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"moviecatalog/errs"
	"moviecatalog/movie"
	"moviecatalog/pkg/jwt"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockMovieService struct {
	mock.Mock
}

func (m *MockMovieService) FindByTitle(ctx context.Context, title string) ([]movie.Movie, error) {
	args := m.Called(ctx, title)
	return args.Get(0).([]movie.Movie), args.Error(1)
}

func (m *MockMovieService) FindCommon(ctx context.Context, actor1, actor2 string) ([]movie.Movie, error) {
	args := m.Called(ctx, actor1, actor2)
	return args.Get(0).([]movie.Movie), args.Error(1)
}

func newTestApp(svc movie.Service) (*App, *bytes.Buffer, *bool) {
	out := new(bytes.Buffer)
	closed := false
	app := &App{
		Out: out,
		Open: func(ctx context.Context) (movie.Service, func() error, error) {
			return svc, func() error { closed = true; return nil }, nil
		},
	}
	return app, out, &closed
}

var heat = movie.Movie{
	Title:          "Heat",
	Year:           1995,
	Genre:          "Crime",
	Rating:         8.3,
	Cast:           []string{"Al Pacino", "Robert De Niro"},
	Classification: "16",
	Synopsis:       "Bank robbers.",
}

func TestTitleCommand(t *testing.T) {
	svc := new(MockMovieService)
	svc.On("FindByTitle", mock.Anything, "heat").Return([]movie.Movie{heat}, nil).Once()
	app, out, closed := newTestApp(svc)

	err := app.Command().Run(context.Background(), []string{"catalog", "title", "  heat "})

	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "Título"))
	assert.Contains(t, lines[0], "Sinopsis")
	assert.Contains(t, lines[1], "Al Pacino, Robert De Niro")
	assert.Contains(t, lines[1], "8.3")
	assert.True(t, *closed)
	svc.AssertExpectations(t)
}

func TestCommonCommand(t *testing.T) {
	svc := new(MockMovieService)
	svc.On("FindCommon", mock.Anything, "Al Pacino", "Robert De Niro").Return([]movie.Movie{heat}, nil).Once()
	app, out, _ := newTestApp(svc)

	err := app.Command().Run(context.Background(), []string{"catalog", "common", "Al Pacino", "Robert De Niro"})

	require.NoError(t, err)
	assert.Contains(t, out.String(), "Heat")
	svc.AssertExpectations(t)
}

func TestCommand_NoMoviesFound(t *testing.T) {
	svc := new(MockMovieService)
	svc.On("FindCommon", mock.Anything, "Al Pacino", "Nobody").Return([]movie.Movie{}, nil).Once()
	app, out, _ := newTestApp(svc)

	err := app.Command().Run(context.Background(), []string{"catalog", "common", "Al Pacino", "Nobody"})

	require.NoError(t, err)
	assert.Equal(t, "no movies found\n", out.String())
}

func TestCommand_RejectsBlankInput(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "missing title", args: []string{"catalog", "title"}},
		{name: "blank title", args: []string{"catalog", "title", "   "}},
		{name: "missing second actor", args: []string{"catalog", "common", "Al Pacino"}},
		{name: "blank first actor", args: []string{"catalog", "common", " ", "Al Pacino"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockMovieService)
			app, _, _ := newTestApp(svc)

			err := app.Command().Run(context.Background(), tt.args)

			require.Error(t, err)
			assert.True(t, errors.Is(err, movie.ErrInvalidQuery))
			assert.Equal(t, exitInvalid, exitCode(err))
			svc.AssertNotCalled(t, "FindByTitle", mock.Anything, mock.Anything)
			svc.AssertNotCalled(t, "FindCommon", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestCommand_StoreUnavailable(t *testing.T) {
	svc := new(MockMovieService)
	svc.On("FindByTitle", mock.Anything, "heat").
		Return([]movie.Movie(nil), movie.StoreUnavailable(errors.New("connection refused"))).Once()
	app, out, _ := newTestApp(svc)

	err := app.Command().Run(context.Background(), []string{"catalog", "title", "heat"})

	require.Error(t, err)
	assert.Equal(t, exitUnavailable, exitCode(err))
	assert.Equal(t, "catalog store unavailable", describe(err))
	assert.Empty(t, out.String())
}

func TestCommand_OpenFailure(t *testing.T) {
	app := &App{
		Out: new(bytes.Buffer),
		Open: func(ctx context.Context) (movie.Service, func() error, error) {
			return nil, nil, movie.StoreUnavailable(errors.New("no reachable servers"))
		},
	}

	err := app.Command().Run(context.Background(), []string{"catalog", "title", "heat"})

	assert.Equal(t, exitUnavailable, exitCode(err))
}

func TestCommand_TimeoutFlag(t *testing.T) {
	svc := new(MockMovieService)
	svc.On("FindByTitle", mock.MatchedBy(func(ctx context.Context) bool {
		_, ok := ctx.Deadline()
		return ok
	}), "heat").Return([]movie.Movie{}, nil).Once()
	app, _, _ := newTestApp(svc)

	err := app.Command().Run(context.Background(), []string{"catalog", "--timeout", "2s", "title", "heat"})

	require.NoError(t, err)
	svc.AssertExpectations(t)
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, exitFailure, exitCode(errors.New("boom")))
	assert.Equal(t, exitInvalid, exitCode(errs.Errorf(errs.EINVALID, "bad")))
	assert.Equal(t, exitUnavailable, exitCode(context.DeadlineExceeded))
}

func TestTokenCommand(t *testing.T) {
	out := new(bytes.Buffer)
	app := &App{
		Out:    out,
		Secret: func() (string, error) { return "secret", nil },
	}

	err := app.Command().Run(context.Background(), []string{"catalog", "token", "--subject", "ops"})
	require.NoError(t, err)

	subject, err := jwt.NewProvider("secret", 0).Subject(strings.TrimSpace(out.String()))
	require.NoError(t, err)
	assert.Equal(t, "ops", subject)
}

func TestTokenCommand_NoSecret(t *testing.T) {
	app := &App{
		Out:    new(bytes.Buffer),
		Secret: func() (string, error) { return "", nil },
	}

	err := app.Command().Run(context.Background(), []string{"catalog", "token"})

	assert.Error(t, err)
}
