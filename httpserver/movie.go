package httpserver

import (
	"net/http"

	"moviecatalog/errs"

	"github.com/labstack/echo/v4"
)

func (s *Server) RegisterMovieRoutes(g *echo.Group) {
	g.GET("/movies/search", s.handleSearchMovies)
	g.GET("/movies/common", s.handleCommonMovies)
}

// handleSearchMovies godoc
// @Summary Search Movies
// @Description Case-insensitive title substring search
// @Tags movies
// @Produce json
// @Param title query string true "Title fragment"
// @Success 200 {array} movie.Movie
// @Failure 400 {object} APIResponse
// @Failure 503 {object} APIResponse
// @Router /api/movies/search [get]
func (s *Server) handleSearchMovies(c echo.Context) error {
	if s.MovieService == nil {
		return errs.Errorf(errs.ENOTIMPLEMENTED, "movie service not configured")
	}

	var req SearchByTitleRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	req.normalize()
	if err := c.Validate(&req); err != nil {
		return err
	}

	results, err := s.MovieService.FindByTitle(c.Request().Context(), req.Title)
	if err != nil {
		return err
	}

	return writeList(c, http.StatusOK, results)
}

// handleCommonMovies godoc
// @Summary Common Movies
// @Description Movies whose cast has both actors, matched by exact name
// @Tags movies
// @Produce json
// @Param actor1 query string true "First actor"
// @Param actor2 query string true "Second actor"
// @Success 200 {array} movie.Movie
// @Failure 400 {object} APIResponse
// @Failure 503 {object} APIResponse
// @Router /api/movies/common [get]
func (s *Server) handleCommonMovies(c echo.Context) error {
	if s.MovieService == nil {
		return errs.Errorf(errs.ENOTIMPLEMENTED, "movie service not configured")
	}

	var req FindCommonRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	req.normalize()
	if err := c.Validate(&req); err != nil {
		return err
	}

	results, err := s.MovieService.FindCommon(c.Request().Context(), req.Actor1, req.Actor2)
	if err != nil {
		return err
	}

	return writeList(c, http.StatusOK, results)
}
