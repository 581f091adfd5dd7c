package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// RegisterOpsRoutes mounts the unauthenticated operational endpoints.
func (s *Server) RegisterOpsRoutes() {
	s.Router.GET("/healthcheck", s.healthCheck)
	s.Router.GET("/swagger/*", echoSwagger.WrapHandler)
}

// healthCheck godoc
// @Summary Health Check
// @Description Report liveness and the catalog store in use
// @Tags health
// @Success 200 {object} map[string]string
// @Router /healthcheck [get]
func (s *Server) healthCheck(c echo.Context) error {
	return writeSuccess(c, http.StatusOK, map[string]string{
		"status": "OK",
		"store":  s.StoreDriver,
	})
}
