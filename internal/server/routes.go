package server

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/nfrund/esgmate/internal/middleware"
)

// RegisterRoutes sets up all the application routes.
func (s *Server) RegisterRoutes() {
	rateLimiter := middleware.RateLimiter(s.Cfg.RateLimit)

	s.E.GET("/", s.homeHandler.HomeGet, rateLimiter)

	s.E.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	})
}
