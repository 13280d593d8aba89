package server

import (
	"log/slog"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/nfrund/esgmate/internal/config"
	"github.com/nfrund/esgmate/internal/content"
	"github.com/nfrund/esgmate/internal/handlers"
	appmw "github.com/nfrund/esgmate/internal/middleware"
	"github.com/nfrund/esgmate/internal/rendering"
	"github.com/nfrund/esgmate/web"
	"github.com/nfrund/esgmate/web/src/templates/layouts"
)

// Server holds the dependencies for the HTTP server.
type Server struct {
	E           *echo.Echo
	Cfg         *config.Config
	logger      *slog.Logger
	homeHandler *handlers.HomeHandler
}

// New creates a Server with middleware, error handling and static assets
// configured. Routes are added by RegisterRoutes.
func New(cfg *config.Config, logger *slog.Logger, catalog *content.Catalog, renderer *rendering.UniversalRenderer, homeHandler *handlers.HomeHandler) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handlers.NewValidator()
	e.Renderer = renderer

	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{Generator: uuid.NewString}))
	e.Use(appmw.Logger(logger))
	e.Use(appmw.HTMX)
	e.Use(appmw.AccessLog(logger))
	e.Use(middleware.Recover())

	setupErrorHandling(e, errorPage(catalog, renderer, Assets(cfg)))

	e.StaticFS("/static", echo.MustSubFS(web.FS, "static"))

	return &Server{
		E:           e,
		Cfg:         cfg,
		logger:      logger,
		homeHandler: homeHandler,
	}
}

// Assets are the page shell assets for a served site.
func Assets(cfg *config.Config) layouts.Assets {
	return layouts.Assets{
		StaticPrefix:      "/static",
		TailwindScriptURL: cfg.TailwindScriptURL,
		HTMXScriptURL:     cfg.HTMXScriptURL,
	}
}
