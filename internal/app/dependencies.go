// Package app wires the application services into a dependency injector.
package app

import (
	"io"
	"log/slog"

	"github.com/samber/do/v2"

	"github.com/nfrund/esgmate/internal/config"
	"github.com/nfrund/esgmate/internal/content"
	"github.com/nfrund/esgmate/internal/handlers"
	"github.com/nfrund/esgmate/internal/logging"
	"github.com/nfrund/esgmate/internal/rendering"
	"github.com/nfrund/esgmate/internal/server"
)

// Package registers every service built from cfg. Logs go to logOut.
// Services are constructed lazily on first invocation.
func Package(cfg *config.Config, logOut io.Writer) func(do.Injector) {
	return func(i do.Injector) {
		do.ProvideValue(i, cfg)
		do.Provide(i, newLogger(logOut))
		do.Provide(i, newCatalog)
		do.Provide(i, newRenderer)
		do.Provide(i, newHomeHandler)
		do.Provide(i, newServer)
	}
}

// NewInjector creates the root scope for cfg. Shutting it down stops the
// HTTP server if it was started.
func NewInjector(cfg *config.Config, logOut io.Writer) *do.RootScope {
	return do.New(Package(cfg, logOut))
}

func newLogger(out io.Writer) do.Provider[*slog.Logger] {
	return func(i do.Injector) (*slog.Logger, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return logging.NewWithWriter(out, cfg.LogFormat, cfg.LogLevel), nil
	}
}

func newCatalog(i do.Injector) (*content.Catalog, error) {
	return content.Default()
}

func newRenderer(i do.Injector) (*rendering.UniversalRenderer, error) {
	return rendering.NewUniversalRenderer(), nil
}

func newHomeHandler(i do.Injector) (*handlers.HomeHandler, error) {
	cfg := do.MustInvoke[*config.Config](i)
	catalog, err := do.Invoke[*content.Catalog](i)
	if err != nil {
		return nil, err
	}
	renderer := do.MustInvoke[*rendering.UniversalRenderer](i)
	return handlers.NewHomeHandler(catalog, renderer, server.Assets(cfg), cfg.Canonical("/")), nil
}

func newServer(i do.Injector) (*server.Server, error) {
	cfg := do.MustInvoke[*config.Config](i)
	home, err := do.Invoke[*handlers.HomeHandler](i)
	if err != nil {
		return nil, err
	}

	s := server.New(
		cfg,
		do.MustInvoke[*slog.Logger](i),
		do.MustInvoke[*content.Catalog](i),
		do.MustInvoke[*rendering.UniversalRenderer](i),
		home,
	)
	s.RegisterRoutes()
	return s, nil
}
