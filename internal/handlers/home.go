package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/nfrund/esgmate/internal/content"
	"github.com/nfrund/esgmate/internal/home"
	"github.com/nfrund/esgmate/internal/middleware"
	"github.com/nfrund/esgmate/internal/rendering"
	"github.com/nfrund/esgmate/web/src/templates/layouts"
	"github.com/nfrund/esgmate/web/src/templates/pages"
)

// HomeHandler handles requests for the landing page.
type HomeHandler struct {
	catalog   *content.Catalog
	renderer  rendering.Renderer
	assets    layouts.Assets
	canonical string
	binder    echo.DefaultBinder
}

// NewHomeHandler creates a new HomeHandler. canonical is the absolute URL of
// the page and may be empty.
func NewHomeHandler(catalog *content.Catalog, renderer rendering.Renderer, assets layouts.Assets, canonical string) *HomeHandler {
	return &HomeHandler{
		catalog:   catalog,
		renderer:  renderer,
		assets:    assets,
		canonical: canonical,
	}
}

// HomeGet renders the landing page for the view state in the query. htmx
// requests get the view fragment only; everything else gets the full
// document.
func (h *HomeHandler) HomeGet(c echo.Context) error {
	state := h.state(c)

	c.Response().Header().Add(echo.HeaderVary, middleware.HeaderHXRequest)

	opts := pages.Options{Link: pages.QueryLinker(c.Path()), Live: true}
	if middleware.IsHTMX(c) {
		return h.renderer.RenderPage(c, http.StatusOK, pages.Home(state, h.catalog, opts))
	}

	meta := pages.HomeMeta(h.catalog, h.canonical)
	return h.renderer.RenderPage(c, http.StatusOK, pages.HomeDocument(state, h.catalog, opts, meta, h.assets))
}

// state decodes the view from the query. Values no selector can produce
// are logged and the initial view is rendered instead.
func (h *HomeHandler) state(c echo.Context) home.State {
	logger := middleware.FromContext(c.Request().Context())

	var q HomeQuery
	if err := h.binder.BindQueryParams(c, &q); err != nil {
		logger.Warn("ignoring unreadable view query", "error", err)
		return home.Initial()
	}
	if err := c.Validate(&q); err != nil {
		logger.Warn("ignoring invalid view query", "lang", q.Lang, "tab", q.Tab, "error", err)
		return home.Initial()
	}

	state := q.State()
	logger.Debug("rendering home view", "language", state.Language, "tab", state.Tab)
	return state
}
