package server

import (
	"errors"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/labstack/echo/v4"

	"github.com/nfrund/esgmate/internal/content"
	"github.com/nfrund/esgmate/internal/middleware"
	"github.com/nfrund/esgmate/internal/rendering"
	"github.com/nfrund/esgmate/internal/view"
	"github.com/nfrund/esgmate/web/src/templates/layouts"
	"github.com/nfrund/esgmate/web/src/templates/pages"
)

// errorPageFunc renders the document for an error status.
type errorPageFunc func(c echo.Context, status int) error

func errorPage(catalog *content.Catalog, renderer rendering.Renderer, assets layouts.Assets) errorPageFunc {
	return func(c echo.Context, status int) error {
		doc := layouts.Base(pages.ErrorMeta(catalog, status), assets, view.Component(pages.Error(status, "/")))
		return renderer.RenderPage(c, status, doc)
	}
}

// setupErrorHandling installs an HTTPErrorHandler that logs unhandled errors
// with a stack trace and answers with an error page, or plain text when page
// is nil.
func setupErrorHandling(e *echo.Echo, page errorPageFunc) {
	e.HTTPErrorHandler = func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		logger := middleware.FromContext(c.Request().Context())
		status := http.StatusInternalServerError

		var he *echo.HTTPError
		if errors.As(err, &he) {
			status = he.Code
			if status >= http.StatusInternalServerError {
				logger.Error("Internal Server Error", "error", err)
			}
		} else {
			logger.Error("Internal Server Error (Unhandled)",
				"error", err.Error(),
				slog.String("stack_trace", string(debug.Stack())),
			)
		}

		var werr error
		switch {
		case c.Request().Method == http.MethodHead:
			werr = c.NoContent(status)
		case page == nil:
			werr = c.String(status, http.StatusText(status))
		default:
			werr = page(c, status)
		}
		if werr != nil {
			logger.Error("failed to write error response", "error", werr)
		}
	}
}
