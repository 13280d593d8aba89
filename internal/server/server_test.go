package server

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nfrund/esgmate/internal/config"
	"github.com/nfrund/esgmate/internal/content"
	"github.com/nfrund/esgmate/internal/handlers"
	"github.com/nfrund/esgmate/internal/rendering"
)

func newTestServer(t *testing.T, logs io.Writer) *Server {
	t.Helper()

	cfg := &config.Config{
		Addr:              "127.0.0.1:0",
		LogFormat:         "text",
		LogLevel:          "info",
		HTMXScriptURL:     config.DefaultHTMXScriptURL,
		TailwindScriptURL: config.DefaultTailwindScriptURL,
	}
	require.NoError(t, cfg.Validate())

	catalog, err := content.Default()
	require.NoError(t, err)

	logger := slog.New(slog.NewTextHandler(logs, nil))
	renderer := rendering.NewUniversalRenderer()
	home := handlers.NewHomeHandler(catalog, renderer, Assets(cfg), cfg.Canonical("/"))

	s := New(cfg, logger, catalog, renderer, home)
	s.RegisterRoutes()
	return s
}

func serve(s *Server, method, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	s.E.ServeHTTP(rec, httptest.NewRequest(method, target, nil))
	return rec
}

func TestServer_Routes(t *testing.T) {
	s := newTestServer(t, io.Discard)

	t.Run("home", func(t *testing.T) {
		rec := serve(s, http.MethodGet, "/")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.NotEmpty(t, rec.Header().Get(echo.HeaderXRequestID))
		assert.Contains(t, rec.Body.String(), `<script src="`+config.DefaultHTMXScriptURL+`" defer></script>`)
		assert.Contains(t, rec.Body.String(), `href="/static/css/esgmate.css"`)
	})

	t.Run("health", func(t *testing.T) {
		rec := serve(s, http.MethodGet, "/health")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "OK", rec.Body.String())
	})

	t.Run("static stylesheet", func(t *testing.T) {
		rec := serve(s, http.MethodGet, "/static/css/esgmate.css")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), ".esg-grid-pattern")
	})

	t.Run("unknown route renders the error page in the shell", func(t *testing.T) {
		rec := serve(s, http.MethodGet, "/pricing")
		require.Equal(t, http.StatusNotFound, rec.Code)
		body := rec.Body.String()
		assert.True(t, strings.HasPrefix(body, `<!doctype html><html lang="ko">`))
		assert.Contains(t, body, "<title>ESG Mate - Not Found</title>")
		assert.Contains(t, body, `data-status="404"`)
	})

	t.Run("HEAD on unknown route has no body", func(t *testing.T) {
		rec := serve(s, http.MethodHead, "/pricing")
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Empty(t, rec.Body.String())
	})
}

func TestServer_AccessLog(t *testing.T) {
	var logs bytes.Buffer
	s := newTestServer(t, &logs)

	serve(s, http.MethodGet, "/?tab=gri")

	assert.Contains(t, logs.String(), "msg=request")
	assert.Contains(t, logs.String(), "status=200")
	assert.Contains(t, logs.String(), "request_id=")
}

func TestHTTPErrorHandler_WithStackTrace(t *testing.T) {
	e := echo.New()

	var logBuffer bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logBuffer, &slog.HandlerOptions{AddSource: true}))
	originalLogger := slog.Default()
	slog.SetDefault(logger)
	defer slog.SetDefault(originalLogger)

	setupErrorHandling(e, nil)

	e.GET("/test-unhandled-error", func(c echo.Context) error {
		return errors.New("a deliberate unhandled error occurred")
	})

	req := httptest.NewRequest(http.MethodGet, "/test-unhandled-error", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code, "Expected a 500 Internal Server Error response")
	assert.Equal(t, "Internal Server Error", rec.Body.String())

	logOutput := logBuffer.String()
	assert.Contains(t, logOutput, "Internal Server Error (Unhandled)", "Log message should indicate an unhandled error")
	assert.Contains(t, logOutput, "error=\"a deliberate unhandled error occurred\"", "Log should contain the original error message")
	assert.Contains(t, logOutput, "stack_trace=", "Log must contain the stack_trace field")
	assert.Contains(t, logOutput, "runtime/debug/stack.go", "Stack trace should originate from the debug package")
	assert.Contains(t, logOutput, "internal/server/server_test.go", "Stack trace should point back to this test file")
}

func TestHTTPErrorHandler_Panic(t *testing.T) {
	s := newTestServer(t, io.Discard)
	s.E.GET("/panic", func(c echo.Context) error { panic("kaboom") })

	rec := serve(s, http.MethodGet, "/panic")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "Internal Server Error")
}
