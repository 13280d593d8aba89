package app_test

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/samber/do/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nfrund/esgmate/internal/app"
	"github.com/nfrund/esgmate/internal/config"
	"github.com/nfrund/esgmate/internal/content"
	"github.com/nfrund/esgmate/internal/server"
)

func testConfig() *config.Config {
	return &config.Config{
		Addr:          "127.0.0.1:0",
		AppBaseURL:    "https://esgmate.example",
		LogFormat:     "json",
		LogLevel:      "info",
		HTMXScriptURL: config.DefaultHTMXScriptURL,
	}
}

func TestNewInjector_ServesHome(t *testing.T) {
	var logs bytes.Buffer
	injector := app.NewInjector(testConfig(), &logs)

	s, err := do.Invoke[*server.Server](injector)
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	s.E.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/?tab=tcfd", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `<link rel="canonical" href="https://esgmate.example/">`)
	assert.Contains(t, rec.Body.String(), `data-panel="tcfd"`)
	assert.Contains(t, logs.String(), `"msg":"request"`, "the injected logger is json")
}

func TestNewInjector_SharesServices(t *testing.T) {
	injector := app.NewInjector(testConfig(), &bytes.Buffer{})

	first := do.MustInvoke[*content.Catalog](injector)
	second := do.MustInvoke[*content.Catalog](injector)
	assert.Same(t, first, second)
}

func TestNewInjector_Shutdown(t *testing.T) {
	injector := app.NewInjector(testConfig(), &bytes.Buffer{})
	do.MustInvoke[*server.Server](injector)

	report := injector.ShutdownWithContext(context.Background())
	assert.Empty(t, report.Errors)
}
