package rendering_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/nfrund/esgmate/internal/rendering"
)

func TestRenderComponent(t *testing.T) {
	r := rendering.NewUniversalRenderer()

	tests := []struct {
		name      string
		component any
		want      string
		wantErr   bool
	}{
		{
			name:      "gomponents node",
			component: h.Span(g.Text("node")),
			want:      "<span>node</span>",
		},
		{
			name: "templ component",
			component: templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
				_, err := io.WriteString(w, "<em>templ</em>")
				return err
			}),
			want: "<em>templ</em>",
		},
		{
			name:      "unsupported",
			component: "plain string",
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := r.RenderComponent(context.Background(), tt.component)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "unsupported component type string")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(out))
		})
	}
}

func TestRenderPage(t *testing.T) {
	e := echo.New()
	r := rendering.NewUniversalRenderer()
	e.Renderer = r

	e.GET("/page", func(c echo.Context) error {
		return r.RenderPage(c, http.StatusTeapot, h.P(g.Text("brewing")))
	})
	e.GET("/echo", func(c echo.Context) error {
		return c.Render(http.StatusOK, "", h.P(g.Text("via echo")))
	})

	for path, want := range map[string]string{"/page": "<p>brewing</p>", "/echo": "<p>via echo</p>"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, want, rec.Body.String(), path)
		assert.Contains(t, rec.Header().Get(echo.HeaderContentType), "text/html", path)
	}
}
