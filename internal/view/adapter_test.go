package view_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/nfrund/esgmate/internal/view"
)

func TestComponent(t *testing.T) {
	var buf strings.Builder
	err := view.Component(h.P(h.Class("lead"), g.Text("hello <world>"))).Render(context.Background(), &buf)
	require.NoError(t, err)
	assert.Equal(t, `<p class="lead">hello &lt;world&gt;</p>`, buf.String())
}

func TestComponent_NilNode(t *testing.T) {
	var buf strings.Builder
	require.NoError(t, view.Component(nil).Render(context.Background(), &buf))
	assert.Empty(t, buf.String())
}
