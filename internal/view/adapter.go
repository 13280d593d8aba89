package view

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"maragu.dev/gomponents"
)

// nodeComponent lets a gomponents node be passed wherever a templ.Component
// is expected, such as the children of the page shell.
type nodeComponent struct {
	node gomponents.Node
}

func (n nodeComponent) Render(_ context.Context, w io.Writer) error {
	if n.node == nil {
		return nil
	}
	return n.node.Render(w)
}

// Component wraps a gomponents node as a templ.Component.
func Component(node gomponents.Node) templ.Component {
	return nodeComponent{node: node}
}
