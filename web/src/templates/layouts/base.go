package layouts

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/a-h/templ"
	"golang.org/x/text/language"
	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"

	"github.com/nfrund/esgmate/internal/view"
)

// Meta is the document-level metadata of a page.
type Meta struct {
	Title       string
	Description string
	// Lang is the root language attribute. It is independent of any in-page
	// language toggle.
	Lang      language.Tag
	Canonical string
}

// Assets locates the stylesheet and scripts linked from the document head.
// Empty script URLs are omitted.
type Assets struct {
	// StaticPrefix is prepended to paths inside web/static, "/static" when
	// served and "static" in an exported site.
	StaticPrefix      string
	TailwindScriptURL string
	HTMXScriptURL     string
}

// Stylesheet returns the URL of the site stylesheet.
func (a Assets) Stylesheet() string {
	return strings.TrimSuffix(a.StaticPrefix, "/") + "/css/esgmate.css"
}

// Base is the page shell: it sets title, description and language once and
// hosts exactly one content component in the body.
func Base(meta Meta, assets Assets, content templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return view.Component(document(meta, assets, body(ctx, content))).Render(ctx, w)
	})
}

func document(meta Meta, assets Assets, content cmp.Node) cmp.Node {
	lang := meta.Lang
	if lang == language.Und {
		lang = language.Korean
	}

	return cmp.Group([]cmp.Node{
		cmp.Raw("<!doctype html>"),
		g.HTML(
			g.Lang(lang.String()),
			g.Head(
				g.Meta(g.Charset("utf-8")),
				g.Meta(g.Name("viewport"), g.Content("width=device-width, initial-scale=1")),
				g.TitleEl(cmp.Text(meta.Title)),
				g.Meta(g.Name("description"), g.Content(meta.Description)),
				cmp.If(meta.Canonical != "", g.Link(g.Rel("canonical"), g.Href(meta.Canonical))),
				g.Link(g.Rel("stylesheet"), g.Href(assets.Stylesheet())),
				cmp.If(assets.TailwindScriptURL != "", g.Script(g.Src(assets.TailwindScriptURL))),
				cmp.If(assets.HTMXScriptURL != "", g.Script(g.Src(assets.HTMXScriptURL), g.Defer())),
			),
			g.Body(content),
		),
	})
}

// body renders the templ content inside the gomponents document.
func body(ctx context.Context, content templ.Component) cmp.Node {
	if content == nil {
		return nil
	}
	return cmp.NodeFunc(func(w io.Writer) error {
		if err := content.Render(ctx, w); err != nil {
			return fmt.Errorf("render page content: %w", err)
		}
		return nil
	})
}
