package pages

import (
	"net/http"
	"strconv"

	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"

	"github.com/nfrund/esgmate/internal/content"
	"github.com/nfrund/esgmate/web/src/templates/layouts"
)

// ErrorMeta is the document metadata of an error page.
func ErrorMeta(c *content.Catalog, status int) layouts.Meta {
	return layouts.Meta{
		Title:       layouts.CalculateTitle(c.Page.Product, http.StatusText(status)),
		Description: c.Page.Description,
		Lang:        c.Lang(),
	}
}

// Error is the body of an error page with a link back to the landing page.
func Error(status int, homeHref string) cmp.Node {
	return g.Main(
		g.Class("min-h-screen flex items-center justify-center px-6"),
		g.Data("status", strconv.Itoa(status)),
		g.Div(
			g.Class("text-center"),
			g.P(g.Class("text-sm font-semibold text-blue-600"), cmp.Text(strconv.Itoa(status))),
			g.H1(g.Class("mt-4 text-3xl font-bold text-gray-800"), cmp.Text(http.StatusText(status))),
			g.A(
				g.Href(homeHref),
				g.Class("mt-8 inline-block px-6 py-3 rounded-lg font-medium bg-blue-600 text-white shadow-md"),
				cmp.Text("Home"),
			),
		),
	)
}
