package pages

import (
	"fmt"

	"github.com/a-h/templ"
	cmp "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	g "maragu.dev/gomponents/html"

	"github.com/nfrund/esgmate/internal/content"
	"github.com/nfrund/esgmate/internal/home"
	"github.com/nfrund/esgmate/internal/view"
	"github.com/nfrund/esgmate/web/src/templates/layouts"
)

// RootID is the id of the element htmx swaps when a selector is clicked.
const RootID = "esg-home"

const (
	languageButtonClass   = "px-3 py-2 rounded text-sm font-medium transition-all duration-200"
	languageActiveClass   = "bg-gray-800 text-white shadow-sm"
	languageInactiveClass = "bg-white text-gray-600 border border-gray-200 hover:border-gray-300 hover:text-gray-800"

	tabButtonClass   = "px-6 py-3 rounded-lg font-medium transition-all duration-200"
	tabActiveClass   = "bg-blue-600 text-white shadow-md"
	tabInactiveClass = "text-gray-600 hover:text-gray-800 hover:bg-gray-100"
)

// Options controls how selectors link to the next view state.
type Options struct {
	Link Linker
	// Live boosts the selectors with htmx so a click swaps the view in place.
	Live bool
}

// HomeMeta is the document metadata of the landing page.
func HomeMeta(c *content.Catalog, canonical string) layouts.Meta {
	return layouts.Meta{
		Title:       layouts.CalculateTitle(c.Page.Product, c.Page.Tagline),
		Description: c.Page.Description,
		Lang:        c.Lang(),
		Canonical:   canonical,
	}
}

// HomeDocument is the complete landing page: the shell around one Home view.
func HomeDocument(state home.State, c *content.Catalog, opts Options, meta layouts.Meta, assets layouts.Assets) templ.Component {
	return layouts.Base(meta, assets, view.Component(Home(state, c, opts)))
}

// Home renders the landing page view for state. Exactly one framework panel
// is present in the output.
func Home(state home.State, c *content.Catalog, opts Options) cmp.Node {
	if opts.Link == nil {
		opts.Link = QueryLinker("/")
	}

	return g.Div(
		g.ID(RootID),
		g.Class("min-h-screen bg-white"),
		cmp.If(opts.Live, hx.Boost("true")),
		cmp.If(opts.Live, hx.Target("#"+RootID)),
		cmp.If(opts.Live, hx.Swap("outerHTML")),
		header(state, c, opts),
		hero(c.Hero),
		frameworks(state, c, opts),
		backdrop(),
	)
}

func header(state home.State, c *content.Catalog, opts Options) cmp.Node {
	return g.Header(
		g.Class("sticky top-0 z-50 bg-white border-b border-gray-100 shadow-sm"),
		g.Div(
			g.Class("max-w-7xl mx-auto flex justify-between items-center px-6 py-6"),
			g.Div(g.Class("text-2xl font-bold text-gray-800 tracking-tight"), cmp.Text(c.Header.Logo)),
			g.Nav(
				g.Class("hidden md:flex gap-8 items-center"),
				cmp.Map(c.Header.Nav, func(l content.NavLink) cmp.Node {
					return g.A(
						g.Href(l.Href),
						g.Class("text-gray-600 hover:text-gray-800 font-medium transition-colors duration-200 text-sm"),
						cmp.Text(l.Label),
					)
				}),
			),
			g.Div(
				g.Class("flex gap-1"),
				cmp.Map(home.Languages(), func(l home.Language) cmp.Node {
					return selector(
						opts.Link(state.WithLanguage(l)),
						languageButtonClass, languageActiveClass, languageInactiveClass,
						state.Language == l,
						"language", l.String(), l.String(),
					)
				}),
			),
		),
	)
}

func hero(h content.Hero) cmp.Node {
	return g.Main(
		g.Class("flex-1 flex items-center justify-center px-6 py-20"),
		g.Div(
			g.Class("text-center max-w-4xl mx-auto"),
			g.H1(g.Class("text-5xl md:text-6xl font-bold text-gray-800 mb-8 leading-tight tracking-tight"), cmp.Text(h.Heading)),
			g.P(g.Class("text-lg md:text-xl text-gray-600 leading-relaxed max-w-2xl mx-auto font-normal"), cmp.Text(h.Body)),
		),
	)
}

func frameworks(state home.State, c *content.Catalog, opts Options) cmp.Node {
	return g.Section(
		g.Class("px-6 py-16 bg-gray-50"),
		g.Div(
			g.Class("max-w-6xl mx-auto"),
			g.Div(
				g.Class("text-center mb-12"),
				g.H2(g.Class("text-3xl md:text-4xl font-bold text-gray-800 mb-4"), cmp.Text(c.Frameworks.Heading)),
				g.P(g.Class("text-lg text-gray-600 max-w-2xl mx-auto"), cmp.Text(c.Frameworks.Intro)),
			),
			g.Div(
				g.Class("flex justify-center mb-8"),
				g.Div(
					g.Class("bg-white rounded-xl p-2 shadow-lg border border-gray-200"),
					cmp.Map(home.Tabs(), func(t home.Tab) cmp.Node {
						return selector(
							opts.Link(state.WithTab(t)),
							tabButtonClass, tabActiveClass, tabInactiveClass,
							state.Tab == t,
							"tab", t.String(), c.Label(t),
						)
					}),
				),
			),
			g.Div(
				g.Class("bg-white rounded-2xl p-8 shadow-lg border border-gray-200"),
				activePanel(state, c),
			),
		),
	)
}

// selector is a link styled as a toggle button; exactly one per group is
// active. The group and value are exposed as data-<group>="<value>".
func selector(href, base, activeClass, inactiveClass string, active bool, group, value, label string) cmp.Node {
	class, stateName := base+" "+inactiveClass, "inactive"
	if active {
		class, stateName = base+" "+activeClass, "active"
	}
	return g.A(
		g.Href(href),
		g.Role("button"),
		g.Class(class),
		g.Data(group, value),
		g.Data("state", stateName),
		cmp.Text(label),
	)
}

// activePanel returns nil for a tab without a panel; catalogs are validated
// on load so that only happens with a hand-built catalog.
func activePanel(state home.State, c *content.Catalog) cmp.Node {
	p, ok := c.Panel(state.Tab)
	if !ok {
		return nil
	}
	return panel(p)
}

func panel(p content.Panel) cmp.Node {
	return g.Div(
		g.Class("text-center"),
		g.Data("panel", p.Tab.String()),
		g.H3(g.Class("text-2xl font-bold text-gray-800 mb-4"), cmp.Text(p.Heading)),
		g.P(g.Class("text-gray-600 mb-6"), cmp.Text(p.Description)),
		g.Div(
			g.Class(cardGridClass(len(p.Cards))),
			cmp.Map(p.Cards, card),
		),
	)
}

func cardGridClass(n int) string {
	if n >= 4 {
		return fmt.Sprintf("grid md:grid-cols-%d gap-4", n)
	}
	return fmt.Sprintf("grid md:grid-cols-%d gap-6", n)
}

func card(c content.Card) cmp.Node {
	return g.Div(
		g.Class(fmt.Sprintf("p-4 bg-%s-50 rounded-lg", c.Color)),
		g.Data("card", c.Color),
		g.H4(g.Class(fmt.Sprintf("font-semibold text-%s-800 mb-2", c.Color)), cmp.Text(c.Title)),
		g.P(g.Class(fmt.Sprintf("text-sm text-%s-700", c.Color)), cmp.Text(c.Description)),
	)
}

// backdrop is the decorative graphic at the bottom of the page.
func backdrop() cmp.Node {
	layer := func(class string) cmp.Node {
		return g.Div(g.Class("absolute inset-0 " + class))
	}
	orb := func(class string) cmp.Node {
		return g.Div(g.Class("absolute rounded-full blur-sm " + class))
	}

	return g.Div(
		g.Class("px-6 pb-12"),
		g.Div(
			g.Class("max-w-6xl mx-auto"),
			g.Div(
				g.Class("w-full h-80 md:h-96 rounded-2xl overflow-hidden bg-gradient-to-br from-gray-50 via-gray-100 to-gray-200 relative shadow-lg"),
				layer("bg-gradient-to-br from-white/90 via-white/70 to-white/50"),
				layer("bg-gradient-to-br from-white/60 via-transparent to-white/40"),
				layer("bg-gradient-to-br from-transparent via-white/30 to-white/50"),
				layer("bg-gradient-to-br from-white/40 via-transparent to-white/30"),
				g.Div(g.Class("absolute inset-0 opacity-20"), g.Div(g.Class("esg-grid-pattern"))),
				orb("top-1/4 left-1/4 w-32 h-32 bg-white/20"),
				orb("top-1/3 right-1/3 w-24 h-24 bg-white/30"),
				orb("bottom-1/4 left-1/3 w-20 h-20 bg-white/25"),
			),
		),
	)
}
