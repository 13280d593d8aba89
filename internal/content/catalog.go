// Package content decodes the fixed page copy of the landing page from an
// embedded YAML catalog.
package content

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/nfrund/esgmate/internal/domain"
	"github.com/nfrund/esgmate/internal/home"
	"github.com/nfrund/esgmate/web"
)

// DefaultFile is the catalog shipped in web/content.
const DefaultFile = "content/esg.yaml"

var validatorInstance = validator.New()

func init() {
	if err := validatorInstance.RegisterValidation("tab", func(fl validator.FieldLevel) bool {
		return home.Tab(fl.Field().String()).Valid()
	}); err != nil {
		panic(fmt.Sprintf("register tab validation: %v", err))
	}
}

// Catalog is the complete copy of the page.
type Catalog struct {
	Page       Page       `yaml:"page" validate:"required"`
	Header     Header     `yaml:"header" validate:"required"`
	Hero       Hero       `yaml:"hero" validate:"required"`
	Frameworks Frameworks `yaml:"frameworks" validate:"required"`

	lang language.Tag
}

// Page is the document metadata consumed by the page shell.
type Page struct {
	Product     string `yaml:"product" validate:"required"`
	Tagline     string `yaml:"tagline" validate:"required"`
	Description string `yaml:"description" validate:"required"`
	Lang        string `yaml:"lang" validate:"required"`
}

// Header is the top bar: logo text and navigation links.
type Header struct {
	Logo string    `yaml:"logo" validate:"required"`
	Nav  []NavLink `yaml:"nav" validate:"dive"`
}

// NavLink is one header navigation entry.
type NavLink struct {
	Label string `yaml:"label" validate:"required"`
	Href  string `yaml:"href" validate:"required"`
}

// Hero is the headline block under the header.
type Hero struct {
	Heading string `yaml:"heading" validate:"required"`
	Body    string `yaml:"body" validate:"required"`
}

// Frameworks is the tabbed section. It has one panel per home.Tab.
type Frameworks struct {
	Heading string  `yaml:"heading" validate:"required"`
	Intro   string  `yaml:"intro" validate:"required"`
	Panels  []Panel `yaml:"panels" validate:"len=3,unique=Tab,dive"`
}

// Panel is the content shown while its tab is selected.
type Panel struct {
	Tab         home.Tab `yaml:"tab" validate:"required,tab"`
	Label       string   `yaml:"label" validate:"required"`
	Heading     string   `yaml:"heading" validate:"required"`
	Description string   `yaml:"description" validate:"required"`
	Cards       []Card   `yaml:"cards" validate:"min=3,max=4,dive"`
}

// Card is a labelled sub-card inside a panel.
type Card struct {
	Title       string `yaml:"title" validate:"required"`
	Description string `yaml:"description" validate:"required"`
	Color       string `yaml:"color" validate:"required,oneof=blue green purple yellow red"`
}

// Default loads the catalog embedded in the web package.
func Default() (*Catalog, error) {
	return Load(web.Content, DefaultFile)
}

// Load decodes and validates the catalog stored at name in fsys. Unknown
// keys are rejected.
func Load(fsys fs.FS, name string) (*Catalog, error) {
	raw, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", name, err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)

	var c Catalog
	if err := dec.Decode(&c); err != nil {
		return nil, fmt.Errorf("%w: decode %s: %v", domain.ErrInvalidCatalog, name, err)
	}
	if err := c.validate(); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrInvalidCatalog, name, err)
	}
	return &c, nil
}

func (c *Catalog) validate() error {
	if err := validatorInstance.Struct(c); err != nil {
		return err
	}

	tag, err := language.Parse(c.Page.Lang)
	if err != nil {
		return fmt.Errorf("page lang %q: %w", c.Page.Lang, err)
	}
	c.lang = tag

	var missing []error
	for _, tab := range home.Tabs() {
		if _, ok := c.Panel(tab); !ok {
			missing = append(missing, fmt.Errorf("no panel for tab %q", tab))
		}
	}
	return errors.Join(missing...)
}

// Lang is the document language of the page.
func (c *Catalog) Lang() language.Tag {
	return c.lang
}

// Panel returns the panel shown for tab.
func (c *Catalog) Panel(tab home.Tab) (Panel, bool) {
	for _, p := range c.Frameworks.Panels {
		if p.Tab == tab {
			return p, true
		}
	}
	return Panel{}, false
}

// Label is the selector button text for tab.
func (c *Catalog) Label(tab home.Tab) string {
	if p, ok := c.Panel(tab); ok {
		return p.Label
	}
	return tab.String()
}
