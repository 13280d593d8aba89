// Package export writes the landing page as a static site: one HTML file
// per reachable view state plus the stylesheet.
package export

import (
	"bytes"
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"path"

	"github.com/nfrund/esgmate/internal/content"
	"github.com/nfrund/esgmate/internal/home"
	"github.com/nfrund/esgmate/internal/rendering"
	"github.com/nfrund/esgmate/internal/storage"
	"github.com/nfrund/esgmate/web/src/templates/layouts"
	"github.com/nfrund/esgmate/web/src/templates/pages"
)

// StaticDir is the directory, relative to the export root, holding the
// embedded static assets.
const StaticDir = "static"

// Exporter renders every view state into a Store.
type Exporter struct {
	store    storage.Store
	renderer rendering.Renderer
	catalog  *content.Catalog
	static   fs.FS
	logger   *slog.Logger
	// Canonical is the absolute URL of the site root, or "".
	Canonical string
	// TailwindScriptURL is linked from every page when set.
	TailwindScriptURL string
}

// New creates an Exporter. static holds the assets copied under StaticDir,
// rooted at the asset directory itself.
func New(store storage.Store, renderer rendering.Renderer, catalog *content.Catalog, static fs.FS, logger *slog.Logger) *Exporter {
	return &Exporter{
		store:    store,
		renderer: renderer,
		catalog:  catalog,
		static:   static,
		logger:   logger,
	}
}

// States lists every view state, initial state first.
func States() []home.State {
	states := []home.State{home.Initial()}
	for _, l := range home.Languages() {
		for _, t := range home.Tabs() {
			s := home.State{Language: l, Tab: t}
			if !s.IsInitial() {
				states = append(states, s)
			}
		}
	}
	return states
}

// Run writes all pages and assets and returns the paths written.
func (x *Exporter) Run(ctx context.Context) ([]string, error) {
	var written []string

	for _, s := range States() {
		name := pages.FileName(s)
		if err := x.page(ctx, s, name); err != nil {
			return written, err
		}
		written = append(written, name)
	}

	assets, err := x.copyStatic(ctx)
	written = append(written, assets...)
	if err != nil {
		return written, err
	}

	x.logger.Info("static site exported", "files", len(written))
	return written, nil
}

func (x *Exporter) page(ctx context.Context, s home.State, name string) error {
	canonical := ""
	if x.Canonical != "" {
		canonical = x.Canonical + "/" + name
	}
	assets := layouts.Assets{StaticPrefix: StaticDir, TailwindScriptURL: x.TailwindScriptURL}
	doc := pages.HomeDocument(s, x.catalog, pages.Options{Link: pages.FileLinker()}, pages.HomeMeta(x.catalog, canonical), assets)

	out, err := x.renderer.RenderComponent(ctx, doc)
	if err != nil {
		return fmt.Errorf("export %s: %w", name, err)
	}
	if _, err := x.store.Save(ctx, name, bytes.NewReader(out)); err != nil {
		return fmt.Errorf("export %s: %w", name, err)
	}
	x.logger.Debug("page exported", "file", name, "lang", s.Language, "tab", s.Tab)
	return nil
}

func (x *Exporter) copyStatic(ctx context.Context) ([]string, error) {
	var written []string
	err := fs.WalkDir(x.static, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		f, err := x.static.Open(p)
		if err != nil {
			return err
		}
		defer f.Close()

		dst := path.Join(StaticDir, p)
		if _, err := x.store.Save(ctx, dst, f); err != nil {
			return fmt.Errorf("export %s: %w", dst, err)
		}
		written = append(written, dst)
		return nil
	})
	return written, err
}
