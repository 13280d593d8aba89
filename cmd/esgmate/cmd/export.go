package cmd

import (
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/samber/do/v2"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/nfrund/esgmate/internal/app"
	"github.com/nfrund/esgmate/internal/config"
	"github.com/nfrund/esgmate/internal/content"
	"github.com/nfrund/esgmate/internal/export"
	"github.com/nfrund/esgmate/internal/rendering"
	"github.com/nfrund/esgmate/internal/storage"
	"github.com/nfrund/esgmate/web"
)

var exportOut string

// exportFs is the filesystem the export writes to.
var exportFs = afero.NewOsFs()

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the landing page as a static site",
	Long: `Export renders every language and framework combination to its own HTML file
(index.html for the initial view) and copies the stylesheet, so the site can be
hosted without a server.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.New()
		if err != nil {
			return err
		}
		injector := app.NewInjector(cfg, os.Stdout)

		catalog, err := do.Invoke[*content.Catalog](injector)
		if err != nil {
			return err
		}
		store, err := storage.NewDirStore(exportFs, exportOut)
		if err != nil {
			return fmt.Errorf("create %s: %w", exportOut, err)
		}
		static, err := fs.Sub(web.FS, "static")
		if err != nil {
			return err
		}

		x := export.New(
			store,
			do.MustInvoke[*rendering.UniversalRenderer](injector),
			catalog,
			static,
			do.MustInvoke[*slog.Logger](injector),
		)
		x.Canonical = cfg.AppBaseURL
		x.TailwindScriptURL = cfg.TailwindScriptURL

		written, err := x.Run(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %d files to %s\n", len(written), exportOut)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "dist", "output directory")
	rootCmd.AddCommand(exportCmd)
}
