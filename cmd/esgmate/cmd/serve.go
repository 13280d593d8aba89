package cmd

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/samber/do/v2"
	"github.com/spf13/cobra"

	"github.com/nfrund/esgmate/internal/app"
	"github.com/nfrund/esgmate/internal/config"
	"github.com/nfrund/esgmate/internal/server"
)

const shutdownTimeout = 10 * time.Second

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the landing page over HTTP",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.New()
		if err != nil {
			return err
		}
		if serveAddr != "" {
			cfg.Addr = serveAddr
			if err := cfg.Validate(); err != nil {
				return err
			}
		}

		injector := app.NewInjector(cfg, os.Stdout)
		s, err := do.Invoke[*server.Server](injector)
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		runErr := s.Run(ctx)

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if report := injector.ShutdownWithContext(shutdownCtx); len(report.Errors) > 0 {
			return errors.Join(runErr, report)
		}
		return runErr
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address, overrides APP_ADDR")
	rootCmd.AddCommand(serveCmd)
}
