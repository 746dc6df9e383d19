package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/y23cs140nandinipinneboina/sahayak/internal/config"
	"github.com/y23cs140nandinipinneboina/sahayak/internal/server"
	"github.com/y23cs140nandinipinneboina/sahayak/internal/tracing"
)

func newServeCmd() *cobra.Command {
	var debug bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the web server",
		RunE: func(cmd *cobra.Command, args []string) error {
			level := slog.LevelInfo
			if debug {
				level = slog.LevelDebug
			}
			logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: level,
			}))
			slog.SetDefault(logger)

			cfg, err := config.Load()
			if err != nil {
				return err
			}

			if cfg.TracingEnabled {
				shutdown, err := tracing.Setup(os.Stderr)
				if err != nil {
					return err
				}
				defer func() {
					if err := shutdown(context.Background()); err != nil {
						logger.Warn("failed to flush traces", "error", err)
					}
				}()
			}

			srv, err := server.New(cfg, logger)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return srv.Run(ctx)
		},
	}

	cmd.Flags().BoolVar(&debug, "debug", false, "log at debug level")
	return cmd
}
