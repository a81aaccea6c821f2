package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/VZ1308/EventManagementSystem/internal/clock"
	"github.com/VZ1308/EventManagementSystem/internal/config"
	"github.com/VZ1308/EventManagementSystem/internal/handler"
	"github.com/VZ1308/EventManagementSystem/internal/logging"
	"github.com/VZ1308/EventManagementSystem/internal/service"
)

func newServeCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the registry over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("addr") {
				cfg.HTTPAddr = addr
			}

			// Block until SIGINT or SIGTERM.
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			registry := newRegistry(cfg, cmd.OutOrStdout())
			return serve(ctx, cfg, registry, nil)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "Listen address (overrides EMS_HTTP_ADDR)")
	return cmd
}

// serve runs the HTTP server until ctx is done, then shuts it down
// gracefully. When ready is non-nil it receives the bound address.
func serve(ctx context.Context, cfg config.Config, registry *service.Registry, ready chan<- string) error {
	defer logging.LogOperationStart(log.Logger, "serve")()

	h := handler.NewEventHandler(registry, clock.NewSystem())
	srv := &http.Server{
		Handler:      handler.NewRouter(h, logging.GetLogger("http")),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	ln, err := net.Listen("tcp", cfg.HTTPAddr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", cfg.HTTPAddr, err)
	}
	log.Info().Str("addr", ln.Addr().String()).Msg("server listening")
	if ready != nil {
		ready <- ln.Addr().String()
	}

	// Run in background goroutine so we can listen for shutdown signal.
	errCh := make(chan error, 1)
	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	log.Info().Msg("server stopped")
	return nil
}
