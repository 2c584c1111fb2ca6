package cmd

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/showroom-catalog/showroom/internal/handlers"
	"github.com/showroom-catalog/showroom/internal/logger"
)

func newServeCmd() *cobra.Command {
	var port string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the catalog HTTP API",
		Long: `Starts the Showroom HTTP API on the specified port.

The API accepts listing URLs, keeps the extracted draft until it is
published or cancelled, and serves the catalog one page at a time.`,
		Example: `  # Start server on the configured port (SHOWROOM_PORT, default 8888)
  showroom serve

  # Start server on custom port
  showroom serve --port 3000`,
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := newRuntime(cmd.Context())
			if err != nil {
				return err
			}
			defer rt.Close(context.Background())

			if port == "" {
				port = rt.cfg.Server.Port
			}

			addr := ":" + port
			server := &http.Server{
				Addr:              addr,
				Handler:           handlers.New(rt.app, rt.log).Router(),
				ReadHeaderTimeout: 5 * time.Second,
				ReadTimeout:       15 * time.Second,
				WriteTimeout:      3 * time.Minute, // extraction can be slow
				IdleTimeout:       60 * time.Second,
			}

			// Start server in goroutine
			serverErr := make(chan error, 1)
			go func() {
				rt.log.Info("Showroom API available", logger.String("addr", addr), logger.String("url", "http://localhost"+addr))
				if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					serverErr <- err
				}
			}()

			// Wait for context cancellation (Ctrl+C) or server error
			select {
			case <-cmd.Context().Done():
				rt.log.Info("Shutting down server...")
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := server.Shutdown(shutdownCtx); err != nil {
					rt.log.Error("Server shutdown failed", logger.Error(err))
					return err
				}
				rt.log.Info("Server stopped")
				return nil
			case err := <-serverErr:
				return err
			}
		},
	}

	cmd.Flags().StringVarP(&port, "port", "p", "", "Port to listen on (overrides SHOWROOM_PORT)")

	return cmd
}
