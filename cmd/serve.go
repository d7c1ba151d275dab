package cmd

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"path/filepath"
	"time"

	"github.com/ajay-constructions/estimator/internal/config"
	"github.com/ajay-constructions/estimator/internal/estimation"
	"github.com/ajay-constructions/estimator/internal/gemini"
	"github.com/ajay-constructions/estimator/internal/handlers"
	"github.com/ajay-constructions/estimator/internal/history"
	"github.com/ajay-constructions/estimator/internal/imagecache"
	"github.com/ajay-constructions/estimator/internal/session"
	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	var port string
	var cacheDir string
	var dataDir string
	var profilePath string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the quotation portal API server",
		Long: `Starts the agent portal backend on the specified port.

Submissions call Gemini for a cost estimate and bill of materials, then
resolve an illustrative architectural render from the weekly image cache.`,
		Example: `  # Start server on default port 8888
  estimator serve

  # Start server on custom port with a custom cache directory
  estimator serve --port 3000 --cache-dir /var/cache/estimator`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !gemini.APIKeyConfigured() {
				slog.Error("GEMINI_API_KEY environment variable not set; estimation and image generation will fail until it is configured")
			}

			profile, err := config.LoadProfile(profilePath)
			if err != nil {
				return err
			}

			provider := gemini.New()
			cache := imagecache.New(cacheDir, provider)
			quoteLog := history.NewLog(filepath.Join(dataDir, "quotes.jsonl"))
			service := session.NewService(estimation.NewClient(provider), cache, quoteLog)
			handler := handlers.New(session.NewStore(), service, profile)

			// Set up routes
			mux := http.NewServeMux()
			mux.HandleFunc("/api/sessions", handler.HandleSessions)
			mux.HandleFunc("/api/sessions/", handler.HandleSessionDetail)
			mux.HandleFunc("/api/profile", handler.HandleProfile)
			mux.Handle("/images/", http.StripPrefix("/images/", http.FileServer(http.Dir(cacheDir))))
			mux.HandleFunc("/healthcheck", func(w http.ResponseWriter, r *http.Request) {
				if _, err := w.Write([]byte("OK")); err != nil {
					slog.Error("Unable to write healthcheck", "err", err)
				}
			})

			addr := ":" + port
			server := &http.Server{
				Addr:    addr,
				Handler: mux,
			}

			// Start server in goroutine
			serverErr := make(chan error, 1)
			go func() {
				slog.Info("Quotation portal available", "addr", addr, "url", "http://localhost"+addr)
				if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					serverErr <- err
				}
			}()

			// Wait for context cancellation (Ctrl+C) or server error
			select {
			case <-cmd.Context().Done():
				slog.Info("Shutting down server...")
				// Give server 5 seconds to shut down gracefully
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := server.Shutdown(shutdownCtx); err != nil {
					slog.Error("Server shutdown failed", "err", err)
					return err
				}
				slog.Info("Server stopped")
				return nil
			case err := <-serverErr:
				return err
			}
		},
	}

	cmd.Flags().StringVarP(&port, "port", "p", "8888", "Port to listen on")
	cmd.Flags().StringVar(&cacheDir, "cache-dir", "image_cache", "Directory for the weekly image cache")
	cmd.Flags().StringVar(&dataDir, "data-dir", "data", "Directory for the durable quote log")
	cmd.Flags().StringVar(&profilePath, "profile", "", "Optional YAML business profile file")

	return cmd
}
