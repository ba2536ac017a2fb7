package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	httpDelivery "github.com/repulens/backend/internal/delivery/http"
	"github.com/repulens/backend/internal/infrastructure/ratelimit"
)

const shutdownTimeout = 10 * time.Second

var servePort string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		port := servePort
		if port == "" {
			port = cfg.Server.Port
		}

		zap.L().Info("starting RepuLens backend",
			zap.String("version", "1.0.0"),
			zap.String("environment", cfg.Server.Environment),
			zap.Bool("serpapi_key_configured", cfg.SerpAPI.APIKey != ""),
			zap.Int("per_ip_limit", cfg.RateLimit.PerIP),
		)

		limiter := ratelimit.NewStore(cfg.RateLimit.PerIP, ratelimit.DefaultTTL)
		defer limiter.Close()

		handler := httpDelivery.NewHandler(newService())
		router := httpDelivery.SetupRouter(cfg, handler, limiter)

		srv := &http.Server{
			Addr:              fmt.Sprintf(":%s", port),
			Handler:           router,
			ReadHeaderTimeout: 10 * time.Second,
		}

		go func() {
			<-ctx.Done()
			zap.L().Info("shutting down server")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				zap.L().Warn("server shutdown", zap.Error(err))
			}
		}()

		zap.L().Info("server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return eris.Wrap(err, "server listen")
		}

		return nil
	},
}

func init() {
	serveCmd.Flags().StringVar(&servePort, "port", "", "server port (default from config)")
	rootCmd.AddCommand(serveCmd)
}
