// Package main is the entry point for the netconfigd API server.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/nuclearlighters/netconfigd/internal/api"
	"github.com/nuclearlighters/netconfigd/internal/config"
	"github.com/nuclearlighters/netconfigd/internal/discovery"
	"github.com/nuclearlighters/netconfigd/internal/service"
	"github.com/nuclearlighters/netconfigd/internal/store"
	"github.com/nuclearlighters/netconfigd/internal/wifiscan"
)

func main() {
	// Load configuration
	cfg := config.Get()

	// Setup logging
	setupLogging(cfg.LogLevel)

	log.Info().
		Str("version", cfg.Version).
		Str("listen", cfg.ListenAddr()).
		Msg("Starting netconfigd API server")

	// Stores are explicitly constructed here and shared with the service;
	// there is no ambient state. Profiles do not survive a restart.
	wifiStore := store.NewWifiStore()
	staticIPStore := store.NewStaticIPStore()

	var discoverer discovery.Discoverer = discovery.NewSystemDiscoverer()
	if cfg.MockDiscovery {
		log.Warn().Msg("Using mock interface discovery")
		discoverer = discovery.NewMockDiscoverer()
	}

	scanner := wifiscan.NewScanner(wifiscan.NewNmcliSource(cfg.ScanInterface))

	svc := service.New(wifiStore, staticIPStore, discoverer, scanner)

	// Create router
	r := chi.NewRouter()

	// Middleware stack
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(cfg.RequestTimeout))
	r.Use(corsMiddleware)

	// Register routes
	healthHandler := api.NewHealthHandler(cfg)
	networkHandler := api.NewNetworkHandler(svc)

	r.Get("/health", healthHandler.ServeHTTP)
	r.Get("/api/health", healthHandler.ServeHTTP)

	r.Route("/api/v1", func(r chi.Router) {
		r.Mount("/network", networkHandler.Routes())
	})

	// Create HTTP server
	srv := &http.Server{
		Addr:         cfg.ListenAddr(),
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: cfg.RequestTimeout + 5*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("addr", cfg.ListenAddr()).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("HTTP server error")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	// Give outstanding requests 10 seconds to complete
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server stopped")
}

// setupLogging configures zerolog based on log level.
func setupLogging(level string) {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	switch level {
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "warn":
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case "error":
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}

// requestLogger is middleware that logs HTTP requests using zerolog.
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		log.Debug().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Dur("duration", time.Since(start)).
			Str("remote", r.RemoteAddr).
			Msg("request")
	})
}

// corsMiddleware adds CORS headers for cross-origin requests.
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Accept, Authorization, Content-Type, X-Request-ID")
		w.Header().Set("Access-Control-Max-Age", "86400")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
