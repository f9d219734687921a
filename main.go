package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"

	"github.com/mauv0809/ligadb/internal/config"
	server "github.com/mauv0809/ligadb/internal/http"
	"github.com/mauv0809/ligadb/internal/metrics"
	"github.com/mauv0809/ligadb/sportsdata"
)

func main() {
	// Start profiling timer
	startTime := time.Now()
	log.SetFormatter(log.JSONFormatter)
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %s", err)
	}
	level, _ := log.ParseLevel(cfg.LogLevel)
	log.SetLevel(level)

	metricsSvc := metrics.NewService()
	metricsHandler := metrics.NewMetricsHandler()

	opts := []sportsdata.Option{
		sportsdata.WithWSDLURL(cfg.Service.WSDLURL),
		sportsdata.WithHTTPClient(&http.Client{Timeout: cfg.Service.Timeout}),
		sportsdata.WithObserver(metricsSvc),
	}
	if cfg.Service.Endpoint != "" {
		opts = append(opts, sportsdata.WithEndpoint(cfg.Service.Endpoint))
	}
	client, err := sportsdata.New(opts...)
	if err != nil {
		log.Fatalf("Failed to bind to the sportsdata service: %s", err)
	}
	log.Info("Service description loaded", "wsdl", cfg.Service.WSDLURL, "duration_ms", time.Since(startTime).Milliseconds())

	s := server.NewServer(client, metricsSvc, metricsHandler, cfg)

	// --- Record startup time ---
	startupDuration := time.Since(startTime)
	metricsSvc.SetStartupTime(startupDuration.Seconds())
	log.Info("Startup time recorded", "duration_ms", startupDuration.Milliseconds())

	// --- Graceful shutdown setup ---
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Channel to listen for errors coming from the server
	serverErrors := make(chan error, 1)

	go func() {
		log.Info("Server started", "port", cfg.Port)
		serverErrors <- srv.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a signal or an error
	select {
	case err := <-serverErrors:
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	case sig := <-shutdown:
		log.Info("Shutdown signal received", "signal", sig)

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			log.Error("Server shutdown failed", "error", err)
		} else {
			log.Info("Server gracefully stopped")
		}
	}

	log.Info("Server process shutting down")
}
