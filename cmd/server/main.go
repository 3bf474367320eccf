package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"astrolink/internal/config"
	"astrolink/internal/metrics"
	"astrolink/internal/nasa"
	"astrolink/internal/resolver"
	"astrolink/internal/server"
)

func main() {
	cfg := config.Load()

	metrics.Init()

	// Optional YAML overrides for upstream hosts and timeouts
	providers, err := config.LoadProviders()
	if err != nil {
		log.Fatalf("Failed to load provider config: %v", err)
	}

	endpoints := nasa.DefaultEndpoints()
	var timeouts map[nasa.Kind]time.Duration
	if providers != nil {
		endpoints = endpoints.ApplyOverrides(providers.Endpoints)
		if len(providers.Timeouts) > 0 {
			timeouts = make(map[nasa.Kind]time.Duration, len(providers.Timeouts))
			for kind, seconds := range providers.Timeouts {
				timeouts[nasa.Kind(kind)] = time.Duration(seconds) * time.Second
			}
		}
		log.Println("Provider overrides loaded")
	}

	client := nasa.NewClient(cfg.NASAAPIKey, endpoints)
	res := resolver.New(client, timeouts)

	srv := server.New(cfg)
	srv.RegisterRoutes(res)

	// Graceful shutdown
	go func() {
		if err := srv.Start(); err != nil {
			log.Printf("Server error: %v", err)
		}
	}()

	log.Printf("Server started on %s", cfg.ServerAddr)
	if cfg.NASAAPIKey == config.DefaultAPIKey {
		log.Println("Using the built-in shared API key; set NASA_API_KEY for your own quota")
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	if err := srv.Shutdown(); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}
	log.Println("Server exited")
}
