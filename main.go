package main

import (
	"net/http"
	"os"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	cfg := config()
	cfg.logger.Debug("configuration loaded")

	scheduler := NewScheduler(cfg, cfg.autoRefreshInterval)
	cfg.logger.Info("starting scheduler", "refresh", cfg.autoRefreshInterval.String())
	scheduler.Start()

	mux := http.NewServeMux()

	mux.HandleFunc("/api/weather", cfg.handlerWeather)
	mux.HandleFunc("/api/locations", cfg.handlerLocations)
	mux.HandleFunc("/api/select", cfg.handlerSelect)
	mux.HandleFunc("/api/refresh", cfg.handlerRefresh)
	mux.Handle("/metrics", promhttp.Handler())

	if cfg.devMode {
		cfg.logger.Debug("development mode enabled. Registering /dev/reset endpoint.")
		mux.HandleFunc("/dev/reset", cfg.handlerReset)
	}

	server := &http.Server{
		Addr:    ":" + cfg.port,
		Handler: corsMiddleware(metricsMiddleware(mux)),
	}

	cfg.logger.Info("starting server", "port", cfg.port)
	err := server.ListenAndServe()
	if err != nil {
		cfg.logger.Error("server startup failed", "error", err)
		os.Exit(1)
	}
}
