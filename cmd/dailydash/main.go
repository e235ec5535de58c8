package main

import (
	"encoding/json"
	"net/http"
	"os"

	"github.com/deusflow/dailydash/internal/app"
	"github.com/deusflow/dailydash/internal/logger"
	"github.com/deusflow/dailydash/internal/metrics"
)

func main() {
	if os.Getenv("ENABLE_HTTP_MONITORING") == "true" {
		go startMonitoringServer()
	}

	if err := app.Run(); err != nil {
		logger.Error("Dashboard build failed", "error", err)
		os.Exit(1)
	}
}

// startMonitoringServer exposes /health and /metrics for deployments that
// want to probe the builder from outside.
func startMonitoringServer() {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	http.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		stats := metrics.Global.GetStats()
		w.Header().Set("Content-Type", "application/json")
		if healthy, ok := stats["is_healthy"].(bool); ok && !healthy {
			w.WriteHeader(http.StatusServiceUnavailable)
		}
		json.NewEncoder(w).Encode(map[string]interface{}{
			"status":   "ok",
			"last_run": stats["last_run_time"],
		})
	})

	http.HandleFunc("/metrics", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(metrics.Global.GetStats())
	})

	logger.Info("Monitoring server listening", "port", port)
	if err := http.ListenAndServe(":"+port, nil); err != nil {
		logger.Error("Monitoring server stopped", "error", err)
	}
}
