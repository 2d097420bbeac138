package main

import (
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/andy6609/room-chat-server/internal/chat"
	"github.com/andy6609/room-chat-server/internal/config"
)

const version = "1.0.0"

func main() {
	// Load local .env (dev only)
	_ = godotenv.Load()
	cfg := config.Load()

	addr := flag.String("addr", cfg.Addr, "chat listen address")
	metricsAddr := flag.String("metrics-addr", cfg.MetricsAddr, "metrics listen address")
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println("room-chat-server version", version)
		return
	}
	cfg.Addr = *addr
	cfg.MetricsAddr = *metricsAddr

	logger := newLogger(cfg.Env)

	srv := chat.NewServer(cfg, logger)
	if err := srv.Start(); err != nil {
		logger.Error("failed to start server", "error", err)
		os.Exit(1)
	}

	go serveMetrics(cfg.MetricsAddr, logger)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	srv.Stop()
}

// newLogger picks the handler by env: prod gets JSON at info level, anything
// else gets text at debug level.
func newLogger(env string) *slog.Logger {
	var handler slog.Handler
	if env == "prod" {
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})
	} else {
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug})
	}
	return slog.New(handler)
}

func serveMetrics(addr string, logger *slog.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("metrics endpoint failed", "error", err)
	}
}
