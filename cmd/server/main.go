package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pardivkamishetty/outliner/internal/api"
	"github.com/pardivkamishetty/outliner/internal/config"
	"github.com/pardivkamishetty/outliner/internal/pipeline"
	"github.com/pardivkamishetty/outliner/internal/schema"
	"github.com/pardivkamishetty/outliner/internal/sink"
	"github.com/pardivkamishetty/outliner/internal/stats"
)

func main() {
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	cfg := config.Load()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Choose the delivery sink: webhook when configured, otherwise a
	// local output directory.
	var out sink.Sink
	var webhook *sink.WebhookSink
	if cfg.WebhookURL != "" {
		webhook = sink.NewWebhookSink(cfg.WebhookURL, cfg.WebhookAPIKey)
		out = webhook
		log.Info("delivering outlines via webhook", "url", cfg.WebhookURL)
	} else {
		dirSink, err := sink.NewDirectorySink(cfg.OutputDir)
		if err != nil {
			log.Error("output directory unavailable", "dir", cfg.OutputDir, "error", err)
			os.Exit(1)
		}
		out = dirSink
		log.Info("delivering outlines to directory", "dir", cfg.OutputDir)
	}

	// Initialize pipeline.
	extractStats := stats.NewExtractStats(cfg.StatsWindow)
	orch := pipeline.NewOrchestrator(cfg, &schema.Contract{}, out, extractStats, log)
	orch.Start(ctx)

	// Initialize HTTP server.
	srv := api.NewServer(orch, log, cfg)

	httpServer := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      srv,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown.
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		log.Info("shutting down...")

		// Drain HTTP first so no handler submits into a stopping pipeline.
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		httpServer.Shutdown(shutdownCtx)

		orch.Stop()

		if webhook != nil {
			webhook.Close()
		}
	}()

	log.Info("starting outliner", "port", cfg.Port)
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error("server error", "error", err)
		os.Exit(1)
	}
}
