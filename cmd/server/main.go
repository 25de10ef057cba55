package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/shivashettydarshan/Document-summerize/internal/batch"
	"github.com/shivashettydarshan/Document-summerize/internal/config"
	"github.com/shivashettydarshan/Document-summerize/internal/extractor"
	"github.com/shivashettydarshan/Document-summerize/internal/logger"
	"github.com/shivashettydarshan/Document-summerize/internal/pipeline"
	"github.com/shivashettydarshan/Document-summerize/internal/server"
	"github.com/shivashettydarshan/Document-summerize/internal/speech"
	"github.com/shivashettydarshan/Document-summerize/internal/summarizer"
	"github.com/shivashettydarshan/Document-summerize/internal/translator"
	"github.com/shivashettydarshan/Document-summerize/internal/watcher"
	"github.com/shivashettydarshan/Document-summerize/pkg/executor"
)

func main() {
	ctx := context.Background()

	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg, err := config.Load("config.yaml")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.NewWithFormat(cfg.Logging.Level, cfg.Logging.Format)
	log.Info(ctx, "========================================")
	log.Info(ctx, "Document Summarization Service")
	log.Info(ctx, "========================================")
	log.Info(ctx, "Listening on: %s", cfg.Server.Address)
	log.Info(ctx, "Summary bound: %d sentences", cfg.Summary.MaxSentences)
	log.Info(ctx, "Configuration loaded successfully")

	if err := ensureDirectories(cfg); err != nil {
		log.Error(ctx, "Failed to create directories: %v", err)
		os.Exit(1)
	}

	geminiKeys := splitKeys(os.Getenv("GEMINI_API_KEYS"))
	if len(geminiKeys) == 0 {
		log.Warn(ctx, "GEMINI_API_KEYS not set; summaries are extractive only and translation is disabled")
	}

	exec := executor.New()
	ext := extractor.New(log)
	sum := summarizer.New(cfg, geminiKeys, log)
	tr := translator.New(translator.NewGeminiBackend(geminiKeys, cfg.Gemini.Model, log), log)

	ttsBackend, err := speech.NewOpenAIBackend(os.Getenv("OPENAI_API_KEY"), cfg.TTS)
	if err != nil {
		log.Error(ctx, "Failed to create speech backend: %v", err)
		os.Exit(1)
	}
	syn := speech.New(cfg, ttsBackend, cfg.Paths.Uploads, exec, log)

	pipe := pipeline.New(ext, sum, tr, syn, log)
	srv := server.New(cfg, log, ext, sum, tr, syn, pipe)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	errChan := make(chan error, 2)

	if cfg.BatchEnabled() {
		proc := batch.New(cfg, pipe, log)
		w, err := watcher.New(cfg.Paths.Inbox, proc.Process, log, cfg.Performance.MaxConcurrent)
		if err != nil {
			log.Error(ctx, "Failed to create inbox watcher: %v", err)
			os.Exit(1)
		}
		defer w.Stop()

		go func() {
			if err := w.Start(ctx); err != nil && err != context.Canceled {
				errChan <- err
			}
		}()
		log.Info(ctx, "Batch inbox: %s -> %s", cfg.Paths.Inbox, cfg.Paths.Output)
	}

	go func() {
		if err := srv.Listen(); err != nil {
			errChan <- err
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	log.Info(ctx, "Service is ready, press Ctrl+C to stop")

	select {
	case <-sigChan:
		log.Info(ctx, "Shutdown signal received")
	case err := <-errChan:
		log.Error(ctx, "Service error: %v", err)
	}

	log.Info(ctx, "Shutting down gracefully...")
	cancel()
	if err := srv.Shutdown(); err != nil {
		log.Error(ctx, "Server shutdown: %v", err)
	}

	log.Info(ctx, "Service stopped")
}

// ensureDirectories creates required directories if they don't exist
func ensureDirectories(cfg *config.Config) error {
	dirs := []string{cfg.Paths.Uploads}
	if cfg.BatchEnabled() {
		dirs = append(dirs, cfg.Paths.Inbox, cfg.Paths.Output)
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}

	return nil
}

func splitKeys(raw string) []string {
	var keys []string
	for _, k := range strings.Split(raw, ",") {
		if k = strings.TrimSpace(k); k != "" {
			keys = append(keys, k)
		}
	}
	return keys
}
