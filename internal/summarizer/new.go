package summarizer

import (
	"sync"

	"github.com/shivashettydarshan/Document-summerize/internal/config"
	"github.com/shivashettydarshan/Document-summerize/internal/logger"
)

type implSummarizer struct {
	cfg     config.SummaryConfig
	apiKeys []string
	model   string
	logger  logger.Logger

	// Shared across concurrent Summarize calls.
	mu         sync.Mutex
	currentKey int
}

// New creates a Summarizer. When apiKeys is non-empty the extractive synopsis
// is refined through Gemini, rotating through the supplied keys; otherwise
// the summarizer is fully offline.
func New(cfg *config.Config, apiKeys []string, log logger.Logger) Summarizer {
	return &implSummarizer{
		cfg:     cfg.Summary,
		apiKeys: apiKeys,
		model:   cfg.Gemini.Model,
		logger:  log,
	}
}
