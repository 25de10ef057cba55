package batch

import (
	"github.com/shivashettydarshan/Document-summerize/internal/config"
	"github.com/shivashettydarshan/Document-summerize/internal/logger"
	"github.com/shivashettydarshan/Document-summerize/internal/pipeline"
)

type implProcessor struct {
	cfg      *config.Config
	pipeline pipeline.Pipeline
	logger   logger.Logger
}

// New creates a new Processor instance
func New(cfg *config.Config, pipe pipeline.Pipeline, log logger.Logger) Processor {
	return &implProcessor{
		cfg:      cfg,
		pipeline: pipe,
		logger:   log,
	}
}
