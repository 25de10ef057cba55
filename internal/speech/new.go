package speech

import (
	"github.com/shivashettydarshan/Document-summerize/internal/config"
	"github.com/shivashettydarshan/Document-summerize/internal/logger"
	"github.com/shivashettydarshan/Document-summerize/pkg/executor"
)

type implSynthesizer struct {
	cfg      config.TTSConfig
	backend  Backend
	store    *fileStore
	executor executor.Executor
	logger   logger.Logger
}

// New creates a Synthesizer that saves audio under uploadsDir. The executor
// is used for the optional ffprobe duration probe; pass the default executor
// in production.
func New(cfg *config.Config, backend Backend, uploadsDir string, exec executor.Executor, log logger.Logger) Synthesizer {
	return &implSynthesizer{
		cfg:      cfg.TTS,
		backend:  backend,
		store:    newFileStore(uploadsDir),
		executor: exec,
		logger:   log,
	}
}
