package translator

import (
	"github.com/shivashettydarshan/Document-summerize/internal/logger"
)

type implTranslator struct {
	backend Backend
	logger  logger.Logger
}

// New creates a Translator using the given translation backend.
func New(backend Backend, log logger.Logger) Translator {
	return &implTranslator{
		backend: backend,
		logger:  log,
	}
}
