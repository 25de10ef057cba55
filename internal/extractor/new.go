package extractor

import (
	"net/http"
	"time"

	"github.com/shivashettydarshan/Document-summerize/internal/logger"
)

type implExtractor struct {
	logger logger.Logger
	client *http.Client
}

// New creates a new Extractor instance
func New(log logger.Logger) Extractor {
	return &implExtractor{
		logger: log,
		client: &http.Client{Timeout: 30 * time.Second},
	}
}
