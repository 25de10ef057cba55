package summarizer

import (
	"context"

	"github.com/shivashettydarshan/Document-summerize/internal/sentence"
)

// Summary is a condensed synopsis of a source document. Boundaries are the
// deterministic sentence spans of Text, computed by internal/sentence.
type Summary struct {
	Text       string          `json:"text"`
	Boundaries []sentence.Span `json:"boundaries"`
	Language   string          `json:"language"`
}

// Summarizer reduces normalized text to a bounded-length synopsis.
type Summarizer interface {
	// Summarize condenses text to at most maxSentences sentences. A
	// maxSentences of 0 uses the configured bound.
	Summarize(ctx context.Context, text string, maxSentences int) (*Summary, error)
}
