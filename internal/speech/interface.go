package speech

import (
	"context"

	"github.com/shivashettydarshan/Document-summerize/internal/sentence"
)

// SentenceTiming locates one sentence of the narrated text on the audio
// timeline. StartMs is strictly increasing across the table and EndMs never
// crosses the next sentence's start.
type SentenceTiming struct {
	Index   int   `json:"index"`
	StartMs int64 `json:"start_ms"`
	EndMs   int64 `json:"end_ms"`
}

// AudioAsset is one narration of one text artifact. Producing a new asset
// replaces the prior one wholesale; timing tables are never merged.
type AudioAsset struct {
	ID         string           `json:"asset_id"`
	AudioPath  string           `json:"audio_path"`
	Text       string           `json:"-"`
	Language   string           `json:"language"`
	Voice      string           `json:"voice"`
	Boundaries []sentence.Span  `json:"boundaries"`
	Timings    []SentenceTiming `json:"timings"`
}

// Synthesizer renders a text artifact into an audio asset with a
// per-sentence timing table.
type Synthesizer interface {
	Synthesize(ctx context.Context, text, lang, voice string) (*AudioAsset, error)
}

// Backend converts text into raw audio bytes. Concrete implementation wraps
// the OpenAI speech endpoint; tests inject a fake.
type Backend interface {
	Synthesize(ctx context.Context, text, voice string) ([]byte, error)
}
