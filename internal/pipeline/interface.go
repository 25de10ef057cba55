package pipeline

import (
	"context"

	"github.com/shivashettydarshan/Document-summerize/internal/speech"
	"github.com/shivashettydarshan/Document-summerize/internal/summarizer"
	"github.com/shivashettydarshan/Document-summerize/internal/translator"
)

// Request describes one pipeline invocation. Exactly one of Payload or URL
// provides the source document.
type Request struct {
	Filename     string
	Payload      []byte
	URL          string
	TargetLang   string // empty or the default language skips translation
	Voice        string // empty selects the configured default
	MaxSentences int    // 0 uses the configured bound
	SkipAudio    bool
}

// Result carries the output of every executed stage.
type Result struct {
	Summary    *summarizer.Summary
	Translated *translator.TranslatedSummary
	Asset      *speech.AudioAsset
}

// Pipeline runs the stages extract -> summarize -> translate -> synthesize
// strictly in order; the first stage failure terminates the request.
type Pipeline interface {
	Process(ctx context.Context, req Request) (*Result, error)
}
