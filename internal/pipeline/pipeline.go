package pipeline

import (
	"context"
	"time"

	"github.com/pkg/errors"

	"github.com/shivashettydarshan/Document-summerize/internal/translator"
)

// ErrNoSource means the request carried neither a payload nor a URL.
var ErrNoSource = errors.New("no document or URL provided")

// Process runs the full pipeline for one request. Stages execute
// synchronously and sequentially; each consumes only the previous stage's
// output, no stage retries, and a failure returns with no partial result.
func (p *implPipeline) Process(ctx context.Context, req Request) (*Result, error) {
	startTime := time.Now()

	// Stage 1: extract
	var (
		text string
		err  error
	)
	switch {
	case len(req.Payload) > 0 || req.Filename != "":
		text, err = p.extractor.ExtractFile(ctx, req.Filename, req.Payload)
	case req.URL != "":
		text, err = p.extractor.ExtractURL(ctx, req.URL)
	default:
		return nil, ErrNoSource
	}
	if err != nil {
		return nil, err
	}

	// Stage 2: summarize
	summary, err := p.summarizer.Summarize(ctx, text, req.MaxSentences)
	if err != nil {
		return nil, err
	}

	result := &Result{Summary: summary}
	narration := summary.Text
	lang := translator.DefaultLanguage

	// Stage 3: translate (optional)
	if req.TargetLang != "" && req.TargetLang != translator.DefaultLanguage {
		translated, err := p.translator.Translate(ctx, summary.Text, req.TargetLang)
		if err != nil {
			return nil, err
		}
		result.Translated = translated
		narration = translated.Text
		lang = translated.TargetLanguage
	}

	// Stage 4: synthesize
	if !req.SkipAudio {
		asset, err := p.synthesizer.Synthesize(ctx, narration, lang, req.Voice)
		if err != nil {
			return nil, err
		}
		result.Asset = asset
	}

	p.logger.Info(ctx, "Pipeline completed in %s (%d summary sentences, translated=%v, audio=%v)",
		time.Since(startTime), len(summary.Boundaries), result.Translated != nil, result.Asset != nil)

	return result, nil
}
