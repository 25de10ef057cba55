package speech

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/shivashettydarshan/Document-summerize/internal/sentence"
)

// voices is the fixed voice set exposed by the backend.
var voices = map[string]bool{
	"alloy":   true,
	"echo":    true,
	"fable":   true,
	"onyx":    true,
	"nova":    true,
	"shimmer": true,
}

// SupportedVoice reports whether voice is in the fixed set. An empty voice
// selects the configured default.
func SupportedVoice(voice string) bool {
	return voices[voice]
}

// Synthesize renders text into an mp3 plus a per-sentence timing table. The
// backend exposes no per-sentence timestamps, so the table is estimated from
// sentence lengths at the configured speech rate; see estimateTimings. The
// table is therefore an approximation, not measured timing.
func (s *implSynthesizer) Synthesize(ctx context.Context, text, lang, voice string) (*AudioAsset, error) {
	if voice == "" {
		voice = s.cfg.Voice
	}
	if !SupportedVoice(voice) {
		return nil, errors.Wrapf(ErrUnsupportedVoice, "%q", voice)
	}

	text = strings.TrimSpace(text)
	boundaries := sentence.Split(text)
	if len(boundaries) == 0 {
		return nil, errors.Wrap(ErrSynthesisFailure, "no text to speak")
	}

	s.logger.Info(ctx, "Synthesizing %d sentences (%d characters, voice %s)", len(boundaries), len(text), voice)

	data, err := s.backend.Synthesize(ctx, text, voice)
	if err != nil {
		return nil, errors.Wrapf(ErrSynthesisFailure, "%v", err)
	}
	if len(data) == 0 {
		return nil, errors.Wrap(ErrSynthesisFailure, "backend returned no audio")
	}

	id := uuid.New().String()
	fileName := fmt.Sprintf("speech_%s.mp3", strings.ReplaceAll(id, "-", ""))

	diskPath, err := s.store.Save(data, fileName)
	if err != nil {
		return nil, errors.Wrapf(ErrSynthesisFailure, "save audio: %v", err)
	}

	timings := estimateTimings(text, boundaries, s.cfg.CharsPerSecond, s.cfg.Speed)

	// Prefer the real audio duration when ffprobe can measure it; the
	// per-sentence split stays proportional, still an approximation.
	if totalMs, err := s.probeDurationMs(ctx, diskPath); err == nil && totalMs > 0 {
		timings = rescaleTimings(timings, totalMs)
	} else if err != nil {
		s.logger.Debug(ctx, "ffprobe unavailable, keeping estimated timings: %v", err)
	}

	s.logger.Info(ctx, "Audio asset %s generated: %s", id, diskPath)

	return &AudioAsset{
		ID:         id,
		AudioPath:  "/uploads/" + fileName,
		Text:       text,
		Language:   lang,
		Voice:      voice,
		Boundaries: boundaries,
		Timings:    timings,
	}, nil
}
