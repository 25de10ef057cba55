package speech

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/shivashettydarshan/Document-summerize/internal/sentence"
)

// minSentenceMs floors very short sentences so starts stay strictly increasing.
const minSentenceMs = 300

// estimateTimings builds an APPROXIMATE per-sentence timing table from a
// speech-rate heuristic: each sentence's duration is proportional to its rune
// length at charsPerSecond, scaled by the synthesis speed. Sentences are laid
// out contiguously from 0, so StartMs is strictly increasing and
// EndMs[i] == StartMs[i+1]. Identical input yields an identical table.
func estimateTimings(text string, boundaries []sentence.Span, charsPerSecond, speed float64) []SentenceTiming {
	if charsPerSecond <= 0 {
		charsPerSecond = 15
	}
	if speed <= 0 {
		speed = 1.0
	}

	timings := make([]SentenceTiming, 0, len(boundaries))
	var cursor int64

	for i, sp := range boundaries {
		runes := utf8.RuneCountInString(sentence.Slice(text, sp))
		durMs := int64(float64(runes) * 1000.0 / (charsPerSecond * speed))
		if durMs < minSentenceMs {
			durMs = minSentenceMs
		}
		timings = append(timings, SentenceTiming{
			Index:   i,
			StartMs: cursor,
			EndMs:   cursor + durMs,
		})
		cursor += durMs
	}

	return timings
}

// rescaleTimings stretches an estimated table so it spans totalMs, keeping
// the proportional split and the table invariants intact.
func rescaleTimings(timings []SentenceTiming, totalMs int64) []SentenceTiming {
	if len(timings) == 0 || totalMs <= 0 {
		return timings
	}

	estTotal := timings[len(timings)-1].EndMs
	if estTotal <= 0 {
		return timings
	}

	scale := float64(totalMs) / float64(estTotal)
	out := make([]SentenceTiming, len(timings))
	var prevStart int64 = -1

	for i, tm := range timings {
		start := int64(float64(tm.StartMs) * scale)
		if start <= prevStart {
			start = prevStart + 1
		}
		out[i] = SentenceTiming{Index: tm.Index, StartMs: start}
		if i > 0 {
			out[i-1].EndMs = start
		}
		prevStart = start
	}
	out[len(out)-1].EndMs = totalMs
	if out[len(out)-1].EndMs <= out[len(out)-1].StartMs {
		out[len(out)-1].EndMs = out[len(out)-1].StartMs + 1
	}

	return out
}

// probeDurationMs measures the audio duration with ffprobe. Missing ffprobe
// is not an error worth failing the request for; callers fall back to the
// heuristic table.
func (s *implSynthesizer) probeDurationMs(ctx context.Context, path string) (int64, error) {
	out, err := s.executor.Execute(ctx, s.cfg.FFprobePath,
		"-v", "error",
		"-show_entries", "format=duration",
		"-of", "default=noprint_wrappers=1:nokey=1",
		path,
	)
	if err != nil {
		return 0, err
	}

	seconds, err := strconv.ParseFloat(strings.TrimSpace(out), 64)
	if err != nil {
		return 0, fmt.Errorf("parse ffprobe output %q: %w", out, err)
	}

	return int64(seconds * 1000), nil
}
