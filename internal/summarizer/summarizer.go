package summarizer

import (
	"context"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/pkg/errors"

	"github.com/shivashettydarshan/Document-summerize/internal/sentence"
)

// Summarize condenses text with an extractive sentence scorer and, when
// Gemini keys are configured, refines the result through the model. Sentence
// boundaries of the returned Summary always come from the deterministic
// splitter, never from the model.
func (s *implSummarizer) Summarize(ctx context.Context, text string, maxSentences int) (*Summary, error) {
	if maxSentences <= 0 {
		maxSentences = s.cfg.MaxSentences
	}

	candidates := s.candidates(text)
	if len(candidates) == 0 {
		return nil, errors.Wrap(ErrEmptyInput, "summarize")
	}

	selected := selectSentences(candidates, maxSentences)
	summaryText := strings.Join(selected, " ")

	if len(s.apiKeys) > 0 {
		refined, err := s.refine(ctx, text, maxSentences)
		if err != nil {
			return nil, err
		}
		summaryText = refined
	}

	summaryText = strings.TrimSpace(summaryText)
	boundaries := sentence.Split(summaryText)
	if len(boundaries) == 0 {
		return nil, errors.Wrap(ErrEmptyInput, "summarize")
	}

	s.logger.Info(ctx, "Summary produced: %d of %d sentences", len(boundaries), len(candidates))

	return &Summary{
		Text:       summaryText,
		Boundaries: boundaries,
		Language:   "source",
	}, nil
}

// candidates returns the trimmed sentences of text that are long enough to
// carry content.
func (s *implSummarizer) candidates(text string) []string {
	var out []string
	for _, sent := range sentence.Sentences(text) {
		if utf8.RuneCountInString(sent) >= s.cfg.MinSentenceRunes {
			out = append(out, sent)
		}
	}
	return out
}

// selectSentences scores every candidate by content-word frequency with a
// positional boost for the opening and closing of the document, then emits
// the strongest min(max(3, 25%), maxSentences) sentences in document order.
// Ties break on document position, so identical input picks identically.
func selectSentences(candidates []string, maxSentences int) []string {
	weights := contentWordWeights(candidates)

	type scored struct {
		index int
		score float64
	}

	scores := make([]scored, len(candidates))
	for i, sent := range candidates {
		words := strings.Fields(strings.ToLower(sent))
		var score float64
		for _, w := range words {
			score += weights[stripPunct(w)]
		}
		score *= 0.6
		if float64(i) < float64(len(candidates))*0.1 || float64(i) > float64(len(candidates))*0.9 {
			score += 0.2
		}
		if len(words) > 0 {
			score /= float64(len(words))
		}
		scores[i] = scored{index: i, score: score}
	}

	n := len(candidates) / 4
	if n < 3 {
		n = 3
	}
	if n > maxSentences {
		n = maxSentences
	}
	if n > len(candidates) {
		n = len(candidates)
	}

	sort.SliceStable(scores, func(i, j int) bool {
		if scores[i].score != scores[j].score {
			return scores[i].score > scores[j].score
		}
		return scores[i].index < scores[j].index
	})

	top := scores[:n]
	sort.Slice(top, func(i, j int) bool { return top[i].index < top[j].index })

	out := make([]string, 0, n)
	for _, sc := range top {
		out = append(out, candidates[sc.index])
	}
	return out
}

// contentWordWeights assigns each non-stopword alphabetic token a weight
// proportional to its frequency across the document.
func contentWordWeights(sentences []string) map[string]float64 {
	weights := make(map[string]float64)
	for _, sent := range sentences {
		for _, w := range strings.Fields(strings.ToLower(sent)) {
			w = stripPunct(w)
			if w == "" || stopwords[w] || !isAlpha(w) {
				continue
			}
			weights[w] += 0.1
		}
	}
	return weights
}

func stripPunct(w string) string {
	return strings.TrimFunc(w, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})
}

func isAlpha(w string) bool {
	for _, r := range w {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}
