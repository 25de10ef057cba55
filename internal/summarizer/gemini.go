package summarizer

import (
	"context"
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"google.golang.org/genai"
)

const refinePrompt = `You are a document analyst. Condense the following document into at most %d sentences of plain prose.

Requirements:
- Write complete sentences ending with a period
- Keep the original order of ideas
- No markdown, no headings, no bullet points, no preamble
- Preserve key names, figures and dates

Document:
---
%s
---`

// refine sends the document to Gemini and returns the condensed text.
// Rotates API keys on 429 / quota errors.
func (s *implSummarizer) refine(ctx context.Context, text string, maxSentences int) (string, error) {
	prompt := fmt.Sprintf(refinePrompt, maxSentences, text)

	attempts := len(s.apiKeys)
	var lastErr error

	for range attempts {
		key, slot := s.activeKey()

		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  key,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			lastErr = fmt.Errorf("create client: %w", err)
			s.rotateKey()
			continue
		}

		result, err := client.Models.GenerateContent(ctx, s.model, genai.Text(prompt), nil)
		if err != nil {
			errMsg := err.Error()
			if strings.Contains(errMsg, "429") || strings.Contains(errMsg, "quota") || strings.Contains(errMsg, "RESOURCE_EXHAUSTED") {
				s.logger.Warn(ctx, "Key %d rate limited, rotating...", slot+1)
				s.rotateKey()
				lastErr = err
				continue
			}
			return "", errors.Wrapf(ErrModelFailure, "generate content: %v", err)
		}

		if result != nil && len(result.Candidates) > 0 && result.Candidates[0].Content != nil {
			var out string
			for _, part := range result.Candidates[0].Content.Parts {
				if part.Text != "" {
					out += part.Text
				}
			}
			if strings.TrimSpace(out) != "" {
				return strings.TrimSpace(out), nil
			}
		}

		return "", errors.Wrap(ErrModelFailure, "empty response from Gemini")
	}

	return "", errors.Wrapf(ErrModelFailure, "all API keys exhausted: %v", lastErr)
}

func (s *implSummarizer) activeKey() (string, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.apiKeys[s.currentKey], s.currentKey
}

func (s *implSummarizer) rotateKey() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.currentKey = (s.currentKey + 1) % len(s.apiKeys)
}
