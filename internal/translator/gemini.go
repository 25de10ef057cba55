package translator

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"google.golang.org/genai"

	"github.com/shivashettydarshan/Document-summerize/internal/logger"
)

const translatePrompt = `Translate the following text into %s.

Requirements:
- Output only the translation, nothing else
- Keep sentence punctuation so sentences stay clearly delimited
- Do not add markdown or commentary

Text:
---
%s
---`

type geminiBackend struct {
	apiKeys []string
	model   string
	logger  logger.Logger

	// Handlers call Translate from concurrent goroutines; the rotation
	// counter is shared across all of them.
	mu         sync.Mutex
	currentKey int
}

// NewGeminiBackend creates a translation Backend that rotates through the
// supplied Gemini API keys.
func NewGeminiBackend(apiKeys []string, model string, log logger.Logger) Backend {
	return &geminiBackend{
		apiKeys: apiKeys,
		model:   model,
		logger:  log,
	}
}

// Translate sends the text to Gemini and returns the translated text.
// Rotates API keys on 429 / quota errors.
func (b *geminiBackend) Translate(ctx context.Context, text, targetLang string) (string, error) {
	if len(b.apiKeys) == 0 {
		return "", fmt.Errorf("no Gemini API keys configured")
	}

	prompt := fmt.Sprintf(translatePrompt, LanguageName(targetLang), text)

	attempts := len(b.apiKeys)
	var lastErr error

	for range attempts {
		key, slot := b.activeKey()

		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  key,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			lastErr = fmt.Errorf("create client: %w", err)
			b.rotateKey()
			continue
		}

		result, err := client.Models.GenerateContent(ctx, b.model, genai.Text(prompt), nil)
		if err != nil {
			errMsg := err.Error()
			if strings.Contains(errMsg, "429") || strings.Contains(errMsg, "quota") || strings.Contains(errMsg, "RESOURCE_EXHAUSTED") {
				b.logger.Warn(ctx, "Key %d rate limited, rotating...", slot+1)
				b.rotateKey()
				lastErr = err
				continue
			}
			return "", fmt.Errorf("generate content: %w", err)
		}

		if result != nil && len(result.Candidates) > 0 && result.Candidates[0].Content != nil {
			var out string
			for _, part := range result.Candidates[0].Content.Parts {
				if part.Text != "" {
					out += part.Text
				}
			}
			if strings.TrimSpace(out) != "" {
				return out, nil
			}
		}

		return "", fmt.Errorf("empty response from Gemini")
	}

	return "", fmt.Errorf("all API keys exhausted: %w", lastErr)
}

func (b *geminiBackend) activeKey() (string, int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.apiKeys[b.currentKey], b.currentKey
}

func (b *geminiBackend) rotateKey() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.currentKey = (b.currentKey + 1) % len(b.apiKeys)
}
