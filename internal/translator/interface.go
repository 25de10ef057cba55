package translator

import (
	"context"

	"github.com/shivashettydarshan/Document-summerize/internal/sentence"
)

// TranslatedSummary is a summary mapped into a target language. Boundaries
// are recomputed from the translated text and carry no correspondence with
// the source summary's sentence structure.
type TranslatedSummary struct {
	Text           string          `json:"text"`
	TargetLanguage string          `json:"target_language"`
	Boundaries     []sentence.Span `json:"boundaries"`
}

// Translator maps summary text into one of the supported languages.
type Translator interface {
	Translate(ctx context.Context, text, lang string) (*TranslatedSummary, error)
}

// Backend performs the raw text translation. Concrete implementation wraps
// Gemini; tests inject a fake.
type Backend interface {
	Translate(ctx context.Context, text, targetLang string) (string, error)
}
