package translator

import (
	"context"
	"strings"

	"github.com/pkg/errors"

	"github.com/shivashettydarshan/Document-summerize/internal/sentence"
)

// DefaultLanguage is the language summaries are produced in.
const DefaultLanguage = "en"

// languages is the fixed supported set; codes outside it are rejected.
var languages = map[string]string{
	"en": "English",
	"hi": "Hindi",
	"kn": "Kannada",
	"ta": "Tamil",
	"te": "Telugu",
	"ur": "Urdu",
}

var (
	// ErrUnsupportedLanguage means the target code is not in the supported set.
	ErrUnsupportedLanguage = errors.New("unsupported language")

	// ErrEmptyText means there was nothing to translate.
	ErrEmptyText = errors.New("no text to translate")

	// ErrTranslationFailure means the translation backend failed.
	ErrTranslationFailure = errors.New("translation failed")
)

// Supported reports whether lang is in the supported set.
func Supported(lang string) bool {
	_, ok := languages[lang]
	return ok
}

// LanguageName returns the display name of a supported language code.
func LanguageName(lang string) string {
	return languages[lang]
}

// Translate maps text into the target language and recomputes its sentence
// boundaries from the translated text. Sentence counts may differ from the
// source, so callers must never assume a 1:1 correspondence.
func (t *implTranslator) Translate(ctx context.Context, text, lang string) (*TranslatedSummary, error) {
	if !Supported(lang) {
		return nil, errors.Wrapf(ErrUnsupportedLanguage, "%q", lang)
	}
	if strings.TrimSpace(text) == "" {
		return nil, errors.Wrap(ErrEmptyText, "translate")
	}

	t.logger.Info(ctx, "Translating %d characters to %s", len(text), LanguageName(lang))

	translated, err := t.backend.Translate(ctx, text, lang)
	if err != nil {
		return nil, errors.Wrapf(ErrTranslationFailure, "%v", err)
	}

	translated = strings.TrimSpace(translated)
	boundaries := sentence.Split(translated)
	if len(boundaries) == 0 {
		return nil, errors.Wrap(ErrTranslationFailure, "backend returned no text")
	}

	return &TranslatedSummary{
		Text:           translated,
		TargetLanguage: lang,
		Boundaries:     boundaries,
	}, nil
}
