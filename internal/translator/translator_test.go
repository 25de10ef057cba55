package translator

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/shivashettydarshan/Document-summerize/internal/logger"
)

// fakeBackend returns a canned translation or error.
type fakeBackend struct {
	result string
	err    error
	calls  int
}

func (f *fakeBackend) Translate(ctx context.Context, text, targetLang string) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return f.result, nil
}

func TestTranslateUnsupportedLanguage(t *testing.T) {
	ctx := context.Background()
	backend := &fakeBackend{result: "irrelevant"}
	tr := New(backend, logger.New("error"))

	for _, lang := range []string{"fr", "xx", ""} {
		_, err := tr.Translate(ctx, "Some summary text.", lang)
		if !errors.Is(err, ErrUnsupportedLanguage) {
			t.Errorf("Translate(lang=%q) error = %v, want ErrUnsupportedLanguage", lang, err)
		}
	}
	if backend.calls != 0 {
		t.Errorf("backend called %d times for unsupported languages, want 0", backend.calls)
	}
}

func TestTranslateBackendFailure(t *testing.T) {
	ctx := context.Background()
	backend := &fakeBackend{err: fmt.Errorf("quota exceeded")}
	tr := New(backend, logger.New("error"))

	_, err := tr.Translate(ctx, "Some summary text.", "hi")
	if !errors.Is(err, ErrTranslationFailure) {
		t.Fatalf("Translate() error = %v, want ErrTranslationFailure", err)
	}
}

func TestTranslateRecomputesBoundaries(t *testing.T) {
	ctx := context.Background()
	// Translation merges two source sentences into three target sentences.
	backend := &fakeBackend{result: "Pehla vakya. Doosra vakya. Teesra vakya."}
	tr := New(backend, logger.New("error"))

	got, err := tr.Translate(ctx, "Paris is the capital of France. It is known for its art.", "hi")
	if err != nil {
		t.Fatalf("Translate() error = %v", err)
	}

	if got.TargetLanguage != "hi" {
		t.Errorf("TargetLanguage = %q, want hi", got.TargetLanguage)
	}
	if len(got.Boundaries) != 3 {
		t.Errorf("boundary count = %d, want 3 (recomputed from translated text)", len(got.Boundaries))
	}
	if got.Boundaries[0].Start != 0 || got.Boundaries[len(got.Boundaries)-1].End != len(got.Text) {
		t.Errorf("boundaries do not cover translated text: %v", got.Boundaries)
	}
}

func TestSupported(t *testing.T) {
	for _, lang := range []string{"en", "hi", "kn", "ta", "te", "ur"} {
		if !Supported(lang) {
			t.Errorf("Supported(%q) = false, want true", lang)
		}
		if LanguageName(lang) == "" {
			t.Errorf("LanguageName(%q) is empty", lang)
		}
	}
	if Supported("de") {
		t.Error("Supported(de) = true, want false")
	}
}

func TestGeminiKeyRotationConcurrent(t *testing.T) {
	b := NewGeminiBackend([]string{"k1", "k2", "k3"}, "model", logger.New("error")).(*geminiBackend)

	const rotations = 50
	var wg sync.WaitGroup
	for range rotations {
		wg.Add(1)
		go func() {
			defer wg.Done()
			b.activeKey()
			b.rotateKey()
		}()
	}
	wg.Wait()

	// Every rotation must land: 50 increments over 3 keys.
	if _, slot := b.activeKey(); slot != rotations%3 {
		t.Errorf("key slot = %d after %d rotations, want %d", slot, rotations, rotations%3)
	}
}

func TestTranslateEmptyText(t *testing.T) {
	ctx := context.Background()
	backend := &fakeBackend{result: "irrelevant"}
	tr := New(backend, logger.New("error"))

	for _, text := range []string{"", "   ", "\n\t"} {
		_, err := tr.Translate(ctx, text, "hi")
		if !errors.Is(err, ErrEmptyText) {
			t.Errorf("Translate(text=%q) error = %v, want ErrEmptyText", text, err)
		}
	}
	if backend.calls != 0 {
		t.Errorf("backend called %d times for empty text, want 0", backend.calls)
	}
}
