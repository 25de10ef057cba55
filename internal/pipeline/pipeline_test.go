package pipeline

import (
	"context"
	"errors"
	"testing"

	"github.com/shivashettydarshan/Document-summerize/internal/logger"
	"github.com/shivashettydarshan/Document-summerize/internal/sentence"
	"github.com/shivashettydarshan/Document-summerize/internal/speech"
	"github.com/shivashettydarshan/Document-summerize/internal/summarizer"
	"github.com/shivashettydarshan/Document-summerize/internal/translator"
)

type fakeExtractor struct {
	text  string
	err   error
	calls int
}

func (f *fakeExtractor) ExtractFile(ctx context.Context, filename string, data []byte) (string, error) {
	f.calls++
	return f.text, f.err
}

func (f *fakeExtractor) ExtractURL(ctx context.Context, rawURL string) (string, error) {
	f.calls++
	return f.text, f.err
}

type fakeSummarizer struct {
	err   error
	calls int
}

func (f *fakeSummarizer) Summarize(ctx context.Context, text string, maxSentences int) (*summarizer.Summary, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return &summarizer.Summary{Text: text, Boundaries: sentence.Split(text), Language: "source"}, nil
}

type fakeTranslator struct {
	err   error
	calls int
}

func (f *fakeTranslator) Translate(ctx context.Context, text, lang string) (*translator.TranslatedSummary, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	translated := "Anuvadit vakya hai."
	return &translator.TranslatedSummary{Text: translated, TargetLanguage: lang, Boundaries: sentence.Split(translated)}, nil
}

type fakeSynthesizer struct {
	err      error
	calls    int
	lastText string
}

func (f *fakeSynthesizer) Synthesize(ctx context.Context, text, lang, voice string) (*speech.AudioAsset, error) {
	f.calls++
	f.lastText = text
	if f.err != nil {
		return nil, f.err
	}
	spans := sentence.Split(text)
	timings := make([]speech.SentenceTiming, len(spans))
	for i := range spans {
		timings[i] = speech.SentenceTiming{Index: i, StartMs: int64(i * 1000), EndMs: int64((i + 1) * 1000)}
	}
	return &speech.AudioAsset{ID: "asset", AudioPath: "/uploads/a.mp3", Text: text, Language: lang, Boundaries: spans, Timings: timings}, nil
}

func newFakes() (*fakeExtractor, *fakeSummarizer, *fakeTranslator, *fakeSynthesizer) {
	return &fakeExtractor{text: "Paris is the capital of France. It is known for its art."},
		&fakeSummarizer{}, &fakeTranslator{}, &fakeSynthesizer{}
}

func TestProcessFullRun(t *testing.T) {
	ext, sum, tr, syn := newFakes()
	p := New(ext, sum, tr, syn, logger.New("error"))

	res, err := p.Process(context.Background(), Request{Filename: "doc.txt", Payload: []byte("x"), TargetLang: "hi"})
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}

	if res.Summary == nil || res.Translated == nil || res.Asset == nil {
		t.Fatalf("incomplete result: %+v", res)
	}
	if syn.lastText != res.Translated.Text {
		t.Errorf("synthesizer narrated %q, want the translated text %q", syn.lastText, res.Translated.Text)
	}
	if res.Asset.Language != "hi" {
		t.Errorf("asset language = %q, want hi", res.Asset.Language)
	}
}

func TestProcessSkipsTranslationForDefaultLanguage(t *testing.T) {
	ext, sum, tr, syn := newFakes()
	p := New(ext, sum, tr, syn, logger.New("error"))

	res, err := p.Process(context.Background(), Request{URL: "https://example.com/a", TargetLang: "en"})
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}
	if tr.calls != 0 {
		t.Errorf("translator called %d times for the default language", tr.calls)
	}
	if res.Translated != nil {
		t.Error("result carries a translation for the default language")
	}
	if syn.lastText != res.Summary.Text {
		t.Errorf("synthesizer narrated %q, want the summary text", syn.lastText)
	}
}

func TestProcessStageFailureIsTerminal(t *testing.T) {
	stageErr := errors.New("stage exploded")

	t.Run("extractor", func(t *testing.T) {
		ext, sum, tr, syn := newFakes()
		ext.err = stageErr
		p := New(ext, sum, tr, syn, logger.New("error"))

		if _, err := p.Process(context.Background(), Request{Filename: "doc.txt", Payload: []byte("x")}); !errors.Is(err, stageErr) {
			t.Fatalf("error = %v, want stage error", err)
		}
		if sum.calls+tr.calls+syn.calls != 0 {
			t.Error("later stages ran after an extractor failure")
		}
	})

	t.Run("summarizer", func(t *testing.T) {
		ext, sum, tr, syn := newFakes()
		sum.err = stageErr
		p := New(ext, sum, tr, syn, logger.New("error"))

		if _, err := p.Process(context.Background(), Request{Filename: "doc.txt", Payload: []byte("x"), TargetLang: "hi"}); !errors.Is(err, stageErr) {
			t.Fatalf("error = %v, want stage error", err)
		}
		if tr.calls+syn.calls != 0 {
			t.Error("later stages ran after a summarizer failure")
		}
	})

	t.Run("translator", func(t *testing.T) {
		ext, sum, tr, syn := newFakes()
		tr.err = stageErr
		p := New(ext, sum, tr, syn, logger.New("error"))

		if _, err := p.Process(context.Background(), Request{Filename: "doc.txt", Payload: []byte("x"), TargetLang: "hi"}); !errors.Is(err, stageErr) {
			t.Fatalf("error = %v, want stage error", err)
		}
		if syn.calls != 0 {
			t.Error("synthesizer ran after a translator failure")
		}
	})
}

func TestProcessNoSource(t *testing.T) {
	ext, sum, tr, syn := newFakes()
	p := New(ext, sum, tr, syn, logger.New("error"))

	if _, err := p.Process(context.Background(), Request{}); !errors.Is(err, ErrNoSource) {
		t.Fatalf("error = %v, want ErrNoSource", err)
	}
}

func TestProcessSkipAudio(t *testing.T) {
	ext, sum, tr, syn := newFakes()
	p := New(ext, sum, tr, syn, logger.New("error"))

	res, err := p.Process(context.Background(), Request{Filename: "doc.txt", Payload: []byte("x"), SkipAudio: true})
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}
	if syn.calls != 0 || res.Asset != nil {
		t.Error("audio was produced despite SkipAudio")
	}
}
