package speech

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"testing"

	"github.com/shivashettydarshan/Document-summerize/internal/config"
	"github.com/shivashettydarshan/Document-summerize/internal/logger"
	"github.com/shivashettydarshan/Document-summerize/internal/sentence"
)

type fakeBackend struct {
	audio []byte
	err   error
}

func (f *fakeBackend) Synthesize(ctx context.Context, text, voice string) ([]byte, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.audio, nil
}

// fakeExecutor simulates ffprobe: either absent or reporting a duration.
type fakeExecutor struct {
	out string
	err error
}

func (f *fakeExecutor) Execute(ctx context.Context, name string, args ...string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return f.out, nil
}

func newTestSynthesizer(t *testing.T, backend Backend, exec *fakeExecutor) Synthesizer {
	t.Helper()
	cfg := &config.Config{}
	if err := cfg.Validate(); err != nil {
		t.Fatal(err)
	}
	if exec == nil {
		exec = &fakeExecutor{err: fmt.Errorf("ffprobe not found")}
	}
	return New(cfg, backend, t.TempDir(), exec, logger.New("error"))
}

func TestSynthesizeTimingInvariants(t *testing.T) {
	ctx := context.Background()
	s := newTestSynthesizer(t, &fakeBackend{audio: []byte("mp3-bytes")}, nil)

	text := "Paris is the capital of France. It is known for its art. Visit the Louvre!"
	asset, err := s.Synthesize(ctx, text, "en", "")
	if err != nil {
		t.Fatalf("Synthesize() error = %v", err)
	}

	if len(asset.Timings) != len(asset.Boundaries) {
		t.Fatalf("timing table length %d != sentence count %d", len(asset.Timings), len(asset.Boundaries))
	}
	if len(asset.Timings) != sentence.Count(text) {
		t.Fatalf("timing table length %d != source sentence count %d", len(asset.Timings), sentence.Count(text))
	}

	for i, tm := range asset.Timings {
		if tm.Index != i {
			t.Errorf("timing %d has index %d", i, tm.Index)
		}
		if tm.EndMs <= tm.StartMs {
			t.Errorf("timing %d has non-positive duration: %+v", i, tm)
		}
		if i > 0 {
			prev := asset.Timings[i-1]
			if tm.StartMs <= prev.StartMs {
				t.Errorf("StartMs not strictly increasing at %d: %+v after %+v", i, tm, prev)
			}
			if prev.EndMs > tm.StartMs {
				t.Errorf("EndMs crosses next StartMs at %d: %+v then %+v", i, prev, tm)
			}
		}
	}

	if !strings.HasPrefix(asset.AudioPath, "/uploads/speech_") {
		t.Errorf("AudioPath = %q", asset.AudioPath)
	}
	if asset.ID == "" {
		t.Error("asset has no ID")
	}
}

func TestSynthesizeUnsupportedVoice(t *testing.T) {
	ctx := context.Background()
	s := newTestSynthesizer(t, &fakeBackend{audio: []byte("x")}, nil)

	_, err := s.Synthesize(ctx, "Hello there.", "en", "robovoice")
	if !errors.Is(err, ErrUnsupportedVoice) {
		t.Fatalf("Synthesize() error = %v, want ErrUnsupportedVoice", err)
	}
}

func TestSynthesizeEmptyText(t *testing.T) {
	ctx := context.Background()
	s := newTestSynthesizer(t, &fakeBackend{audio: []byte("x")}, nil)

	_, err := s.Synthesize(ctx, "   ", "en", "alloy")
	if !errors.Is(err, ErrSynthesisFailure) {
		t.Fatalf("Synthesize() error = %v, want ErrSynthesisFailure", err)
	}
}

func TestSynthesizeBackendFailure(t *testing.T) {
	ctx := context.Background()
	s := newTestSynthesizer(t, &fakeBackend{err: fmt.Errorf("api down")}, nil)

	_, err := s.Synthesize(ctx, "Hello there, world.", "en", "alloy")
	if !errors.Is(err, ErrSynthesisFailure) {
		t.Fatalf("Synthesize() error = %v, want ErrSynthesisFailure", err)
	}
}

func TestSynthesizeUsesProbedDuration(t *testing.T) {
	ctx := context.Background()
	s := newTestSynthesizer(t, &fakeBackend{audio: []byte("x")}, &fakeExecutor{out: "12.5\n"})

	asset, err := s.Synthesize(ctx, "First sentence here. Second sentence follows.", "en", "nova")
	if err != nil {
		t.Fatalf("Synthesize() error = %v", err)
	}

	if got := asset.Timings[len(asset.Timings)-1].EndMs; got != 12500 {
		t.Errorf("final EndMs = %d, want 12500 from probed duration", got)
	}
}

func TestEstimateTimingsDeterministic(t *testing.T) {
	text := "One short sentence. Another somewhat longer sentence follows here. End."
	spans := sentence.Split(text)

	first := estimateTimings(text, spans, 15, 1.0)
	for i := 0; i < 5; i++ {
		if got := estimateTimings(text, spans, 15, 1.0); !reflect.DeepEqual(got, first) {
			t.Fatalf("run %d produced different timings", i)
		}
	}

	// Longer sentences get proportionally more time.
	if first[1].EndMs-first[1].StartMs <= first[0].EndMs-first[0].StartMs {
		t.Errorf("longer sentence did not get a longer slot: %+v", first)
	}
}

func TestRescaleTimingsKeepsInvariants(t *testing.T) {
	text := "Aa. Bb. Cc. Dd."
	spans := sentence.Split(text)
	est := estimateTimings(text, spans, 15, 1.0)

	for _, totalMs := range []int64{50, 1200, 600000} {
		out := rescaleTimings(est, totalMs)
		if len(out) != len(est) {
			t.Fatalf("rescale changed table length")
		}
		if out[len(out)-1].EndMs < totalMs {
			t.Errorf("total %d: table ends at %d", totalMs, out[len(out)-1].EndMs)
		}
		for i := 1; i < len(out); i++ {
			if out[i].StartMs <= out[i-1].StartMs {
				t.Errorf("total %d: StartMs not strictly increasing: %+v", totalMs, out)
			}
			if out[i-1].EndMs > out[i].StartMs {
				t.Errorf("total %d: EndMs crosses next StartMs: %+v", totalMs, out)
			}
		}
	}
}
