package session

import (
	"errors"
	"testing"

	"github.com/shivashettydarshan/Document-summerize/internal/playback"
	"github.com/shivashettydarshan/Document-summerize/internal/speech"
	"github.com/shivashettydarshan/Document-summerize/internal/summarizer"
)

func asset(id string) *speech.AudioAsset {
	return &speech.AudioAsset{
		ID: id,
		Timings: []speech.SentenceTiming{
			{Index: 0, StartMs: 0, EndMs: 1000},
			{Index: 1, StartMs: 1000, EndMs: 2000},
		},
	}
}

func TestRegistryGetOrCreate(t *testing.T) {
	r := NewRegistry()

	a := r.GetOrCreate("")
	if a.ID == "" {
		t.Fatal("session has no ID")
	}

	same := r.GetOrCreate(a.ID)
	if same != a {
		t.Fatal("GetOrCreate returned a different session for the same ID")
	}

	b := r.GetOrCreate("")
	if b == a || b.ID == a.ID {
		t.Fatal("sessions are not independent")
	}

	if _, ok := r.Get("missing"); ok {
		t.Fatal("Get returned a session for an unknown ID")
	}
}

func TestSessionIsolation(t *testing.T) {
	r := NewRegistry()
	a := r.GetOrCreate("")
	b := r.GetOrCreate("")

	genA := a.SetAsset(asset("for-a"))
	if _, err := a.Sync.Start(); err != nil {
		t.Fatal(err)
	}

	// Arming b must not disturb a's playback.
	b.SetAsset(asset("for-b"))

	if _, err := a.Sync.Tick(genA, 1500); err != nil {
		t.Fatalf("session a tick failed after session b armed: %v", err)
	}
}

func TestNewSummaryDiscardsDerivedEntities(t *testing.T) {
	r := NewRegistry()
	s := r.GetOrCreate("")

	gen := s.SetAsset(asset("old"))
	if _, err := s.Sync.Start(); err != nil {
		t.Fatal(err)
	}

	s.SetSummary(&summarizer.Summary{Text: "Fresh summary."})

	if s.Sync.Asset() != nil {
		t.Fatal("new summary kept the old audio asset")
	}
	if _, err := s.Sync.Tick(gen, 100); !errors.Is(err, playback.ErrStaleAsset) {
		t.Fatalf("old generation still accepted: %v", err)
	}
	if s.Translated() != nil {
		t.Fatal("new summary kept the old translation")
	}
}

func TestDrop(t *testing.T) {
	r := NewRegistry()
	s := r.GetOrCreate("")
	r.Drop(s.ID)
	if _, ok := r.Get(s.ID); ok {
		t.Fatal("Drop left the session in the registry")
	}
}
