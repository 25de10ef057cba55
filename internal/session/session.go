package session

import (
	"sync"

	"github.com/google/uuid"

	"github.com/shivashettydarshan/Document-summerize/internal/playback"
	"github.com/shivashettydarshan/Document-summerize/internal/speech"
	"github.com/shivashettydarshan/Document-summerize/internal/summarizer"
	"github.com/shivashettydarshan/Document-summerize/internal/translator"
)

// Session carries one client's pipeline entities and its playback
// synchronizer. All entities are replaced wholesale by the next pipeline
// invocation; nothing is shared between sessions.
type Session struct {
	ID   string
	Sync *playback.Synchronizer

	mu         sync.Mutex
	summary    *summarizer.Summary
	translated *translator.TranslatedSummary
}

func newSession(id string) *Session {
	return &Session{
		ID:   id,
		Sync: playback.NewSynchronizer(),
	}
}

// SetSummary installs a fresh summary and discards every entity derived from
// the previous one, including any armed audio asset.
func (s *Session) SetSummary(sum *summarizer.Summary) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.summary = sum
	s.translated = nil
	s.Sync.Reset()
}

// SetTranslated installs a translated summary; the source summary is kept.
func (s *Session) SetTranslated(tr *translator.TranslatedSummary) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.translated = tr
}

// SetAsset arms the synchronizer with a new audio asset, invalidating all
// highlight updates still pending against the previous one. Returns the
// generation token for ticks.
func (s *Session) SetAsset(asset *speech.AudioAsset) uint64 {
	return s.Sync.Arm(asset)
}

// Summary returns the current summary, or nil.
func (s *Session) Summary() *summarizer.Summary {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.summary
}

// Translated returns the current translated summary, or nil.
func (s *Session) Translated() *translator.TranslatedSummary {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.translated
}

// Registry hands out sessions keyed by ID.
type Registry struct {
	mu       sync.Mutex
	sessions map[string]*Session
}

// NewRegistry creates an empty session registry.
func NewRegistry() *Registry {
	return &Registry{sessions: make(map[string]*Session)}
}

// Get looks up an existing session.
func (r *Registry) Get(id string) (*Session, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sessions[id]
	return s, ok
}

// GetOrCreate returns the session for id, creating it if needed. An empty id
// allocates a new session with a fresh UUID.
func (r *Registry) GetOrCreate(id string) *Session {
	r.mu.Lock()
	defer r.mu.Unlock()

	if id != "" {
		if s, ok := r.sessions[id]; ok {
			return s
		}
	} else {
		id = uuid.New().String()
	}

	s := newSession(id)
	r.sessions[id] = s
	return s
}

// Drop removes a session from the registry.
func (r *Registry) Drop(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if s, ok := r.sessions[id]; ok {
		s.Sync.Reset()
		delete(r.sessions, id)
	}
}
