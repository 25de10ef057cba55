package playback

import (
	"context"
	"sort"
	"sync"

	"github.com/pkg/errors"

	"github.com/shivashettydarshan/Document-summerize/internal/speech"
)

// State is the playback synchronizer's finite state.
type State int

const (
	StateIdle State = iota
	StateArmed
	StatePlaying
	StatePaused
	StateStopped
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateArmed:
		return "armed"
	case StatePlaying:
		return "playing"
	case StatePaused:
		return "paused"
	case StateStopped:
		return "stopped"
	}
	return "unknown"
}

var (
	// ErrStaleAsset means the update was scheduled against a superseded
	// audio asset and must not surface.
	ErrStaleAsset = errors.New("stale audio asset")

	// ErrNotArmed means no audio asset has been armed yet.
	ErrNotArmed = errors.New("no audio asset armed")

	// ErrNotPlaying means a tick arrived outside the Playing state.
	ErrNotPlaying = errors.New("playback is not running")

	// ErrInvalidTransition means the requested state change is not allowed.
	ErrInvalidTransition = errors.New("invalid playback transition")
)

// HighlightState reports which sentence is highlighted at a playback
// position. Previous is the sentence to clear first; -1 means none.
type HighlightState struct {
	ActiveSentence int    `json:"active_sentence"`
	Previous       int    `json:"previous"`
	PositionMs     int64  `json:"position_ms"`
	Generation     uint64 `json:"generation"`
	State          string `json:"state"`
}

// Synchronizer drives highlight state in lockstep with audio playback. It is
// session-scoped; every session owns its own instance. The active sentence is
// re-derived from the timing table at every tick, so no drift can accumulate
// across sentences, and arming a new asset atomically invalidates every
// update still pending against the prior one.
type Synchronizer struct {
	mu         sync.Mutex
	state      State
	asset      *speech.AudioAsset
	generation uint64
	positionMs int64
	active     int
	cancel     context.CancelFunc
}

// NewSynchronizer creates an idle Synchronizer.
func NewSynchronizer() *Synchronizer {
	return &Synchronizer{state: StateIdle, active: -1}
}

// Arm installs a new audio asset and returns the generation token ticks must
// present. The generation bump invalidates all updates tied to the prior
// asset, and any running driver is cancelled before the new asset is visible.
func (s *Synchronizer) Arm(asset *speech.AudioAsset) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cancelDriverLocked()
	s.generation++
	s.asset = asset
	s.state = StateArmed
	s.positionMs = 0
	s.active = -1
	return s.generation
}

// Start moves to Playing. Starting from Armed or Stopped begins a fresh
// playback at position 0; starting from Paused resumes.
func (s *Synchronizer) Start() (uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.asset == nil {
		return 0, errors.Wrap(ErrNotArmed, "start")
	}

	switch s.state {
	case StateArmed, StateStopped:
		s.positionMs = 0
		s.active = -1
	case StatePaused:
		// resume
	default:
		return 0, errors.Wrapf(ErrInvalidTransition, "start from %s", s.state)
	}

	s.state = StatePlaying
	return s.generation, nil
}

// Pause suspends playback; highlight state is kept for resume.
func (s *Synchronizer) Pause() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StatePlaying {
		return errors.Wrapf(ErrInvalidTransition, "pause from %s", s.state)
	}
	s.state = StatePaused
	return nil
}

// Stop ends playback, clears the highlight and cancels any running driver.
// The armed asset is kept so the same audio can be replayed from the start.
func (s *Synchronizer) Stop() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StatePlaying && s.state != StatePaused {
		return errors.Wrapf(ErrInvalidTransition, "stop from %s", s.state)
	}
	s.cancelDriverLocked()
	s.state = StateStopped
	s.positionMs = 0
	s.active = -1
	return nil
}

// Reset discards the asset and returns to Idle.
func (s *Synchronizer) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cancelDriverLocked()
	s.generation++
	s.asset = nil
	s.state = StateIdle
	s.positionMs = 0
	s.active = -1
}

// Tick re-derives the active sentence for positionMs, the caller's true
// elapsed playback position. The index is recomputed from the timing table on
// every call rather than advanced by timers. A stale generation is rejected
// with ErrStaleAsset and changes nothing.
func (s *Synchronizer) Tick(generation uint64, positionMs int64) (HighlightState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if generation != s.generation {
		return HighlightState{}, errors.Wrapf(ErrStaleAsset, "generation %d, current %d", generation, s.generation)
	}
	if s.state != StatePlaying {
		return HighlightState{}, errors.Wrapf(ErrNotPlaying, "state %s", s.state)
	}
	if positionMs < 0 {
		positionMs = 0
	}

	prev := s.active
	s.active = activeIndex(s.asset.Timings, positionMs)
	s.positionMs = positionMs

	return HighlightState{
		ActiveSentence: s.active,
		Previous:       prev,
		PositionMs:     positionMs,
		Generation:     s.generation,
		State:          s.state.String(),
	}, nil
}

// State returns the current finite state.
func (s *Synchronizer) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Generation returns the current asset generation token.
func (s *Synchronizer) Generation() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.generation
}

// Snapshot returns the current highlight state without advancing it.
func (s *Synchronizer) Snapshot() HighlightState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return HighlightState{
		ActiveSentence: s.active,
		Previous:       s.active,
		PositionMs:     s.positionMs,
		Generation:     s.generation,
		State:          s.state.String(),
	}
}

// Asset returns the armed asset, or nil.
func (s *Synchronizer) Asset() *speech.AudioAsset {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.asset
}

func (s *Synchronizer) cancelDriverLocked() {
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
}

// activeIndex returns the greatest i with Timings[i].StartMs <= positionMs,
// or -1 when the position precedes the first sentence.
func activeIndex(timings []speech.SentenceTiming, positionMs int64) int {
	i := sort.Search(len(timings), func(i int) bool {
		return timings[i].StartMs > positionMs
	})
	return i - 1
}
