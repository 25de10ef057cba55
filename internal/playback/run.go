package playback

import (
	"context"
	"time"

	"github.com/pkg/errors"
)

// PositionFunc reports the true elapsed playback position in milliseconds.
// It must come from the playing audio source, never from an independent
// wall-clock counter.
type PositionFunc func() int64

// Sink receives highlight updates. It is called with the previous index still
// set in the state so the old highlight can be cleared before the new one is
// drawn.
type Sink func(HighlightState)

// Run drives the synchronizer cooperatively at a bounded interval,
// re-synchronizing against the true playback position on every tick. It
// returns when ctx is cancelled, playback leaves the Playing state, or the
// asset is superseded by a newer Arm; in the last case no further update
// reaches the sink.
func (s *Synchronizer) Run(ctx context.Context, position PositionFunc, interval time.Duration, sink Sink) error {
	if interval <= 0 {
		interval = 250 * time.Millisecond
	}

	s.mu.Lock()
	generation := s.generation
	ctx, cancel := context.WithCancel(ctx)
	s.cancelDriverLocked()
	s.cancel = cancel
	s.mu.Unlock()
	defer cancel()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	last := -2 // distinct from the -1 "nothing highlighted" index

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			hs, err := s.Tick(generation, position())
			if errors.Is(err, ErrStaleAsset) || errors.Is(err, ErrNotPlaying) {
				return err
			}
			if err != nil {
				return err
			}
			if hs.ActiveSentence != last {
				sink(hs)
				last = hs.ActiveSentence
			}
		}
	}
}
