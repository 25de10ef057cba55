package speech

import "github.com/pkg/errors"

var (
	// ErrSynthesisFailure means the voice backend failed to render audio.
	ErrSynthesisFailure = errors.New("text-to-speech failed")

	// ErrUnsupportedVoice means the requested voice is not in the fixed set.
	ErrUnsupportedVoice = errors.New("unsupported voice")
)
