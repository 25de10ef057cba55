package executor

import "context"

// Executor runs external commands, such as probing audio files with ffprobe.
type Executor interface {
	Execute(ctx context.Context, name string, args ...string) (string, error)
}
