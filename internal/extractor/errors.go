package extractor

import "github.com/pkg/errors"

var (
	// ErrUnsupportedFormat means the uploaded bytes are not a recognized
	// document format.
	ErrUnsupportedFormat = errors.New("unsupported document format")

	// ErrFetchFailure means a remote resource was unreachable or not text.
	ErrFetchFailure = errors.New("failed to fetch resource")

	// ErrEmptyContent means extraction succeeded but yielded no text.
	ErrEmptyContent = errors.New("no content to summarize")
)
