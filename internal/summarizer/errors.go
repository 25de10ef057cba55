package summarizer

import "github.com/pkg/errors"

var (
	// ErrEmptyInput means the input text holds no usable sentences.
	ErrEmptyInput = errors.New("no valid content to summarize")

	// ErrModelFailure means the model-based refinement backend failed.
	ErrModelFailure = errors.New("summarization model failed")
)
