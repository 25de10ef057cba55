package watcher

import "context"

// Watcher monitors the batch inbox directory for dropped documents.
type Watcher interface {
	Start(ctx context.Context) error
	Stop() error
}

// EventHandler processes one document once it appears in the inbox.
type EventHandler func(ctx context.Context, docPath string) error
