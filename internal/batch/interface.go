package batch

import "context"

// Processor defines the interface for inbox document processing
type Processor interface {
	Process(ctx context.Context, docPath string) error
}
