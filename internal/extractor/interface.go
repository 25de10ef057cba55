package extractor

import "context"

// Extractor normalizes heterogeneous input into plain UTF-8 text.
type Extractor interface {
	// ExtractFile extracts text from an uploaded document. The declared
	// filename selects the parser (.pdf, .docx, .doc, .txt).
	ExtractFile(ctx context.Context, filename string, data []byte) (string, error)

	// ExtractURL fetches a remote article and extracts its readable text.
	ExtractURL(ctx context.Context, rawURL string) (string, error)
}
