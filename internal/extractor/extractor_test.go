package extractor

import (
	"context"
	"errors"
	"testing"

	"github.com/shivashettydarshan/Document-summerize/internal/logger"
)

func newTestExtractor() Extractor {
	return New(logger.New("error"))
}

func TestExtractFileTXT(t *testing.T) {
	ctx := context.Background()
	e := newTestExtractor()

	text, err := e.ExtractFile(ctx, "notes.txt", []byte("First line.\nsecond part\nThird line."))
	if err != nil {
		t.Fatalf("ExtractFile() error = %v", err)
	}
	if text == "" {
		t.Fatal("ExtractFile() returned empty text")
	}
}

func TestExtractFileUnsupportedFormat(t *testing.T) {
	ctx := context.Background()
	e := newTestExtractor()

	_, err := e.ExtractFile(ctx, "image.png", []byte{0x89, 0x50, 0x4e, 0x47})
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Fatalf("ExtractFile() error = %v, want ErrUnsupportedFormat", err)
	}
}

func TestExtractFileEmpty(t *testing.T) {
	ctx := context.Background()
	e := newTestExtractor()

	tests := []struct {
		name string
		file string
		data []byte
	}{
		{"empty payload", "doc.txt", nil},
		{"whitespace only", "doc.txt", []byte("   \n\t  ")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := e.ExtractFile(ctx, tt.file, tt.data)
			if !errors.Is(err, ErrEmptyContent) {
				t.Errorf("ExtractFile() error = %v, want ErrEmptyContent", err)
			}
		})
	}
}

func TestExtractFileCorruptPDF(t *testing.T) {
	ctx := context.Background()
	e := newTestExtractor()

	_, err := e.ExtractFile(ctx, "broken.pdf", []byte("this is not a pdf"))
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Fatalf("ExtractFile() error = %v, want ErrUnsupportedFormat", err)
	}
}

func TestExtractURLInvalid(t *testing.T) {
	ctx := context.Background()
	e := newTestExtractor()

	tests := []string{
		"not a url",
		"ftp://example.com/file",
		"",
	}

	for _, rawURL := range tests {
		if _, err := e.ExtractURL(ctx, rawURL); !errors.Is(err, ErrFetchFailure) {
			t.Errorf("ExtractURL(%q) error = %v, want ErrFetchFailure", rawURL, err)
		}
	}
}

func TestExtractURLUnreachable(t *testing.T) {
	ctx := context.Background()
	e := newTestExtractor()

	_, err := e.ExtractURL(ctx, "http://127.0.0.1:1/article")
	if !errors.Is(err, ErrFetchFailure) {
		t.Fatalf("ExtractURL() error = %v, want ErrFetchFailure", err)
	}
}

func TestCleanText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"merges wrapped lines", "first part\nsecond part", "first part second part"},
		{"keeps paragraph break after terminator", "End of paragraph.\nNew paragraph", "End of paragraph.\n\nNew paragraph"},
		{"drops blank lines", "one.\n\n\ntwo.", "one.\n\ntwo."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cleanText(tt.in); got != tt.want {
				t.Errorf("cleanText() = %q, want %q", got, tt.want)
			}
		})
	}
}
