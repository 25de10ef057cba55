package extractor

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/fumiama/go-docx"
	"github.com/ledongthuc/pdf"
	"github.com/pkg/errors"
)

// ExtractFile extracts plain text from an uploaded document payload.
func (e *implExtractor) ExtractFile(ctx context.Context, filename string, data []byte) (string, error) {
	if len(data) == 0 {
		return "", errors.Wrap(ErrEmptyContent, filename)
	}

	ext := strings.ToLower(filepath.Ext(filename))
	e.logger.Debug(ctx, "Extracting %s (%d bytes, format %s)", filename, len(data), ext)

	var (
		text string
		err  error
	)

	switch ext {
	case ".pdf":
		text, err = extractPDF(data)
	case ".docx", ".doc":
		text, err = extractDOCX(data)
	case ".txt":
		text, err = extractTXT(data)
	default:
		return "", errors.Wrapf(ErrUnsupportedFormat, "%s", filename)
	}

	if err != nil {
		return "", err
	}

	text = cleanText(text)
	if text == "" {
		return "", errors.Wrap(ErrEmptyContent, filename)
	}

	e.logger.Info(ctx, "Extracted %d characters from %s", len(text), filename)
	return text, nil
}

func extractPDF(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", errors.Wrapf(ErrUnsupportedFormat, "parse pdf: %v", err)
	}

	plain, err := reader.GetPlainText()
	if err != nil {
		return "", errors.Wrapf(ErrUnsupportedFormat, "read pdf text: %v", err)
	}

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(plain); err != nil {
		return "", errors.Wrapf(ErrUnsupportedFormat, "read pdf text: %v", err)
	}

	return buf.String(), nil
}

func extractDOCX(data []byte) (string, error) {
	doc, err := docx.Parse(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", errors.Wrapf(ErrUnsupportedFormat, "parse docx: %v", err)
	}

	var sb strings.Builder
	for _, item := range doc.Document.Body.Items {
		switch item.(type) {
		case *docx.Paragraph, *docx.Table:
			sb.WriteString(fmt.Sprint(item))
			sb.WriteByte('\n')
		}
	}

	return sb.String(), nil
}

func extractTXT(data []byte) (string, error) {
	if utf8.Valid(data) {
		return string(data), nil
	}

	// Fall back to Latin-1, which decodes any byte sequence.
	runes := make([]rune, 0, len(data))
	for _, b := range data {
		runes = append(runes, rune(b))
	}
	return string(runes), nil
}

// cleanText joins hard-wrapped lines back into paragraphs. Lines ending with a
// sentence terminator or colon keep a paragraph break; everything else is
// merged with a single space.
func cleanText(text string) string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			lines = append(lines, trimmed)
		}
	}

	var sb strings.Builder
	for i, line := range lines {
		sb.WriteString(line)
		if i == len(lines)-1 {
			break
		}
		if strings.HasSuffix(line, ".") || strings.HasSuffix(line, ":") ||
			strings.HasSuffix(line, "!") || strings.HasSuffix(line, "?") {
			sb.WriteString("\n\n")
		} else {
			sb.WriteByte(' ')
		}
	}

	return strings.TrimSpace(sb.String())
}
