package extractor

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	readability "github.com/go-shiori/go-readability"
	"github.com/pkg/errors"
)

// ExtractURL fetches a remote article and extracts its readable text. Every
// network or parse failure is reported as ErrFetchFailure so a dead link can
// never take down the request.
func (e *implExtractor) ExtractURL(ctx context.Context, rawURL string) (string, error) {
	parsed, err := url.ParseRequestURI(rawURL)
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") {
		return "", errors.Wrapf(ErrFetchFailure, "invalid URL %q", rawURL)
	}

	e.logger.Info(ctx, "Fetching remote resource: %s", rawURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", errors.Wrapf(ErrFetchFailure, "build request: %v", err)
	}

	resp, err := e.client.Do(req)
	if err != nil {
		return "", errors.Wrapf(ErrFetchFailure, "%v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", errors.Wrapf(ErrFetchFailure, "unexpected status %s", resp.Status)
	}

	contentType := resp.Header.Get("Content-Type")
	if contentType != "" && !strings.Contains(contentType, "html") && !strings.Contains(contentType, "text") {
		return "", errors.Wrapf(ErrFetchFailure, "non-text content type %q", contentType)
	}

	article, err := readability.FromReader(resp.Body, parsed)
	if err != nil {
		return "", errors.Wrapf(ErrFetchFailure, "parse article: %v", err)
	}

	text := cleanText(article.TextContent)
	if text == "" {
		return "", errors.Wrap(ErrEmptyContent, rawURL)
	}

	e.logger.Info(ctx, "Extracted %d characters from %s", len(text), rawURL)
	return text, nil
}
