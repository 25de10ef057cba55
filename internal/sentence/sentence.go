package sentence

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Span delimits one sentence inside a text artifact as [Start, End) byte offsets.
type Span struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Split partitions text into ordered sentence spans. The rule is purely
// lexical: a sentence ends after a run of the terminators '.', '!', '?'
// (plus any closing quotes or brackets) when the next rune is whitespace or
// the end of the text. Whitespace following a terminator is absorbed into the
// completed sentence, so the returned spans tile the whole text with no gaps
// or overlaps. Identical input always yields identical spans.
func Split(text string) []Span {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	var spans []Span
	start := 0
	n := len(text)

	for i := 0; i < n; {
		r, size := utf8.DecodeRuneInString(text[i:])
		if !isTerminator(r) {
			i += size
			continue
		}

		// Absorb the full terminator run ("...", "?!").
		j := i + size
		for j < n {
			r2, s2 := utf8.DecodeRuneInString(text[j:])
			if !isTerminator(r2) {
				break
			}
			j += s2
		}

		// Closing quotes and brackets stay with the sentence.
		for j < n {
			r2, s2 := utf8.DecodeRuneInString(text[j:])
			if !isClosing(r2) {
				break
			}
			j += s2
		}

		// A terminator inside a token ("3.14", "v1.2") is not a boundary.
		if j < n {
			r2, _ := utf8.DecodeRuneInString(text[j:])
			if !unicode.IsSpace(r2) {
				i = j
				continue
			}
		}

		// Trailing whitespace belongs to the completed sentence.
		for j < n {
			r2, s2 := utf8.DecodeRuneInString(text[j:])
			if !unicode.IsSpace(r2) {
				break
			}
			j += s2
		}

		spans = append(spans, Span{Start: start, End: j})
		start = j
		i = j
	}

	// Trailing fragment without a terminator is still a sentence.
	if start < n {
		spans = append(spans, Span{Start: start, End: n})
	}

	return spans
}

// Count returns the number of sentences Split finds in text.
func Count(text string) int {
	return len(Split(text))
}

// Slice returns the trimmed sentence text addressed by sp.
func Slice(text string, sp Span) string {
	return strings.TrimSpace(text[sp.Start:sp.End])
}

// Sentences returns the trimmed sentence strings of text, parallel to Split.
func Sentences(text string) []string {
	spans := Split(text)
	out := make([]string, 0, len(spans))
	for _, sp := range spans {
		out = append(out, Slice(text, sp))
	}
	return out
}

func isTerminator(r rune) bool {
	return r == '.' || r == '!' || r == '?'
}

func isClosing(r rune) bool {
	switch r {
	case '"', '\'', ')', ']', '’', '”':
		return true
	}
	return false
}
