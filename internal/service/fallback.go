package service

import (
	"context"
	"strings"
	"unicode"
)

// ExtractiveSummarizer is the dependency-free fallback used when no model is
// loaded: it selects leading sentences until the word-length target is met.
// It is intentionally approximate (word counts, no semantic ranking) and
// implements domain.SummaryBackend so the pipeline can swap it in directly.
type ExtractiveSummarizer struct{}

// Available always reports true; the fallback has no external dependencies.
func (ExtractiveSummarizer) Available() bool { return true }

// Summarize returns a prefix-sentence extractive summary. It never fails.
func (ExtractiveSummarizer) Summarize(_ context.Context, text string, maxLength, minLength int) (string, error) {
	return extractiveSummary(text, maxLength, minLength), nil
}

// extractiveSummary greedily accumulates sentences while the running word
// count stays at or under maxLength, always accepting at least one sentence.
// If the result is still below minLength words, subsequent sentences are
// appended until minLength is reached or input is exhausted.
func extractiveSummary(text string, maxLength, minLength int) string {
	if maxLength < 0 {
		maxLength = 0
	}
	if minLength < 0 {
		minLength = 0
	}

	trimmed := strings.TrimSpace(text)
	sentences := splitSentences(trimmed)
	if len(sentences) == 0 {
		// Degenerate guard: nothing sentence-like, truncate to maxLength chars.
		runes := []rune(trimmed)
		if len(runes) > maxLength {
			runes = runes[:maxLength]
		}
		return string(runes)
	}

	var selected []string
	words := 0
	for _, s := range sentences {
		sw := len(strings.Fields(s))
		if words+sw <= maxLength || len(selected) == 0 {
			selected = append(selected, strings.TrimSpace(s))
			words += sw
		} else {
			break
		}
	}

	summary := strings.Join(selected, " ")
	if len(strings.Fields(summary)) < minLength {
		for _, s := range sentences[len(selected):] {
			summary += " " + strings.TrimSpace(s)
			if len(strings.Fields(summary)) >= minLength {
				break
			}
		}
	}

	return summary
}

// splitSentences splits on sentence terminators (. ! ?) followed by
// whitespace. The terminator stays with its sentence; text without any
// terminator is one sentence.
func splitSentences(text string) []string {
	if text == "" {
		return nil
	}

	runes := []rune(text)
	var sentences []string
	start := 0
	i := 0
	for i < len(runes) {
		r := runes[i]
		if (r == '.' || r == '!' || r == '?') && i+1 < len(runes) && unicode.IsSpace(runes[i+1]) {
			sentences = append(sentences, string(runes[start:i+1]))
			i++
			for i < len(runes) && unicode.IsSpace(runes[i]) {
				i++
			}
			start = i
			continue
		}
		i++
	}
	if start < len(runes) {
		sentences = append(sentences, string(runes[start:]))
	}
	return sentences
}
