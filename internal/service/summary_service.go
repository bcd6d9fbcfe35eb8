package service

import (
	"context"
	"fmt"
	"strings"

	"doc-summarizer/internal/domain"
)

// modelProvider is what the summary pipeline needs from the model manager.
type modelProvider interface {
	Backend() domain.SummaryBackend
	Tokenizer() domain.Tokenizer
}

// SummaryService runs the per-request pipeline: validate, summarize with the
// model (chunk by chunk) or the extractive fallback (whole text), then
// translate when a non-default target language is requested.
type SummaryService struct {
	models     modelProvider
	translator domain.Translator
	fallback   domain.SummaryBackend
	logger     domain.Logger
}

// NewSummaryService creates the summarization pipeline.
func NewSummaryService(models modelProvider, translator domain.Translator, logger domain.Logger) *SummaryService {
	return &SummaryService{
		models:     models,
		translator: translator,
		fallback:   ExtractiveSummarizer{},
		logger:     logger,
	}
}

// Summarize produces a summary for one request. Any backend or translation
// failure aborts the request; there are no retries and no partial results.
func (s *SummaryService) Summarize(ctx context.Context, req domain.SummarizeRequest) (*domain.SummaryResult, error) {
	text := strings.TrimSpace(req.Text)
	if text == "" {
		return nil, domain.ErrEmptyText
	}

	maxLength := req.MaxLength
	if maxLength <= 0 {
		maxLength = domain.DefaultMaxLength
	}
	minLength := req.MinLength
	if minLength <= 0 {
		minLength = domain.DefaultMinLength
	}

	summary, err := s.summarize(ctx, text, maxLength, minLength)
	if err != nil {
		return nil, err
	}

	targetLang := req.TargetLanguage
	if targetLang == "" {
		targetLang = domain.DefaultLanguage
	}

	// The translator owns the default-language skip and returns the text
	// unchanged for "en".
	translated, err := s.translator.Translate(ctx, summary, targetLang)
	if err != nil {
		return nil, fmt.Errorf("translation failed: %w", err)
	}

	return &domain.SummaryResult{
		Summary:        translated,
		Language:       targetLang,
		OriginalLength: len(strings.Fields(text)),
		SummaryLength:  len(strings.Fields(translated)),
	}, nil
}

func (s *SummaryService) summarize(ctx context.Context, text string, maxLength, minLength int) (string, error) {
	backend := s.models.Backend()
	if backend == nil || !backend.Available() {
		s.logger.Info("Model not loaded; using extractive fallback summarizer")
		return s.fallback.Summarize(ctx, text, maxLength, minLength)
	}

	chunker := NewChunker(s.models.Tokenizer(), 0)
	chunks := chunker.Chunk(text)

	summaries := make([]string, 0, len(chunks))
	for _, chunk := range chunks {
		out, err := backend.Summarize(ctx, chunk, maxLength, minLength)
		if err != nil {
			return "", fmt.Errorf("model error: %w", err)
		}
		if trimmed := strings.TrimSpace(out); trimmed != "" {
			summaries = append(summaries, trimmed)
		}
	}

	return strings.Join(summaries, "\n\n"), nil
}
