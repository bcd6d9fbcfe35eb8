package domain

import "context"

// SummaryBackend is a summarization capability. Available reports whether the
// backend can serve inference right now; Summarize produces a summary whose
// length is steered by the [minLength, maxLength] word window.
type SummaryBackend interface {
	Available() bool
	Summarize(ctx context.Context, text string, maxLength, minLength int) (string, error)
}

// Translator translates text into a target language. Implementations return
// the input unchanged when targetLang is empty or the default language.
type Translator interface {
	Translate(ctx context.Context, text, targetLang string) (string, error)
}

// Tokenizer encodes text with the summarization model's vocabulary.
type Tokenizer interface {
	Encode(text string) []int
	MaxInputTokens() int
}

// TextExtractor extracts plain text from an uploaded file, dispatching on the
// filename's extension.
type TextExtractor interface {
	Extract(ctx context.Context, filename string, content []byte) (string, error)
}

// SummaryService runs the full per-request pipeline: validation,
// summarization and optional translation.
type SummaryService interface {
	Summarize(ctx context.Context, req SummarizeRequest) (*SummaryResult, error)
}

// ModelManager owns the lazily-initialized model state.
type ModelManager interface {
	LoadInBackground() ModelStatus
	Status() ModelStatus
}

// Logger defines the interface for logging operations
type Logger interface {
	Info(msg string, fields ...interface{})
	Error(msg string, err error, fields ...interface{})
	Debug(msg string, fields ...interface{})
	Warn(msg string, fields ...interface{})
}

// Config defines the interface for configuration management
type Config interface {
	GetServerPort() string
	GetLogLevel() string
	GetMaxFileSize() int64
	GetModelName() string
	GetModelEndpoint() string
	GetModelAPIToken() string
	GetModelMaxInput() int
	GetTokenizerEncoding() string
	GetTesseractCmd() string
	GetTranslateEndpoint() string
	GetAllowedOrigins() []string
}
