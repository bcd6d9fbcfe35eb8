package config

import (
	"testing"
)

func TestNewConfig_Defaults(t *testing.T) {
	// Empty values read as unset.
	for _, key := range []string{"PORT", "SERVER_PORT", "LOG_LEVEL", "MAX_FILE_SIZE", "MODEL_NAME", "MODEL_MAX_INPUT", "TOKENIZER_ENCODING", "TESSERACT_CMD", "ALLOWED_ORIGINS"} {
		t.Setenv(key, "")
	}

	cfg := NewConfig()

	if got := cfg.GetServerPort(); got != "8080" {
		t.Fatalf("expected default port 8080, got %q", got)
	}
	if got := cfg.GetLogLevel(); got != "info" {
		t.Fatalf("expected default log level info, got %q", got)
	}
	if got := cfg.GetMaxFileSize(); got != 50*1024*1024 {
		t.Fatalf("expected 50MB default, got %d", got)
	}
	if got := cfg.GetModelName(); got != "sshleifer/distilbart-cnn-12-6" {
		t.Fatalf("unexpected default model: %q", got)
	}
	if got := cfg.GetModelMaxInput(); got != 1024 {
		t.Fatalf("expected default max input 1024, got %d", got)
	}
	if got := cfg.GetTokenizerEncoding(); got != "cl100k_base" {
		t.Fatalf("unexpected default encoding: %q", got)
	}
	if got := cfg.GetTesseractCmd(); got != "tesseract" {
		t.Fatalf("unexpected default tesseract command: %q", got)
	}
	origins := cfg.GetAllowedOrigins()
	if len(origins) != 1 || origins[0] != "*" {
		t.Fatalf("expected wildcard origins, got %v", origins)
	}
}

func TestNewConfig_Overrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9000")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("MAX_FILE_SIZE", "1048576")
	t.Setenv("MODEL_NAME", "my-org/my-model")
	t.Setenv("MODEL_ENDPOINT", "https://inference.example.com")
	t.Setenv("MODEL_API_TOKEN", "tok")
	t.Setenv("MODEL_MAX_INPUT", "512")
	t.Setenv("ALLOWED_ORIGINS", "https://a.example.com, https://b.example.com")

	cfg := NewConfig()

	if got := cfg.GetServerPort(); got != "9000" {
		t.Fatalf("expected port 9000, got %q", got)
	}
	if got := cfg.GetLogLevel(); got != "debug" {
		t.Fatalf("expected log level debug, got %q", got)
	}
	if got := cfg.GetMaxFileSize(); got != 1048576 {
		t.Fatalf("expected 1MB, got %d", got)
	}
	if got := cfg.GetModelName(); got != "my-org/my-model" {
		t.Fatalf("unexpected model: %q", got)
	}
	if got := cfg.GetModelAPIToken(); got != "tok" {
		t.Fatalf("unexpected token: %q", got)
	}
	if got := cfg.GetModelMaxInput(); got != 512 {
		t.Fatalf("expected max input 512, got %d", got)
	}
	origins := cfg.GetAllowedOrigins()
	if len(origins) != 2 || origins[0] != "https://a.example.com" || origins[1] != "https://b.example.com" {
		t.Fatalf("expected trimmed origin list, got %v", origins)
	}
}

func TestNewConfig_PortPrecedence(t *testing.T) {
	t.Setenv("SERVER_PORT", "9000")
	t.Setenv("PORT", "7777")

	cfg := NewConfig()
	if got := cfg.GetServerPort(); got != "7777" {
		t.Fatalf("PORT must win over SERVER_PORT, got %q", got)
	}
}

func TestNewConfig_InvalidNumbersFallBack(t *testing.T) {
	t.Setenv("MAX_FILE_SIZE", "not-a-number")
	t.Setenv("MODEL_MAX_INPUT", "also-not")

	cfg := NewConfig()
	if got := cfg.GetMaxFileSize(); got != 50*1024*1024 {
		t.Fatalf("expected default on parse failure, got %d", got)
	}
	if got := cfg.GetModelMaxInput(); got != 1024 {
		t.Fatalf("expected default on parse failure, got %d", got)
	}
}
