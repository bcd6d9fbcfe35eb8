package config

import (
	"os"
	"strconv"
	"strings"

	"doc-summarizer/internal/domain"
)

// AppConfig implements the domain.Config interface
type AppConfig struct {
	ServerPort        string
	LogLevel          string
	MaxFileSize       int64
	ModelName         string
	ModelEndpoint     string
	ModelAPIToken     string
	ModelMaxInput     int
	TokenizerEncoding string
	TesseractCmd      string
	TranslateEndpoint string
	AllowedOrigins    []string
}

// NewConfig creates a new configuration instance with default values
func NewConfig() domain.Config {
	return &AppConfig{
		// Cloud Run (and many PaaS) provide the listening port via PORT.
		// Keep SERVER_PORT for local/dev compatibility.
		ServerPort:        getEnvOrDefault("PORT", getEnvOrDefault("SERVER_PORT", "8080")),
		LogLevel:          getEnvOrDefault("LOG_LEVEL", "info"),
		MaxFileSize:       getEnvInt64OrDefault("MAX_FILE_SIZE", 50*1024*1024), // 50MB default
		ModelName:         getEnvOrDefault("MODEL_NAME", "sshleifer/distilbart-cnn-12-6"),
		ModelEndpoint:     getEnvOrDefault("MODEL_ENDPOINT", "https://api-inference.huggingface.co/models"),
		ModelAPIToken:     getEnvOrDefault("MODEL_API_TOKEN", ""),
		ModelMaxInput:     getEnvIntOrDefault("MODEL_MAX_INPUT", 1024),
		TokenizerEncoding: getEnvOrDefault("TOKENIZER_ENCODING", "cl100k_base"),
		TesseractCmd:      getEnvOrDefault("TESSERACT_CMD", "tesseract"),
		TranslateEndpoint: getEnvOrDefault("TRANSLATE_ENDPOINT", "https://api.mymemory.translated.net/get"),
		AllowedOrigins:    splitCommaList(getEnvOrDefault("ALLOWED_ORIGINS", "*")),
	}
}

// GetServerPort returns the server port
func (c *AppConfig) GetServerPort() string {
	return c.ServerPort
}

// GetLogLevel returns the logging level
func (c *AppConfig) GetLogLevel() string {
	return c.LogLevel
}

// GetMaxFileSize returns the maximum allowed upload size
func (c *AppConfig) GetMaxFileSize() int64 {
	return c.MaxFileSize
}

// GetModelName returns the summarization model identifier
func (c *AppConfig) GetModelName() string {
	return c.ModelName
}

// GetModelEndpoint returns the inference endpoint base URL
func (c *AppConfig) GetModelEndpoint() string {
	return c.ModelEndpoint
}

// GetModelAPIToken returns the inference API token
func (c *AppConfig) GetModelAPIToken() string {
	return c.ModelAPIToken
}

// GetModelMaxInput returns the model's maximum input length in tokens
func (c *AppConfig) GetModelMaxInput() int {
	return c.ModelMaxInput
}

// GetTokenizerEncoding returns the tokenizer encoding name
func (c *AppConfig) GetTokenizerEncoding() string {
	return c.TokenizerEncoding
}

// GetTesseractCmd returns the tesseract command name or path
func (c *AppConfig) GetTesseractCmd() string {
	return c.TesseractCmd
}

// GetTranslateEndpoint returns the translation service endpoint
func (c *AppConfig) GetTranslateEndpoint() string {
	return c.TranslateEndpoint
}

// GetAllowedOrigins returns the CORS allow-list
func (c *AppConfig) GetAllowedOrigins() []string {
	return c.AllowedOrigins
}

// Helper functions for environment variable handling
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt64OrDefault(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func splitCommaList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
