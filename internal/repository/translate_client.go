package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"doc-summarizer/internal/domain"
)

// Remote translation providers reject long query strings, so text is split
// into word-bounded chunks of at most this many characters before sending.
const maxTranslateChunkChars = 800

// TranslateClient talks to a MyMemory-compatible translation endpoint
// (GET ?q=...&langpair=en|xx, translated text under responseData).
type TranslateClient struct {
	endpoint string
	client   *http.Client
	logger   domain.Logger
}

// NewTranslateClient creates the translation client from config.
func NewTranslateClient(cfg domain.Config, logger domain.Logger) *TranslateClient {
	return &TranslateClient{
		endpoint: cfg.GetTranslateEndpoint(),
		client:   &http.Client{},
		logger:   logger,
	}
}

// Translate translates text into targetLang. The default language (or an
// empty target) returns the text unchanged. A failed part aborts the whole
// translation; there are no retries.
func (c *TranslateClient) Translate(ctx context.Context, text, targetLang string) (string, error) {
	if targetLang == "" || strings.EqualFold(targetLang, domain.DefaultLanguage) {
		return text, nil
	}

	chunks := splitByCharBudget(text, maxTranslateChunkChars)
	parts := make([]string, 0, len(chunks))
	for _, chunk := range chunks {
		translated, err := c.translateChunk(ctx, chunk, targetLang)
		if err != nil {
			return "", err
		}
		parts = append(parts, translated)
	}

	return strings.Join(parts, " "), nil
}

func (c *TranslateClient) translateChunk(ctx context.Context, text, targetLang string) (string, error) {
	u, err := url.Parse(c.endpoint)
	if err != nil {
		return "", fmt.Errorf("invalid translation endpoint: %w", err)
	}
	q := u.Query()
	q.Set("q", text)
	q.Set("langpair", domain.DefaultLanguage+"|"+targetLang)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, "GET", u.String(), nil)
	if err != nil {
		return "", err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("translation request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("translation API returned status %d", resp.StatusCode)
	}

	var result struct {
		ResponseData struct {
			TranslatedText string `json:"translatedText"`
		} `json:"responseData"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("failed to decode translation response: %w", err)
	}
	if result.ResponseData.TranslatedText == "" {
		return "", fmt.Errorf("no translation returned")
	}

	return result.ResponseData.TranslatedText, nil
}

// splitByCharBudget groups whole words into chunks of at most maxChars
// characters. A single word longer than the budget becomes its own chunk.
func splitByCharBudget(text string, maxChars int) []string {
	words := strings.Fields(text)

	var chunks []string
	var current []string
	currentLen := 0
	for _, w := range words {
		if currentLen+len(w)+1 > maxChars {
			if len(current) > 0 {
				chunks = append(chunks, strings.Join(current, " "))
			}
			current = []string{w}
			currentLen = len(w)
		} else {
			current = append(current, w)
			currentLen += len(w) + 1
		}
	}
	if len(current) > 0 {
		chunks = append(chunks, strings.Join(current, " "))
	}
	return chunks
}
