// Package repository contains clients for the external services the
// summarizer delegates to: model inference and translation.
package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"doc-summarizer/internal/domain"
)

// InferenceClient calls a hosted summarization model over HTTP. The wire
// shape follows the Hugging Face inference API: POST {endpoint}/{model} with
// an "inputs"/"parameters" body and a [{"summary_text": ...}] response.
type InferenceClient struct {
	endpoint string
	model    string
	apiToken string
	client   *http.Client
	logger   domain.Logger
}

// NewInferenceClient creates the model client from config. An empty
// MODEL_ENDPOINT leaves the client unavailable; requests then use the
// extractive fallback.
func NewInferenceClient(cfg domain.Config, logger domain.Logger) *InferenceClient {
	return &InferenceClient{
		endpoint: strings.TrimRight(cfg.GetModelEndpoint(), "/"),
		model:    cfg.GetModelName(),
		apiToken: cfg.GetModelAPIToken(),
		// No client timeout: inference on large chunks can legitimately take
		// minutes, so the request context bounds the call instead.
		client: &http.Client{},
		logger: logger,
	}
}

// Available reports whether an inference endpoint is configured.
func (c *InferenceClient) Available() bool {
	return c.endpoint != ""
}

// Summarize runs one inference call for a single chunk. Failures are
// terminal; the caller does not retry.
func (c *InferenceClient) Summarize(ctx context.Context, text string, maxLength, minLength int) (string, error) {
	if c.endpoint == "" {
		return "", fmt.Errorf(
			"model endpoint is not configured: set MODEL_ENDPOINT (and MODEL_API_TOKEN if the service requires auth)")
	}

	requestBody := map[string]interface{}{
		"inputs": text,
		"parameters": map[string]interface{}{
			"max_length": maxLength,
			"min_length": minLength,
			"do_sample":  false,
		},
	}
	jsonBody, err := json.Marshal(requestBody)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.modelURL(), bytes.NewBuffer(jsonBody))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiToken)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("model request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return "", fmt.Errorf("model API returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var result []struct {
		SummaryText string `json:"summary_text"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("failed to decode model response: %w", err)
	}
	if len(result) == 0 {
		return "", fmt.Errorf("no summary returned by model")
	}

	return result[0].SummaryText, nil
}

// Probe checks that the model endpoint is reachable. Any HTTP response counts
// as reachable (hosted models answer with non-200 while still warming up);
// only transport failures are errors.
func (c *InferenceClient) Probe(ctx context.Context) error {
	if c.endpoint == "" {
		return fmt.Errorf("model endpoint is not configured")
	}

	req, err := http.NewRequestWithContext(ctx, "GET", c.modelURL(), nil)
	if err != nil {
		return err
	}
	if c.apiToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiToken)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("model endpoint unreachable: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 2048))

	c.logger.Debug("Model probe completed", "model", c.model, "status", resp.StatusCode)
	return nil
}

func (c *InferenceClient) modelURL() string {
	return c.endpoint + "/" + c.model
}
