package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http/httptest"
	"strings"
	"testing"

	"doc-summarizer/internal/domain"
)

// MockSummaryService records the last request and returns a configured result
// or error.
type MockSummaryService struct {
	result  *domain.SummaryResult
	err     error
	lastReq domain.SummarizeRequest
	calls   int
}

func (m *MockSummaryService) Summarize(ctx context.Context, req domain.SummarizeRequest) (*domain.SummaryResult, error) {
	m.calls++
	m.lastReq = req
	if m.err != nil {
		return nil, m.err
	}
	if m.result != nil {
		return m.result, nil
	}
	return &domain.SummaryResult{
		Summary:        req.Text,
		Language:       "en",
		OriginalLength: len(strings.Fields(req.Text)),
		SummaryLength:  len(strings.Fields(req.Text)),
	}, nil
}

func TestSummarizeHandler_Success(t *testing.T) {
	mockService := &MockSummaryService{
		result: &domain.SummaryResult{
			Summary:        "a summary",
			Language:       "hi",
			OriginalLength: 100,
			SummaryLength:  2,
		},
	}
	h := NewSummarizeHandler(mockService, NewMockHandlerLogger())

	body := `{"text":"some long text","target_language":"hi","max_length":80,"min_length":20}`
	req := httptest.NewRequest("POST", "/summarize", strings.NewReader(body))
	rr := httptest.NewRecorder()

	h.Summarize(rr, req)

	if rr.Code != 200 {
		t.Fatalf("expected status 200, got %d: %s", rr.Code, rr.Body.String())
	}
	if mockService.lastReq.Text != "some long text" {
		t.Fatalf("service received text %q", mockService.lastReq.Text)
	}
	if mockService.lastReq.TargetLanguage != "hi" {
		t.Fatalf("service received target_language %q", mockService.lastReq.TargetLanguage)
	}
	if mockService.lastReq.MaxLength != 80 || mockService.lastReq.MinLength != 20 {
		t.Fatalf("service received lengths max=%d min=%d", mockService.lastReq.MaxLength, mockService.lastReq.MinLength)
	}

	var result domain.SummaryResult
	if err := json.Unmarshal(rr.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if result.Summary != "a summary" || result.Language != "hi" {
		t.Fatalf("unexpected response: %+v", result)
	}
}

func TestSummarizeHandler_EmptyText(t *testing.T) {
	mockService := &MockSummaryService{err: domain.ErrEmptyText}
	h := NewSummarizeHandler(mockService, NewMockHandlerLogger())

	req := httptest.NewRequest("POST", "/summarize", strings.NewReader(`{"text":""}`))
	rr := httptest.NewRecorder()

	h.Summarize(rr, req)

	if rr.Code != 400 {
		t.Fatalf("expected status 400, got %d", rr.Code)
	}
	var resp map[string]string
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp["error"] != "Text cannot be empty" {
		t.Fatalf("expected exact error message, got %q", resp["error"])
	}
}

func TestSummarizeHandler_InvalidBody(t *testing.T) {
	h := NewSummarizeHandler(&MockSummaryService{}, NewMockHandlerLogger())

	req := httptest.NewRequest("POST", "/summarize", strings.NewReader("{not json"))
	rr := httptest.NewRecorder()

	h.Summarize(rr, req)

	if rr.Code != 400 {
		t.Fatalf("expected status 400, got %d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "Invalid request body") {
		t.Fatalf("unexpected body: %s", rr.Body.String())
	}
}

func TestSummarizeHandler_ServiceError(t *testing.T) {
	mockService := &MockSummaryService{err: errors.New("model error: boom")}
	h := NewSummarizeHandler(mockService, NewMockHandlerLogger())

	req := httptest.NewRequest("POST", "/summarize", strings.NewReader(`{"text":"hello"}`))
	rr := httptest.NewRecorder()

	h.Summarize(rr, req)

	if rr.Code != 500 {
		t.Fatalf("expected status 500, got %d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "model error") {
		t.Fatalf("unexpected body: %s", rr.Body.String())
	}
}
