package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"doc-summarizer/internal/domain"
)

// MockModelManager tracks load requests and serves a fixed status.
type MockModelManager struct {
	status    domain.ModelStatus
	loadCalls int
}

func (m *MockModelManager) LoadInBackground() domain.ModelStatus {
	m.loadCalls++
	m.status.State = domain.ModelStateLoading
	return m.status
}

func (m *MockModelManager) Status() domain.ModelStatus {
	return m.status
}

func newTestRouter(models *MockModelManager) http.Handler {
	logger := NewMockHandlerLogger()
	summarizeHandler := NewSummarizeHandler(&MockSummaryService{}, logger)
	uploadHandler := NewUploadHandler(&MockSummaryService{}, &MockExtractor{text: "text"}, 1<<20, logger)
	modelHandler := NewModelHandler(models, logger)
	return NewRouter(summarizeHandler, uploadHandler, modelHandler, nil)
}

func TestRouter_Health(t *testing.T) {
	router := newTestRouter(&MockModelManager{})

	req := httptest.NewRequest("GET", "/health", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Code != 200 {
		t.Fatalf("expected status 200, got %d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), `"status":"ok"`) {
		t.Fatalf("unexpected body: %s", rr.Body.String())
	}
}

func TestRouter_Languages(t *testing.T) {
	router := newTestRouter(&MockModelManager{})

	req := httptest.NewRequest("GET", "/languages", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Code != 200 {
		t.Fatalf("expected status 200, got %d", rr.Code)
	}

	var resp struct {
		Languages []domain.Language `json:"languages"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(resp.Languages) != 12 {
		t.Fatalf("expected 12 languages, got %d", len(resp.Languages))
	}
	if resp.Languages[0].Code != "en" || resp.Languages[0].Name != "English" {
		t.Fatalf("expected English first, got %+v", resp.Languages[0])
	}
}

func TestRouter_LoadModel(t *testing.T) {
	models := &MockModelManager{status: domain.ModelStatus{Model: "test-model"}}
	router := newTestRouter(models)

	req := httptest.NewRequest("POST", "/load_model", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Code != 200 {
		t.Fatalf("expected status 200, got %d", rr.Code)
	}
	if models.loadCalls != 1 {
		t.Fatalf("expected 1 load call, got %d", models.loadCalls)
	}

	var resp map[string]string
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp["status"] != "loading_started" {
		t.Fatalf("expected loading_started, got %q", resp["status"])
	}
	if resp["model"] != "test-model" {
		t.Fatalf("expected model name in response, got %q", resp["model"])
	}
}

func TestRouter_ModelStatus(t *testing.T) {
	models := &MockModelManager{status: domain.ModelStatus{
		State: domain.ModelStateNotLoaded,
		Model: "test-model",
	}}
	router := newTestRouter(models)

	req := httptest.NewRequest("GET", "/model_status", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Code != 200 {
		t.Fatalf("expected status 200, got %d", rr.Code)
	}

	var status domain.ModelStatus
	if err := json.Unmarshal(rr.Body.Bytes(), &status); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if status.State != domain.ModelStateNotLoaded {
		t.Fatalf("expected not_loaded, got %q", status.State)
	}
}

func TestRouter_MethodNotAllowed(t *testing.T) {
	router := newTestRouter(&MockModelManager{})

	req := httptest.NewRequest("GET", "/summarize", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected status 405, got %d", rr.Code)
	}
}

func TestRouter_CORSPreflight(t *testing.T) {
	router := newTestRouter(&MockModelManager{})

	req := httptest.NewRequest("OPTIONS", "/summarize", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", "POST")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if got := rr.Header().Get("Access-Control-Allow-Origin"); got == "" {
		t.Fatal("expected CORS headers on preflight response")
	}
}
