package service

import (
	"context"
	"fmt"
	"sync"

	"doc-summarizer/internal/domain"
)

// modelProber is implemented by backends that can verify reachability of the
// remote model before the manager reports it loaded.
type modelProber interface {
	Probe(ctx context.Context) error
}

// ModelManager owns the process-wide model state: the remote summarization
// backend and the tokenizer. Both are initialized at most once, behind an
// explicit lock so concurrent first use is safe. Loading runs in the
// background; requests that arrive while the model is absent use the
// extractive fallback instead of blocking.
type ModelManager struct {
	client domain.SummaryBackend
	cfg    domain.Config
	logger domain.Logger

	// Overridable for tests; defaults to NewTiktokenTokenizer.
	newTokenizer func(encoding string, maxInput int) (domain.Tokenizer, error)

	mu        sync.Mutex
	state     string
	lastError string
	tokenizer domain.Tokenizer
}

// NewModelManager creates a manager around the given inference backend.
// Nothing is loaded until LoadInBackground is called.
func NewModelManager(client domain.SummaryBackend, cfg domain.Config, logger domain.Logger) *ModelManager {
	return &ModelManager{
		client:       client,
		cfg:          cfg,
		logger:       logger,
		newTokenizer: NewTiktokenTokenizer,
		state:        domain.ModelStateNotLoaded,
	}
}

// LoadInBackground starts model initialization on its own goroutine and
// returns the status snapshot immediately. Repeated calls while a load is in
// flight (or after a successful load) are acknowledged without spawning a
// second task.
func (m *ModelManager) LoadInBackground() domain.ModelStatus {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state == domain.ModelStateLoading || m.state == domain.ModelStateLoaded {
		return m.statusLocked()
	}

	m.state = domain.ModelStateLoading
	m.lastError = ""
	go m.runLoad()

	return m.statusLocked()
}

// Status returns the current loading state.
func (m *ModelManager) Status() domain.ModelStatus {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.statusLocked()
}

// Backend returns the remote summarization backend, or nil while the model
// is not loaded. Callers fall back to extractive summarization on nil.
func (m *ModelManager) Backend() domain.SummaryBackend {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state != domain.ModelStateLoaded {
		return nil
	}
	return m.client
}

// Tokenizer returns the loaded tokenizer, or nil when unavailable. A nil
// tokenizer degrades chunking to fixed-size word grouping.
func (m *ModelManager) Tokenizer() domain.Tokenizer {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.tokenizer
}

func (m *ModelManager) statusLocked() domain.ModelStatus {
	return domain.ModelStatus{
		State: m.state,
		Model: m.cfg.GetModelName(),
		Error: m.lastError,
	}
}

func (m *ModelManager) runLoad() {
	tokenizer, err := m.load()

	m.mu.Lock()
	defer m.mu.Unlock()
	if err != nil {
		m.logger.Error("Model load failed in background", err, "model", m.cfg.GetModelName())
		m.state = domain.ModelStateFailed
		m.lastError = err.Error()
		return
	}
	m.tokenizer = tokenizer
	m.state = domain.ModelStateLoaded
	m.logger.Info("Model loaded successfully", "model", m.cfg.GetModelName())
}

func (m *ModelManager) load() (domain.Tokenizer, error) {
	if m.client == nil || !m.client.Available() {
		return nil, fmt.Errorf(
			"model endpoint is not configured: set MODEL_ENDPOINT (and MODEL_API_TOKEN if the service requires auth) to enable model summarization")
	}

	tokenizer, err := m.newTokenizer(m.cfg.GetTokenizerEncoding(), m.cfg.GetModelMaxInput())
	if err != nil {
		return nil, err
	}

	if prober, ok := m.client.(modelProber); ok {
		if err := prober.Probe(context.Background()); err != nil {
			return nil, fmt.Errorf(
				"failed to reach model %q: %w. Ensure the server has network access to the inference endpoint", m.cfg.GetModelName(), err)
		}
	}

	return tokenizer, nil
}
