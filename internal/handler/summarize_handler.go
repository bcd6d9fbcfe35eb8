package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"doc-summarizer/internal/domain"
)

// SummarizeHandler handles direct text summarization requests
type SummarizeHandler struct {
	summaryService domain.SummaryService
	logger         domain.Logger
}

// NewSummarizeHandler creates a new summarize handler
func NewSummarizeHandler(summaryService domain.SummaryService, logger domain.Logger) *SummarizeHandler {
	return &SummarizeHandler{
		summaryService: summaryService,
		logger:         logger,
	}
}

// Summarize handles POST /summarize
func (h *SummarizeHandler) Summarize(w http.ResponseWriter, r *http.Request) {
	var req domain.SummarizeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.summaryService.Summarize(r.Context(), req)
	if err != nil {
		if errors.Is(err, domain.ErrEmptyText) {
			writeError(w, http.StatusBadRequest, domain.ErrEmptyText.Error())
			return
		}
		h.logger.Error("Summarization failed", err, "target_language", req.TargetLanguage)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, result)
}
