package handler

import (
	"errors"
	"io"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"doc-summarizer/internal/domain"
)

// UploadHandler handles file uploads: extract text, summarize, translate.
type UploadHandler struct {
	summaryService domain.SummaryService
	extractor      domain.TextExtractor
	maxFileSize    int64
	logger         domain.Logger
}

// NewUploadHandler creates a new upload handler
func NewUploadHandler(summaryService domain.SummaryService, extractor domain.TextExtractor, maxFileSize int64, logger domain.Logger) *UploadHandler {
	return &UploadHandler{
		summaryService: summaryService,
		extractor:      extractor,
		maxFileSize:    maxFileSize,
		logger:         logger,
	}
}

// Upload handles POST /upload
func (h *UploadHandler) Upload(w http.ResponseWriter, r *http.Request) {
	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "No file provided")
		return
	}
	defer file.Close()

	// Sanitize filename (strip any path components)
	originalName := strings.TrimSpace(filepath.Base(header.Filename))
	if originalName == "" || originalName == "." {
		writeError(w, http.StatusBadRequest, "No file provided")
		return
	}

	if h.maxFileSize > 0 && header.Size > h.maxFileSize {
		writeError(w, http.StatusBadRequest, "File too large")
		return
	}

	content, err := io.ReadAll(file)
	if err != nil {
		h.logger.Error("Failed to read uploaded file", err, "filename", originalName)
		writeError(w, http.StatusInternalServerError, "Failed to read file")
		return
	}

	text, err := h.extractor.Extract(r.Context(), originalName, content)
	if err != nil {
		if errors.Is(err, domain.ErrUnsupportedFileType) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.logger.Error("Text extraction failed", err, "filename", originalName)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if strings.TrimSpace(text) == "" {
		writeError(w, http.StatusBadRequest, domain.ErrNoExtractedText.Error())
		return
	}

	req := domain.SummarizeRequest{
		Text:           text,
		TargetLanguage: r.FormValue("target_language"),
		MaxLength:      parseFormInt(r, "max_length", domain.DefaultMaxLength),
		MinLength:      parseFormInt(r, "min_length", domain.DefaultMinLength),
	}

	result, err := h.summaryService.Summarize(r.Context(), req)
	if err != nil {
		if errors.Is(err, domain.ErrEmptyText) {
			writeError(w, http.StatusBadRequest, domain.ErrEmptyText.Error())
			return
		}
		h.logger.Error("Summarization failed", err, "filename", originalName)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, domain.UploadResult{
		SummaryResult: *result,
		Filename:      originalName,
		OriginalText:  text,
	})
}

func parseFormInt(r *http.Request, key string, defaultValue int) int {
	raw := strings.TrimSpace(r.FormValue(key))
	if raw == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return defaultValue
	}
	return value
}
