package handler

import (
	"net/http"

	"doc-summarizer/internal/domain"
)

// ModelHandler exposes background model loading and its status.
type ModelHandler struct {
	models domain.ModelManager
	logger domain.Logger
}

// NewModelHandler creates a new model handler
func NewModelHandler(models domain.ModelManager, logger domain.Logger) *ModelHandler {
	return &ModelHandler{
		models: models,
		logger: logger,
	}
}

// LoadModel handles POST /load_model. Loading runs in the background; the
// response acknowledges immediately and clients poll /model_status.
func (h *ModelHandler) LoadModel(w http.ResponseWriter, r *http.Request) {
	status := h.models.LoadInBackground()
	h.logger.Info("Model load requested", "model", status.Model, "state", status.State)

	writeJSON(w, http.StatusOK, map[string]string{
		"status": "loading_started",
		"model":  status.Model,
	})
}

// ModelStatus handles GET /model_status
func (h *ModelHandler) ModelStatus(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.models.Status())
}
