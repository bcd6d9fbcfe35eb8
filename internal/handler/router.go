package handler

import (
	"net/http"

	"doc-summarizer/internal/domain"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

// NewRouter creates a new HTTP router with all routes configured
func NewRouter(
	summarizeHandler *SummarizeHandler,
	uploadHandler *UploadHandler,
	modelHandler *ModelHandler,
	allowedOrigins []string,
) http.Handler {
	router := mux.NewRouter()

	// Health check endpoint
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok","service":"doc-summarizer"}`))
	}).Methods("GET")

	router.HandleFunc("/summarize", summarizeHandler.Summarize).Methods("POST")
	router.HandleFunc("/upload", uploadHandler.Upload).Methods("POST")
	router.HandleFunc("/languages", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"languages": domain.SupportedLanguages(),
		})
	}).Methods("GET")
	router.HandleFunc("/load_model", modelHandler.LoadModel).Methods("POST")
	router.HandleFunc("/model_status", modelHandler.ModelStatus).Methods("GET")

	// Configure CORS
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"*"}
	}
	c := cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodOptions,
		},
		AllowedHeaders: []string{
			"Accept",
			"Authorization",
			"Content-Type",
		},
		AllowCredentials: true,
		MaxAge:           300, // Maximum value not ignored by any of major browsers
	})

	return c.Handler(router)
}
