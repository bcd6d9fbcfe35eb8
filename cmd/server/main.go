package main

import (
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"doc-summarizer/internal/config"
	"doc-summarizer/internal/handler"

	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found or could not be loaded: %v", err)
	}
	// Wiring
	container := config.NewContainer()

	// Handlers
	summarizeHandler := handler.NewSummarizeHandler(
		container.SummaryService,
		container.Logger,
	)

	uploadHandler := handler.NewUploadHandler(
		container.SummaryService,
		container.Extractor,
		container.Config.GetMaxFileSize(),
		container.Logger,
	)

	modelHandler := handler.NewModelHandler(
		container.ModelManager,
		container.Logger,
	)

	// Router
	router := handler.NewRouter(
		summarizeHandler,
		uploadHandler,
		modelHandler,
		container.Config.GetAllowedOrigins(),
	)

	// start server
	server := &http.Server{
		Addr:    ":" + container.Config.GetServerPort(),
		Handler: router,
	}

	// Run server
	go func() {
		container.Logger.Info("Server listening", "address", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			container.Logger.Error("Server failed to start", err)
			os.Exit(1)
		}
	}()
	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	container.Logger.Info("Shutting down server...")
	_ = server.Close()

	container.Logger.Info("Server exited")
}
