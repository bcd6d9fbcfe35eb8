package config

import (
	"doc-summarizer/internal/domain"
	"doc-summarizer/internal/repository"
	"doc-summarizer/internal/service"
	"doc-summarizer/pkg/executor"
	"doc-summarizer/pkg/logger"
)

// Container holds all application dependencies
type Container struct {
	Config         domain.Config
	Logger         domain.Logger
	ModelManager   domain.ModelManager
	SummaryService domain.SummaryService
	Extractor      domain.TextExtractor
}

// NewContainer creates a new dependency injection container
func NewContainer() *Container {
	config := NewConfig()
	appLogger := logger.NewLogger(config.GetLogLevel())

	// External service clients
	inferenceClient := repository.NewInferenceClient(config, appLogger)
	translateClient := repository.NewTranslateClient(config, appLogger)

	// Model state and summarization pipeline
	models := service.NewModelManager(inferenceClient, config, appLogger)
	summaryService := service.NewSummaryService(models, translateClient, appLogger)

	// Extraction stack
	pdfProcessor := service.NewPDFProcessor(appLogger)
	ocrExtractor := service.NewOCRExtractor(executor.New(), config.GetTesseractCmd(), appLogger)
	extractor := service.NewExtractService(pdfProcessor, ocrExtractor, appLogger)

	return &Container{
		Config:         config,
		Logger:         appLogger,
		ModelManager:   models,
		SummaryService: summaryService,
		Extractor:      extractor,
	}
}
