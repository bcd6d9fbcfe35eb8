package service

import (
	"fmt"
	"strings"
	"time"

	"doc-summarizer/internal/domain"

	"github.com/gen2brain/go-fitz"
)

// PDFProcessor handles PDF text extraction
type PDFProcessor struct {
	logger domain.Logger
}

// NewPDFProcessor creates a new PDF processor
func NewPDFProcessor(logger domain.Logger) *PDFProcessor {
	return &PDFProcessor{
		logger: logger,
	}
}

const pdfPageTimeout = 90 * time.Second

// ExtractText extracts the text of every page, non-empty pages joined by
// blank lines. Pages that fail or time out are skipped with a warning rather
// than failing the whole document.
func (p *PDFProcessor) ExtractText(pdfBytes []byte) (string, error) {
	doc, err := fitz.NewFromMemory(pdfBytes)
	if err != nil {
		return "", fmt.Errorf("failed to extract PDF text: %w", err)
	}
	defer doc.Close()

	type pageResult struct {
		text string
		err  error
	}

	numPages := doc.NumPage()
	pages := make([]string, 0, numPages)
	for pageNum := 0; pageNum < numPages; pageNum++ {
		p.logger.Debug("PDF processing page", "page", pageNum+1, "total", numPages)

		resultCh := make(chan pageResult, 1)
		go func(idx int) {
			t, e := doc.Text(idx)
			resultCh <- pageResult{text: t, err: e}
		}(pageNum)

		var text string
		select {
		case res := <-resultCh:
			if res.err != nil {
				p.logger.Warn("Failed to extract text from page", "page", pageNum+1, "total", numPages, "error", res.err)
				continue
			}
			text = res.text
		case <-time.After(pdfPageTimeout):
			p.logger.Warn("PDF page extraction timeout; skipping page", "page", pageNum+1, "total", numPages, "timeout_sec", int(pdfPageTimeout.Seconds()))
			go func() { <-resultCh }() // drain so goroutine can exit
			continue
		}

		if trimmed := strings.TrimSpace(text); trimmed != "" {
			pages = append(pages, trimmed)
		}
	}

	return strings.Join(pages, "\n\n"), nil
}
