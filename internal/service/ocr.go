package service

import (
	"context"
	"fmt"
	"os"
	osexec "os/exec"

	"doc-summarizer/internal/domain"
	"doc-summarizer/pkg/executor"
)

// OCRExtractor reads text out of images by shelling out to the tesseract
// binary. The image bytes are written to a temp file immediately before the
// call and removed on every exit path.
type OCRExtractor struct {
	exec   executor.Executor
	cmd    string
	logger domain.Logger
}

// NewOCRExtractor creates an OCR extractor using the given tesseract command
// name or path ("tesseract" when empty).
func NewOCRExtractor(exec executor.Executor, cmd string, logger domain.Logger) *OCRExtractor {
	if cmd == "" {
		cmd = "tesseract"
	}
	return &OCRExtractor{
		exec:   exec,
		cmd:    cmd,
		logger: logger,
	}
}

// ExtractText runs OCR over the image content. ext carries the original file
// extension so tesseract can pick the right decoder.
func (o *OCRExtractor) ExtractText(ctx context.Context, content []byte, ext string) (string, error) {
	if _, err := osexec.LookPath(o.cmd); err != nil {
		return "", fmt.Errorf(
			"OCR is not available: %w. Install tesseract-ocr and make sure %q is on PATH, or point TESSERACT_CMD at the binary", err, o.cmd)
	}

	tmp, err := os.CreateTemp("", "ocr-*"+ext)
	if err != nil {
		return "", fmt.Errorf("failed to create temp image: %w", err)
	}
	tmpPath := tmp.Name()
	defer func() {
		if err := os.Remove(tmpPath); err != nil && !os.IsNotExist(err) {
			o.logger.Warn("Failed to remove temp image", "path", tmpPath, "error", err)
		}
	}()

	if _, err := tmp.Write(content); err != nil {
		_ = tmp.Close()
		return "", fmt.Errorf("failed to write temp image: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("failed to write temp image: %w", err)
	}

	// "stdout" makes tesseract print the recognized text instead of writing
	// an output file.
	out, err := o.exec.Execute(ctx, o.cmd, tmpPath, "stdout")
	if err != nil {
		return "", fmt.Errorf("OCR failed: %w", err)
	}
	return out, nil
}
