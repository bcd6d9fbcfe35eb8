package service

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"doc-summarizer/internal/domain"
)

var imageExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".bmp":  true,
	".tiff": true,
}

// ExtractService turns an uploaded file into plain text. Dispatch is a static
// lookup by extension; there is no content sniffing.
type ExtractService struct {
	pdf    *PDFProcessor
	ocr    *OCRExtractor
	logger domain.Logger
}

// NewExtractService creates the file-type dispatcher.
func NewExtractService(pdf *PDFProcessor, ocr *OCRExtractor, logger domain.Logger) *ExtractService {
	return &ExtractService{
		pdf:    pdf,
		ocr:    ocr,
		logger: logger,
	}
}

// Extract returns the text content of the file, or ErrUnsupportedFileType
// (wrapped with the offending extension) when the extension is unknown.
func (s *ExtractService) Extract(ctx context.Context, filename string, content []byte) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch {
	case ext == ".txt" || ext == ".md" || ext == ".rtf":
		return decodePlainText(content), nil
	case ext == ".docx" || ext == ".doc":
		return extractDOCX(content)
	case ext == ".pdf":
		return s.pdf.ExtractText(content)
	case imageExtensions[ext]:
		return s.ocr.ExtractText(ctx, content, ext)
	default:
		return "", fmt.Errorf("%w: %s", domain.ErrUnsupportedFileType, ext)
	}
}

// decodePlainText decodes UTF-8 content, falling back to Latin-1 for legacy
// files. Latin-1 maps every byte 1:1 onto the first 256 code points, so the
// fallback cannot fail.
func decodePlainText(content []byte) string {
	if utf8.Valid(content) {
		return string(content)
	}
	runes := make([]rune, 0, len(content))
	for _, b := range content {
		runes = append(runes, rune(b))
	}
	return string(runes)
}
