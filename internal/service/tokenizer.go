package service

import (
	"fmt"

	"doc-summarizer/internal/domain"

	"github.com/pkoukk/tiktoken-go"
)

const defaultEncoding = "cl100k_base"

// tiktokenTokenizer adapts tiktoken-go to the domain.Tokenizer interface.
// Loading an encoding pulls the full BPE rank table into memory, which is why
// construction only happens through the model manager's load step.
type tiktokenTokenizer struct {
	tke      *tiktoken.Tiktoken
	maxInput int
}

// NewTiktokenTokenizer loads the named encoding. An empty name selects the
// default encoding; maxInput <= 0 falls back to the hard context cap.
func NewTiktokenTokenizer(encoding string, maxInput int) (domain.Tokenizer, error) {
	if encoding == "" {
		encoding = defaultEncoding
	}
	tke, err := tiktoken.GetEncoding(encoding)
	if err != nil {
		return nil, fmt.Errorf("failed to load tokenizer encoding %q: %w", encoding, err)
	}
	if maxInput <= 0 {
		maxInput = hardTokenCap
	}
	return &tiktokenTokenizer{
		tke:      tke,
		maxInput: maxInput,
	}, nil
}

func (t *tiktokenTokenizer) Encode(text string) []int {
	return t.tke.Encode(text, nil, nil)
}

func (t *tiktokenTokenizer) MaxInputTokens() int {
	return t.maxInput
}
