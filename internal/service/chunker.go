package service

import (
	"strings"

	"doc-summarizer/internal/domain"
)

const (
	// The model context window is capped regardless of what the tokenizer
	// reports, and a safety margin is reserved for special tokens.
	hardTokenCap      = 1024
	tokenSafetyMargin = 64
	minTokenBudget    = 256

	// Word-group size used when no tokenizer is available.
	fallbackChunkWords = 800
)

// Chunker splits text into word-bounded segments that each fit the model's
// token budget. Chunking is lossless: joining the chunks' words in order
// reproduces the input's word sequence.
type Chunker struct {
	tokenizer domain.Tokenizer
	maxTokens int
}

// NewChunker creates a chunker for the given tokenizer. A nil tokenizer
// selects fixed-size word grouping. maxTokens <= 0 selects the default
// budget derived from the tokenizer's maximum input length.
func NewChunker(tokenizer domain.Tokenizer, maxTokens int) *Chunker {
	if maxTokens <= 0 {
		maxTokens = defaultTokenBudget(tokenizer)
	}
	return &Chunker{
		tokenizer: tokenizer,
		maxTokens: maxTokens,
	}
}

// defaultTokenBudget is min(model max input, 1024) minus a safety margin,
// floored at 256 tokens.
func defaultTokenBudget(tokenizer domain.Tokenizer) int {
	if tokenizer == nil {
		return 0
	}
	modelMax := tokenizer.MaxInputTokens()
	if modelMax <= 0 || modelMax > hardTokenCap {
		modelMax = hardTokenCap
	}
	budget := modelMax - tokenSafetyMargin
	if budget < minTokenBudget {
		budget = minTokenBudget
	}
	return budget
}

// Chunk splits text into ordered chunks. Words are appended to a candidate
// chunk one at a time, re-encoding the whole candidate; when the encoding
// reaches the budget the last word is removed, the candidate is sealed, and
// a fresh candidate starts with the word that overflowed.
//
// A single word whose encoding alone exceeds the budget still becomes its
// own one-word chunk; dropping words is worse than an oversized chunk.
func (c *Chunker) Chunk(text string) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	if c.tokenizer == nil {
		return groupWords(words, fallbackChunkWords)
	}

	var chunks []string
	var current []string
	for _, w := range words {
		current = append(current, w)
		if len(c.tokenizer.Encode(strings.Join(current, " "))) >= c.maxTokens {
			current = current[:len(current)-1]
			if len(current) > 0 {
				chunks = append(chunks, strings.Join(current, " "))
			}
			current = []string{w}
		}
	}
	if len(current) > 0 {
		chunks = append(chunks, strings.Join(current, " "))
	}
	return chunks
}

func groupWords(words []string, groupSize int) []string {
	chunks := make([]string, 0, (len(words)+groupSize-1)/groupSize)
	for start := 0; start < len(words); start += groupSize {
		end := start + groupSize
		if end > len(words) {
			end = len(words)
		}
		chunks = append(chunks, strings.Join(words[start:end], " "))
	}
	return chunks
}
