package tokens

import (
	"fmt"

	"github.com/pkoukk/tiktoken-go"
)

// Tiktoken counts tokens with a real BPE encoding instead of the char ratio.
// Opt-in via the "tokenizer: tiktoken" setting; the char ratio stays the
// default because encoding large histories on every invocation is not free.
type Tiktoken struct {
	encoder *tiktoken.Tiktoken
}

// NewTiktoken creates a tiktoken-backed estimator for the given model,
// falling back to the cl100k_base encoding for unknown models.
func NewTiktoken(model string) (*Tiktoken, error) {
	encoder, err := tiktoken.EncodingForModel(model)
	if err != nil {
		encoderFallback, fallbackErr := tiktoken.GetEncoding("cl100k_base")
		if fallbackErr != nil {
			return nil, fmt.Errorf("get encoding: %w", fallbackErr)
		}
		encoder = encoderFallback
	}
	return &Tiktoken{encoder: encoder}, nil
}

func (e *Tiktoken) EstimateTokens(text string) int {
	if text == "" {
		return 0
	}
	return len(e.encoder.Encode(text, nil, nil))
}
