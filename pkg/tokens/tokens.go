package tokens

import "math"

// DefaultCharsPerToken is the chars/4 heuristic which slightly overestimates
// for English text. This is intentionally conservative — better to leave room
// than to overflow.
const DefaultCharsPerToken = 4.0

// Estimator approximates the token cost of a piece of text.
type Estimator interface {
	EstimateTokens(text string) int
}

// Estimate returns ceil(len(text) / charsPerToken), or 0 for empty text.
// charsPerToken must be > 0; the config layer clamps it before it gets here.
func Estimate(text string, charsPerToken float64) int {
	if len(text) == 0 {
		return 0
	}
	return int(math.Ceil(float64(len(text)) / charsPerToken))
}

// CharRatio estimates tokens from character length and a configurable ratio.
type CharRatio struct {
	CharsPerToken float64
}

// NewCharRatio creates a char-ratio estimator, falling back to the default
// ratio when given a non-positive one.
func NewCharRatio(charsPerToken float64) *CharRatio {
	if charsPerToken <= 0 {
		charsPerToken = DefaultCharsPerToken
	}
	return &CharRatio{CharsPerToken: charsPerToken}
}

func (e *CharRatio) EstimateTokens(text string) int {
	return Estimate(text, e.CharsPerToken)
}
