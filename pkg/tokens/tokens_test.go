package tokens

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEstimate_EmptyText(t *testing.T) {
	assert.Equal(t, 0, Estimate("", 4))
}

func TestEstimate_CeilingDivision(t *testing.T) {
	tests := []struct {
		name          string
		text          string
		charsPerToken float64
		want          int
	}{
		{"exact multiple", strings.Repeat("a", 8), 4, 2},
		{"rounds up", strings.Repeat("a", 9), 4, 3},
		{"single char", "a", 4, 1},
		{"fractional ratio", strings.Repeat("a", 10), 2.5, 4},
		{"ratio larger than text", "ab", 10, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Estimate(tt.text, tt.charsPerToken))
		})
	}
}

func TestCharRatio_EstimateTokens(t *testing.T) {
	est := NewCharRatio(4)

	assert.Equal(t, 10, est.EstimateTokens(strings.Repeat("x", 40)))
	assert.Equal(t, 0, est.EstimateTokens(""))
}

func TestNewCharRatio_ClampsInvalidRatio(t *testing.T) {
	est := NewCharRatio(0)
	assert.Equal(t, DefaultCharsPerToken, est.CharsPerToken)

	est = NewCharRatio(-1)
	assert.Equal(t, DefaultCharsPerToken, est.CharsPerToken)
}
