package selector

import (
	"github.com/artesmakar/customizable-text-history-with-regexes/pkg/conversation"
	"github.com/artesmakar/customizable-text-history-with-regexes/pkg/tokens"
)

// Config controls which slice of the conversation gets rendered.
type Config struct {
	// SkipLastOtherTurn drops a trailing counterpart turn. Generation UIs keep
	// a discarded draft reply as the last turn on regeneration; it must not
	// leak into history.
	SkipLastOtherTurn bool `yaml:"skip_last_other_turn"`
	// DropLastUserTurn removes the most recent user turn (at most one).
	DropLastUserTurn bool `yaml:"drop_last_user_turn"`
	// MaxTokens is the windowing budget; 0 or negative disables windowing.
	MaxTokens int `yaml:"max_tokens"`
	// CharsPerToken feeds the char-ratio estimator. Must be > 0; the config
	// layer clamps it before it gets here.
	CharsPerToken float64 `yaml:"chars_per_token"`
	// SoftLimit includes the turn that crosses the budget instead of
	// excluding it.
	SoftLimit bool `yaml:"soft_limit"`
}

// Select returns the filtered, budget-constrained sub-sequence of turns to
// render, oldest first. Pure function over a copy; the input is never mutated.
func Select(turns []conversation.Turn, cfg Config, est tokens.Estimator) []conversation.Turn {
	selected := make([]conversation.Turn, len(turns))
	copy(selected, turns)

	if cfg.SkipLastOtherTurn && len(selected) > 0 &&
		selected[len(selected)-1].Speaker == conversation.SpeakerOther {
		selected = selected[:len(selected)-1]
	}

	if cfg.DropLastUserTurn {
		for i := len(selected) - 1; i >= 0; i-- {
			if selected[i].Speaker == conversation.SpeakerUser {
				selected = append(selected[:i], selected[i+1:]...)
				break
			}
		}
	}

	if cfg.MaxTokens <= 0 {
		return selected
	}
	if est == nil {
		est = tokens.NewCharRatio(cfg.CharsPerToken)
	}

	// Walk backwards (newest first), accumulate until the budget is spent.
	// startIdx marks the oldest admitted turn so chronological order is free.
	tokensUsed := 0
	startIdx := len(selected)

	for i := len(selected) - 1; i >= 0; i-- {
		turnTokens := est.EstimateTokens(selected[i].Text)

		if cfg.SoftLimit {
			tokensUsed += turnTokens
			startIdx = i
			if tokensUsed >= cfg.MaxTokens {
				break
			}
			continue
		}

		if tokensUsed+turnTokens > cfg.MaxTokens {
			break
		}
		tokensUsed += turnTokens
		startIdx = i
	}

	return selected[startIdx:]
}
