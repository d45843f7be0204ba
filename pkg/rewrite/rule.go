package rewrite

import (
	"github.com/artesmakar/customizable-text-history-with-regexes/pkg/conversation"
)

// Scope restricts a rule to turns from a specific speaker.
type Scope string

const (
	// ScopeAll applies the rule to every turn. The zero value behaves the same.
	ScopeAll Scope = "all"
	// ScopeUser applies the rule to user turns only.
	ScopeUser Scope = "user"
	// ScopeOther applies the rule to the counterpart's turns only.
	ScopeOther Scope = "other"
)

// Matches reports whether a rule with this scope applies to the speaker.
func (s Scope) Matches(speaker conversation.Speaker) bool {
	switch s {
	case ScopeUser:
		return speaker == conversation.SpeakerUser
	case ScopeOther:
		return speaker == conversation.SpeakerOther
	default:
		return true
	}
}

// Rule is one ordered find/replace step. Pattern and Flags use the host
// platform's regex dialect ("g", "i", "m", "s"); Replacement may contain
// $1-style capture references. Rules with patterns that fail to compile are
// skipped at apply time, never fatal.
type Rule struct {
	Pattern     string `yaml:"pattern"`
	Replacement string `yaml:"replacement"`
	Flags       string `yaml:"flags,omitempty"`
	Enabled     bool   `yaml:"enabled"`
	Scope       Scope  `yaml:"scope,omitempty"`
	// TrimPatterns is a newline-separated list of extra delete-only patterns
	// applied right after this rule's main replace.
	TrimPatterns string `yaml:"trim_patterns,omitempty"`
}
