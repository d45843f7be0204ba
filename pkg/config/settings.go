package config

import (
	"path/filepath"

	homedir "github.com/mitchellh/go-homedir"

	"github.com/artesmakar/customizable-text-history-with-regexes/pkg/format"
	"github.com/artesmakar/customizable-text-history-with-regexes/pkg/selector"
	"github.com/artesmakar/customizable-text-history-with-regexes/pkg/tokens"
)

// Tokenizer selection values.
const (
	TokenizerChars    = "chars"
	TokenizerTiktoken = "tiktoken"
)

// Settings is the merged view of everything the pipeline reads per
// invocation: persisted values layered over defaults, then env overrides.
type Settings struct {
	Selection     selector.Config `yaml:"selection"`
	Formatting    format.Config   `yaml:"formatting"`
	Style         string          `yaml:"style"`
	Tokenizer     string          `yaml:"tokenizer"`
	TiktokenModel string          `yaml:"tiktoken_model,omitempty"`
}

// DefaultSettings returns the hardcoded defaults persisted settings merge over.
func DefaultSettings() Settings {
	return Settings{
		Selection: selector.Config{
			SkipLastOtherTurn: false,
			DropLastUserTurn:  false,
			MaxTokens:         0,
			CharsPerToken:     tokens.DefaultCharsPerToken,
			SoftLimit:         false,
		},
		Formatting: format.Config{
			User:  format.RoleTemplate{DisplayName: "User"},
			Other: format.RoleTemplate{DisplayName: "Assistant"},
		},
		Style:     format.DefaultStyle,
		Tokenizer: TokenizerChars,
	}
}

// DefaultSettingsPath returns the settings file location under the user's
// home directory.
func DefaultSettingsPath() (string, error) {
	home, err := homedir.Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "histfmt", "settings.yaml"), nil
}

// clamp repairs numeric configuration the core is documented not to guard
// against: a non-positive chars-per-token ratio would divide by zero and a
// negative budget means "unlimited".
func clamp(s *Settings) {
	if s.Selection.CharsPerToken <= 0 {
		s.Selection.CharsPerToken = tokens.DefaultCharsPerToken
	}
	if s.Selection.MaxTokens < 0 {
		s.Selection.MaxTokens = 0
	}
	if s.Style == "" {
		s.Style = format.DefaultStyle
	}
	if s.Tokenizer == "" {
		s.Tokenizer = TokenizerChars
	}
}
