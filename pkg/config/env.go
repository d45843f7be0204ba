package config

import (
	"os"
	"strconv"
)

// Environment accessors with the default-on-missing-or-invalid contract.
// Unset or unparsable values never fail configuration loading.

// GetStringWithDefault gets a string value by env key, returns default if not set
func GetStringWithDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// GetIntWithDefault gets an integer value by env key, returns default if not set or invalid
func GetIntWithDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return intValue
}

// GetFloatWithDefault gets a float value by env key, returns default if not set or invalid
func GetFloatWithDefault(key string, defaultValue float64) float64 {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	floatValue, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return defaultValue
	}
	return floatValue
}

// GetBoolWithDefault gets a boolean value by env key, returns default if not set or invalid
func GetBoolWithDefault(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	boolValue, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}
	return boolValue
}

// applyEnvOverrides layers HISTFMT_* environment values over the settings.
func applyEnvOverrides(s *Settings) {
	s.Selection.SkipLastOtherTurn = GetBoolWithDefault("HISTFMT_SKIP_LAST_OTHER", s.Selection.SkipLastOtherTurn)
	s.Selection.DropLastUserTurn = GetBoolWithDefault("HISTFMT_DROP_LAST_USER", s.Selection.DropLastUserTurn)
	s.Selection.MaxTokens = GetIntWithDefault("HISTFMT_MAX_TOKENS", s.Selection.MaxTokens)
	s.Selection.CharsPerToken = GetFloatWithDefault("HISTFMT_CHARS_PER_TOKEN", s.Selection.CharsPerToken)
	s.Selection.SoftLimit = GetBoolWithDefault("HISTFMT_SOFT_LIMIT", s.Selection.SoftLimit)
	s.Style = GetStringWithDefault("HISTFMT_STYLE", s.Style)
	s.Tokenizer = GetStringWithDefault("HISTFMT_TOKENIZER", s.Tokenizer)
	s.TiktokenModel = GetStringWithDefault("HISTFMT_TIKTOKEN_MODEL", s.TiktokenModel)
}
