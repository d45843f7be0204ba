package rewrite

import (
	"strings"

	"github.com/dlclark/regexp2"

	"github.com/artesmakar/customizable-text-history-with-regexes/pkg/conversation"
	"github.com/artesmakar/customizable-text-history-with-regexes/pkg/logging"
)

// Engine applies an ordered list of rewrite rules to message text.
// The output of each rule feeds the next; a rule that fails to compile or
// apply is skipped and the text stands as it was before that rule.
type Engine struct {
	logger logging.Logger
}

// NewEngine creates a rewrite engine.
func NewEngine(logger logging.Logger) *Engine {
	if logger == nil {
		logger = logging.GetGlobalLogger()
	}
	return &Engine{logger: logger}
}

// Apply runs every enabled rule whose scope matches the speaker, in order.
// It never returns an error; malformed rules degrade to no-ops with a log line.
func (e *Engine) Apply(text string, rules []Rule, speaker conversation.Speaker) string {
	for i, rule := range rules {
		if !rule.Enabled || !rule.Scope.Matches(speaker) {
			continue
		}

		re, global, err := compile(rule.Pattern, rule.Flags)
		if err != nil {
			e.logger.Warn("skipping rewrite rule with invalid pattern",
				"index", i, "pattern", rule.Pattern, "error", err)
			continue
		}

		replaced, err := re.Replace(text, rule.Replacement, -1, replaceCount(global))
		if err != nil {
			e.logger.Warn("skipping rewrite rule that failed to apply",
				"index", i, "pattern", rule.Pattern, "error", err)
			continue
		}
		text = replaced

		text = e.applyTrimPatterns(text, rule, i)
	}
	return text
}

// applyTrimPatterns deletes matches of each extra pattern, each one
// independently fault-tolerant.
func (e *Engine) applyTrimPatterns(text string, rule Rule, ruleIndex int) string {
	if rule.TrimPatterns == "" {
		return text
	}

	for _, pattern := range strings.Split(rule.TrimPatterns, "\n") {
		pattern = strings.TrimSpace(pattern)
		if pattern == "" {
			continue
		}

		re, _, err := compile(pattern, rule.Flags)
		if err != nil {
			e.logger.Warn("skipping invalid trim pattern",
				"rule", ruleIndex, "pattern", pattern, "error", err)
			continue
		}
		trimmed, err := re.Replace(text, "", -1, -1)
		if err != nil {
			e.logger.Warn("skipping trim pattern that failed to apply",
				"rule", ruleIndex, "pattern", pattern, "error", err)
			continue
		}
		text = trimmed
	}
	return text
}

// compile builds a matcher from a pattern and a host-dialect flags string.
// Returns whether the "g" flag was present; unknown flag characters are
// ignored rather than failing the rule.
func compile(pattern, flags string) (*regexp2.Regexp, bool, error) {
	if flags == "" {
		flags = "g"
	}

	opts := regexp2.None
	global := false
	for _, flag := range flags {
		switch flag {
		case 'g':
			global = true
		case 'i':
			opts |= regexp2.IgnoreCase
		case 'm':
			opts |= regexp2.Multiline
		case 's':
			opts |= regexp2.Singleline
		case 'u':
			opts |= regexp2.Unicode
		}
	}

	re, err := regexp2.Compile(pattern, opts)
	if err != nil {
		return nil, false, err
	}
	return re, global, nil
}

func replaceCount(global bool) int {
	if global {
		return -1
	}
	return 1
}
