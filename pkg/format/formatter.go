package format

import (
	"fmt"
	"strings"

	"github.com/artesmakar/customizable-text-history-with-regexes/pkg/conversation"
	"github.com/artesmakar/customizable-text-history-with-regexes/pkg/logging"
	"github.com/artesmakar/customizable-text-history-with-regexes/pkg/rewrite"
)

// RoleTemplate is the per-speaker presentation config.
type RoleTemplate struct {
	DisplayName string `yaml:"display_name"`
	HeaderText  string `yaml:"header_text,omitempty"`
	WrapperTag  string `yaml:"wrapper_tag,omitempty"`
}

// Config aggregates the two role templates and the rewrite rules.
type Config struct {
	User  RoleTemplate   `yaml:"user"`
	Other RoleTemplate   `yaml:"other"`
	Rules []rewrite.Rule `yaml:"rewrite_rules,omitempty"`
}

// templateFor resolves the role template by speaker.
func (c Config) templateFor(speaker conversation.Speaker) RoleTemplate {
	if speaker == conversation.SpeakerUser {
		return c.User
	}
	return c.Other
}

// Formatter renders selected turns into one text block. Each turn's text is
// run through the rewrite engine with that turn's speaker as scope before
// assembly.
type Formatter struct {
	engine *rewrite.Engine
	logger logging.Logger
}

// NewFormatter creates a formatter.
func NewFormatter(engine *rewrite.Engine, logger logging.Logger) *Formatter {
	if logger == nil {
		logger = logging.GetGlobalLogger()
	}
	if engine == nil {
		engine = rewrite.NewEngine(logger)
	}
	return &Formatter{engine: engine, logger: logger}
}

// Format renders the turns in order, joined by blank lines.
func (f *Formatter) Format(turns []conversation.Turn, cfg Config, styleName string) string {
	style := f.resolveStyle(styleName)

	blocks := make([]string, 0, len(turns))
	for i, turn := range turns {
		blocks = append(blocks, f.renderBlock(turn, cfg, style, i+1))
	}
	return strings.TrimSpace(strings.Join(blocks, "\n\n"))
}

// FormatTurn renders a single turn as one block.
func (f *Formatter) FormatTurn(turn conversation.Turn, cfg Config, styleName string) string {
	style := f.resolveStyle(styleName)
	return strings.TrimSpace(f.renderBlock(turn, cfg, style, 1))
}

func (f *Formatter) resolveStyle(name string) Style {
	if name == "" {
		name = DefaultStyle
	}
	style, ok := StyleByName(name)
	if !ok {
		f.logger.Warn("unknown format style, falling back", "style", name, "fallback", DefaultStyle)
		style, _ = StyleByName(DefaultStyle)
	}
	return style
}

func (f *Formatter) renderBlock(turn conversation.Turn, cfg Config, style Style, position int) string {
	tpl := cfg.templateFor(turn.Speaker)
	content := f.engine.Apply(turn.Text, cfg.Rules, turn.Speaker)

	if style.Quoted {
		content = `"` + content + `"`
	}

	var messageLine string
	if style.BracketNames {
		messageLine = fmt.Sprintf("[%s] %s", tpl.DisplayName, content)
	} else {
		messageLine = fmt.Sprintf("%s: %s", tpl.DisplayName, content)
	}
	if style.Numbered {
		messageLine = fmt.Sprintf("%d. %s", position, messageLine)
	}

	var lines []string
	if style.Headers && tpl.HeaderText != "" {
		lines = append(lines, tpl.HeaderText)
	}
	if style.Wrapper && tpl.WrapperTag != "" {
		lines = append(lines, "<"+tpl.WrapperTag+">", messageLine, "</"+tpl.WrapperTag+">")
	} else {
		lines = append(lines, messageLine)
	}
	return strings.Join(lines, "\n")
}
