package pipeline

import (
	"sync"

	"github.com/artesmakar/customizable-text-history-with-regexes/pkg/config"
	"github.com/artesmakar/customizable-text-history-with-regexes/pkg/conversation"
	"github.com/artesmakar/customizable-text-history-with-regexes/pkg/format"
	"github.com/artesmakar/customizable-text-history-with-regexes/pkg/logging"
	"github.com/artesmakar/customizable-text-history-with-regexes/pkg/rewrite"
	"github.com/artesmakar/customizable-text-history-with-regexes/pkg/selector"
	"github.com/artesmakar/customizable-text-history-with-regexes/pkg/tokens"
)

// Pipeline composes selection, per-turn rewriting and formatting into the
// final history text. It holds no configuration state of its own: the
// conversation source and the settings provider are read fresh on every
// invocation, and malformed configuration degrades to empty or partial
// output rather than an error.
type Pipeline struct {
	source    conversation.Source
	provider  config.Provider
	formatter *format.Formatter
	logger    logging.Logger

	mu        sync.Mutex
	tiktokens map[string]*tokens.Tiktoken
}

// New creates a pipeline over a conversation source and a settings provider.
func New(source conversation.Source, provider config.Provider, logger logging.Logger) *Pipeline {
	if logger == nil {
		logger = logging.GetGlobalLogger()
	}
	engine := rewrite.NewEngine(logger)
	return &Pipeline{
		source:    source,
		provider:  provider,
		formatter: format.NewFormatter(engine, logger),
		logger:    logger,
		tiktokens: make(map[string]*tokens.Tiktoken),
	}
}

// BuildFormattedHistory renders the selected slice of the conversation.
// An empty style uses the configured one.
func (p *Pipeline) BuildFormattedHistory(style string) string {
	return p.LastTurns(0, style)
}

// LastTurns renders the selection narrowed to its n most recent turns;
// n <= 0 keeps the whole selection. This backs the "last N turns" macro —
// it narrows the normal selection rather than bypassing it.
func (p *Pipeline) LastTurns(n int, style string) string {
	settings := p.provider.Settings()

	selected := selector.Select(p.source.Turns(), settings.Selection, p.estimatorFor(settings))
	if n > 0 && len(selected) > n {
		selected = selected[len(selected)-n:]
	}
	if style == "" {
		style = settings.Style
	}
	return p.formatter.Format(selected, settings.Formatting, style)
}

// LastMatchingTurn scans the raw, unfiltered conversation from the end for
// the newest turn of the given speaker. Selection config (skip/drop/window)
// deliberately does not apply: "last message" macros must see the absolute
// latest turn of that role.
func (p *Pipeline) LastMatchingTurn(speaker conversation.Speaker) (conversation.Turn, bool) {
	turns := p.source.Turns()
	for i := len(turns) - 1; i >= 0; i-- {
		if turns[i].Speaker == speaker {
			return turns[i], true
		}
	}
	return conversation.Turn{}, false
}

// LastMatchingTurnFormatted renders the newest turn of the given speaker as a
// single block, or "" when the conversation has no such turn.
func (p *Pipeline) LastMatchingTurnFormatted(speaker conversation.Speaker, style string) string {
	turn, ok := p.LastMatchingTurn(speaker)
	if !ok {
		return ""
	}

	settings := p.provider.Settings()
	if style == "" {
		style = settings.Style
	}
	return p.formatter.FormatTurn(turn, settings.Formatting, style)
}

// estimatorFor picks the estimator the settings ask for. Tiktoken encoders
// are cached per model; a failed encoder load falls back to the char ratio.
func (p *Pipeline) estimatorFor(settings config.Settings) tokens.Estimator {
	if settings.Tokenizer != config.TokenizerTiktoken {
		return tokens.NewCharRatio(settings.Selection.CharsPerToken)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if est, ok := p.tiktokens[settings.TiktokenModel]; ok {
		return est
	}
	est, err := tokens.NewTiktoken(settings.TiktokenModel)
	if err != nil {
		p.logger.Warn("tiktoken unavailable, falling back to char ratio",
			"model", settings.TiktokenModel, "error", err)
		return tokens.NewCharRatio(settings.Selection.CharsPerToken)
	}
	p.tiktokens[settings.TiktokenModel] = est
	return est
}
