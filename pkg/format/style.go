package format

import "sort"

// Style names which presentation elements are combined into a turn block.
// The presets cover the output shapes the host's users actually configure;
// they all consume the same selected turn list and the same rewrite step.
type Style struct {
	Name         string
	Headers      bool // emit the role's header line when non-empty
	Wrapper      bool // emit the role's wrapper tag when non-empty
	Numbered     bool // prefix each block with its 1-based position
	Quoted       bool // wrap message content in double quotes
	BracketNames bool // render `[Name] content` instead of `Name: content`
}

// DefaultStyle is used when a requested style is unknown.
const DefaultStyle = "classic"

var styles = map[string]Style{
	// classic is the canonical shape: header line and wrapper tag are emitted
	// whenever the role template fills them in.
	"classic":   {Name: "classic", Headers: true, Wrapper: true},
	"plain":     {Name: "plain"},
	"wrapped":   {Name: "wrapped", Wrapper: true},
	"numbered":  {Name: "numbered", Numbered: true},
	"quoted":    {Name: "quoted", Quoted: true},
	"bracketed": {Name: "bracketed", BracketNames: true},
}

// Styles lists the available style names, sorted.
func Styles() []string {
	names := make([]string, 0, len(styles))
	for name := range styles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// StyleByName resolves a style name, reporting whether it was known.
func StyleByName(name string) (Style, bool) {
	style, ok := styles[name]
	return style, ok
}
