package macro

import (
	"regexp"
	"strings"
	"sync"

	"github.com/artesmakar/customizable-text-history-with-regexes/pkg/logging"
)

// Func is a host-callable macro. Args come from the `::`-separated argument
// list in the placeholder; implementations must tolerate missing or
// malformed arguments and fall back to defaults.
type Func func(args []string) string

// placeholderPattern matches {{name}} and {{name::arg1::arg2}} occurrences.
var placeholderPattern = regexp.MustCompile(`\{\{(\w+)(?:::([^{}]*))?\}\}`)

// Registry is a named-function table the host's template expander calls
// into. The core only contributes pure entry points; registration order and
// invocation timing belong to the host.
type Registry struct {
	mu     sync.RWMutex
	funcs  map[string]Func
	logger logging.Logger
}

// NewRegistry creates an empty macro registry.
func NewRegistry(logger logging.Logger) *Registry {
	if logger == nil {
		logger = logging.GetGlobalLogger()
	}
	return &Registry{
		funcs:  make(map[string]Func),
		logger: logger,
	}
}

// Register adds or replaces a macro. Names are case-insensitive.
func (r *Registry) Register(name string, fn Func) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.funcs[strings.ToLower(name)] = fn
}

// Expand replaces every registered {{name}} / {{name::args}} placeholder in
// the text. Unknown names are left verbatim so the host's own macros pass
// through untouched. This is the pre-send hook: run it over an outgoing
// prompt payload just before transmission.
func (r *Registry) Expand(text string) string {
	return placeholderPattern.ReplaceAllStringFunc(text, func(match string) string {
		groups := placeholderPattern.FindStringSubmatch(match)
		name := strings.ToLower(groups[1])

		r.mu.RLock()
		fn, ok := r.funcs[name]
		r.mu.RUnlock()
		if !ok {
			return match
		}

		var args []string
		if groups[2] != "" {
			args = strings.Split(groups[2], "::")
		}
		return fn(args)
	})
}
