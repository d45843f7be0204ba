package macro

import (
	"strconv"

	"github.com/artesmakar/customizable-text-history-with-regexes/pkg/conversation"
	"github.com/artesmakar/customizable-text-history-with-regexes/pkg/logging"
	"github.com/artesmakar/customizable-text-history-with-regexes/pkg/pipeline"
)

// DefaultLastTurns is the turn count used when a history macro's count
// argument is missing or unparsable.
const DefaultLastTurns = 10

// RegisterDefaults wires the standard history macros onto a registry:
//
//	{{history}}            full formatted history
//	{{history::N}}         the N most recent selected turns
//	{{history::N::style}}  same, with an explicit style
//	{{lastMessage}}        newest counterpart turn, single block
//	{{lastUserMessage}}    newest user turn, single block
func RegisterDefaults(reg *Registry, p *pipeline.Pipeline, logger logging.Logger) {
	if logger == nil {
		logger = logging.GetGlobalLogger()
	}

	reg.Register("history", func(args []string) string {
		if len(args) == 0 {
			return p.BuildFormattedHistory(styleArg(args, 1))
		}
		count, err := strconv.Atoi(args[0])
		if err != nil || count <= 0 {
			logger.Warn("history macro count is not a positive integer, using default",
				"arg", args[0], "default", DefaultLastTurns)
			count = DefaultLastTurns
		}
		return p.LastTurns(count, styleArg(args, 1))
	})

	reg.Register("lastMessage", func(args []string) string {
		return p.LastMatchingTurnFormatted(conversation.SpeakerOther, styleArg(args, 0))
	})

	reg.Register("lastUserMessage", func(args []string) string {
		return p.LastMatchingTurnFormatted(conversation.SpeakerUser, styleArg(args, 0))
	})
}

func styleArg(args []string, index int) string {
	if index < len(args) {
		return args[index]
	}
	return ""
}
