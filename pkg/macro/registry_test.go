package macro

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/artesmakar/customizable-text-history-with-regexes/pkg/config"
	"github.com/artesmakar/customizable-text-history-with-regexes/pkg/conversation"
	"github.com/artesmakar/customizable-text-history-with-regexes/pkg/logging"
	"github.com/artesmakar/customizable-text-history-with-regexes/pkg/pipeline"
)

func TestExpand_RegisteredMacro(t *testing.T) {
	reg := NewRegistry(logging.NewDisabledLogger())
	reg.Register("greet", func(args []string) string { return "hello" })

	assert.Equal(t, "say hello now", reg.Expand("say {{greet}} now"))
}

func TestExpand_ArgsAreSplitOnDoubleColon(t *testing.T) {
	reg := NewRegistry(logging.NewDisabledLogger())
	reg.Register("join", func(args []string) string { return strings.Join(args, "|") })

	assert.Equal(t, "a|b|c", reg.Expand("{{join::a::b::c}}"))
}

func TestExpand_UnknownMacroLeftVerbatim(t *testing.T) {
	reg := NewRegistry(logging.NewDisabledLogger())

	assert.Equal(t, "keep {{mystery}} intact", reg.Expand("keep {{mystery}} intact"))
}

func TestExpand_NamesAreCaseInsensitive(t *testing.T) {
	reg := NewRegistry(logging.NewDisabledLogger())
	reg.Register("lastMessage", func(args []string) string { return "x" })

	assert.Equal(t, "x x", reg.Expand("{{lastmessage}} {{LastMessage}}"))
}

func newDefaultsFixture(t *testing.T) *Registry {
	t.Helper()
	logger := logging.NewDisabledLogger()

	store := conversation.NewStore()
	store.Append(conversation.SpeakerUser, "hi")
	store.Append(conversation.SpeakerOther, "hello")
	store.Append(conversation.SpeakerUser, "bye")

	p := pipeline.New(store, config.Static(config.DefaultSettings()), logger)
	reg := NewRegistry(logger)
	RegisterDefaults(reg, p, logger)
	return reg
}

func TestDefaults_History(t *testing.T) {
	reg := newDefaultsFixture(t)

	result := reg.Expand("{{history}}")

	assert.Equal(t, "User: hi\n\nAssistant: hello\n\nUser: bye", result)
}

func TestDefaults_HistoryWithCount(t *testing.T) {
	reg := newDefaultsFixture(t)

	result := reg.Expand("{{history::2}}")

	assert.Equal(t, "Assistant: hello\n\nUser: bye", result)
}

func TestDefaults_HistoryCountFallback(t *testing.T) {
	reg := newDefaultsFixture(t)

	// Non-numeric N falls back to the default count, which covers all 3 turns.
	result := reg.Expand("{{history::lots}}")

	assert.Equal(t, "User: hi\n\nAssistant: hello\n\nUser: bye", result)
}

func TestDefaults_LastMessage(t *testing.T) {
	reg := newDefaultsFixture(t)

	assert.Equal(t, "Assistant: hello", reg.Expand("{{lastMessage}}"))
	assert.Equal(t, "User: bye", reg.Expand("{{lastUserMessage}}"))
}

func TestDefaults_PreSendHookPayload(t *testing.T) {
	reg := newDefaultsFixture(t)

	payload := "System prompt.\n\n{{history}}\n\nReply to: {{lastUserMessage}}"
	expanded := reg.Expand(payload)

	assert.Equal(t, "System prompt.\n\nUser: hi\n\nAssistant: hello\n\nUser: bye\n\nReply to: User: bye", expanded)
}
