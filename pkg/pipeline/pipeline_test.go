package pipeline

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artesmakar/customizable-text-history-with-regexes/pkg/config"
	"github.com/artesmakar/customizable-text-history-with-regexes/pkg/conversation"
	"github.com/artesmakar/customizable-text-history-with-regexes/pkg/logging"
	"github.com/artesmakar/customizable-text-history-with-regexes/pkg/rewrite"
)

func newTestPipeline(t *testing.T, turns []conversation.Turn, settings config.Settings) *Pipeline {
	t.Helper()
	store := conversation.NewStore()
	for _, turn := range turns {
		store.Append(turn.Speaker, turn.Text)
	}
	return New(store, config.Static(settings), logging.NewDisabledLogger())
}

func TestBuildFormattedHistory_EndToEnd(t *testing.T) {
	turns := []conversation.Turn{
		{Speaker: conversation.SpeakerUser, Text: "hi"},
		{Speaker: conversation.SpeakerOther, Text: "hello"},
		{Speaker: conversation.SpeakerUser, Text: "bye"},
	}
	settings := config.DefaultSettings()
	settings.Selection.SkipLastOtherTurn = true

	p := newTestPipeline(t, turns, settings)

	// Last turn is a user turn, so skip-last-other drops nothing.
	result := p.BuildFormattedHistory("")
	assert.Equal(t, "User: hi\n\nAssistant: hello\n\nUser: bye", result)
}

func TestBuildFormattedHistory_EmptyConversation(t *testing.T) {
	p := newTestPipeline(t, nil, config.DefaultSettings())

	assert.Equal(t, "", p.BuildFormattedHistory(""))
}

func TestBuildFormattedHistory_HardWindow(t *testing.T) {
	tenTokens := strings.Repeat("x", 40)
	turns := make([]conversation.Turn, 5)
	for i := range turns {
		speaker := conversation.SpeakerUser
		if i%2 == 1 {
			speaker = conversation.SpeakerOther
		}
		turns[i] = conversation.Turn{Speaker: speaker, Text: tenTokens}
	}
	settings := config.DefaultSettings()
	settings.Selection.MaxTokens = 25

	p := newTestPipeline(t, turns, settings)

	result := p.BuildFormattedHistory("")
	// Exactly the two most recent turns fit the hard budget.
	assert.Equal(t, 2, strings.Count(result, tenTokens))
}

func TestBuildFormattedHistory_AppliesRewriteRules(t *testing.T) {
	turns := []conversation.Turn{
		{Speaker: conversation.SpeakerOther, Text: "Hello [State: happy] world"},
	}
	settings := config.DefaultSettings()
	settings.Formatting.Rules = []rewrite.Rule{
		{Pattern: `\[State:.*?\]`, Replacement: "", Flags: "g", Enabled: true},
	}

	p := newTestPipeline(t, turns, settings)

	assert.Equal(t, "Assistant: Hello  world", p.BuildFormattedHistory(""))
}

func TestLastTurns_NarrowsSelection(t *testing.T) {
	turns := []conversation.Turn{
		{Speaker: conversation.SpeakerUser, Text: "one"},
		{Speaker: conversation.SpeakerOther, Text: "two"},
		{Speaker: conversation.SpeakerUser, Text: "three"},
	}

	p := newTestPipeline(t, turns, config.DefaultSettings())

	result := p.LastTurns(2, "")
	assert.Equal(t, "Assistant: two\n\nUser: three", result)
}

func TestLastMatchingTurn_IgnoresSelectionConfig(t *testing.T) {
	turns := []conversation.Turn{
		{Speaker: conversation.SpeakerUser, Text: "old question"},
		{Speaker: conversation.SpeakerOther, Text: "answer"},
		{Speaker: conversation.SpeakerUser, Text: "newest question"},
	}
	settings := config.DefaultSettings()
	// Config that would hide the newest user turn from the history output.
	settings.Selection.DropLastUserTurn = true
	settings.Selection.SkipLastOtherTurn = true
	settings.Selection.MaxTokens = 1

	p := newTestPipeline(t, turns, settings)

	turn, ok := p.LastMatchingTurn(conversation.SpeakerUser)
	require.True(t, ok)
	assert.Equal(t, "newest question", turn.Text)

	turn, ok = p.LastMatchingTurn(conversation.SpeakerOther)
	require.True(t, ok)
	assert.Equal(t, "answer", turn.Text)
}

func TestLastMatchingTurn_NoMatch(t *testing.T) {
	turns := []conversation.Turn{
		{Speaker: conversation.SpeakerUser, Text: "hi"},
	}

	p := newTestPipeline(t, turns, config.DefaultSettings())

	_, ok := p.LastMatchingTurn(conversation.SpeakerOther)
	assert.False(t, ok)
}

func TestLastMatchingTurnFormatted(t *testing.T) {
	turns := []conversation.Turn{
		{Speaker: conversation.SpeakerUser, Text: "hi"},
		{Speaker: conversation.SpeakerOther, Text: "hello [State: sad]"},
	}
	settings := config.DefaultSettings()
	settings.Formatting.Rules = []rewrite.Rule{
		{Pattern: `\[State:.*?\]`, Replacement: "", Flags: "g", Enabled: true},
	}

	p := newTestPipeline(t, turns, settings)

	assert.Equal(t, "Assistant: hello", p.LastMatchingTurnFormatted(conversation.SpeakerOther, ""))
	assert.Equal(t, "User: hi", p.LastMatchingTurnFormatted(conversation.SpeakerUser, ""))
}

func TestLastMatchingTurnFormatted_NoMatchIsEmpty(t *testing.T) {
	p := newTestPipeline(t, nil, config.DefaultSettings())

	assert.Equal(t, "", p.LastMatchingTurnFormatted(conversation.SpeakerOther, ""))
}

func TestPipeline_ReadsSettingsFreshEachInvocation(t *testing.T) {
	turns := []conversation.Turn{
		{Speaker: conversation.SpeakerUser, Text: "hi"},
		{Speaker: conversation.SpeakerOther, Text: "hello"},
	}
	store := conversation.NewStore()
	for _, turn := range turns {
		store.Append(turn.Speaker, turn.Text)
	}

	manager := config.NewManager("", logging.NewDisabledLogger())
	p := New(store, manager, logging.NewDisabledLogger())

	assert.Equal(t, "User: hi\n\nAssistant: hello", p.BuildFormattedHistory(""))

	manager.Update(func(s *config.Settings) {
		s.Formatting.Other.DisplayName = "Bot"
	})

	assert.Equal(t, "User: hi\n\nBot: hello", p.BuildFormattedHistory(""))
}
