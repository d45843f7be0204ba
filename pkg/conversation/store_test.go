package conversation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artesmakar/customizable-text-history-with-regexes/pkg/events"
)

func TestStore_AppendAssignsIDs(t *testing.T) {
	store := NewStore()

	first := store.Append(SpeakerUser, "hi")
	second := store.Append(SpeakerOther, "hello")

	assert.NotEmpty(t, first.ID)
	assert.NotEmpty(t, second.ID)
	assert.NotEqual(t, first.ID, second.ID)
}

func TestStore_TurnsReturnsSnapshotCopy(t *testing.T) {
	store := NewStore()
	store.Append(SpeakerUser, "hi")

	snapshot := store.Turns()
	snapshot[0].Text = "mutated"

	assert.Equal(t, "hi", store.Turns()[0].Text)
}

func TestStore_FedByEventBus(t *testing.T) {
	bus := events.NewEventBus()
	store := NewStoreFromBus(bus)

	bus.Publish(events.TopicTurn, events.TurnEvent{Speaker: "user", Text: "hi"})
	bus.Publish(events.TopicTurn, events.TurnEvent{Speaker: "other", Text: "hello"})

	turns := store.Turns()
	require.Len(t, turns, 2)
	assert.Equal(t, SpeakerUser, turns[0].Speaker)
	assert.Equal(t, "hi", turns[0].Text)
	assert.Equal(t, SpeakerOther, turns[1].Speaker)
}

func TestStore_ClearedByEvent(t *testing.T) {
	bus := events.NewEventBus()
	store := NewStoreFromBus(bus)

	bus.Publish(events.TopicTurn, events.TurnEvent{Speaker: "user", Text: "hi"})
	bus.Publish(events.TopicConversationCleared, events.ConversationClearedEvent{})

	assert.Empty(t, store.Turns())
}

func TestStore_IgnoresForeignEventTypes(t *testing.T) {
	bus := events.NewEventBus()
	store := NewStoreFromBus(bus)

	bus.Publish(events.TopicTurn, "not a turn event")

	assert.Empty(t, store.Turns())
}

func TestParseSpeaker(t *testing.T) {
	assert.Equal(t, SpeakerUser, ParseSpeaker("user"))
	assert.Equal(t, SpeakerOther, ParseSpeaker("other"))
	assert.Equal(t, SpeakerOther, ParseSpeaker("assistant"))
	assert.Equal(t, SpeakerOther, ParseSpeaker("char"))
}
