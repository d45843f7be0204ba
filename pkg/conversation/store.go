package conversation

import (
	"sync"

	"github.com/google/uuid"

	"github.com/artesmakar/customizable-text-history-with-regexes/pkg/events"
)

// Store is an in-memory conversation fed by the host, either directly via
// Append or by publishing TurnEvents on the event bus.
type Store struct {
	mu    sync.RWMutex
	turns []Turn
}

// NewStore creates an empty conversation store.
func NewStore() *Store {
	return &Store{turns: make([]Turn, 0)}
}

// NewStoreFromBus creates a store subscribed to conversation events, so the
// host appends turns by publishing events.TurnEvent on events.TopicTurn.
func NewStoreFromBus(bus events.EventBus) *Store {
	store := NewStore()

	bus.Subscribe(events.TopicTurn, func(event any) {
		if turnEvent, ok := event.(events.TurnEvent); ok {
			store.Append(ParseSpeaker(turnEvent.Speaker), turnEvent.Text)
		}
	})
	bus.Subscribe(events.TopicConversationCleared, func(event any) {
		if _, ok := event.(events.ConversationClearedEvent); ok {
			store.Clear()
		}
	})

	return store
}

// Append adds a turn to the end of the conversation and returns it.
func (s *Store) Append(speaker Speaker, text string) Turn {
	turn := Turn{
		ID:      uuid.New().String(),
		Speaker: speaker,
		Text:    text,
	}

	s.mu.Lock()
	s.turns = append(s.turns, turn)
	s.mu.Unlock()

	return turn
}

// Clear removes all turns.
func (s *Store) Clear() {
	s.mu.Lock()
	s.turns = make([]Turn, 0)
	s.mu.Unlock()
}

// Turns returns a snapshot copy of the conversation, oldest first.
func (s *Store) Turns() []Turn {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]Turn, len(s.turns))
	copy(result, s.turns)
	return result
}
