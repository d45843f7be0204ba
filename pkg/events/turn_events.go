package events

// TurnEvent is published by the host on the "conversation.turn" topic
// whenever a message is appended to the live conversation.
type TurnEvent struct {
	Speaker string // "user" or "other"
	Text    string
}

// ConversationClearedEvent is published when the host resets the conversation.
type ConversationClearedEvent struct{}

// TopicTurn is the topic the conversation store subscribes to.
const TopicTurn = "conversation.turn"

// TopicConversationCleared resets the conversation store.
const TopicConversationCleared = "conversation.cleared"
