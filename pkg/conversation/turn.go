package conversation

// Speaker identifies which side of the conversation a turn belongs to.
type Speaker int

const (
	// SpeakerUser is the human side of the conversation.
	SpeakerUser Speaker = iota
	// SpeakerOther is the counterpart (assistant, character, bot).
	SpeakerOther
)

// String returns the lowercase wire name of the speaker.
func (s Speaker) String() string {
	if s == SpeakerUser {
		return "user"
	}
	return "other"
}

// ParseSpeaker maps a wire name to a Speaker. Anything that isn't "user"
// is treated as the other side, matching how transcripts label assistant,
// character or bot turns inconsistently.
func ParseSpeaker(name string) Speaker {
	if name == "user" {
		return SpeakerUser
	}
	return SpeakerOther
}

// Turn is one conversation message. Turns are owned by the conversation
// source and immutable once created; everything downstream reads copies.
type Turn struct {
	ID      string
	Speaker Speaker
	Text    string
}

// Source exposes an ordered conversation. Turns returns a fresh snapshot on
// every call; callers must not assume a previous snapshot is still current.
type Source interface {
	Turns() []Turn
}
