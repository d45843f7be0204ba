package conversation

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artesmakar/customizable-text-history-with-regexes/pkg/logging"
)

func writeTranscript(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "transcript.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestFileSource_LoadsTurns(t *testing.T) {
	path := writeTranscript(t, `
- speaker: user
  text: hi
- speaker: other
  text: hello
- id: t3
  speaker: user
  text: bye
`)
	source := NewFileSource(path, logging.NewDisabledLogger())

	turns := source.Turns()

	require.Len(t, turns, 3)
	assert.Equal(t, SpeakerUser, turns[0].Speaker)
	assert.Equal(t, "hi", turns[0].Text)
	assert.Equal(t, SpeakerOther, turns[1].Speaker)
	assert.Equal(t, "t3", turns[2].ID)
}

func TestFileSource_MissingFileDegradesToEmpty(t *testing.T) {
	source := NewFileSource(filepath.Join(t.TempDir(), "nope.yaml"), logging.NewDisabledLogger())

	assert.Empty(t, source.Turns())
}

func TestFileSource_MalformedFileDegradesToEmpty(t *testing.T) {
	path := writeTranscript(t, "{{{not yaml")
	source := NewFileSource(path, logging.NewDisabledLogger())

	assert.Empty(t, source.Turns())
}

func TestFileSource_RereadsOnEveryCall(t *testing.T) {
	path := writeTranscript(t, "- speaker: user\n  text: one\n")
	source := NewFileSource(path, logging.NewDisabledLogger())

	require.Len(t, source.Turns(), 1)

	require.NoError(t, os.WriteFile(path, []byte("- speaker: user\n  text: one\n- speaker: other\n  text: two\n"), 0644))

	assert.Len(t, source.Turns(), 2)
}
