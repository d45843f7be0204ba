package conversation

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/artesmakar/customizable-text-history-with-regexes/pkg/logging"
)

// transcriptEntry is the on-disk shape of one turn.
type transcriptEntry struct {
	ID      string `yaml:"id,omitempty"`
	Speaker string `yaml:"speaker"`
	Text    string `yaml:"text"`
}

// FileSource reads a YAML transcript from disk. The file is re-read on every
// Turns call so external edits are picked up without restarting — the same
// contract as any live conversation source. Read or parse failures degrade
// to an empty conversation with a log entry, never an error to the caller.
type FileSource struct {
	path   string
	logger logging.Logger
}

// NewFileSource creates a transcript-file conversation source.
func NewFileSource(path string, logger logging.Logger) *FileSource {
	if logger == nil {
		logger = logging.GetGlobalLogger()
	}
	return &FileSource{path: path, logger: logger}
}

// Turns loads the transcript, oldest first.
func (f *FileSource) Turns() []Turn {
	turns, err := f.load()
	if err != nil {
		f.logger.Warn("failed to load transcript, treating as empty", "path", f.path, "error", err)
		return nil
	}
	return turns
}

func (f *FileSource) load() ([]Turn, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		return nil, fmt.Errorf("read transcript: %w", err)
	}

	var entries []transcriptEntry
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parse transcript: %w", err)
	}

	turns := make([]Turn, 0, len(entries))
	for _, entry := range entries {
		turns = append(turns, Turn{
			ID:      entry.ID,
			Speaker: ParseSpeaker(entry.Speaker),
			Text:    entry.Text,
		})
	}
	return turns, nil
}
