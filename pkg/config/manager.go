package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/artesmakar/customizable-text-history-with-regexes/pkg/logging"
)

// Provider hands out the current merged settings. The pipeline calls this on
// every invocation and never caches the result across invocations.
type Provider interface {
	Settings() Settings
}

// Manager loads settings from a YAML file merged over defaults plus env
// overrides, and lets a settings surface mutate them incrementally.
type Manager struct {
	mu      sync.RWMutex
	path    string
	current Settings
	logger  logging.Logger
}

// NewManager creates a manager and performs the initial load. A missing
// settings file is not an error; defaults apply.
func NewManager(path string, logger logging.Logger) *Manager {
	if logger == nil {
		logger = logging.GetGlobalLogger()
	}
	m := &Manager{path: path, logger: logger}
	if err := m.Reload(); err != nil {
		logger.Warn("failed to load settings, using defaults", "path", path, "error", err)
		m.mu.Lock()
		settings := DefaultSettings()
		applyEnvOverrides(&settings)
		clamp(&settings)
		m.current = settings
		m.mu.Unlock()
	}
	return m
}

// Reload re-merges defaults, the settings file and env overrides.
func (m *Manager) Reload() error {
	settings := DefaultSettings()

	if m.path != "" {
		data, err := os.ReadFile(m.path)
		switch {
		case os.IsNotExist(err):
			// No persisted settings yet; defaults apply.
		case err != nil:
			return fmt.Errorf("read settings: %w", err)
		default:
			if err := yaml.Unmarshal(data, &settings); err != nil {
				return fmt.Errorf("parse settings: %w", err)
			}
		}
	}

	applyEnvOverrides(&settings)
	clamp(&settings)

	m.mu.Lock()
	m.current = settings
	m.mu.Unlock()
	return nil
}

// Settings returns the current merged settings. The rewrite rule slice is
// copied so callers can't mutate the stored view.
func (m *Manager) Settings() Settings {
	m.mu.RLock()
	defer m.mu.RUnlock()

	settings := m.current
	if len(m.current.Formatting.Rules) > 0 {
		settings.Formatting.Rules = append(settings.Formatting.Rules[:0:0], m.current.Formatting.Rules...)
	}
	return settings
}

// Update applies a mutation from the settings surface. Clamping runs after
// the mutation so the core never sees invalid numerics.
func (m *Manager) Update(mutate func(*Settings)) {
	m.mu.Lock()
	defer m.mu.Unlock()

	mutate(&m.current)
	clamp(&m.current)
}

// Save persists the current settings to the manager's path.
func (m *Manager) Save() error {
	m.mu.RLock()
	data, err := yaml.Marshal(m.current)
	m.mu.RUnlock()
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(m.path), 0755); err != nil {
		return fmt.Errorf("create settings directory: %w", err)
	}
	if err := os.WriteFile(m.path, data, 0644); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}
	return nil
}

// Static wraps a fixed Settings value as a Provider (useful for tests).
type Static Settings

func (s Static) Settings() Settings { return Settings(s) }
