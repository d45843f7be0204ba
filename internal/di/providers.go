package di

import (
	"github.com/artesmakar/customizable-text-history-with-regexes/pkg/config"
	"github.com/artesmakar/customizable-text-history-with-regexes/pkg/conversation"
	"github.com/artesmakar/customizable-text-history-with-regexes/pkg/events"
	"github.com/artesmakar/customizable-text-history-with-regexes/pkg/logging"
	"github.com/artesmakar/customizable-text-history-with-regexes/pkg/macro"
	"github.com/artesmakar/customizable-text-history-with-regexes/pkg/pipeline"
)

// SettingsPath is the settings file location ("" means defaults only).
type SettingsPath string

// TranscriptPath is a YAML transcript file backing the conversation.
type TranscriptPath string

// Shared event bus instance
var eventBus = events.NewEventBus()

// ProvideEventBus provides the shared event bus.
func ProvideEventBus() events.EventBus {
	return eventBus
}

// ProvideLogger provides the process-wide logger.
func ProvideLogger() logging.Logger {
	return logging.GetGlobalLogger()
}

// ProvideStore provides an event-fed in-memory conversation store.
func ProvideStore(bus events.EventBus) *conversation.Store {
	return conversation.NewStoreFromBus(bus)
}

// ProvideStoreSource exposes the store as the pipeline's conversation source.
func ProvideStoreSource(store *conversation.Store) conversation.Source {
	return store
}

// ProvideFileSource provides a transcript-file conversation source.
func ProvideFileSource(path TranscriptPath, logger logging.Logger) conversation.Source {
	return conversation.NewFileSource(string(path), logger)
}

// ProvideConfigManager provides the settings manager.
func ProvideConfigManager(path SettingsPath, logger logging.Logger) *config.Manager {
	return config.NewManager(string(path), logger)
}

// ProvideConfigProvider exposes the manager as the pipeline's settings provider.
func ProvideConfigProvider(manager *config.Manager) config.Provider {
	return manager
}

// ProvidePipeline provides the history pipeline.
func ProvidePipeline(source conversation.Source, provider config.Provider, logger logging.Logger) *pipeline.Pipeline {
	return pipeline.New(source, provider, logger)
}

// ProvideMacroRegistry provides a registry with the default history macros.
func ProvideMacroRegistry(p *pipeline.Pipeline, logger logging.Logger) *macro.Registry {
	registry := macro.NewRegistry(logger)
	macro.RegisterDefaults(registry, p, logger)
	return registry
}

// App bundles everything a CLI invocation needs.
type App struct {
	Bus      events.EventBus
	Store    *conversation.Store // nil when the conversation is file-backed
	Config   *config.Manager
	Pipeline *pipeline.Pipeline
	Macros   *macro.Registry
}

// NewApp assembles an App from its parts.
func NewApp(bus events.EventBus, store *conversation.Store, manager *config.Manager, p *pipeline.Pipeline, macros *macro.Registry) *App {
	return &App{
		Bus:      bus,
		Store:    store,
		Config:   manager,
		Pipeline: p,
		Macros:   macros,
	}
}

// NewFileApp assembles an App whose conversation comes from a transcript file.
func NewFileApp(bus events.EventBus, manager *config.Manager, p *pipeline.Pipeline, macros *macro.Registry) *App {
	return &App{
		Bus:      bus,
		Config:   manager,
		Pipeline: p,
		Macros:   macros,
	}
}
