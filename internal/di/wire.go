//go:build wireinject
// +build wireinject

package di

import (
	"github.com/google/wire"
)

// InitializeApp builds an App over the event-fed in-memory store.
func InitializeApp(path SettingsPath) *App {
	wire.Build(
		ProvideEventBus,
		ProvideLogger,
		ProvideStore,
		ProvideStoreSource,
		ProvideConfigManager,
		ProvideConfigProvider,
		ProvidePipeline,
		ProvideMacroRegistry,
		NewApp,
	)
	return nil
}

// InitializeFileApp builds an App over a transcript-file conversation source.
func InitializeFileApp(path SettingsPath, transcript TranscriptPath) *App {
	wire.Build(
		ProvideEventBus,
		ProvideLogger,
		ProvideFileSource,
		ProvideConfigManager,
		ProvideConfigProvider,
		ProvidePipeline,
		ProvideMacroRegistry,
		NewFileApp,
	)
	return nil
}
