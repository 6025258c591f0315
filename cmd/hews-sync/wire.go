//go:build wireinject
// +build wireinject

package main

import (
	"hews-sync/internal/app"
	"hews-sync/internal/provider"
	"hews-sync/internal/saver"

	"github.com/google/wire"
)

// App holds application dependencies built by Wire.
type App struct {
	Config *app.Config
	DP     provider.HealthProvider
	Saver  saver.SnapshotSaver
}

// InitializeApp builds App (Config + provider + saver) via Wire.
// Caller must call a.DP.Close() when done.
func InitializeApp() (*App, error) {
	wire.Build(
		app.ProvideConfig,
		app.ProvideSnapshotSaver,
		app.ProvideGarminProvider,
		wire.Bind(new(provider.HealthProvider), new(*provider.GarminProvider)),
		wire.Struct(new(App), "Config", "DP", "Saver"),
	)
	return nil, nil
}
