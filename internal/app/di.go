package app

import (
	"fmt"

	"hews-sync/internal/provider"
	"hews-sync/internal/saver"
)

// ProvideConfig loads config from environment (for Wire).
func ProvideConfig() (*Config, error) {
	return LoadConfig()
}

// ProvideSnapshotSaver creates SnapshotSaver from config (for Wire).
// Returns error if SaveFormat is not supported.
func ProvideSnapshotSaver(cfg *Config) (saver.SnapshotSaver, error) {
	ss := saver.NewSnapshotSaver(cfg.SaveFormat)
	if ss == nil {
		return nil, fmt.Errorf("unsupported SAVE_FORMAT %q (use: csv, parquet, json)", cfg.SaveFormat)
	}
	return ss, nil
}

// ProvideGarminProvider creates the Garmin-backed HealthProvider (for Wire).
// Caller must call dp.Close() when shutting down.
func ProvideGarminProvider(cfg *Config) (*provider.GarminProvider, error) {
	p, err := createGarminProvider(cfg)
	if err != nil {
		return nil, err
	}
	gp, ok := p.(*provider.GarminProvider)
	if !ok {
		return nil, fmt.Errorf("expected *provider.GarminProvider, got %T", p)
	}
	return gp, nil
}
