package app

import (
	"fmt"

	"hews-sync/internal/provider"
)

// CreateProvider creates HealthProvider from config (currently Garmin only)
func CreateProvider(cfg *Config) (provider.HealthProvider, error) {
	return createGarminProvider(cfg)
}

func createGarminProvider(cfg *Config) (provider.HealthProvider, error) {
	p, err := provider.NewGarminProvider(cfg.GarminEmail, cfg.GarminPassword, cfg.HTTPTimeoutSec)
	if err != nil {
		return nil, fmt.Errorf("create garmin provider: %w", err)
	}
	return p, nil
}
