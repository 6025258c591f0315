package provider

import (
	"hews-sync/internal/provider/garmin"
)

// GarminProvider is a HealthProvider implementation backed by the Garmin
// Connect private API. It embeds *garmin.Client to expose login and fetch
// capabilities with minimal boilerplate.
type GarminProvider struct {
	*garmin.Client
}

// NewGarminProvider creates a new Garmin-backed HealthProvider.
func NewGarminProvider(email, password string, timeout int) (*GarminProvider, error) {
	client, err := garmin.NewClient(email, password, timeout)
	if err != nil {
		return nil, err
	}
	return &GarminProvider{
		Client: client,
	}, nil
}

// GetName returns provider name
func (p *GarminProvider) GetName() string {
	return "Garmin"
}
