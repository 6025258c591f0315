package provider

import (
	"context"
	"time"

	"hews-sync/internal/model"
)

// HealthProvider is the abstraction used by the application when accessing a
// health-data source. Implementations own their session handling and resource
// cleanup.
type HealthProvider interface {
	GetName() string
	// Login establishes an authenticated session. Must be called once per run
	// before FetchDay.
	Login(ctx context.Context) error
	// FetchDay returns the normalized snapshot for one calendar date.
	// Individual missing metrics degrade to null fields, not errors.
	FetchDay(ctx context.Context, date time.Time) (model.HealthSnapshot, error)
	Close() error
}
