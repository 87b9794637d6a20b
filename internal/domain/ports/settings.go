package ports

import (
	"context"

	"github.com/poop4ik/weather-service/internal/domain/entities"
)

// SettingsStore is the external key-value collaborator that keeps the
// units preference. Implementations must be safe for concurrent use.
type SettingsStore interface {
	Get(ctx context.Context) (entities.UnitsSettings, error)
	Save(ctx context.Context, settings entities.UnitsSettings) error
	HealthCheck(ctx context.Context) error
	Close() error
}
