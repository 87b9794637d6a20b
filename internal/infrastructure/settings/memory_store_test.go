package settings

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poop4ik/weather-service/internal/domain/entities"
)

func TestMemoryStore(t *testing.T) {
	t.Run("defaults before any save", func(t *testing.T) {
		store := NewMemoryStore()

		settings, err := store.Get(context.Background())

		require.NoError(t, err)
		assert.Equal(t, entities.DefaultUnitsSettings(), settings)
	})

	t.Run("save then get", func(t *testing.T) {
		store := NewMemoryStore()
		updated := entities.UnitsSettings{Temperature: "fahrenheit", WindSpeed: "mph", Pressure: "mmhg"}

		require.NoError(t, store.Save(context.Background(), updated))

		settings, err := store.Get(context.Background())
		require.NoError(t, err)
		assert.Equal(t, updated, settings)
	})

	t.Run("concurrent access", func(t *testing.T) {
		store := NewMemoryStore()
		ctx := context.Background()

		var wg sync.WaitGroup
		for i := 0; i < 50; i++ {
			wg.Add(2)
			go func() {
				defer wg.Done()
				_ = store.Save(ctx, entities.UnitsSettings{Temperature: "celsius", WindSpeed: "kmh", Pressure: "hpa"})
			}()
			go func() {
				defer wg.Done()
				_, _ = store.Get(ctx)
			}()
		}
		wg.Wait()

		settings, err := store.Get(ctx)
		require.NoError(t, err)
		assert.NoError(t, settings.Validate())
	})

	t.Run("health check and close are no-ops", func(t *testing.T) {
		store := NewMemoryStore()
		assert.NoError(t, store.HealthCheck(context.Background()))
		assert.NoError(t, store.Close())
	})
}
