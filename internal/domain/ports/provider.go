package ports

import (
	"context"

	"github.com/poop4ik/weather-service/internal/domain/entities"
)

// WeatherProvider is the upstream collaborator boundary. The core
// depends only on the shape of these four response types.
type WeatherProvider interface {
	CurrentWeather(ctx context.Context, city string) (*entities.Observation, error)
	Forecast(ctx context.Context, city string) (*entities.ForecastSeries, error)
	AirPollution(ctx context.Context, lat, lon float64) (*entities.AirQualitySample, error)
	Geocode(ctx context.Context, city string, limit int) ([]entities.GeoLocation, error)
	HealthCheck(ctx context.Context) error
}
