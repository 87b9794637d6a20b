package ports

import (
	"context"
	"time"

	"github.com/poop4ik/weather-service/internal/domain/entities"
)

// WeatherService is the reshaping/derivation layer behind the HTTP
// handlers. Every method performs exactly one upstream call.
type WeatherService interface {
	CurrentWeather(ctx context.Context, city string) (*entities.CurrentWeatherReport, error)
	Forecast(ctx context.Context, city string) (*entities.ForecastReport, error)
	HourlyForecast(ctx context.Context, city string) (*entities.HourlyForecastReport, error)
	DailyForecast(ctx context.Context, city string) (*entities.DailyForecastReport, error)
	WeeklyForecast(ctx context.Context, city string) (*entities.WeeklyForecastReport, error)
	AirQuality(ctx context.Context, lat, lon float64) (*entities.AirQualityReport, error)
	Geocode(ctx context.Context, city string) (*entities.GeocodeReport, error)
	ActivityRecommendations(ctx context.Context, city string, now time.Time) (*entities.ActivityReport, error)
}
