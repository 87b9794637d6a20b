package testutils

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/poop4ik/weather-service/internal/domain/entities"
)

type MockProvider struct {
	mock.Mock
}

func (m *MockProvider) CurrentWeather(ctx context.Context, city string) (*entities.Observation, error) {
	args := m.Called(ctx, city)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Observation), args.Error(1)
}

func (m *MockProvider) Forecast(ctx context.Context, city string) (*entities.ForecastSeries, error) {
	args := m.Called(ctx, city)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.ForecastSeries), args.Error(1)
}

func (m *MockProvider) AirPollution(ctx context.Context, lat, lon float64) (*entities.AirQualitySample, error) {
	args := m.Called(ctx, lat, lon)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.AirQualitySample), args.Error(1)
}

func (m *MockProvider) Geocode(ctx context.Context, city string, limit int) ([]entities.GeoLocation, error) {
	args := m.Called(ctx, city, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.GeoLocation), args.Error(1)
}

func (m *MockProvider) HealthCheck(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

type MockSettingsStore struct {
	mock.Mock
}

func (m *MockSettingsStore) Get(ctx context.Context) (entities.UnitsSettings, error) {
	args := m.Called(ctx)
	return args.Get(0).(entities.UnitsSettings), args.Error(1)
}

func (m *MockSettingsStore) Save(ctx context.Context, settings entities.UnitsSettings) error {
	args := m.Called(ctx, settings)
	return args.Error(0)
}

func (m *MockSettingsStore) HealthCheck(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockSettingsStore) Close() error {
	args := m.Called()
	return args.Error(0)
}

type MockWeatherService struct {
	mock.Mock
}

func (m *MockWeatherService) CurrentWeather(ctx context.Context, city string) (*entities.CurrentWeatherReport, error) {
	args := m.Called(ctx, city)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.CurrentWeatherReport), args.Error(1)
}

func (m *MockWeatherService) Forecast(ctx context.Context, city string) (*entities.ForecastReport, error) {
	args := m.Called(ctx, city)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.ForecastReport), args.Error(1)
}

func (m *MockWeatherService) HourlyForecast(ctx context.Context, city string) (*entities.HourlyForecastReport, error) {
	args := m.Called(ctx, city)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.HourlyForecastReport), args.Error(1)
}

func (m *MockWeatherService) DailyForecast(ctx context.Context, city string) (*entities.DailyForecastReport, error) {
	args := m.Called(ctx, city)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.DailyForecastReport), args.Error(1)
}

func (m *MockWeatherService) WeeklyForecast(ctx context.Context, city string) (*entities.WeeklyForecastReport, error) {
	args := m.Called(ctx, city)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.WeeklyForecastReport), args.Error(1)
}

func (m *MockWeatherService) AirQuality(ctx context.Context, lat, lon float64) (*entities.AirQualityReport, error) {
	args := m.Called(ctx, lat, lon)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.AirQualityReport), args.Error(1)
}

func (m *MockWeatherService) Geocode(ctx context.Context, city string) (*entities.GeocodeReport, error) {
	args := m.Called(ctx, city)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.GeocodeReport), args.Error(1)
}

func (m *MockWeatherService) ActivityRecommendations(ctx context.Context, city string, now time.Time) (*entities.ActivityReport, error) {
	args := m.Called(ctx, city, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.ActivityReport), args.Error(1)
}
