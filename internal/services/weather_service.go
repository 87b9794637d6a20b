package services

import (
	"context"
	"math"
	"time"

	"github.com/poop4ik/weather-service/internal/activity"
	"github.com/poop4ik/weather-service/internal/domain/entities"
	"github.com/poop4ik/weather-service/internal/domain/ports"
	"github.com/poop4ik/weather-service/internal/forecast"
	"github.com/poop4ik/weather-service/internal/pkg/logger"
)

const (
	forecastSlots = 8  // 24h at 3h spacing
	hourlySlots   = 16 // 48h at 3h spacing
	dailyDays     = 5
	weeklyDays    = 7
	geocodeLimit  = 5
)

// WeatherService reshapes provider payloads into the client-facing
// report schemas and runs the derived-metric calculators. It holds no
// mutable state, so it is safe for concurrent use.
type WeatherService struct {
	provider ports.WeatherProvider
	aqiScale AQIScale
	logger   logger.Logger
}

func NewWeatherService(provider ports.WeatherProvider, aqiScale AQIScale) *WeatherService {
	if len(aqiScale.Labels) == 0 {
		aqiScale = DefaultAQIScale()
	}
	return &WeatherService{
		provider: provider,
		aqiScale: aqiScale,
		logger:   logger.New("info", "development").WithField("component", "weather_service"),
	}
}

func (s *WeatherService) CurrentWeather(ctx context.Context, city string) (*entities.CurrentWeatherReport, error) {
	observation, err := s.provider.CurrentWeather(ctx, city)
	if err != nil {
		return nil, err
	}

	return &entities.CurrentWeatherReport{
		City:        observation.City,
		Country:     observation.Country,
		Temperature: round1(observation.Temperature),
		FeelsLike:   round1(observation.FeelsLike),
		Humidity:    observation.Humidity,
		Pressure:    observation.Pressure,
		WindSpeed:   observation.WindSpeed,
		Description: observation.Description,
		Icon:        observation.Icon,
		Lat:         observation.Lat,
		Lon:         observation.Lon,
		Timestamp:   time.Now().Format(time.RFC3339),
	}, nil
}

func (s *WeatherService) Forecast(ctx context.Context, city string) (*entities.ForecastReport, error) {
	series, err := s.provider.Forecast(ctx, city)
	if err != nil {
		return nil, err
	}

	entries := capEntries(series.Entries, forecastSlots)
	slots := make([]entities.ForecastSlot, 0, len(entries))
	for _, entry := range entries {
		slots = append(slots, entities.ForecastSlot{
			Time:        entry.TimeText,
			Temperature: round1(entry.Temperature),
			Description: entry.Description,
			Icon:        entry.Icon,
			Humidity:    entry.Humidity,
			WindSpeed:   entry.WindSpeed,
		})
	}

	return &entities.ForecastReport{
		City:     series.City,
		Country:  series.Country,
		Forecast: slots,
	}, nil
}

func (s *WeatherService) HourlyForecast(ctx context.Context, city string) (*entities.HourlyForecastReport, error) {
	series, err := s.provider.Forecast(ctx, city)
	if err != nil {
		return nil, err
	}

	return &entities.HourlyForecastReport{
		City:    series.City,
		Country: series.Country,
		Hourly:  hourlySlotsFrom(capEntries(series.Entries, hourlySlots)),
	}, nil
}

func (s *WeatherService) DailyForecast(ctx context.Context, city string) (*entities.DailyForecastReport, error) {
	series, err := s.provider.Forecast(ctx, city)
	if err != nil {
		return nil, err
	}

	buckets := forecast.GroupByDay(series.Entries, dailyDays)
	daily := make([]entities.DailySlot, 0, len(buckets))
	for _, bucket := range buckets {
		summary := forecast.Summarize(bucket)
		daily = append(daily, entities.DailySlot{
			Date:        summary.Date,
			TempMax:     round1(summary.TempMax),
			TempMin:     round1(summary.TempMin),
			Description: summary.Description,
			Icon:        summary.Icon,
			Humidity:    roundInt(summary.Humidity),
			WindSpeed:   round1(summary.WindSpeed),
			Pop:         popPercent(summary.Pop),
		})
	}

	return &entities.DailyForecastReport{
		City:    series.City,
		Country: series.Country,
		Daily:   daily,
	}, nil
}

func (s *WeatherService) WeeklyForecast(ctx context.Context, city string) (*entities.WeeklyForecastReport, error) {
	series, err := s.provider.Forecast(ctx, city)
	if err != nil {
		return nil, err
	}

	buckets := forecast.GroupByDay(series.Entries, weeklyDays)
	weekly := make([]entities.WeeklySlot, 0, len(buckets))
	for _, bucket := range buckets {
		summary := forecast.Summarize(bucket)
		midday := bucket.MiddayEntry()
		morning := bucket.MorningEntry()

		weekly = append(weekly, entities.WeeklySlot{
			Date:        summary.Date,
			Time:        morning.TimeText,
			TempMax:     round1(summary.TempMax),
			TempMin:     round1(summary.TempMin),
			TempAvg:     round1(summary.TempAvg),
			FeelsLike:   round1(midday.FeelsLike),
			Description: summary.Description,
			Icon:        midday.Icon,
			Humidity:    roundInt(summary.Humidity),
			Pressure:    midday.Pressure,
			Visibility:  midday.Visibility,
			Clouds:      midday.Clouds,
			WindSpeed:   round1(summary.WindSpeed),
			WindDeg:     midday.WindDeg,
			WindGust:    round1(midday.WindGust),
			Pop:         popPercent(summary.Pop),
			Hourly:      hourlySlotsFrom(bucket.Entries),
		})
	}

	return &entities.WeeklyForecastReport{
		City:    series.City,
		Country: series.Country,
		Weekly:  weekly,
	}, nil
}

func (s *WeatherService) AirQuality(ctx context.Context, lat, lon float64) (*entities.AirQualityReport, error) {
	sample, err := s.provider.AirPollution(ctx, lat, lon)
	if err != nil {
		return nil, err
	}

	return &entities.AirQualityReport{
		AQI:      sample.AQI,
		AQILabel: s.aqiScale.Label(sample.AQI),
		Components: entities.PollutantReport{
			CO:   round2(sample.Components.CO),
			NO2:  round2(sample.Components.NO2),
			O3:   round2(sample.Components.O3),
			PM25: round2(sample.Components.PM25),
			PM10: round2(sample.Components.PM10),
		},
	}, nil
}

func (s *WeatherService) Geocode(ctx context.Context, city string) (*entities.GeocodeReport, error) {
	locations, err := s.provider.Geocode(ctx, city, geocodeLimit)
	if err != nil {
		return nil, err
	}

	return &entities.GeocodeReport{Results: locations}, nil
}

func (s *WeatherService) ActivityRecommendations(ctx context.Context, city string, now time.Time) (*entities.ActivityReport, error) {
	observation, err := s.provider.CurrentWeather(ctx, city)
	if err != nil {
		return nil, err
	}

	conditions := activity.Conditions{
		Temperature: observation.Temperature,
		Humidity:    observation.Humidity,
		WindSpeed:   observation.WindSpeed,
		Clouds:      observation.Clouds,
		Condition:   activity.CategoryFromCondition(observation.Condition),
	}

	return &entities.ActivityReport{
		City:    observation.City,
		Country: observation.Country,
		Activities: entities.ActivitySet{
			Running:     activity.ScoreRunning(conditions),
			Cycling:     activity.ScoreCycling(conditions),
			Fishing:     activity.ScoreFishing(conditions),
			Agriculture: activity.ScoreAgriculture(conditions),
		},
		Clothing:   activity.Clothing(conditions),
		Conditions: activity.Estimate(conditions, now),
	}, nil
}

func capEntries(entries []entities.ForecastEntry, limit int) []entities.ForecastEntry {
	if len(entries) > limit {
		return entries[:limit]
	}
	return entries
}

func hourlySlotsFrom(entries []entities.ForecastEntry) []entities.HourlySlot {
	slots := make([]entities.HourlySlot, 0, len(entries))
	for _, entry := range entries {
		slots = append(slots, entities.HourlySlot{
			Time:        entry.TimeText,
			Temperature: round1(entry.Temperature),
			FeelsLike:   round1(entry.FeelsLike),
			Description: entry.Description,
			Icon:        entry.Icon,
			Humidity:    entry.Humidity,
			Pressure:    entry.Pressure,
			WindSpeed:   round1(entry.WindSpeed),
			WindDeg:     entry.WindDeg,
			Clouds:      entry.Clouds,
			Pop:         popPercent(entry.Pop),
		})
	}
	return slots
}

func round1(value float64) float64 {
	return math.Round(value*10) / 10
}

func round2(value float64) float64 {
	return math.Round(value*100) / 100
}

func roundInt(value float64) int {
	return int(math.Round(value))
}

func popPercent(pop float64) int {
	return int(math.Round(pop * 100))
}
