package openweather

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/poop4ik/weather-service/internal/domain/entities"
	"github.com/poop4ik/weather-service/internal/pkg/logger"
)

const defaultTimeout = 10 * time.Second

// Client issues synchronous requests against the OpenWeatherMap data
// and geocoding APIs. Failures are classified with the sentinel errors
// from the entities package; nothing is retried.
type Client struct {
	client  *http.Client
	baseURL string
	geoURL  string
	apiKey  string
	units   string
	lang    string
	logger  logger.Logger
}

func NewClient(baseURL, geoURL, apiKey, units, lang string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		client: &http.Client{
			Timeout: timeout,
		},
		baseURL: baseURL,
		geoURL:  geoURL,
		apiKey:  apiKey,
		units:   units,
		lang:    lang,
		logger:  logger.New("info", "development").WithField("component", "openweather_client"),
	}
}

func (c *Client) CurrentWeather(ctx context.Context, city string) (*entities.Observation, error) {
	c.logger.Debugf("Fetching current weather for city: %s", city)

	query := c.baseQuery()
	query.Set("q", city)
	query.Set("units", c.units)
	query.Set("lang", c.lang)

	var resp currentResponse
	if err := c.getJSON(ctx, c.baseURL+"/weather", query, &resp); err != nil {
		return nil, err
	}

	observation := convertObservation(&resp)
	c.logger.Debugf("Fetched current weather for %s, %s", observation.City, observation.Country)
	return observation, nil
}

func (c *Client) Forecast(ctx context.Context, city string) (*entities.ForecastSeries, error) {
	c.logger.Debugf("Fetching 5-day forecast for city: %s", city)

	query := c.baseQuery()
	query.Set("q", city)
	query.Set("units", c.units)
	query.Set("lang", c.lang)

	var resp forecastResponse
	if err := c.getJSON(ctx, c.baseURL+"/forecast", query, &resp); err != nil {
		return nil, err
	}

	series := convertForecast(&resp)
	c.logger.Debugf("Fetched %d forecast entries for %s", len(series.Entries), series.City)
	return series, nil
}

func (c *Client) AirPollution(ctx context.Context, lat, lon float64) (*entities.AirQualitySample, error) {
	c.logger.Debugf("Fetching air pollution for lat=%f lon=%f", lat, lon)

	query := c.baseQuery()
	query.Set("lat", fmt.Sprintf("%g", lat))
	query.Set("lon", fmt.Sprintf("%g", lon))

	var resp airPollutionResponse
	if err := c.getJSON(ctx, c.baseURL+"/air_pollution", query, &resp); err != nil {
		return nil, err
	}

	if len(resp.List) == 0 {
		return nil, fmt.Errorf("%w: no air pollution data for coordinates", entities.ErrNotFound)
	}

	return convertAirQuality(&resp), nil
}

func (c *Client) Geocode(ctx context.Context, city string, limit int) ([]entities.GeoLocation, error) {
	c.logger.Debugf("Geocoding city: %s", city)

	query := c.baseQuery()
	query.Set("q", city)
	query.Set("limit", fmt.Sprintf("%d", limit))

	var results []geoResult
	if err := c.getJSON(ctx, c.geoURL+"/direct", query, &results); err != nil {
		return nil, err
	}

	if len(results) == 0 {
		return nil, fmt.Errorf("%w: city %q", entities.ErrNotFound, city)
	}

	locations := make([]entities.GeoLocation, 0, len(results))
	for _, r := range results {
		locations = append(locations, entities.GeoLocation{
			Name:    r.Name,
			Country: r.Country,
			State:   r.State,
			Lat:     r.Lat,
			Lon:     r.Lon,
		})
	}
	return locations, nil
}

func (c *Client) HealthCheck(ctx context.Context) error {
	// Geocoding is the cheapest authenticated call the provider offers.
	_, err := c.Geocode(ctx, "London", 1)
	if err != nil {
		return fmt.Errorf("provider health check failed: %w", err)
	}
	return nil
}

func (c *Client) baseQuery() url.Values {
	query := url.Values{}
	query.Set("appid", c.apiKey)
	return query
}

func (c *Client) getJSON(ctx context.Context, endpoint string, query url.Values, out interface{}) error {
	if c.apiKey == "" {
		return entities.ErrMissingCredential
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?"+query.Encode(), nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", entities.ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return fmt.Errorf("%w: upstream returned 404", entities.ErrNotFound)
	case resp.StatusCode != http.StatusOK:
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: API returned status %d: %s", entities.ErrUpstreamUnavailable, resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func convertObservation(resp *currentResponse) *entities.Observation {
	var condition, description, icon string
	if len(resp.Weather) > 0 {
		condition = resp.Weather[0].Main
		description = resp.Weather[0].Description
		icon = resp.Weather[0].Icon
	}

	return &entities.Observation{
		City:        resp.Name,
		Country:     resp.Sys.Country,
		Lat:         resp.Coord.Lat,
		Lon:         resp.Coord.Lon,
		Temperature: resp.Main.Temp,
		FeelsLike:   resp.Main.FeelsLike,
		Humidity:    resp.Main.Humidity,
		Pressure:    resp.Main.Pressure,
		WindSpeed:   resp.Wind.Speed,
		WindDeg:     resp.Wind.Deg,
		WindGust:    resp.Wind.Gust,
		Clouds:      resp.Clouds.All,
		Visibility:  resp.Visibility,
		Condition:   condition,
		Description: description,
		Icon:        icon,
		Sunrise:     time.Unix(resp.Sys.Sunrise, 0),
		Sunset:      time.Unix(resp.Sys.Sunset, 0),
		Timezone:    resp.Timezone,
	}
}

func convertForecast(resp *forecastResponse) *entities.ForecastSeries {
	series := &entities.ForecastSeries{
		City:    resp.City.Name,
		Country: resp.City.Country,
		Entries: make([]entities.ForecastEntry, 0, len(resp.List)),
	}

	for _, item := range resp.List {
		var condition, description, icon string
		if len(item.Weather) > 0 {
			condition = item.Weather[0].Main
			description = item.Weather[0].Description
			icon = item.Weather[0].Icon
		}

		series.Entries = append(series.Entries, entities.ForecastEntry{
			TimeText:    item.DtTxt,
			Timestamp:   item.Dt,
			Temperature: item.Main.Temp,
			FeelsLike:   item.Main.FeelsLike,
			Humidity:    item.Main.Humidity,
			Pressure:    item.Main.Pressure,
			WindSpeed:   item.Wind.Speed,
			WindDeg:     item.Wind.Deg,
			WindGust:    item.Wind.Gust,
			Clouds:      item.Clouds.All,
			Visibility:  item.Visibility,
			Condition:   condition,
			Description: description,
			Icon:        icon,
			Pop:         item.Pop,
		})
	}

	return series
}

func convertAirQuality(resp *airPollutionResponse) *entities.AirQualitySample {
	reading := resp.List[0]
	return &entities.AirQualitySample{
		AQI: reading.Main.AQI,
		Components: entities.PollutantConcentrations{
			CO:   reading.Components["co"],
			NO2:  reading.Components["no2"],
			O3:   reading.Components["o3"],
			PM25: reading.Components["pm2_5"],
			PM10: reading.Components["pm10"],
		},
	}
}
