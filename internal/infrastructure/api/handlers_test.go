package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/poop4ik/weather-service/internal/domain/entities"
	"github.com/poop4ik/weather-service/internal/testutils"
)

func newTestRouter(weatherService *testutils.MockWeatherService, settingsStore *testutils.MockSettingsStore) *gin.Engine {
	gin.SetMode(gin.TestMode)

	handler := NewAPIHandler(weatherService, settingsStore)
	router := gin.New()

	router.GET("/health", handler.HealthCheck)
	api := router.Group("/api")
	{
		api.GET("/weather", handler.GetWeather)
		api.GET("/forecast", handler.GetForecast)
		api.GET("/hourly-forecast", handler.GetHourlyForecast)
		api.GET("/daily-forecast", handler.GetDailyForecast)
		api.GET("/7day-forecast", handler.GetWeeklyForecast)
		api.GET("/air-quality", handler.GetAirQuality)
		api.GET("/geocode", handler.GetGeocode)
		api.GET("/activity-recommendations", handler.GetActivityRecommendations)
		api.GET("/units-settings", handler.GetUnitsSettings)
		api.POST("/units-settings", handler.UpdateUnitsSettings)
	}

	return router
}

func performRequest(router *gin.Engine, method, target string, body []byte) *httptest.ResponseRecorder {
	var req *http.Request
	if body != nil {
		req = httptest.NewRequest(method, target, bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func TestGetWeather(t *testing.T) {
	t.Run("successful request", func(t *testing.T) {
		weatherService := new(testutils.MockWeatherService)
		weatherService.On("CurrentWeather", mock.Anything, "Kyiv").Return(&entities.CurrentWeatherReport{
			City:        "Kyiv",
			Country:     "UA",
			Temperature: 21.4,
			Description: "broken clouds",
		}, nil)

		router := newTestRouter(weatherService, new(testutils.MockSettingsStore))
		recorder := performRequest(router, http.MethodGet, "/api/weather?city=Kyiv", nil)

		assert.Equal(t, http.StatusOK, recorder.Code)

		var report entities.CurrentWeatherReport
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &report))
		assert.Equal(t, "Kyiv", report.City)
		assert.Equal(t, 21.4, report.Temperature)
		weatherService.AssertExpectations(t)
	})

	t.Run("missing city parameter", func(t *testing.T) {
		router := newTestRouter(new(testutils.MockWeatherService), new(testutils.MockSettingsStore))
		recorder := performRequest(router, http.MethodGet, "/api/weather", nil)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)

		var errResp ErrorResponse
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &errResp))
		assert.Equal(t, "city parameter is required", errResp.Message)
	})

	t.Run("city not found", func(t *testing.T) {
		weatherService := new(testutils.MockWeatherService)
		weatherService.On("CurrentWeather", mock.Anything, "Nowhere").Return(nil, entities.ErrNotFound)

		router := newTestRouter(weatherService, new(testutils.MockSettingsStore))
		recorder := performRequest(router, http.MethodGet, "/api/weather?city=Nowhere", nil)

		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})

	t.Run("missing API key", func(t *testing.T) {
		weatherService := new(testutils.MockWeatherService)
		weatherService.On("CurrentWeather", mock.Anything, "Kyiv").Return(nil, entities.ErrMissingCredential)

		router := newTestRouter(weatherService, new(testutils.MockSettingsStore))
		recorder := performRequest(router, http.MethodGet, "/api/weather?city=Kyiv", nil)

		assert.Equal(t, http.StatusInternalServerError, recorder.Code)

		var errResp ErrorResponse
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &errResp))
		assert.Equal(t, "weather API key is not configured", errResp.Message)
	})

	t.Run("upstream unavailable", func(t *testing.T) {
		weatherService := new(testutils.MockWeatherService)
		weatherService.On("CurrentWeather", mock.Anything, "Kyiv").Return(nil, entities.ErrUpstreamUnavailable)

		router := newTestRouter(weatherService, new(testutils.MockSettingsStore))
		recorder := performRequest(router, http.MethodGet, "/api/weather?city=Kyiv", nil)

		assert.Equal(t, http.StatusServiceUnavailable, recorder.Code)
	})

	t.Run("unclassified error", func(t *testing.T) {
		weatherService := new(testutils.MockWeatherService)
		weatherService.On("CurrentWeather", mock.Anything, "Kyiv").Return(nil, errors.New("boom"))

		router := newTestRouter(weatherService, new(testutils.MockSettingsStore))
		recorder := performRequest(router, http.MethodGet, "/api/weather?city=Kyiv", nil)

		assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	})
}

func TestForecastEndpoints(t *testing.T) {
	t.Run("forecast", func(t *testing.T) {
		weatherService := new(testutils.MockWeatherService)
		weatherService.On("Forecast", mock.Anything, "Kyiv").Return(&entities.ForecastReport{
			City:    "Kyiv",
			Country: "UA",
			Forecast: []entities.ForecastSlot{
				{Time: "2024-06-15 12:00:00", Temperature: 21.4},
			},
		}, nil)

		router := newTestRouter(weatherService, new(testutils.MockSettingsStore))
		recorder := performRequest(router, http.MethodGet, "/api/forecast?city=Kyiv", nil)

		assert.Equal(t, http.StatusOK, recorder.Code)

		var report entities.ForecastReport
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &report))
		require.Len(t, report.Forecast, 1)
		assert.Equal(t, "2024-06-15 12:00:00", report.Forecast[0].Time)
	})

	t.Run("hourly forecast", func(t *testing.T) {
		weatherService := new(testutils.MockWeatherService)
		weatherService.On("HourlyForecast", mock.Anything, "Kyiv").Return(&entities.HourlyForecastReport{
			City:   "Kyiv",
			Hourly: []entities.HourlySlot{{Time: "2024-06-15 12:00:00", Pop: 45}},
		}, nil)

		router := newTestRouter(weatherService, new(testutils.MockSettingsStore))
		recorder := performRequest(router, http.MethodGet, "/api/hourly-forecast?city=Kyiv", nil)

		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	t.Run("daily forecast", func(t *testing.T) {
		weatherService := new(testutils.MockWeatherService)
		weatherService.On("DailyForecast", mock.Anything, "Kyiv").Return(&entities.DailyForecastReport{
			City:  "Kyiv",
			Daily: []entities.DailySlot{{Date: "2024-06-15", TempMax: 24.1, TempMin: 15.3}},
		}, nil)

		router := newTestRouter(weatherService, new(testutils.MockSettingsStore))
		recorder := performRequest(router, http.MethodGet, "/api/daily-forecast?city=Kyiv", nil)

		assert.Equal(t, http.StatusOK, recorder.Code)

		var report entities.DailyForecastReport
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &report))
		require.Len(t, report.Daily, 1)
		assert.Equal(t, "2024-06-15", report.Daily[0].Date)
	})

	t.Run("7day forecast", func(t *testing.T) {
		weatherService := new(testutils.MockWeatherService)
		weatherService.On("WeeklyForecast", mock.Anything, "Kyiv").Return(&entities.WeeklyForecastReport{
			City: "Kyiv",
			Weekly: []entities.WeeklySlot{
				{
					Date:   "2024-06-15",
					Time:   "2024-06-15 06:00:00",
					Hourly: []entities.HourlySlot{{Time: "2024-06-15 06:00:00"}},
				},
			},
		}, nil)

		router := newTestRouter(weatherService, new(testutils.MockSettingsStore))
		recorder := performRequest(router, http.MethodGet, "/api/7day-forecast?city=Kyiv", nil)

		assert.Equal(t, http.StatusOK, recorder.Code)

		var report entities.WeeklyForecastReport
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &report))
		require.Len(t, report.Weekly, 1)
		assert.Len(t, report.Weekly[0].Hourly, 1)
	})

	t.Run("missing city on each endpoint", func(t *testing.T) {
		router := newTestRouter(new(testutils.MockWeatherService), new(testutils.MockSettingsStore))

		for _, target := range []string{
			"/api/forecast",
			"/api/hourly-forecast",
			"/api/daily-forecast",
			"/api/7day-forecast",
			"/api/geocode",
			"/api/activity-recommendations",
		} {
			recorder := performRequest(router, http.MethodGet, target, nil)
			assert.Equal(t, http.StatusBadRequest, recorder.Code, target)
		}
	})
}

func TestGetAirQuality(t *testing.T) {
	t.Run("successful request", func(t *testing.T) {
		weatherService := new(testutils.MockWeatherService)
		weatherService.On("AirQuality", mock.Anything, 50.45, 30.52).Return(&entities.AirQualityReport{
			AQI:      2,
			AQILabel: "Fair",
		}, nil)

		router := newTestRouter(weatherService, new(testutils.MockSettingsStore))
		recorder := performRequest(router, http.MethodGet, "/api/air-quality?lat=50.45&lon=30.52", nil)

		assert.Equal(t, http.StatusOK, recorder.Code)

		var report entities.AirQualityReport
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &report))
		assert.Equal(t, "Fair", report.AQILabel)
	})

	t.Run("missing coordinates", func(t *testing.T) {
		router := newTestRouter(new(testutils.MockWeatherService), new(testutils.MockSettingsStore))

		recorder := performRequest(router, http.MethodGet, "/api/air-quality?lon=30.52", nil)
		assert.Equal(t, http.StatusBadRequest, recorder.Code)

		recorder = performRequest(router, http.MethodGet, "/api/air-quality?lat=50.45", nil)
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	t.Run("non-numeric coordinates", func(t *testing.T) {
		router := newTestRouter(new(testutils.MockWeatherService), new(testutils.MockSettingsStore))

		recorder := performRequest(router, http.MethodGet, "/api/air-quality?lat=abc&lon=30.52", nil)
		assert.Equal(t, http.StatusBadRequest, recorder.Code)

		var errResp ErrorResponse
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &errResp))
		assert.Equal(t, "valid lat parameter is required", errResp.Message)
	})

	t.Run("no data for coordinates", func(t *testing.T) {
		weatherService := new(testutils.MockWeatherService)
		weatherService.On("AirQuality", mock.Anything, 0.0, 0.0).Return(nil, entities.ErrNotFound)

		router := newTestRouter(weatherService, new(testutils.MockSettingsStore))
		recorder := performRequest(router, http.MethodGet, "/api/air-quality?lat=0&lon=0", nil)

		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})
}

func TestGetGeocode(t *testing.T) {
	weatherService := new(testutils.MockWeatherService)
	weatherService.On("Geocode", mock.Anything, "Odesa").Return(&entities.GeocodeReport{
		Results: []entities.GeoLocation{
			{Name: "Odesa", Country: "UA", Lat: 46.48, Lon: 30.72},
		},
	}, nil)

	router := newTestRouter(weatherService, new(testutils.MockSettingsStore))
	recorder := performRequest(router, http.MethodGet, "/api/geocode?city=Odesa", nil)

	assert.Equal(t, http.StatusOK, recorder.Code)

	var report entities.GeocodeReport
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &report))
	require.Len(t, report.Results, 1)
	assert.Equal(t, "UA", report.Results[0].Country)
}

func TestGetActivityRecommendations(t *testing.T) {
	weatherService := new(testutils.MockWeatherService)
	weatherService.On("ActivityRecommendations", mock.Anything, "Kyiv", mock.Anything).Return(&entities.ActivityReport{
		City:    "Kyiv",
		Country: "UA",
		Activities: entities.ActivitySet{
			Running: entities.ActivityScore{Score: 100, Status: "Excellent"},
		},
		Clothing: entities.ClothingAdvice{Items: []string{"t-shirt"}},
	}, nil)

	router := newTestRouter(weatherService, new(testutils.MockSettingsStore))
	recorder := performRequest(router, http.MethodGet, "/api/activity-recommendations?city=Kyiv", nil)

	assert.Equal(t, http.StatusOK, recorder.Code)

	var report entities.ActivityReport
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &report))
	assert.Equal(t, 100, report.Activities.Running.Score)
	assert.Contains(t, report.Clothing.Items, "t-shirt")
}

func TestUnitsSettings(t *testing.T) {
	t.Run("get stored settings", func(t *testing.T) {
		settingsStore := new(testutils.MockSettingsStore)
		settingsStore.On("Get", mock.Anything).Return(entities.DefaultUnitsSettings(), nil)

		router := newTestRouter(new(testutils.MockWeatherService), settingsStore)
		recorder := performRequest(router, http.MethodGet, "/api/units-settings", nil)

		assert.Equal(t, http.StatusOK, recorder.Code)

		var settings entities.UnitsSettings
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &settings))
		assert.Equal(t, "celsius", settings.Temperature)
		assert.Equal(t, "ms", settings.WindSpeed)
		assert.Equal(t, "hpa", settings.Pressure)
	})

	t.Run("get fails on store error", func(t *testing.T) {
		settingsStore := new(testutils.MockSettingsStore)
		settingsStore.On("Get", mock.Anything).Return(entities.UnitsSettings{}, errors.New("store down"))

		router := newTestRouter(new(testutils.MockWeatherService), settingsStore)
		recorder := performRequest(router, http.MethodGet, "/api/units-settings", nil)

		assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	})

	t.Run("update valid settings", func(t *testing.T) {
		updated := entities.UnitsSettings{Temperature: "fahrenheit", WindSpeed: "mph", Pressure: "mmhg"}

		settingsStore := new(testutils.MockSettingsStore)
		settingsStore.On("Save", mock.Anything, updated).Return(nil)

		router := newTestRouter(new(testutils.MockWeatherService), settingsStore)
		body, _ := json.Marshal(updated)
		recorder := performRequest(router, http.MethodPost, "/api/units-settings", body)

		assert.Equal(t, http.StatusOK, recorder.Code)

		var echoed entities.UnitsSettings
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &echoed))
		assert.Equal(t, updated, echoed)
		settingsStore.AssertExpectations(t)
	})

	t.Run("reject unknown unit", func(t *testing.T) {
		settingsStore := new(testutils.MockSettingsStore)

		router := newTestRouter(new(testutils.MockWeatherService), settingsStore)
		body := []byte(`{"temperature": "kelvin", "wind_speed": "ms", "pressure": "hpa"}`)
		recorder := performRequest(router, http.MethodPost, "/api/units-settings", body)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)

		var errResp ErrorResponse
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &errResp))
		assert.Contains(t, errResp.Message, "temperature")
		settingsStore.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("reject malformed payload", func(t *testing.T) {
		router := newTestRouter(new(testutils.MockWeatherService), new(testutils.MockSettingsStore))
		recorder := performRequest(router, http.MethodPost, "/api/units-settings", []byte("{not json"))

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	t.Run("save failure", func(t *testing.T) {
		settingsStore := new(testutils.MockSettingsStore)
		settingsStore.On("Save", mock.Anything, mock.Anything).Return(errors.New("store down"))

		router := newTestRouter(new(testutils.MockWeatherService), settingsStore)
		body, _ := json.Marshal(entities.DefaultUnitsSettings())
		recorder := performRequest(router, http.MethodPost, "/api/units-settings", body)

		assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	})
}

func TestHealthCheck(t *testing.T) {
	router := newTestRouter(new(testutils.MockWeatherService), new(testutils.MockSettingsStore))
	recorder := performRequest(router, http.MethodGet, "/health", nil)

	assert.Equal(t, http.StatusOK, recorder.Code)

	var health HealthResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &health))
	assert.Equal(t, "healthy", health.Status)
}
