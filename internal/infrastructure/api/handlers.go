package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/poop4ik/weather-service/internal/domain/entities"
	"github.com/poop4ik/weather-service/internal/domain/ports"
	"github.com/poop4ik/weather-service/internal/pkg/logger"
)

type APIHandler struct {
	weatherService ports.WeatherService
	settingsStore  ports.SettingsStore
	logger         logger.Logger
}

func NewAPIHandler(weatherService ports.WeatherService, settingsStore ports.SettingsStore) *APIHandler {
	return &APIHandler{
		weatherService: weatherService,
		settingsStore:  settingsStore,
		logger:         logger.New("info", "development").WithField("component", "api_handler"),
	}
}

// GetWeather returns current conditions for a city.
func (h *APIHandler) GetWeather(c *gin.Context) {
	city, ok := h.requireCity(c)
	if !ok {
		return
	}

	report, err := h.weatherService.CurrentWeather(c.Request.Context(), city)
	if err != nil {
		h.respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// GetForecast returns the next 24 hours in 3-hour steps.
func (h *APIHandler) GetForecast(c *gin.Context) {
	city, ok := h.requireCity(c)
	if !ok {
		return
	}

	report, err := h.weatherService.Forecast(c.Request.Context(), city)
	if err != nil {
		h.respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// GetHourlyForecast returns the next 48 hours in 3-hour steps.
func (h *APIHandler) GetHourlyForecast(c *gin.Context) {
	city, ok := h.requireCity(c)
	if !ok {
		return
	}

	report, err := h.weatherService.HourlyForecast(c.Request.Context(), city)
	if err != nil {
		h.respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// GetDailyForecast returns the 5-day bucketed aggregate.
func (h *APIHandler) GetDailyForecast(c *gin.Context) {
	city, ok := h.requireCity(c)
	if !ok {
		return
	}

	report, err := h.weatherService.DailyForecast(c.Request.Context(), city)
	if err != nil {
		h.respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// GetWeeklyForecast returns the weekly bucketed aggregate with the raw
// 3-hour entries embedded per day.
func (h *APIHandler) GetWeeklyForecast(c *gin.Context) {
	city, ok := h.requireCity(c)
	if !ok {
		return
	}

	report, err := h.weatherService.WeeklyForecast(c.Request.Context(), city)
	if err != nil {
		h.respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// GetAirQuality returns AQI plus pollutant concentrations for a
// coordinate pair.
func (h *APIHandler) GetAirQuality(c *gin.Context) {
	lat, err := strconv.ParseFloat(c.Query("lat"), 64)
	if err != nil {
		h.respondError(c, http.StatusBadRequest, "valid lat parameter is required")
		return
	}
	lon, err := strconv.ParseFloat(c.Query("lon"), 64)
	if err != nil {
		h.respondError(c, http.StatusBadRequest, "valid lon parameter is required")
		return
	}

	report, err := h.weatherService.AirQuality(c.Request.Context(), lat, lon)
	if err != nil {
		h.respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// GetGeocode returns up to 5 location matches for a city name.
func (h *APIHandler) GetGeocode(c *gin.Context) {
	city, ok := h.requireCity(c)
	if !ok {
		return
	}

	report, err := h.weatherService.Geocode(c.Request.Context(), city)
	if err != nil {
		h.respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// GetActivityRecommendations returns the derived activity scores,
// clothing advice and synthetic UV/rain estimates.
func (h *APIHandler) GetActivityRecommendations(c *gin.Context) {
	city, ok := h.requireCity(c)
	if !ok {
		return
	}

	report, err := h.weatherService.ActivityRecommendations(c.Request.Context(), city, time.Now())
	if err != nil {
		h.respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// GetUnitsSettings returns the stored unit preference.
func (h *APIHandler) GetUnitsSettings(c *gin.Context) {
	settings, err := h.settingsStore.Get(c.Request.Context())
	if err != nil {
		h.respondError(c, http.StatusInternalServerError, "failed to load units settings")
		return
	}
	c.JSON(http.StatusOK, settings)
}

// UpdateUnitsSettings validates and stores a unit preference, echoing
// the stored object back.
func (h *APIHandler) UpdateUnitsSettings(c *gin.Context) {
	var settings entities.UnitsSettings
	if err := c.ShouldBindJSON(&settings); err != nil {
		h.respondError(c, http.StatusBadRequest, "invalid units settings payload")
		return
	}

	if err := settings.Validate(); err != nil {
		h.respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.settingsStore.Save(c.Request.Context(), settings); err != nil {
		h.respondError(c, http.StatusInternalServerError, "failed to save units settings")
		return
	}
	c.JSON(http.StatusOK, settings)
}

// HealthCheck is the liveness probe.
func (h *APIHandler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now(),
	})
}

func (h *APIHandler) requireCity(c *gin.Context) (string, bool) {
	city := c.Query("city")
	if city == "" {
		h.respondError(c, http.StatusBadRequest, "city parameter is required")
		return "", false
	}
	return city, true
}

// respondServiceError maps an error class onto an HTTP status: 404 for
// NotFound, 500 for a missing credential, 503 for upstream failures,
// 500 otherwise. No partial results are ever returned.
func (h *APIHandler) respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, entities.ErrNotFound):
		h.respondError(c, http.StatusNotFound, "city not found")
	case errors.Is(err, entities.ErrMissingCredential):
		h.respondError(c, http.StatusInternalServerError, "weather API key is not configured")
	case errors.Is(err, entities.ErrUpstreamUnavailable):
		h.respondError(c, http.StatusServiceUnavailable, "weather provider is unavailable")
	default:
		h.respondError(c, http.StatusInternalServerError, "internal error")
	}
}

func (h *APIHandler) respondError(c *gin.Context, status int, message string) {
	h.logger.Errorf("HTTP %d: %s", status, message)
	c.JSON(status, ErrorResponse{
		Error:   http.StatusText(status),
		Message: message,
		Time:    time.Now(),
	})
}

type ErrorResponse struct {
	Error   string    `json:"error"`
	Message string    `json:"message"`
	Time    time.Time `json:"time"`
}

type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}
