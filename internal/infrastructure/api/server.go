package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/poop4ik/weather-service/internal/config"
	"github.com/poop4ik/weather-service/internal/domain/ports"
	"github.com/poop4ik/weather-service/internal/pkg/logger"
)

type APIServer struct {
	server     *http.Server
	router     *gin.Engine
	handler    *APIHandler
	middleware *Middleware
	config     *config.Config
	logger     logger.Logger
}

func NewAPIServer(weatherService ports.WeatherService, settingsStore ports.SettingsStore, middleware *Middleware, cfg *config.Config) *APIServer {
	gin.SetMode(gin.ReleaseMode)
	if cfg.App.Env == "development" {
		gin.SetMode(gin.DebugMode)
	}

	return &APIServer{
		router:     gin.New(),
		handler:    NewAPIHandler(weatherService, settingsStore),
		middleware: middleware,
		config:     cfg,
		logger:     logger.New(cfg.App.LogLevel, cfg.App.Env).WithField("component", "api_server"),
	}
}

func (s *APIServer) setupRoutes() {
	s.router.Use(s.middleware.Recovery())
	s.router.Use(s.middleware.RequestID())
	s.router.Use(s.middleware.Logging())
	s.router.Use(s.middleware.CORS())
	s.router.Use(s.middleware.RateLimit())

	s.router.GET("/health", s.handler.HealthCheck)

	api := s.router.Group("/api")
	{
		api.GET("/weather", s.handler.GetWeather)
		api.GET("/forecast", s.handler.GetForecast)
		api.GET("/hourly-forecast", s.handler.GetHourlyForecast)
		api.GET("/daily-forecast", s.handler.GetDailyForecast)
		api.GET("/7day-forecast", s.handler.GetWeeklyForecast)
		api.GET("/air-quality", s.handler.GetAirQuality)
		api.GET("/geocode", s.handler.GetGeocode)
		api.GET("/activity-recommendations", s.handler.GetActivityRecommendations)
		api.GET("/units-settings", s.handler.GetUnitsSettings)
		api.POST("/units-settings", s.handler.UpdateUnitsSettings)
	}

	s.router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"error":   "Not Found",
			"message": fmt.Sprintf("Route %s not found", c.Request.URL.Path),
		})
	})
}

func (s *APIServer) Start() error {
	s.setupRoutes()

	s.server = &http.Server{
		Addr:         fmt.Sprintf(":%d", s.config.App.Port),
		Handler:      s.router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		s.logger.Infof("Starting API server on port %d", s.config.App.Port)
		if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			s.logger.Fatalf("Failed to start server: %v", err)
		}
	}()

	return nil
}

func (s *APIServer) Stop(ctx context.Context) error {
	s.logger.Info("Shutting down API server...")

	shutdownCtx, cancel := context.WithTimeout(ctx, s.config.App.ShutdownTimeout)
	defer cancel()

	if err := s.server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shutdown server gracefully: %w", err)
	}

	s.logger.Info("API server stopped")
	return nil
}
