package bootstrap

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/poop4ik/weather-service/internal/config"
	"github.com/poop4ik/weather-service/internal/domain/ports"
	"github.com/poop4ik/weather-service/internal/infrastructure/api"
	"github.com/poop4ik/weather-service/internal/infrastructure/openweather"
	"github.com/poop4ik/weather-service/internal/infrastructure/settings"
	"github.com/poop4ik/weather-service/internal/pkg/logger"
	"github.com/poop4ik/weather-service/internal/scheduler"
	"github.com/poop4ik/weather-service/internal/services"
)

type App struct {
	config        *config.Config
	logger        logger.Logger
	provider      ports.WeatherProvider
	settingsStore ports.SettingsStore
	scheduler     ports.Scheduler
	apiServer     *api.APIServer
}

func Bootstrap() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	appLogger := logger.New(cfg.App.LogLevel, cfg.App.Env).WithField("service", cfg.App.Name)
	appLogger.Infof("Starting %s in %s mode", cfg.App.Name, cfg.App.Env)

	if cfg.OpenWeather.APIKey == "" {
		appLogger.Warn("WEATHER_API_KEY is not set; upstream requests will fail")
	}

	app := &App{
		config: cfg,
		logger: appLogger,
	}

	if err := app.initComponents(); err != nil {
		appLogger.Fatalf("Failed to initialize components: %v", err)
	}

	if err := app.start(); err != nil {
		appLogger.Fatalf("Failed to start application: %v", err)
	}

	app.waitForShutdown()
}

func (a *App) initComponents() error {
	a.logger.Info("Initializing OpenWeather client...")
	a.provider = openweather.NewClient(
		a.config.OpenWeather.BaseURL,
		a.config.OpenWeather.GeoBaseURL,
		a.config.OpenWeather.APIKey,
		a.config.OpenWeather.Units,
		a.config.OpenWeather.Lang,
		a.config.OpenWeather.Timeout,
	)

	a.logger.Info("Initializing settings store...")
	if a.config.Redis.Enabled {
		store, err := settings.NewRedisStore(
			a.config.Redis.Host,
			a.config.Redis.Port,
			a.config.Redis.Password,
			a.config.Redis.DB,
		)
		if err != nil {
			return fmt.Errorf("failed to create Redis settings store: %w", err)
		}
		a.settingsStore = store
	} else {
		a.settingsStore = settings.NewMemoryStore()
	}

	a.logger.Info("Initializing weather service...")
	weatherService := services.NewWeatherService(a.provider, services.AQIScale{
		Labels:  a.config.AirQuality.Labels,
		Unknown: a.config.AirQuality.UnknownLabel,
	})

	a.logger.Info("Initializing scheduler...")
	a.scheduler = scheduler.NewCronScheduler(a.config.HealthCheck.Timeout)

	a.logger.Info("Initializing API server...")
	middleware := api.NewMiddleware(a.config.API.RateLimit, a.config.API.RateLimitWindow)
	a.apiServer = api.NewAPIServer(weatherService, a.settingsStore, middleware, a.config)

	a.logger.Info("All components initialized successfully")
	return nil
}

func (a *App) start() error {
	ctx := context.Background()

	a.logger.Info("Scheduling periodic health checks...")
	if err := a.scheduler.Schedule(ctx, a.config.HealthCheck.Interval, a.runHealthChecks); err != nil {
		return fmt.Errorf("failed to schedule health checks: %w", err)
	}

	a.logger.Info("Starting API server...")
	if err := a.apiServer.Start(); err != nil {
		return fmt.Errorf("failed to start API server: %w", err)
	}

	a.logger.Info("Application started successfully")
	return nil
}

func (a *App) runHealthChecks(ctx context.Context) error {
	checks := []struct {
		name  string
		check func(context.Context) error
	}{
		{"weather_provider", a.provider.HealthCheck},
		{"settings_store", a.settingsStore.HealthCheck},
	}

	for _, c := range checks {
		if err := c.check(ctx); err != nil {
			a.logger.Errorf("Health check failed for %s: %v", c.name, err)
		} else {
			a.logger.Debugf("Health check passed for %s", c.name)
		}
	}
	return nil
}

func (a *App) waitForShutdown() {
	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)

	sig := <-signalChan
	a.logger.Infof("Received signal: %v. Shutting down...", sig)

	ctx, cancel := context.WithTimeout(context.Background(), a.config.App.ShutdownTimeout)
	defer cancel()

	if a.apiServer != nil {
		if err := a.apiServer.Stop(ctx); err != nil {
			a.logger.Errorf("Failed to stop API server: %v", err)
		}
	}

	if a.scheduler != nil {
		a.scheduler.Stop()
	}

	if a.settingsStore != nil {
		if err := a.settingsStore.Close(); err != nil {
			a.logger.Errorf("Failed to close settings store: %v", err)
		}
	}

	a.logger.Info("Application shutdown completed")
}
