package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App         AppConfig
	OpenWeather OpenWeatherConfig
	API         APIConfig
	Redis       RedisConfig
	AirQuality  AirQualityConfig
	HealthCheck HealthCheckConfig
}

type AppConfig struct {
	Name            string        `mapstructure:"name"`
	Env             string        `mapstructure:"env"`
	LogLevel        string        `mapstructure:"log_level"`
	Port            int           `mapstructure:"port"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

type OpenWeatherConfig struct {
	APIKey     string        `mapstructure:"api_key"`
	BaseURL    string        `mapstructure:"base_url"`
	GeoBaseURL string        `mapstructure:"geo_base_url"`
	Units      string        `mapstructure:"units"`
	Lang       string        `mapstructure:"lang"`
	Timeout    time.Duration `mapstructure:"timeout"`
}

type APIConfig struct {
	RateLimit       int           `mapstructure:"rate_limit"`
	RateLimitWindow time.Duration `mapstructure:"rate_limit_window"`
}

type RedisConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

type AirQualityConfig struct {
	Labels       []string `mapstructure:"labels"`
	UnknownLabel string   `mapstructure:"unknown_label"`
}

type HealthCheckConfig struct {
	Interval time.Duration `mapstructure:"interval"`
	Timeout  time.Duration `mapstructure:"timeout"`
}

func Load() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/weather-service/")

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	overrideFromEnv(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "weather-service")
	v.SetDefault("app.env", "development")
	v.SetDefault("app.log_level", "info")
	v.SetDefault("app.port", 8080)
	v.SetDefault("app.shutdown_timeout", "30s")

	v.SetDefault("openweather.base_url", "https://api.openweathermap.org/data/2.5")
	v.SetDefault("openweather.geo_base_url", "https://api.openweathermap.org/geo/1.0")
	v.SetDefault("openweather.units", "metric")
	v.SetDefault("openweather.lang", "en")
	v.SetDefault("openweather.timeout", "10s")

	v.SetDefault("api.rate_limit", 100)
	v.SetDefault("api.rate_limit_window", "1m")

	v.SetDefault("redis.enabled", false)
	v.SetDefault("redis.host", "redis")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)

	v.SetDefault("airquality.labels", []string{"Good", "Fair", "Moderate", "Poor", "Very Poor"})
	v.SetDefault("airquality.unknown_label", "Unknown")

	v.SetDefault("healthcheck.interval", "1m")
	v.SetDefault("healthcheck.timeout", "10s")
}

func overrideFromEnv(v *viper.Viper) {
	if apiKey := os.Getenv("WEATHER_API_KEY"); apiKey != "" {
		v.Set("openweather.api_key", apiKey)
	}
	if baseURL := os.Getenv("OPENWEATHER_BASE_URL"); baseURL != "" {
		v.Set("openweather.base_url", baseURL)
	}
	if geoURL := os.Getenv("OPENWEATHER_GEO_BASE_URL"); geoURL != "" {
		v.Set("openweather.geo_base_url", geoURL)
	}
	if units := os.Getenv("OPENWEATHER_UNITS"); units != "" {
		v.Set("openweather.units", units)
	}
	if lang := os.Getenv("OPENWEATHER_LANG"); lang != "" {
		v.Set("openweather.lang", lang)
	}

	if port := os.Getenv("PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			v.Set("app.port", p)
		}
	}
	if env := os.Getenv("APP_ENV"); env != "" {
		v.Set("app.env", env)
	}
	if logLevel := os.Getenv("LOG_LEVEL"); logLevel != "" {
		v.Set("app.log_level", logLevel)
	}

	if host := os.Getenv("REDIS_HOST"); host != "" {
		v.Set("redis.enabled", true)
		v.Set("redis.host", host)
	}
	if password := os.Getenv("REDIS_PASSWORD"); password != "" {
		v.Set("redis.password", password)
	}
}

func validateConfig(cfg *Config) error {
	if cfg.App.Port <= 0 || cfg.App.Port > 65535 {
		return fmt.Errorf("app port must be between 1 and 65535")
	}
	if cfg.OpenWeather.BaseURL == "" {
		return fmt.Errorf("OpenWeather base URL must not be empty")
	}
	if cfg.OpenWeather.GeoBaseURL == "" {
		return fmt.Errorf("OpenWeather geocoding base URL must not be empty")
	}
	if cfg.OpenWeather.Timeout <= 0 {
		return fmt.Errorf("OpenWeather timeout must be positive")
	}
	if len(cfg.AirQuality.Labels) != 5 {
		return fmt.Errorf("air quality label table must have exactly 5 entries")
	}
	if cfg.HealthCheck.Interval <= 0 {
		return fmt.Errorf("health check interval must be positive")
	}
	return nil
}
