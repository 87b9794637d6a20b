package settings

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/poop4ik/weather-service/internal/domain/entities"
	"github.com/poop4ik/weather-service/internal/pkg/logger"
)

const settingsKey = "weather:units_settings"

// RedisStore persists the units preference in Redis so it survives
// restarts and is shared across replicas.
type RedisStore struct {
	client *redis.Client
	logger logger.Logger
}

func NewRedisStore(host string, port int, password string, db int) (*RedisStore, error) {
	log := logger.New("info", "development").WithField("component", "redis_settings_store")

	client := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", host, port),
		Password:     password,
		DB:           db,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	log.Info("Redis settings store initialized")
	return &RedisStore{
		client: client,
		logger: log,
	}, nil
}

func (s *RedisStore) Get(ctx context.Context) (entities.UnitsSettings, error) {
	data, err := s.client.Get(ctx, settingsKey).Bytes()
	if err != nil {
		if err == redis.Nil {
			return entities.DefaultUnitsSettings(), nil
		}
		return entities.UnitsSettings{}, fmt.Errorf("failed to get settings from Redis: %w", err)
	}

	var settings entities.UnitsSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		return entities.UnitsSettings{}, fmt.Errorf("failed to decode stored settings: %w", err)
	}
	return settings, nil
}

func (s *RedisStore) Save(ctx context.Context, settings entities.UnitsSettings) error {
	data, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("failed to encode settings: %w", err)
	}

	if err := s.client.Set(ctx, settingsKey, data, 0).Err(); err != nil {
		return fmt.Errorf("failed to save settings in Redis: %w", err)
	}
	return nil
}

func (s *RedisStore) HealthCheck(ctx context.Context) error {
	if err := s.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("Redis ping failed: %w", err)
	}
	return nil
}

func (s *RedisStore) Close() error {
	s.logger.Info("Closing Redis settings store...")
	return s.client.Close()
}
