package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validObservation() *Observation {
	return &Observation{
		City:        "Kyiv",
		Country:     "UA",
		Temperature: 21.4,
		Humidity:    56,
		WindSpeed:   4.1,
	}
}

func TestObservation_Validate(t *testing.T) {
	t.Run("valid observation", func(t *testing.T) {
		assert.NoError(t, validObservation().Validate())
	})

	t.Run("empty city", func(t *testing.T) {
		o := validObservation()
		o.City = ""
		assert.Error(t, o.Validate())
	})

	t.Run("temperature out of range", func(t *testing.T) {
		o := validObservation()
		o.Temperature = -150
		assert.Error(t, o.Validate())

		o.Temperature = 150
		assert.Error(t, o.Validate())
	})

	t.Run("humidity out of range", func(t *testing.T) {
		o := validObservation()
		o.Humidity = 101
		assert.Error(t, o.Validate())

		o.Humidity = -1
		assert.Error(t, o.Validate())
	})

	t.Run("negative wind speed", func(t *testing.T) {
		o := validObservation()
		o.WindSpeed = -1
		assert.Error(t, o.Validate())
	})
}

func TestForecastEntry_Date(t *testing.T) {
	entry := ForecastEntry{TimeText: "2024-06-15 12:00:00"}
	assert.Equal(t, "2024-06-15", entry.Date())

	short := ForecastEntry{TimeText: "short"}
	assert.Equal(t, "short", short.Date())
}
