package activity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func at(hour int) time.Time {
	return time.Date(2024, 6, 15, hour, 0, 0, 0, time.UTC)
}

func TestEstimate(t *testing.T) {
	t.Run("uv base by hour", func(t *testing.T) {
		clear := Conditions{Humidity: 40, Condition: CategoryClear}

		cases := []struct {
			hour int
			uv   int
		}{
			{10, 8}, {13, 8},
			{8, 5}, {14, 5}, {15, 5},
			{6, 2}, {16, 2}, {17, 2},
			{5, 0}, {18, 0}, {22, 0},
		}
		for _, tc := range cases {
			got := Estimate(clear, at(tc.hour))
			assert.Equal(t, tc.uv, got.UVIndex, "hour %d", tc.hour)
		}
	})

	t.Run("cloud cover attenuates uv", func(t *testing.T) {
		// 8 * (1 - 0.75*1.0) = 2
		overcast := Estimate(Conditions{Clouds: 100, Humidity: 40, Condition: CategoryOther}, at(12))
		assert.Equal(t, 2, overcast.UVIndex)

		// 8 * (1 - 0.75*0.5) = 5
		half := Estimate(Conditions{Clouds: 50, Humidity: 40, Condition: CategoryOther}, at(12))
		assert.Equal(t, 5, half.UVIndex)
	})

	t.Run("rain probability from clouds and humidity", func(t *testing.T) {
		dry := Estimate(Conditions{Clouds: 0, Humidity: 40, Condition: CategoryClear}, at(12))
		assert.Equal(t, 0, dry.RainProbability)

		// 0.6*50 + 0.8*(80-40) = 62
		humid := Estimate(Conditions{Clouds: 50, Humidity: 80, Condition: CategoryOther}, at(12))
		assert.Equal(t, 62, humid.RainProbability)
	})

	t.Run("humidity below threshold contributes nothing", func(t *testing.T) {
		got := Estimate(Conditions{Clouds: 20, Humidity: 10, Condition: CategoryOther}, at(12))
		assert.Equal(t, 12, got.RainProbability)
	})

	t.Run("active rain floors the probability", func(t *testing.T) {
		raining := Estimate(Conditions{Clouds: 10, Humidity: 30, Condition: CategoryRain}, at(12))
		assert.Equal(t, 90, raining.RainProbability)

		storm := Estimate(Conditions{Clouds: 10, Humidity: 30, Condition: CategoryStorm}, at(12))
		assert.Equal(t, 90, storm.RainProbability)
	})

	t.Run("probability clamps at 100", func(t *testing.T) {
		soaked := Estimate(Conditions{Clouds: 100, Humidity: 100, Condition: CategoryRain}, at(12))
		assert.Equal(t, 100, soaked.RainProbability)
	})
}
