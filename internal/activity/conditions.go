package activity

import (
	"math"
	"time"

	"github.com/poop4ik/weather-service/internal/domain/entities"
)

// Estimate derives a synthetic UV index and rain probability when the
// provider does not supply them. The clock is injected so the result
// is deterministic for a given input.
//
// UV: a clear-sky base by hour of day (peak 8 around solar noon),
// attenuated by up to 75% under full cloud cover. Rain probability:
// weighted cloud cover plus excess humidity above 40%, floored at 90
// when it is already raining or storming, clamped to [0, 100].
func Estimate(c Conditions, now time.Time) entities.ConditionsEstimate {
	base := 0.0
	switch hour := now.Hour(); {
	case hour >= 10 && hour < 14:
		base = 8
	case hour >= 8 && hour < 16:
		base = 5
	case hour >= 6 && hour < 18:
		base = 2
	}

	uv := base * (1 - 0.75*float64(c.Clouds)/100)

	rain := 0.6*float64(c.Clouds) + 0.8*math.Max(0, float64(c.Humidity)-40)
	if c.Condition == CategoryRain || c.Condition == CategoryStorm {
		rain = math.Max(rain, 90)
	}

	return entities.ConditionsEstimate{
		UVIndex:         clampScore(int(math.Round(uv))),
		RainProbability: clampScore(int(math.Round(rain))),
	}
}
