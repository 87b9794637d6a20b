// Package activity computes heuristic suitability scores for outdoor
// activities from current conditions. Every function here is pure: no
// I/O, no shared state, identical inputs always produce identical
// output.
package activity

import (
	"strings"

	"github.com/poop4ik/weather-service/internal/domain/entities"
)

// Category is the coarse weather classification used to branch the
// scoring rules.
type Category string

const (
	CategoryClear Category = "clear"
	CategoryRain  Category = "rain"
	CategorySnow  Category = "snow"
	CategoryStorm Category = "storm"
	CategoryOther Category = "other"
)

// CategoryFromCondition normalizes the provider's condition group
// (weather[0].main) into a Category.
func CategoryFromCondition(condition string) Category {
	switch strings.ToLower(condition) {
	case "clear":
		return CategoryClear
	case "rain", "drizzle":
		return CategoryRain
	case "snow":
		return CategorySnow
	case "thunderstorm":
		return CategoryStorm
	default:
		return CategoryOther
	}
}

// Conditions is the input tuple shared by all scorers.
type Conditions struct {
	Temperature float64
	Humidity    int
	WindSpeed   float64
	Clouds      int
	Condition   Category
}

func (c Conditions) badWeather() bool {
	return c.Condition == CategoryRain || c.Condition == CategorySnow || c.Condition == CategoryStorm
}

func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

// classify maps a clamped score into one of four ordered status bands.
// The lowest-band wording varies per activity.
func classify(score int, lowest string) string {
	switch {
	case score >= 70:
		return "Excellent"
	case score >= 50:
		return "Good"
	case score >= 30:
		return "Fair"
	default:
		return lowest
	}
}

func describe(status string, byStatus map[string]string) string {
	return byStatus[status]
}

// ScoreRunning rates running conditions. Sweet spot 10-20°C, light
// wind and moderate humidity.
func ScoreRunning(c Conditions) entities.ActivityScore {
	score := 50

	switch {
	case c.Temperature >= 10 && c.Temperature <= 20:
		score += 30
	case (c.Temperature >= 5 && c.Temperature < 10) || (c.Temperature > 20 && c.Temperature <= 25):
		score += 15
	default:
		score -= 20
	}

	switch {
	case c.WindSpeed < 3:
		score += 10
	case c.WindSpeed > 7:
		score -= 15
	}

	switch {
	case c.Humidity >= 40 && c.Humidity <= 60:
		score += 10
	case c.Humidity > 80:
		score -= 15
	}

	if c.badWeather() {
		score -= 30
	} else if c.Condition == CategoryClear {
		score += 10
	}

	score = clampScore(score)
	status := classify(score, "Not recommended")

	return entities.ActivityScore{
		Score:  score,
		Status: status,
		Description: describe(status, map[string]string{
			"Excellent":       "Perfect weather for a run",
			"Good":            "Good conditions for running",
			"Fair":            "Running is possible, but conditions are mediocre",
			"Not recommended": "Better to train indoors today",
		}),
	}
}

// ScoreCycling rates cycling conditions. Wind matters more than for
// running, precipitation is heavily penalized.
func ScoreCycling(c Conditions) entities.ActivityScore {
	score := 50

	switch {
	case c.Temperature >= 15 && c.Temperature <= 25:
		score += 30
	case (c.Temperature >= 10 && c.Temperature < 15) || (c.Temperature > 25 && c.Temperature <= 30):
		score += 15
	case c.Temperature < 5 || c.Temperature > 30:
		score -= 25
	}

	switch {
	case c.WindSpeed < 5:
		score += 15
	case c.WindSpeed <= 10:
		score += 5
	default:
		score -= 25
	}

	switch {
	case c.Humidity < 70:
		score += 5
	case c.Humidity > 85:
		score -= 10
	}

	if c.badWeather() {
		score -= 40
	} else if c.Condition == CategoryClear {
		score += 10
	}

	score = clampScore(score)
	status := classify(score, "Not recommended")

	return entities.ActivityScore{
		Score:  score,
		Status: status,
		Description: describe(status, map[string]string{
			"Excellent":       "Great day for a bike ride",
			"Good":            "Good conditions for cycling",
			"Fair":            "Ride with caution, conditions are mixed",
			"Not recommended": "Leave the bike at home today",
		}),
	}
}

// ScoreFishing rates fishing conditions. Fish bite better with a light
// breeze and an overcast sky.
func ScoreFishing(c Conditions) entities.ActivityScore {
	score := 50

	switch {
	case c.Temperature >= 15 && c.Temperature <= 25:
		score += 20
	case (c.Temperature >= 10 && c.Temperature < 15) || (c.Temperature > 25 && c.Temperature <= 28):
		score += 10
	case c.Temperature < 5 || c.Temperature > 30:
		score -= 15
	}

	switch {
	case c.WindSpeed >= 2 && c.WindSpeed <= 5:
		score += 20
	case c.WindSpeed < 2:
		score += 10
	case c.WindSpeed > 8:
		score -= 20
	}

	if c.Humidity > 70 {
		score += 10
	}

	switch {
	case c.Clouds >= 40 && c.Clouds <= 80:
		score += 25
	case c.Clouds > 80:
		score += 15
	case c.Clouds < 20:
		score += 5
	}

	score = clampScore(score)
	status := classify(score, "Poor")

	return entities.ActivityScore{
		Score:  score,
		Status: status,
		Description: describe(status, map[string]string{
			"Excellent": "The fish should be biting today",
			"Good":      "Decent conditions for fishing",
			"Fair":      "Average bite expected",
			"Poor":      "Not a good day for fishing",
		}),
	}
}

// ScoreAgriculture rates field-work suitability. Rain helps here, in
// contrast to the other activities.
func ScoreAgriculture(c Conditions) entities.ActivityScore {
	score := 50

	switch {
	case c.Temperature >= 18 && c.Temperature <= 28:
		score += 30
	case (c.Temperature >= 15 && c.Temperature < 18) || (c.Temperature > 28 && c.Temperature <= 32):
		score += 15
	case c.Temperature < 10 || c.Temperature > 35:
		score -= 25
	}

	switch {
	case c.Humidity >= 50 && c.Humidity <= 75:
		score += 25
	case (c.Humidity >= 40 && c.Humidity < 50) || (c.Humidity > 75 && c.Humidity <= 85):
		score += 10
	case c.Humidity < 30:
		score -= 20
	case c.Humidity > 90:
		score -= 10
	}

	switch c.Condition {
	case CategoryRain:
		score += 15
	case CategoryStorm, CategorySnow:
		score -= 30
	case CategoryClear:
		score += 10
	}

	score = clampScore(score)
	status := classify(score, "Poor")

	return entities.ActivityScore{
		Score:  score,
		Status: status,
		Description: describe(status, map[string]string{
			"Excellent": "Excellent conditions for field work",
			"Good":      "Good conditions for agricultural work",
			"Fair":      "Workable, but keep an eye on the weather",
			"Poor":      "Unfavorable conditions for field work",
		}),
	}
}
