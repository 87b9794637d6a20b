package activity

import "github.com/poop4ik/weather-service/internal/domain/entities"

// Clothing maps temperature bands to a base wardrobe list and appends
// condition-dependent items. Deterministic, no score involved.
func Clothing(c Conditions) entities.ClothingAdvice {
	var (
		items       []string
		description string
	)

	switch {
	case c.Temperature < -10:
		items = []string{"thermal underwear", "down jacket", "warm hat", "insulated gloves", "scarf"}
		description = "Severe frost, dress as warmly as possible"
	case c.Temperature < 0:
		items = []string{"winter jacket", "sweater", "hat", "gloves"}
		description = "Freezing, full winter outfit"
	case c.Temperature < 10:
		items = []string{"warm coat", "long sleeves", "light hat"}
		description = "Cold, a warm layer is needed"
	case c.Temperature < 18:
		items = []string{"light jacket", "long sleeves"}
		description = "Cool, bring a jacket"
	case c.Temperature < 25:
		items = []string{"t-shirt", "light trousers"}
		description = "Comfortable, light clothing"
	default:
		items = []string{"t-shirt", "shorts", "sun hat"}
		description = "Hot, dress as light as possible"
	}

	if c.WindSpeed > 7 {
		items = append(items, "windproof layer")
	}

	switch c.Condition {
	case CategoryRain:
		items = append(items, "umbrella", "raincoat")
	case CategorySnow:
		items = append(items, "winter boots", "waterproof gloves")
	case CategoryClear:
		if c.Temperature > 20 {
			items = append(items, "sunscreen")
		}
	}

	return entities.ClothingAdvice{
		Items:       items,
		Description: description,
	}
}
