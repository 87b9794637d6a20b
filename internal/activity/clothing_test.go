package activity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClothing(t *testing.T) {
	t.Run("temperature bands", func(t *testing.T) {
		cases := []struct {
			name string
			temp float64
			item string
		}{
			{"severe frost", -15, "down jacket"},
			{"freezing", -5, "winter jacket"},
			{"cold", 5, "warm coat"},
			{"cool", 14, "light jacket"},
			{"comfortable", 20, "t-shirt"},
			{"hot", 30, "shorts"},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				advice := Clothing(Conditions{Temperature: tc.temp, Condition: CategoryOther})
				assert.Contains(t, advice.Items, tc.item)
				assert.NotEmpty(t, advice.Description)
			})
		}
	})

	t.Run("band edges", func(t *testing.T) {
		assert.Contains(t, Clothing(Conditions{Temperature: -10, Condition: CategoryOther}).Items, "winter jacket")
		assert.Contains(t, Clothing(Conditions{Temperature: 0, Condition: CategoryOther}).Items, "warm coat")
		assert.Contains(t, Clothing(Conditions{Temperature: 10, Condition: CategoryOther}).Items, "light jacket")
		assert.Contains(t, Clothing(Conditions{Temperature: 18, Condition: CategoryOther}).Items, "t-shirt")
		assert.Contains(t, Clothing(Conditions{Temperature: 25, Condition: CategoryOther}).Items, "sun hat")
	})

	t.Run("strong wind adds a windproof layer", func(t *testing.T) {
		advice := Clothing(Conditions{Temperature: 15, WindSpeed: 8, Condition: CategoryOther})
		assert.Contains(t, advice.Items, "windproof layer")

		calm := Clothing(Conditions{Temperature: 15, WindSpeed: 7, Condition: CategoryOther})
		assert.NotContains(t, calm.Items, "windproof layer")
	})

	t.Run("rain adds umbrella and raincoat", func(t *testing.T) {
		advice := Clothing(Conditions{Temperature: 15, Condition: CategoryRain})
		assert.Contains(t, advice.Items, "umbrella")
		assert.Contains(t, advice.Items, "raincoat")
	})

	t.Run("snow adds winter footwear and gloves", func(t *testing.T) {
		advice := Clothing(Conditions{Temperature: -3, Condition: CategorySnow})
		assert.Contains(t, advice.Items, "winter boots")
		assert.Contains(t, advice.Items, "waterproof gloves")
	})

	t.Run("sunscreen only when clear and warm", func(t *testing.T) {
		warm := Clothing(Conditions{Temperature: 22, Condition: CategoryClear})
		assert.Contains(t, warm.Items, "sunscreen")

		mild := Clothing(Conditions{Temperature: 20, Condition: CategoryClear})
		assert.NotContains(t, mild.Items, "sunscreen")

		cloudy := Clothing(Conditions{Temperature: 22, Condition: CategoryOther})
		assert.NotContains(t, cloudy.Items, "sunscreen")
	})
}
