package entities

// ActivityScore is the output of one activity scorer: a clamped 0-100
// score, its status band label and a short human description.
type ActivityScore struct {
	Score       int    `json:"score"`
	Status      string `json:"status"`
	Description string `json:"description"`
}

// ClothingAdvice is a wardrobe recommendation, not a score.
type ClothingAdvice struct {
	Items       []string `json:"items"`
	Description string   `json:"description"`
}

// ConditionsEstimate carries the synthetic UV index and rain
// probability derived from cloud cover, humidity and time of day.
type ConditionsEstimate struct {
	UVIndex         int `json:"uv_index"`
	RainProbability int `json:"rain_probability"`
}
