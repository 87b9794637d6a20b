package entities

import "time"

// Observation is the provider-neutral current-weather snapshot. It
// lives only for the duration of a single request.
type Observation struct {
	City        string
	Country     string
	Lat         float64
	Lon         float64
	Temperature float64
	FeelsLike   float64
	Humidity    int
	Pressure    int
	WindSpeed   float64
	WindDeg     int
	WindGust    float64
	Clouds      int
	Visibility  int
	Condition   string
	Description string
	Icon        string
	Sunrise     time.Time
	Sunset      time.Time
	Timezone    int
}

func (o *Observation) Validate() error {
	if o.City == "" {
		return ValidationError{Field: "city", Reason: "must not be empty"}
	}
	if o.Temperature < -100 || o.Temperature > 100 {
		return ValidationError{Field: "temperature", Reason: "must be between -100 and 100"}
	}
	if o.Humidity < 0 || o.Humidity > 100 {
		return ValidationError{Field: "humidity", Reason: "must be between 0 and 100"}
	}
	if o.WindSpeed < 0 {
		return ValidationError{Field: "wind_speed", Reason: "must not be negative"}
	}
	return nil
}
