package entities

// UnitsSettings is the client unit preference handled by the
// units-settings endpoint. There is no per-user identity, so a single
// preference object is kept in the settings store.
type UnitsSettings struct {
	Temperature string `json:"temperature"`
	WindSpeed   string `json:"wind_speed"`
	Pressure    string `json:"pressure"`
}

var (
	temperatureUnits = map[string]bool{"celsius": true, "fahrenheit": true}
	windSpeedUnits   = map[string]bool{"ms": true, "kmh": true, "mph": true}
	pressureUnits    = map[string]bool{"hpa": true, "mmhg": true}
)

func DefaultUnitsSettings() UnitsSettings {
	return UnitsSettings{
		Temperature: "celsius",
		WindSpeed:   "ms",
		Pressure:    "hpa",
	}
}

func (s UnitsSettings) Validate() error {
	if !temperatureUnits[s.Temperature] {
		return ValidationError{Field: "temperature", Reason: "must be celsius or fahrenheit"}
	}
	if !windSpeedUnits[s.WindSpeed] {
		return ValidationError{Field: "wind_speed", Reason: "must be ms, kmh or mph"}
	}
	if !pressureUnits[s.Pressure] {
		return ValidationError{Field: "pressure", Reason: "must be hpa or mmhg"}
	}
	return nil
}
