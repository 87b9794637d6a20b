package entities

// AirQualitySample holds one air-pollution reading: the provider AQI
// severity (1-5) plus pollutant concentrations in μg/m³.
type AirQualitySample struct {
	AQI        int
	Components PollutantConcentrations
}

type PollutantConcentrations struct {
	CO   float64
	NO2  float64
	O3   float64
	PM25 float64
	PM10 float64
}

// GeoLocation is one geocoding match.
type GeoLocation struct {
	Name    string  `json:"name"`
	Country string  `json:"country"`
	State   string  `json:"state"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
}
