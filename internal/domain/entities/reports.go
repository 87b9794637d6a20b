package entities

// Client-facing response schemas. Field sets are fixed per endpoint;
// numeric values here are already rounded by the service layer.

type CurrentWeatherReport struct {
	City        string  `json:"city"`
	Country     string  `json:"country"`
	Temperature float64 `json:"temperature"`
	FeelsLike   float64 `json:"feels_like"`
	Humidity    int     `json:"humidity"`
	Pressure    int     `json:"pressure"`
	WindSpeed   float64 `json:"wind_speed"`
	Description string  `json:"description"`
	Icon        string  `json:"icon"`
	Lat         float64 `json:"lat"`
	Lon         float64 `json:"lon"`
	Timestamp   string  `json:"timestamp"`
}

type ForecastSlot struct {
	Time        string  `json:"time"`
	Temperature float64 `json:"temperature"`
	Description string  `json:"description"`
	Icon        string  `json:"icon"`
	Humidity    int     `json:"humidity"`
	WindSpeed   float64 `json:"wind_speed"`
}

type ForecastReport struct {
	City     string         `json:"city"`
	Country  string         `json:"country"`
	Forecast []ForecastSlot `json:"forecast"`
}

type HourlySlot struct {
	Time        string  `json:"time"`
	Temperature float64 `json:"temperature"`
	FeelsLike   float64 `json:"feels_like"`
	Description string  `json:"description"`
	Icon        string  `json:"icon"`
	Humidity    int     `json:"humidity"`
	Pressure    int     `json:"pressure"`
	WindSpeed   float64 `json:"wind_speed"`
	WindDeg     int     `json:"wind_deg"`
	Clouds      int     `json:"clouds"`
	Pop         int     `json:"pop"`
}

type HourlyForecastReport struct {
	City    string       `json:"city"`
	Country string       `json:"country"`
	Hourly  []HourlySlot `json:"hourly"`
}

type DailySlot struct {
	Date        string  `json:"date"`
	TempMax     float64 `json:"temp_max"`
	TempMin     float64 `json:"temp_min"`
	Description string  `json:"description"`
	Icon        string  `json:"icon"`
	Humidity    int     `json:"humidity"`
	WindSpeed   float64 `json:"wind_speed"`
	Pop         int     `json:"pop"`
}

type DailyForecastReport struct {
	City    string      `json:"city"`
	Country string      `json:"country"`
	Daily   []DailySlot `json:"daily"`
}

type WeeklySlot struct {
	Date        string       `json:"date"`
	Time        string       `json:"time"`
	TempMax     float64      `json:"temp_max"`
	TempMin     float64      `json:"temp_min"`
	TempAvg     float64      `json:"temp_avg"`
	FeelsLike   float64      `json:"feels_like"`
	Description string       `json:"description"`
	Icon        string       `json:"icon"`
	Humidity    int          `json:"humidity"`
	Pressure    int          `json:"pressure"`
	Visibility  int          `json:"visibility"`
	Clouds      int          `json:"clouds"`
	WindSpeed   float64      `json:"wind_speed"`
	WindDeg     int          `json:"wind_deg"`
	WindGust    float64      `json:"wind_gust"`
	Pop         int          `json:"pop"`
	Hourly      []HourlySlot `json:"hourly"`
}

type WeeklyForecastReport struct {
	City    string       `json:"city"`
	Country string       `json:"country"`
	Weekly  []WeeklySlot `json:"weekly"`
}

type PollutantReport struct {
	CO   float64 `json:"co"`
	NO2  float64 `json:"no2"`
	O3   float64 `json:"o3"`
	PM25 float64 `json:"pm2_5"`
	PM10 float64 `json:"pm10"`
}

type AirQualityReport struct {
	AQI        int             `json:"aqi"`
	AQILabel   string          `json:"aqi_label"`
	Components PollutantReport `json:"components"`
}

type GeocodeReport struct {
	Results []GeoLocation `json:"results"`
}

type ActivitySet struct {
	Running     ActivityScore `json:"running"`
	Cycling     ActivityScore `json:"cycling"`
	Fishing     ActivityScore `json:"fishing"`
	Agriculture ActivityScore `json:"agriculture"`
}

type ActivityReport struct {
	City       string             `json:"city"`
	Country    string             `json:"country"`
	Activities ActivitySet        `json:"activities"`
	Clothing   ClothingAdvice     `json:"clothing"`
	Conditions ConditionsEstimate `json:"conditions"`
}
