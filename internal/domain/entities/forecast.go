package entities

// ForecastEntry is one 3-hour slot of the provider forecast. TimeText
// keeps the provider-supplied local timestamp string ("2006-01-02
// 15:04:05") because daily bucketing keys on its date portion.
type ForecastEntry struct {
	TimeText    string
	Timestamp   int64
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
	Pop         float64
}

// Date returns the calendar-date portion of the provider timestamp.
func (e ForecastEntry) Date() string {
	if len(e.TimeText) < 10 {
		return e.TimeText
	}
	return e.TimeText[:10]
}

// ForecastSeries is the ordered 5-day/3-hour forecast, oldest first.
type ForecastSeries struct {
	City    string
	Country string
	Entries []ForecastEntry
}
