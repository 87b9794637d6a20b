package services

// AQIScale is the configurable mapping from provider AQI severities
// (1-5) to category labels. Out-of-range values map to Unknown.
type AQIScale struct {
	Labels  []string
	Unknown string
}

func DefaultAQIScale() AQIScale {
	return AQIScale{
		Labels:  []string{"Good", "Fair", "Moderate", "Poor", "Very Poor"},
		Unknown: "Unknown",
	}
}

func (s AQIScale) Label(aqi int) string {
	if aqi < 1 || aqi > len(s.Labels) {
		return s.Unknown
	}
	return s.Labels[aqi-1]
}
