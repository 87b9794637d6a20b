// Package forecast groups the provider's flat 3-hour forecast entries
// into calendar-day buckets and computes per-day aggregates. All
// aggregates stay unrounded here; rounding happens only when the
// service layer formats a response.
package forecast

import (
	"github.com/poop4ik/weather-service/internal/domain/entities"
)

// DayBucket holds the ordered forecast entries of one calendar date.
// The bucket key is the date portion of the provider-supplied local
// timestamp string, exact string match.
type DayBucket struct {
	Date    string
	Entries []entities.ForecastEntry
}

// GroupByDay splits entries into per-date buckets in first-seen order.
// maxDays caps the number of buckets; 0 means no cap. An empty input
// yields an empty result.
func GroupByDay(entries []entities.ForecastEntry, maxDays int) []DayBucket {
	var buckets []DayBucket
	index := make(map[string]int)

	for _, entry := range entries {
		date := entry.Date()
		i, ok := index[date]
		if !ok {
			if maxDays > 0 && len(buckets) == maxDays {
				continue
			}
			buckets = append(buckets, DayBucket{Date: date})
			i = len(buckets) - 1
			index[date] = i
		}
		buckets[i].Entries = append(buckets[i].Entries, entry)
	}

	return buckets
}

// DailySummary carries the unrounded aggregates of one bucket.
type DailySummary struct {
	Date        string
	TempMax     float64
	TempMin     float64
	TempAvg     float64
	Description string
	Icon        string
	Humidity    float64
	WindSpeed   float64
	Pop         float64
}

// Summarize computes min/max/avg temperature, most frequent
// description and icon, mean humidity and wind speed, and the maximum
// precipitation probability across the bucket.
func Summarize(bucket DayBucket) DailySummary {
	summary := DailySummary{Date: bucket.Date}
	if len(bucket.Entries) == 0 {
		return summary
	}

	var (
		tempSum      float64
		humiditySum  float64
		windSum      float64
		descriptions []string
		icons        []string
	)

	summary.TempMax = bucket.Entries[0].Temperature
	summary.TempMin = bucket.Entries[0].Temperature

	for _, entry := range bucket.Entries {
		if entry.Temperature > summary.TempMax {
			summary.TempMax = entry.Temperature
		}
		if entry.Temperature < summary.TempMin {
			summary.TempMin = entry.Temperature
		}
		if entry.Pop > summary.Pop {
			summary.Pop = entry.Pop
		}
		tempSum += entry.Temperature
		humiditySum += float64(entry.Humidity)
		windSum += entry.WindSpeed
		descriptions = append(descriptions, entry.Description)
		icons = append(icons, entry.Icon)
	}

	count := float64(len(bucket.Entries))
	summary.TempAvg = tempSum / count
	summary.Humidity = humiditySum / count
	summary.WindSpeed = windSum / count
	summary.Description = mostFrequent(descriptions)
	summary.Icon = mostFrequent(icons)

	return summary
}

// MiddayEntry returns the representative mid-bucket entry (index
// ⌊count/2⌋) used by the weekly variant for single-point fields that
// are not meaningfully averaged.
func (b DayBucket) MiddayEntry() entities.ForecastEntry {
	if len(b.Entries) == 0 {
		return entities.ForecastEntry{}
	}
	return b.Entries[len(b.Entries)/2]
}

// MorningEntry returns the first entry of the bucket, which sources
// the bucket's reference timestamp in the weekly variant.
func (b DayBucket) MorningEntry() entities.ForecastEntry {
	if len(b.Entries) == 0 {
		return entities.ForecastEntry{}
	}
	return b.Entries[0]
}

// mostFrequent returns the most common value. On equal frequency the
// value whose first occurrence comes earliest wins, which keeps the
// selection deterministic.
func mostFrequent(values []string) string {
	counts := make(map[string]int, len(values))
	for _, v := range values {
		counts[v]++
	}

	best := ""
	bestCount := 0
	seen := make(map[string]bool, len(counts))

	for _, v := range values {
		if seen[v] {
			continue
		}
		seen[v] = true
		if counts[v] > bestCount {
			best = v
			bestCount = counts[v]
		}
	}

	return best
}
