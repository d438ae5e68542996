package domain

import "time"

// WeatherSnapshot holds the current conditions at the user position. Each
// successful fetch replaces the previous snapshot wholesale; snapshots are
// never merged.
type WeatherSnapshot struct {
	Temperature float64   `json:"temperature"`  // °C
	WindSpeed   float64   `json:"wind_speed"`   // km/h
	WeatherCode int       `json:"weather_code"` // WMO code
	FetchedAt   time.Time `json:"fetched_at"`
}
