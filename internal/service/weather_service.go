package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/christofschnelle/leaflet-demo/internal/domain"
)

// WeatherService fetches current conditions from the Open-Meteo forecast API.
type WeatherService struct {
	baseURL    string
	httpClient *http.Client
}

// NewWeatherService creates a new weather service. baseURL is the API root,
// e.g. https://api.open-meteo.com.
func NewWeatherService(baseURL string) *WeatherService {
	return &WeatherService{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// openMeteoResponse mirrors the current block requested from the forecast
// endpoint.
type openMeteoResponse struct {
	Current struct {
		Temperature2m float64 `json:"temperature_2m"`
		WindSpeed10m  float64 `json:"wind_speed_10m"`
		WeatherCode   int     `json:"weather_code"`
	} `json:"current"`
}

// CurrentWeather fetches temperature, wind speed and weather code for the
// given position. Any failure (network, non-2xx status, malformed payload) is
// returned as an error; the caller decides what to keep.
func (s *WeatherService) CurrentWeather(ctx context.Context, pos domain.Coordinate) (domain.WeatherSnapshot, error) {
	url := fmt.Sprintf(
		"%s/v1/forecast?latitude=%f&longitude=%f&current=temperature_2m,wind_speed_10m,weather_code",
		s.baseURL, pos.Lat, pos.Lng,
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return domain.WeatherSnapshot{}, fmt.Errorf("weather: failed to create request: %w", err)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return domain.WeatherSnapshot{}, fmt.Errorf("weather: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return domain.WeatherSnapshot{}, fmt.Errorf("weather: unexpected status %d", resp.StatusCode)
	}

	var omResp openMeteoResponse
	if err := json.NewDecoder(resp.Body).Decode(&omResp); err != nil {
		return domain.WeatherSnapshot{}, fmt.Errorf("weather: failed to decode response: %w", err)
	}

	return domain.WeatherSnapshot{
		Temperature: omResp.Current.Temperature2m,
		WindSpeed:   omResp.Current.WindSpeed10m,
		WeatherCode: omResp.Current.WeatherCode,
		FetchedAt:   time.Now(),
	}, nil
}
