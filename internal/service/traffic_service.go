package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/christofschnelle/leaflet-demo/internal/domain"
	"github.com/christofschnelle/leaflet-demo/pkg/geo"
)

// TrafficRadiusMeters is the fixed search radius around the user position.
const TrafficRadiusMeters = 1000

// TrafficService queries the Overpass API for traffic-related POI nodes.
type TrafficService struct {
	endpoint   string
	httpClient *http.Client
}

// NewTrafficService creates a new traffic service. endpoint is the Overpass
// interpreter URL, e.g. https://overpass-api.de/api/interpreter.
func NewTrafficService(endpoint string) *TrafficService {
	return &TrafficService{
		endpoint: endpoint,
		// Sized above the [timeout:25] in the query so the server can answer
		// before the client gives up.
		httpClient: &http.Client{
			Timeout: 35 * time.Second,
		},
	}
}

// overpassElement represents a POI node from the Overpass API.
type overpassElement struct {
	ID   int64             `json:"id"`
	Lat  float64           `json:"lat"`
	Lon  float64           `json:"lon"`
	Tags map[string]string `json:"tags"`
}

type overpassResponse struct {
	Elements []overpassElement `json:"elements"`
}

// overpassQuery returns the Overpass QL body selecting all supported node
// types within the fixed radius of pos.
func overpassQuery(pos domain.Coordinate) string {
	var b strings.Builder
	fmt.Fprintf(&b, "[out:json][timeout:25];\n(\n")
	fmt.Fprintf(&b, "  node(around:%d,%f,%f)[\"highway\"~\"^(traffic_signals|stop|crossing)$\"];\n",
		TrafficRadiusMeters, pos.Lat, pos.Lng)
	fmt.Fprintf(&b, "  node(around:%d,%f,%f)[\"amenity\"=\"parking\"];\n",
		TrafficRadiusMeters, pos.Lat, pos.Lng)
	fmt.Fprintf(&b, ");\nout body;")
	return b.String()
}

// NearbyPoints fetches all traffic signals, stop signs, pedestrian crossings
// and parking nodes within TrafficRadiusMeters of pos, nearest first.
func (s *TrafficService) NearbyPoints(ctx context.Context, pos domain.Coordinate) ([]domain.TrafficPoint, error) {
	form := url.Values{"data": {overpassQuery(pos)}}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("traffic: failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("traffic: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("traffic: unexpected status %d", resp.StatusCode)
	}

	var ovResp overpassResponse
	if err := json.NewDecoder(resp.Body).Decode(&ovResp); err != nil {
		return nil, fmt.Errorf("traffic: failed to decode response: %w", err)
	}

	points := make([]domain.TrafficPoint, 0, len(ovResp.Elements))
	for _, el := range ovResp.Elements {
		points = append(points, domain.TrafficPoint{
			ID:       el.ID,
			Position: domain.Coordinate{Lat: el.Lat, Lng: el.Lon},
			Category: domain.CategoryFromTags(el.Tags),
			Name:     el.Tags["name"],
		})
	}

	sort.SliceStable(points, func(i, j int) bool {
		di := geo.Haversine(pos.Lat, pos.Lng, points[i].Position.Lat, points[i].Position.Lng)
		dj := geo.Haversine(pos.Lat, pos.Lng, points[j].Position.Lat, points[j].Position.Lng)
		return di < dj
	})

	return points, nil
}
