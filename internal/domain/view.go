package domain

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/paulmach/orb"
	orbgeo "github.com/paulmach/orb/geo"

	"github.com/christofschnelle/leaflet-demo/pkg/geo"
)

// OpenStreetMap tile source used for every rendered map.
const (
	TileURL         = "https://{s}.tile.openstreetmap.org/{z}/{x}/{y}.png"
	TileAttribution = "© OpenStreetMap contributors"
)

// SessionState is an immutable copy of a map session, taken under the session
// lock and handed to the renderer.
type SessionState struct {
	UserPosition  *Coordinate
	ClickedPoints []Coordinate
	Weather       *WeatherSnapshot
	TrafficPoints []TrafficPoint
	ShowWeather   bool
	ShowTraffic   bool
}

// MapConfig tells the map host which tiles to render and where to look.
type MapConfig struct {
	TileURL     string     `json:"tile_url"`
	Attribution string     `json:"attribution"`
	Center      Coordinate `json:"center"`
	Zoom        int        `json:"zoom"`
}

// FlyTo is the animate-to command returned after a geolocation fix.
type FlyTo struct {
	Center Coordinate `json:"center"`
	Zoom   int        `json:"zoom"`
}

// Marker is a plain labeled point on the map.
type Marker struct {
	Position Coordinate `json:"position"`
	Label    string     `json:"label"`
	Popup    string     `json:"popup"`
}

// TrafficMarker carries the category styling for a traffic point.
type TrafficMarker struct {
	ID       int64      `json:"id"`
	Position Coordinate `json:"position"`
	Color    string     `json:"color"`
	Popup    string     `json:"popup"`
}

// Polyline connects the clicked points in insertion order.
type Polyline struct {
	Points       []Coordinate `json:"points"`
	LengthMeters float64      `json:"length_meters"`
}

// ControlPanel mirrors the fixed-position panel of the map view.
type ControlPanel struct {
	ShowWeather   bool             `json:"show_weather"`
	ShowTraffic   bool             `json:"show_traffic"`
	Weather       *WeatherSnapshot `json:"weather,omitempty"`
	TrafficCount  *int             `json:"traffic_count,omitempty"`
	ClearDisabled bool             `json:"clear_disabled"`
	ClearLabel    string           `json:"clear_label"`
}

// ViewModel is everything the map host needs to render one frame.
type ViewModel struct {
	Map            MapConfig       `json:"map"`
	UserMarker     *Marker         `json:"user_marker,omitempty"`
	ClickMarkers   []Marker        `json:"click_markers"`
	Route          *Polyline       `json:"route,omitempty"`
	TrafficMarkers []TrafficMarker `json:"traffic_markers"`
	Panel          ControlPanel    `json:"panel"`
}

// NewViewModel renders the session state. It is a pure function: no side
// effects, no mutation of the input.
func NewViewModel(st SessionState) ViewModel {
	vm := ViewModel{
		Map: MapConfig{
			TileURL:     TileURL,
			Attribution: TileAttribution,
			Center:      DefaultCenter(),
			Zoom:        DefaultZoom,
		},
		ClickMarkers:   make([]Marker, 0, len(st.ClickedPoints)),
		TrafficMarkers: []TrafficMarker{},
	}

	if st.UserPosition != nil {
		vm.Map.Center = *st.UserPosition
		vm.Map.Zoom = FlyToZoom
		vm.UserMarker = &Marker{
			Position: *st.UserPosition,
			Label:    "Mein Standort",
			Popup:    st.UserPosition.Format(),
		}
	}

	for i, pt := range st.ClickedPoints {
		vm.ClickMarkers = append(vm.ClickMarkers, Marker{
			Position: pt,
			Label:    strconv.Itoa(i + 1),
			Popup:    pt.Format(),
		})
	}

	// The connecting line is derived, never stored: it exists only while two
	// or more points are clicked.
	if len(st.ClickedPoints) >= 2 {
		line := make(orb.LineString, len(st.ClickedPoints))
		for i, pt := range st.ClickedPoints {
			line[i] = orb.Point{pt.Lng, pt.Lat}
		}
		vm.Route = &Polyline{
			Points:       append([]Coordinate(nil), st.ClickedPoints...),
			LengthMeters: geo.RoundTo(orbgeo.Length(line), 1),
		}
	}

	if st.ShowTraffic {
		vm.TrafficMarkers = make([]TrafficMarker, 0, len(st.TrafficPoints))
		for _, tp := range st.TrafficPoints {
			vm.TrafficMarkers = append(vm.TrafficMarkers, TrafficMarker{
				ID:       tp.ID,
				Position: tp.Position,
				Color:    tp.Category.Style().Color,
				Popup:    trafficPopup(tp),
			})
		}
	}

	vm.Panel = ControlPanel{
		ShowWeather:   st.ShowWeather,
		ShowTraffic:   st.ShowTraffic,
		ClearDisabled: len(st.ClickedPoints) == 0,
		ClearLabel:    fmt.Sprintf("Punkte löschen (%d)", len(st.ClickedPoints)),
	}
	if st.ShowWeather && st.Weather != nil {
		w := *st.Weather
		vm.Panel.Weather = &w
	}
	if st.ShowTraffic {
		n := len(st.TrafficPoints)
		vm.Panel.TrafficCount = &n
	}

	return vm
}

func trafficPopup(tp TrafficPoint) string {
	parts := []string{tp.Category.Style().Label}
	if tp.Name != "" {
		parts = append(parts, tp.Name)
	}
	parts = append(parts, tp.Position.Format())
	return strings.Join(parts, " | ")
}
