package domain

import "fmt"

// Default view shown before the first geolocation fix, and the zoom level the
// map flies to once a fix arrives.
const (
	DefaultCenterLat = 51.505
	DefaultCenterLng = -0.09
	DefaultZoom      = 13
	FlyToZoom        = 15
)

// Coordinate is an immutable WGS84 point.
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// DefaultCenter returns the fallback map center.
func DefaultCenter() Coordinate {
	return Coordinate{Lat: DefaultCenterLat, Lng: DefaultCenterLng}
}

// Validate checks the coordinate against the WGS84 value ranges.
func (c Coordinate) Validate() error {
	if c.Lat < -90 || c.Lat > 90 {
		return fmt.Errorf("latitude %f out of range [-90, 90]", c.Lat)
	}
	if c.Lng < -180 || c.Lng > 180 {
		return fmt.Errorf("longitude %f out of range [-180, 180]", c.Lng)
	}
	return nil
}

// Format renders the coordinate to five decimal places, the precision used in
// marker labels and popups.
func (c Coordinate) Format() string {
	return fmt.Sprintf("%.5f, %.5f", c.Lat, c.Lng)
}
