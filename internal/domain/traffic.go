package domain

// Category classifies a traffic point by its OpenStreetMap tagging.
type Category string

const (
	CategoryTrafficSignals Category = "traffic_signals"
	CategoryStop           Category = "stop"
	CategoryCrossing       Category = "crossing"
	CategoryParking        Category = "parking"
	CategoryUnknown        Category = "unknown"
)

// TrafficPoint is a single POI near the user position. The whole set is
// replaced on every successful fetch; points are never updated in place.
type TrafficPoint struct {
	ID       int64      `json:"id"`
	Position Coordinate `json:"position"`
	Category Category   `json:"category"`
	Name     string     `json:"name,omitempty"`
}

// CategoryStyle pairs the marker color with the popup label for a category.
type CategoryStyle struct {
	Color string `json:"color"`
	Label string `json:"label"`
}

// categoryStyles is the fixed lookup table for the four known categories plus
// the fallback. Labels keep the original UI's German wording.
var categoryStyles = map[Category]CategoryStyle{
	CategoryTrafficSignals: {Color: "#f39c12", Label: "AMPEL"},
	CategoryStop:           {Color: "#e74c3c", Label: "STOPPSCHILD"},
	CategoryCrossing:       {Color: "#3498db", Label: "FUSSGÄNGERÜBERWEG"},
	CategoryParking:        {Color: "#27ae60", Label: "PARKPLATZ"},
	CategoryUnknown:        {Color: "#7f8c8d", Label: "UNBEKANNT"},
}

// Style returns the marker style for the category, falling back to the
// unknown style for anything outside the table.
func (c Category) Style() CategoryStyle {
	if s, ok := categoryStyles[c]; ok {
		return s
	}
	return categoryStyles[CategoryUnknown]
}

// CategoryFromTags maps OSM node tags to a Category. Nodes tagged with an
// unexpected highway value, or with neither a highway nor an amenity=parking
// tag, fall back to CategoryUnknown.
func CategoryFromTags(tags map[string]string) Category {
	switch tags["highway"] {
	case "traffic_signals":
		return CategoryTrafficSignals
	case "stop":
		return CategoryStop
	case "crossing":
		return CategoryCrossing
	}
	if tags["amenity"] == "parking" {
		return CategoryParking
	}
	return CategoryUnknown
}
