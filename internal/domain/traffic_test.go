package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategoryFromTags(t *testing.T) {
	tests := []struct {
		name string
		tags map[string]string
		want Category
	}{
		{"traffic signals", map[string]string{"highway": "traffic_signals"}, CategoryTrafficSignals},
		{"stop sign", map[string]string{"highway": "stop"}, CategoryStop},
		{"crossing", map[string]string{"highway": "crossing"}, CategoryCrossing},
		{"parking", map[string]string{"amenity": "parking"}, CategoryParking},
		{"highway wins over amenity", map[string]string{"highway": "stop", "amenity": "parking"}, CategoryStop},
		{"unexpected highway value", map[string]string{"highway": "bus_stop"}, CategoryUnknown},
		{"unexpected amenity value", map[string]string{"amenity": "fuel"}, CategoryUnknown},
		{"no tags", map[string]string{}, CategoryUnknown},
		{"nil tags", nil, CategoryUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CategoryFromTags(tt.tags))
		})
	}
}

func TestCategoryStyle(t *testing.T) {
	assert.Equal(t, "STOPPSCHILD", CategoryStop.Style().Label)
	assert.Equal(t, "AMPEL", CategoryTrafficSignals.Style().Label)
	assert.Equal(t, "FUSSGÄNGERÜBERWEG", CategoryCrossing.Style().Label)
	assert.Equal(t, "PARKPLATZ", CategoryParking.Style().Label)
	assert.Equal(t, "UNBEKANNT", CategoryUnknown.Style().Label)

	// Each known category has its own color; unknown is the fallback.
	colors := map[string]bool{}
	for _, c := range []Category{CategoryTrafficSignals, CategoryStop, CategoryCrossing, CategoryParking, CategoryUnknown} {
		colors[c.Style().Color] = true
	}
	assert.Len(t, colors, 5)

	// Anything outside the table falls back to the unknown style.
	assert.Equal(t, CategoryUnknown.Style(), Category("charging_station").Style())
}
