package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHaversine(t *testing.T) {
	// London to Paris, roughly 344 km.
	d := Haversine(51.5074, -0.1278, 48.8566, 2.3522)
	assert.InDelta(t, 344, d, 5)

	assert.Zero(t, Haversine(1, 2, 1, 2))
}

func TestRoundTo(t *testing.T) {
	assert.Equal(t, 1.23, RoundTo(1.2345, 2))
	assert.Equal(t, 1.24, RoundTo(1.235, 2))
	assert.Equal(t, 1234.6, RoundTo(1234.567, 1))
	assert.Equal(t, 2.0, RoundTo(1.5, 0))
}
