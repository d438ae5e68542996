package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCoordinateValidate(t *testing.T) {
	tests := []struct {
		name    string
		coord   Coordinate
		wantErr bool
	}{
		{"valid", Coordinate{Lat: 51.505, Lng: -0.09}, false},
		{"lat upper bound", Coordinate{Lat: 90, Lng: 0}, false},
		{"lat lower bound", Coordinate{Lat: -90, Lng: 0}, false},
		{"lng bounds", Coordinate{Lat: 0, Lng: -180}, false},
		{"lat too high", Coordinate{Lat: 90.1, Lng: 0}, true},
		{"lat too low", Coordinate{Lat: -91, Lng: 0}, true},
		{"lng too high", Coordinate{Lat: 0, Lng: 180.5}, true},
		{"lng too low", Coordinate{Lat: 0, Lng: -181}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.coord.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCoordinateFormat(t *testing.T) {
	tests := []struct {
		name  string
		coord Coordinate
		want  string
	}{
		{"five decimal places", Coordinate{Lat: 51.505, Lng: -0.09}, "51.50500, -0.09000"},
		{"rounding", Coordinate{Lat: 1.234567, Lng: 2.345678}, "1.23457, 2.34568"},
		{"zero", Coordinate{}, "0.00000, 0.00000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.coord.Format())
		})
	}
}

func TestDefaultCenter(t *testing.T) {
	c := DefaultCenter()
	assert.Equal(t, 51.505, c.Lat)
	assert.Equal(t, -0.09, c.Lng)
}
