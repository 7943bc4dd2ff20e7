package sphere

import (
	"math"
	"testing"

	"github.com/soniakeys/unit"
)

func TestFromSpherical(t *testing.T) {
	tests := []struct {
		name     string
		lon, lat float64 // degrees
		want     Vec3
	}{
		{"origin", 0, 0, Vec3{1, 0, 0}},
		{"lon 90", 90, 0, Vec3{0, 1, 0}},
		{"lon 180", 180, 0, Vec3{-1, 0, 0}},
		{"north pole", 0, 90, Vec3{0, 0, 1}},
		{"south pole", 0, -90, Vec3{0, 0, -1}},
		{"lon 45 lat 45", 45, 45, Vec3{0.5, 0.5, 1 / math.Sqrt(2)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FromSpherical(unit.AngleFromDeg(tt.lon), unit.AngleFromDeg(tt.lat))
			if !vecClose(got, tt.want, 1e-12) {
				t.Errorf("FromSpherical(%v, %v) = %v, want %v", tt.lon, tt.lat, got, tt.want)
			}
		})
	}
}

func TestFromSphericalUnitNorm(t *testing.T) {
	// The output must be a unit vector over the whole sphere.
	for lonDeg := -360.0; lonDeg <= 360; lonDeg += 30 {
		for latDeg := -90.0; latDeg <= 90; latDeg += 15 {
			v := FromSpherical(unit.AngleFromDeg(lonDeg), unit.AngleFromDeg(latDeg))
			if math.Abs(v.Norm()-1) > 1e-12 {
				t.Fatalf("norm at lon=%v lat=%v is %v", lonDeg, latDeg, v.Norm())
			}
		}
	}
}

func TestSphericalRoundTrip(t *testing.T) {
	tests := []struct {
		name     string
		lon, lat float64 // degrees, lon already in [0, 360)
	}{
		{"first quadrant", 30, 20},
		{"second quadrant", 150, -45},
		{"wrapped lon", 310, 60},
		{"equator", 200, 0},
		{"near pole", 120, 89.9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := FromSpherical(unit.AngleFromDeg(tt.lon), unit.AngleFromDeg(tt.lat))
			lon, lat := ToSpherical(v)
			if math.Abs(lon.Deg()-tt.lon) > 1e-9 {
				t.Errorf("lon = %v, want %v", lon.Deg(), tt.lon)
			}
			if math.Abs(lat.Deg()-tt.lat) > 1e-9 {
				t.Errorf("lat = %v, want %v", lat.Deg(), tt.lat)
			}
		})
	}
}

func TestToSphericalDegenerate(t *testing.T) {
	// Poles and the zero vector have indeterminate longitude; both
	// components default to zero rather than NaN.
	lon, lat := ToSpherical(Vec3{})
	if lon != 0 || lat != 0 {
		t.Errorf("zero vector: got (%v, %v), want (0, 0)", lon, lat)
	}

	lon, lat = ToSpherical(Vec3{0, 0, 2.5})
	if lon != 0 {
		t.Errorf("pole longitude = %v, want 0", lon)
	}
	if math.Abs(lat.Deg()-90) > 1e-12 {
		t.Errorf("pole latitude = %v, want 90", lat.Deg())
	}
}
