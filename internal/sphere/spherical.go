package sphere

import (
	"math"

	"github.com/soniakeys/unit"
)

// FromSpherical converts spherical coordinates to direction cosines.
// Longitude runs anticlockwise as seen from the positive-latitude pole;
// the frame is right-handed with the x axis at zero longitude and latitude.
// The result is a unit vector for any input.
func FromSpherical(lon, lat unit.Angle) Vec3 {
	sinLon, cosLon := lon.Sincos()
	sinLat, cosLat := lat.Sincos()
	return Vec3{
		X: cosLon * cosLat,
		Y: sinLon * cosLat,
		Z: sinLat,
	}
}

// ToSpherical converts direction cosines back to spherical coordinates.
// Longitude is reduced into [0, 2pi). At either pole the longitude is
// indeterminate and 0 is returned; the zero vector maps to (0, 0).
func ToSpherical(v Vec3) (lon, lat unit.Angle) {
	r := math.Hypot(v.X, v.Y)
	if r != 0 {
		lon = unit.Angle(math.Atan2(v.Y, v.X)).Mod1()
	}
	if v.Z != 0 {
		lat = unit.Angle(math.Atan2(v.Z, r))
	}
	return lon, lat
}
