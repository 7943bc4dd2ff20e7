package sphere

import "math"

// AU is the astronomical unit in kilometers.
const AU = 149597870.7

// Sine and cosine of the J2000 mean obliquity (23d26m21.4s). These are
// the adopted reference constants, not recomputed from the angle, so that
// frame rotations reproduce the reference ephemeris bit for bit.
const (
	sinObl2000 = 0.3977771559319137
	cosObl2000 = 0.9174820620691818
)

// EclipticToEquatorial rotates a J2000 ecliptic vector into the J2000
// mean equatorial frame. Units are preserved.
func EclipticToEquatorial(ecl Vec3) Vec3 {
	return Vec3{
		X: ecl.X,
		Y: ecl.Y*cosObl2000 - ecl.Z*sinObl2000,
		Z: ecl.Y*sinObl2000 + ecl.Z*cosObl2000,
	}
}

// EquatorialToEcliptic rotates a J2000 mean equatorial vector into the
// J2000 ecliptic frame.
func EquatorialToEcliptic(eq Vec3) Vec3 {
	return Vec3{
		X: eq.X,
		Y: eq.Y*cosObl2000 + eq.Z*sinObl2000,
		Z: -eq.Y*sinObl2000 + eq.Z*cosObl2000,
	}
}

// KmToAU converts kilometers to astronomical units.
func KmToAU(km float64) float64 {
	return km / AU
}

// AUToKm converts astronomical units to kilometers.
func AUToKm(au float64) float64 {
	return au * AU
}

// ProjectedPoint is a 2D projected position with the original geometry
// kept for display.
type ProjectedPoint struct {
	X float64 // display X, positive toward the vernal equinox
	Y float64 // display Y, positive toward 90 degrees ecliptic longitude
	R float64 // true 3D distance in input units
	Z float64 // original offset from the ecliptic plane
}

// ScaleMode defines how radial distance maps to display space.
type ScaleMode int

const (
	// ScaleLogR uses log10(r+1), fitting Mercury through Pluto on one
	// screen.
	ScaleLogR ScaleMode = iota

	// ScaleInner is linear out to 5 AU with everything beyond clamped to
	// the edge.
	ScaleInner

	// ScaleOuter gives the inner system half the radius and spreads the
	// rest logarithmically.
	ScaleOuter
)

// ProjectionConfig configures the top-down ecliptic projection.
type ProjectionConfig struct {
	Scale float64
	Mode  ScaleMode
}

// DefaultProjectionConfig returns the log-radius projection at unit scale.
func DefaultProjectionConfig() ProjectionConfig {
	return ProjectionConfig{Scale: 1.0, Mode: ScaleLogR}
}

// ProjectEclipticTopDown maps an ecliptic-frame vector to 2D display
// coordinates for a plan view of the solar system, preserving the in-plane
// position angle and remapping only the radial distance.
func ProjectEclipticTopDown(v Vec3, cfg ProjectionConfig) ProjectedPoint {
	rPlane := math.Hypot(v.X, v.Y)
	rDisplay := scaleRadius(rPlane, cfg.Mode)
	angle := math.Atan2(v.Y, v.X)
	return ProjectedPoint{
		X: rDisplay * math.Cos(angle) * cfg.Scale,
		Y: rDisplay * math.Sin(angle) * cfg.Scale,
		R: v.Norm(),
		Z: v.Z,
	}
}

func scaleRadius(r float64, mode ScaleMode) float64 {
	switch mode {
	case ScaleInner:
		if r > 5 {
			return 5
		}
		return r
	case ScaleOuter:
		if r <= 5 {
			return r / 5 * 0.5
		}
		return 0.5 + math.Log10(r/5+1)*0.5
	default:
		return math.Log10(r + 1)
	}
}
