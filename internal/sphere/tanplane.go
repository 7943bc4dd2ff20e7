package sphere

import "github.com/soniakeys/unit"

// tinyDenom is the threshold below which the projection denominator is
// considered degenerate and clamped so that xi/eta stay finite.
const tinyDenom = 1e-6

// ProjStatus classifies the outcome of a tangent-plane projection.
type ProjStatus int

const (
	// ProjOK means the target projects cleanly onto the plane.
	ProjOK ProjStatus = iota

	// ProjStarTooFar means the target is nearly 90 degrees from the
	// tangent axis; the result is clamped but unreliable.
	ProjStarTooFar

	// ProjAntistarOnPlane means the antipode of the target lies close to
	// the tangent plane; the result is clamped but unreliable.
	ProjAntistarOnPlane

	// ProjAntistarTooFar means the antipode of the target projected onto
	// the plane; the coordinates describe the wrong hemisphere.
	ProjAntistarTooFar
)

// String returns a short description of the status.
func (s ProjStatus) String() string {
	switch s {
	case ProjOK:
		return "ok"
	case ProjStarTooFar:
		return "star too far from axis"
	case ProjAntistarOnPlane:
		return "antistar on tangent plane"
	case ProjAntistarTooFar:
		return "antistar too far from axis"
	default:
		return "unknown"
	}
}

// OK reports whether the projection is usable without caveats.
func (s ProjStatus) OK() bool {
	return s == ProjOK
}

// ProjectToTangentPlane performs the gnomonic projection of the spherical
// position (lon, lat) onto the plane tangent at (lon0, lat0). The returned
// xi axis points east and eta points north, both in radian-like tangent
// plane units. Coordinates are always computed, even in the degenerate
// cases; callers must branch on the status rather than probe for NaN.
func ProjectToTangentPlane(lon, lat, lon0, lat0 unit.Angle) (xi, eta float64, st ProjStatus) {
	sinLat, cosLat := lat.Sincos()
	sinLat0, cosLat0 := lat0.Sincos()
	sinDLon, cosDLon := (lon - lon0).Sincos()

	denom := sinLat*sinLat0 + cosLat*cosLat0*cosDLon
	switch {
	case denom > tinyDenom:
		st = ProjOK
	case denom >= 0:
		st = ProjStarTooFar
		denom = tinyDenom
	case denom > -tinyDenom:
		st = ProjAntistarOnPlane
		denom = -tinyDenom
	default:
		st = ProjAntistarTooFar
	}

	xi = cosLat * sinDLon / denom
	eta = (sinLat*cosLat0 - cosLat*sinLat0*cosDLon) / denom
	return xi, eta, st
}
