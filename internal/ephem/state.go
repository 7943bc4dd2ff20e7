package ephem

import (
	"github.com/soniakeys/unit"

	"github.com/ThoMattheussen/NOTTControl-fork/internal/sphere"
)

// State is a heliocentric position and velocity referred to the mean
// equator and equinox of J2000.  Position is in AU, velocity in AU/s.
type State struct {
	Pos sphere.Vec3
	Vel sphere.Vec3
}

// Elements are osculating elements referred to the J2000 ecliptic and
// equinox.  MeanLon and Peri are dog-leg angles, measured along the
// ecliptic to the node and then along the orbit plane.
type Elements struct {
	Epoch   float64    // TDB as a Modified Julian Date
	Incl    unit.Angle // inclination
	Node    unit.Angle // longitude of the ascending node
	Peri    unit.Angle // longitude of perihelion
	Axis    float64    // semi-major axis, AU
	Ecc     float64    // eccentricity
	MeanLon unit.Angle // mean longitude at Epoch
	Motion  float64    // mean daily motion, rad/day
}

// Propagator turns osculating elements into a Cartesian state at a given
// epoch.  Implementations must deliver positions in AU and velocities in
// AU/s on the J2000 equatorial triad.
type Propagator interface {
	Propagate(el Elements, mjd float64) (State, error)
}
