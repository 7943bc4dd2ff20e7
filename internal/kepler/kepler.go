// Package kepler propagates elliptical two-body orbits.
package kepler

import (
	"fmt"
	"math"

	"github.com/ThoMattheussen/NOTTControl-fork/internal/ephem"
	"github.com/ThoMattheussen/NOTTControl-fork/internal/sphere"
)

// Solver converts osculating elements into Cartesian states by solving
// Kepler's equation with Danby's starter and Newton-Raphson refinement.
type Solver struct {
	MaxIter int     // iteration cap before giving up
	Tol     float64 // residual below which the anomaly is accepted
}

// New returns a Solver with the default iteration budget.
func New() Solver { return Solver{MaxIter: 15, Tol: 1e-14} }

// Propagate returns the heliocentric J2000 equatorial state for el at the
// given TDB epoch.  Only elliptical orbits are handled; elements with an
// eccentricity outside [0,1) yield an error wrapping ErrNoConvergence.
func (s Solver) Propagate(el ephem.Elements, mjd float64) (ephem.State, error) {
	if el.Ecc < 0 || el.Ecc >= 1 {
		return ephem.State{}, fmt.Errorf("eccentricity %g not elliptical: %w", el.Ecc, ephem.ErrNoConvergence)
	}

	m := math.Mod(el.MeanLon.Rad()-el.Peri.Rad()+el.Motion*(mjd-el.Epoch), 2*math.Pi)
	ea, err := s.solve(m, el.Ecc)
	if err != nil {
		return ephem.State{}, err
	}
	sE, cE := math.Sincos(ea)
	sq := math.Sqrt(1 - el.Ecc*el.Ecc)

	// Perifocal position (AU) and velocity (AU/s); Motion is rad/day.
	xp := el.Axis * (cE - el.Ecc)
	yp := el.Axis * sq * sE
	ed := el.Motion / (1 - el.Ecc*cE)
	vx := -el.Axis * sE * ed / 86400
	vy := el.Axis * sq * cE * ed / 86400

	// Orbit orientation: p toward perihelion, q advanced a quarter turn
	// in the direction of motion.
	sw, cw := math.Sincos(el.Peri.Rad() - el.Node.Rad())
	so, co := el.Node.Sincos()
	si, ci := el.Incl.Sincos()
	p := sphere.Vec3{
		X: cw*co - sw*so*ci,
		Y: cw*so + sw*co*ci,
		Z: sw * si,
	}
	q := sphere.Vec3{
		X: -sw*co - cw*so*ci,
		Y: -sw*so + cw*co*ci,
		Z: cw * si,
	}

	pos := sphere.Vec3{
		X: xp*p.X + yp*q.X,
		Y: xp*p.Y + yp*q.Y,
		Z: xp*p.Z + yp*q.Z,
	}
	vel := sphere.Vec3{
		X: vx*p.X + vy*q.X,
		Y: vx*p.Y + vy*q.Y,
		Z: vx*p.Z + vy*q.Z,
	}
	return ephem.State{
		Pos: sphere.EclipticToEquatorial(pos),
		Vel: sphere.EclipticToEquatorial(vel),
	}, nil
}

// solve finds the eccentric anomaly for mean anomaly m.
func (s Solver) solve(m, ecc float64) (float64, error) {
	var ea float64
	if ecc < 0.8 {
		ea = m + ecc*math.Sin(m)*(1+ecc*math.Cos(m))
	} else {
		ea = m + ecc*math.Sin(m)/(1-math.Sin(m+ecc)+math.Sin(m))
	}
	for i := 0; i < s.MaxIter; i++ {
		f := ea - ecc*math.Sin(ea) - m
		if math.Abs(f) < s.Tol {
			return ea, nil
		}
		ea -= f / (1 - ecc*math.Cos(ea))
	}
	return 0, fmt.Errorf("kepler iteration stalled at e=%g: %w", ecc, ephem.ErrNoConvergence)
}
