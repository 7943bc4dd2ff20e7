// Package ephem approximates heliocentric planetary states from compact
// analytic series.  Mercury through Neptune follow the mean elements of
// Simon et al. (1994); Pluto follows the periodic terms of Meeus.  The
// series hold to arcsecond level over the years 1000-3000 (1885-2099 for
// Pluto) and degrade gracefully outside those spans.
package ephem

import (
	"fmt"
	"math"

	"github.com/soniakeys/unit"

	"github.com/ThoMattheussen/NOTTControl-fork/internal/timescale"
)

const (
	das2r = math.Pi / (180 * 3600)
	dd2r  = math.Pi / 180
	d2pi  = 2 * math.Pi

	// Gaussian gravitational constant, rad/day in AU and solar-mass units.
	gcon = 0.01720209895
)

// Ephemeris computes heliocentric states, delegating the two-body part to
// a Propagator.
type Ephemeris struct {
	prop Propagator
}

// New returns an Ephemeris backed by the given propagator.  The stock
// choice is the solver in internal/kepler; this package cannot supply it
// itself, so a nil p is rejected with ErrNoPropagator on first use.
func New(p Propagator) *Ephemeris { return &Ephemeris{prop: p} }

// State returns the heliocentric position and velocity of b at the given
// TDB epoch.  Outside the span of the underlying series the state is still
// computed and returned together with ErrOutsideRange.  An unknown body
// yields a zero state and ErrInvalidBody; a propagation failure yields a
// zero state and an error wrapping ErrNoConvergence.  An Ephemeris built
// with a nil propagator yields ErrNoPropagator for Mercury through
// Neptune; Pluto's series needs no propagator and still succeeds.
func (e *Ephemeris) State(b Body, mjd float64) (State, error) {
	if !b.Valid() {
		return State{}, ErrInvalidBody
	}
	if b == Pluto {
		return plutoState(mjd)
	}
	if e.prop == nil {
		return State{}, ErrNoPropagator
	}
	st, err := e.prop.Propagate(meanElements(int(b)-1, mjd), mjd)
	if err != nil {
		return State{}, fmt.Errorf("%v: %w", b, err)
	}
	if t := timescale.JulianMillennia(mjd); math.Abs(t) > 1 {
		return st, ErrOutsideRange
	}
	return st, nil
}

// MeanElements returns the mean orbital elements of Mercury through
// Neptune at the given TDB epoch.  Pluto is not represented by the Simon
// series; its state is only available through State.
func MeanElements(b Body, mjd float64) (Elements, error) {
	if b < Mercury || b > Neptune {
		return Elements{}, ErrInvalidBody
	}
	return meanElements(int(b)-1, mjd), nil
}

func meanElements(i int, mjd float64) Elements {
	t := timescale.JulianMillennia(mjd)

	da := meanA[i][0] + (meanA[i][1]+meanA[i][2]*t)*t
	dl := (3600*meanL[i][0] + (meanL[i][1]+meanL[i][2]*t)*t) * das2r
	de := meanE[i][0] + (meanE[i][1]+meanE[i][2]*t)*t
	dpe := math.Mod((3600*meanPi[i][0]+(meanPi[i][1]+meanPi[i][2]*t)*t)*das2r, d2pi)
	di := (3600*meanInc[i][0] + (meanInc[i][1]+meanInc[i][2]*t)*t) * das2r
	dom := math.Mod((3600*meanNode[i][0]+(meanNode[i][1]+meanNode[i][2]*t)*t)*das2r, d2pi)

	// Periodic corrections to the semi-major axis and mean longitude.
	// The final column of each table carries an extra factor of t.
	dmu := 0.35953620 * t
	for j := 0; j < 8; j++ {
		s, c := math.Sincos(freqA[i][j] * dmu)
		da += (cosA[i][j]*c + sinA[i][j]*s) * 1e-7
		s, c = math.Sincos(freqL[i][j] * dmu)
		dl += (cosL[i][j]*c + sinL[i][j]*s) * 1e-7
	}
	s, c := math.Sincos(freqA[i][8] * dmu)
	da += t * (cosA[i][8]*c + sinA[i][8]*s) * 1e-7
	for j := 8; j < 10; j++ {
		s, c = math.Sincos(freqL[i][j] * dmu)
		dl += t * (cosL[i][j]*c + sinL[i][j]*s) * 1e-7
	}
	dl = math.Mod(dl, d2pi)

	dm := gcon * math.Sqrt((1+1/invMass[i])/(da*da*da))

	return Elements{
		Epoch:   mjd,
		Incl:    unit.Angle(di),
		Node:    unit.Angle(dom),
		Peri:    unit.Angle(dpe),
		Axis:    da,
		Ecc:     de,
		MeanLon: unit.Angle(dl),
		Motion:  dm,
	}
}
