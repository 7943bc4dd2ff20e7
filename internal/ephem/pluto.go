package ephem

import (
	"math"

	"github.com/ThoMattheussen/NOTTControl-fork/internal/sphere"
	"github.com/ThoMattheussen/NOTTControl-fork/internal/timescale"
)

// Fundamental arguments of the Pluto series: mean longitudes and rates of
// Jupiter, Saturn and Pluto, in degrees and degrees per Julian century.
const (
	plutoJ0, plutoJD = 34.35, 3034.9057
	plutoS0, plutoSD = 50.08, 1222.1138
	plutoP0, plutoPD = 238.96, 144.9600

	plutoL0, plutoLD = 238.956785, 144.96
	plutoB0          = -3.908202
	plutoR0          = 40.7247248
)

// plutoTerm is one row of Meeus's Table 36.A: argument multipliers for
// Jupiter, Saturn and Pluto, then sine and cosine amplitudes for the
// heliocentric longitude (degrees), latitude (degrees) and radius
// vector (AU).
type plutoTerm struct {
	j, s, p                float64
	lonS, lonC, latS, latC float64
	radS, radC             float64
}

// plutoState evaluates the Meeus series.  Outside 1885-2099, where the
// series degrades quickly, the result carries ErrOutsideRange.
func plutoState(mjd float64) (State, error) {
	t := timescale.JulianCenturies(mjd)

	dj := (plutoJ0 + plutoJD*t) * dd2r
	ds := (plutoS0 + plutoSD*t) * dd2r
	dp := (plutoP0 + plutoPD*t) * dd2r

	// Accumulate longitude, latitude and radius terms with their rates.
	var lbr, lbrd [3]float64
	for _, tm := range plutoTerms {
		al := tm.j*dj + tm.s*ds + tm.p*dp
		ald := (tm.j*plutoJD + tm.s*plutoSD + tm.p*plutoPD) * dd2r
		sal, cal := math.Sincos(al)
		lbr[0] += tm.lonS*sal + tm.lonC*cal
		lbrd[0] += (tm.lonS*cal - tm.lonC*sal) * ald
		lbr[1] += tm.latS*sal + tm.latC*cal
		lbrd[1] += (tm.latS*cal - tm.latC*sal) * ald
		lbr[2] += tm.radS*sal + tm.radC*cal
		lbrd[2] += (tm.radS*cal - tm.radC*sal) * ald
	}

	// Spherical coordinates and rates; rates are per second.
	dl := (plutoL0 + plutoLD*t + lbr[0]) * dd2r
	dld := (plutoLD + lbrd[0]) * dd2r / timescale.SecondsPerCentury
	db := (plutoB0 + lbr[1]) * dd2r
	dbd := lbrd[1] * dd2r / timescale.SecondsPerCentury
	dr := plutoR0 + lbr[2]
	drd := lbrd[2] / timescale.SecondsPerCentury

	sl, cl := math.Sincos(dl)
	sb, cb := math.Sincos(db)
	slcb := sl * cb
	clcb := cl * cb

	pos := sphere.Vec3{X: dr * clcb, Y: dr * slcb, Z: dr * sb}
	vel := sphere.Vec3{
		X: drd*clcb - dr*(cl*sb*dbd+slcb*dld),
		Y: drd*slcb + dr*(-sl*sb*dbd+clcb*dld),
		Z: drd*sb + dr*cb*dbd,
	}
	st := State{
		Pos: sphere.EclipticToEquatorial(pos),
		Vel: sphere.EclipticToEquatorial(vel),
	}
	if t < -1.15 || t > 1.0 {
		return st, ErrOutsideRange
	}
	return st, nil
}
