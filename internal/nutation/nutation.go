// Package nutation predicts the nutation of the Earth's axis using the
// Shirai & Fukushima (2001) theory: forced nutation plus corrections to
// the IAU 1976 precession model, accurate to about 1 mas for a few
// decades around J2000.
package nutation

import (
	"math"

	"github.com/soniakeys/unit"

	"github.com/ThoMattheussen/NOTTControl-fork/internal/timescale"
)

const (
	// turnSec is a full circle in arcseconds.
	turnSec = 1296000.0

	degToRad = math.Pi / 180
	secToRad = math.Pi / (180 * 3600)
)

// Nutation returns the nutation components in longitude and obliquity
// and the mean obliquity of date for an epoch given as an MJD in TDB.
// Free core nutation is not modeled. The function is defined for any
// epoch; accuracy degrades gracefully outside roughly 1900-2100 and no
// range flag is raised here.
func Nutation(mjd float64) (dpsi, deps, eps0 unit.Angle) {
	t := timescale.JulianCenturies(mjd)

	// Fundamental arguments in radians (Simon et al. 1994). Each
	// arcsecond polynomial is reduced modulo a full turn before the
	// radian scaling; reducing after scaling loses precision at large t.
	el := 134.96340251*degToRad +
		math.Mod(t*(1717915923.2178+
			t*(31.8792+
				t*(0.051635+
					t*(-0.00024470)))), turnSec)*secToRad

	elp := 357.52910918*degToRad +
		math.Mod(t*(129596581.0481+
			t*(-0.5532+
				t*(0.000136+
					t*(-0.00001149)))), turnSec)*secToRad

	f := 93.27209062*degToRad +
		math.Mod(t*(1739527262.8478+
			t*(-12.7512+
				t*(-0.001037+
					t*(0.00000417)))), turnSec)*secToRad

	d := 297.85019547*degToRad +
		math.Mod(t*(1602961601.2090+
			t*(-6.3706+
				t*(0.006539+
					t*(-0.00003169)))), turnSec)*secToRad

	om := 125.04455501*degToRad +
		math.Mod(t*(-6962890.5431+
			t*(7.4722+
				t*(0.007702+
					t*(-0.00005939)))), turnSec)*secToRad

	ve := 181.97980085*degToRad + math.Mod(210664136.433548*t, turnSec)*secToRad
	ma := 355.43299958*degToRad + math.Mod(68905077.493988*t, turnSec)*secToRad
	ju := 34.35151874*degToRad + math.Mod(10925660.377991*t, turnSec)*secToRad
	sa := 50.07744430*degToRad + math.Mod(4399609.855732*t, turnSec)*secToRad

	// Geodesic nutation (Fukushima 1991), microarcseconds.
	dp := -153.1*math.Sin(elp) - 1.9*math.Sin(2*elp)
	de := 0.0

	// The series, summed smallest amplitudes first.
	for j := len(terms) - 1; j >= 0; j-- {
		tm := &terms[j]
		theta := float64(tm.el)*el +
			float64(tm.elp)*elp +
			float64(tm.f)*f +
			float64(tm.d)*d +
			float64(tm.om)*om +
			float64(tm.ve)*ve +
			float64(tm.ma)*ma +
			float64(tm.ju)*ju +
			float64(tm.sa)*sa
		s, c := math.Sincos(theta)
		dp += (tm.psiC+tm.psiCT*t)*c + (tm.psiS+tm.psiST*t)*s
		de += (tm.epsC+tm.epsCT*t)*c + (tm.epsS+tm.epsST*t)*s
	}

	// Microarcseconds to radians, plus the precession correction.
	dpsi = unit.AngleFromSec(dp*1e-6 - 0.042888 - 0.29856*t)
	deps = unit.AngleFromSec(de*1e-6 - 0.005171 - 0.02408*t)

	// Mean obliquity of date (Simon et al. 1994).
	eps0 = unit.AngleFromSec(84381.412 +
		t*(-46.80927+
			t*(-0.000152+
				t*(0.0019989+
					t*(-0.00000051+
						t*(-0.000000025))))))

	return dpsi, deps, eps0
}
