// Package almanac assembles per-cycle solar system snapshots from the
// series models: heliocentric states for the requested bodies, geocentric
// mean and true-of-date places, and the nutation components for the epoch.
// The snapshot is the unit of exchange between the compute loop, the
// report writers and the TUI.
package almanac

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/soniakeys/unit"

	"github.com/ThoMattheussen/NOTTControl-fork/internal/ephem"
	"github.com/ThoMattheussen/NOTTControl-fork/internal/nutation"
	"github.com/ThoMattheussen/NOTTControl-fork/internal/sphere"
	"github.com/ThoMattheussen/NOTTControl-fork/internal/timescale"
)

// BodyPlace collects everything the almanac knows about one body at the
// snapshot epoch.  Geocentric coordinates use the Earth-Moon barycentre
// as the observer; light time and aberration are neglected.
type BodyPlace struct {
	Body ephem.Body

	// Heliocentric J2000 equatorial state, AU and AU/s.
	State ephem.State

	// Heliocentric ecliptic coordinates derived from the state.
	EclPos   sphere.Vec3 // J2000 ecliptic frame, AU
	EclLon   unit.Angle
	EclLat   unit.Angle
	RadiusAU float64

	// Geocentric mean place, equinox J2000.  Zero DeltaAU marks the
	// barycentre itself, where a geocentric place is meaningless.
	RA      unit.RA
	Dec     unit.Angle
	DeltaAU float64

	// Geocentric true place, equinox of date (mean place through the
	// nutation rotation).
	TrueRA  unit.RA
	TrueDec unit.Angle

	// Elongation is the angular separation from the Sun as seen from
	// the barycentre.
	Elongation unit.Angle

	// RangeWarning is set when the epoch falls outside the validity
	// span of the body's series; the numbers are still best effort.
	RangeWarning bool
}

// NutationInfo carries the nutation components and mean obliquity used
// to build the snapshot's true places.
type NutationInfo struct {
	DPsi unit.Angle
	DEps unit.Angle
	Eps0 unit.Angle
}

// TrueObliquity returns the obliquity of date including nutation.
func (n NutationInfo) TrueObliquity() unit.Angle {
	return n.Eps0 + n.DEps
}

// Snapshot is one fully reduced almanac epoch.
type Snapshot struct {
	Time     time.Time
	MJD      float64
	Nutation NutationInfo

	// Geocentric place of the Sun (the anti-barycentre direction).
	SunRA    unit.RA
	SunDec   unit.Angle
	SunDelta float64

	Bodies []BodyPlace
}

// Place returns the entry for a body, or nil if the snapshot does not
// carry it.
func (s *Snapshot) Place(b ephem.Body) *BodyPlace {
	for i := range s.Bodies {
		if s.Bodies[i].Body == b {
			return &s.Bodies[i]
		}
	}
	return nil
}

// Compute reduces the requested bodies to a snapshot at the given TDB
// epoch.  Range warnings from the series are folded into the per-body
// RangeWarning flag; any other ephemeris error aborts the snapshot.
func Compute(mjd float64, bodies []ephem.Body, eph *ephem.Ephemeris) (Snapshot, error) {
	dpsi, deps, eps0 := nutation.Nutation(mjd)
	snap := Snapshot{
		Time:     timescale.TimeFromMJD(mjd),
		MJD:      mjd,
		Nutation: NutationInfo{DPsi: dpsi, DEps: deps, Eps0: eps0},
	}

	embState, err := eph.State(ephem.EarthMoonBary, mjd)
	if err != nil && !errors.Is(err, ephem.ErrOutsideRange) {
		return Snapshot{}, fmt.Errorf("almanac: barycentre state: %w", err)
	}

	// Geocentric direction of the Sun is the anti-barycentre vector.
	sunVec := embState.Pos.Neg()
	sunLon, sunLat := sphere.ToSpherical(sunVec)
	snap.SunRA = unit.RAFromRad(sunLon.Rad())
	snap.SunDec = sunLat
	snap.SunDelta = sunVec.Norm()

	nut := nutationMatrix(snap.Nutation)

	snap.Bodies = make([]BodyPlace, 0, len(bodies))
	for _, b := range bodies {
		st, err := eph.State(b, mjd)
		warn := errors.Is(err, ephem.ErrOutsideRange)
		if err != nil && !warn {
			return Snapshot{}, fmt.Errorf("almanac: %v state: %w", b, err)
		}

		p := BodyPlace{Body: b, State: st, RangeWarning: warn}

		p.EclPos = sphere.EquatorialToEcliptic(st.Pos)
		p.EclLon, p.EclLat = sphere.ToSpherical(p.EclPos)
		p.RadiusAU = st.Pos.Norm()

		g := st.Pos.Sub(embState.Pos)
		p.DeltaAU = g.Norm()
		if p.DeltaAU > 0 {
			lon, lat := sphere.ToSpherical(g)
			p.RA = unit.RAFromRad(lon.Rad())
			p.Dec = lat

			tv := nut.MulVec(g)
			tl, tb := sphere.ToSpherical(tv)
			p.TrueRA = unit.RAFromRad(tl.Rad())
			p.TrueDec = tb

			p.Elongation = separation(g, sunVec)
		}

		snap.Bodies = append(snap.Bodies, p)
	}
	return snap, nil
}

// nutationMatrix composes the mean-to-true rotation from elementary
// axial-vector rotations: unwind the mean obliquity, nutate in
// longitude, rewind the true obliquity.
func nutationMatrix(n NutationInfo) sphere.Mat3 {
	r1 := sphere.RotationFromAxial(sphere.Vec3{X: n.Eps0.Rad()})
	r2 := sphere.RotationFromAxial(sphere.Vec3{Z: -n.DPsi.Rad()})
	r3 := sphere.RotationFromAxial(sphere.Vec3{X: -(n.Eps0 + n.DEps).Rad()})
	return r3.Mul(r2).Mul(r1)
}

// separation returns the angle between two direction vectors.
func separation(a, b sphere.Vec3) unit.Angle {
	na, nb := a.Norm(), b.Norm()
	if na == 0 || nb == 0 {
		return 0
	}
	c := a.Dot(b) / (na * nb)
	c = math.Max(-1, math.Min(1, c))
	return unit.Angle(math.Acos(c))
}
