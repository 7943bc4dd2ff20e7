package kepler

import (
	"errors"
	"math"
	"testing"

	"github.com/soniakeys/unit"

	"github.com/ThoMattheussen/NOTTControl-fork/internal/ephem"
	"github.com/ThoMattheussen/NOTTControl-fork/internal/sphere"
)

func TestSolveResidual(t *testing.T) {
	s := New()
	for _, ecc := range []float64{0, 0.0934, 0.2056, 0.4, 0.7} {
		for m := -3.0; m <= 3.0; m += 0.37 {
			ea, err := s.solve(m, ecc)
			if err != nil {
				t.Fatalf("solve(%g, %g): %v", m, ecc, err)
			}
			if r := math.Abs(ea - ecc*math.Sin(ea) - m); r > 1e-13 {
				t.Errorf("solve(%g, %g) residual %g", m, ecc, r)
			}
		}
	}
	// Spot checks on the high-eccentricity starter branch.
	for _, m := range []float64{2.0, -2.0} {
		ea, err := s.solve(m, 0.9)
		if err != nil {
			t.Fatalf("solve(%g, 0.9): %v", m, err)
		}
		if r := math.Abs(ea - 0.9*math.Sin(ea) - m); r > 1e-13 {
			t.Errorf("solve(%g, 0.9) residual %g", m, r)
		}
	}
}

func TestSolveStalls(t *testing.T) {
	s := Solver{MaxIter: 3, Tol: 0}
	if _, err := s.solve(1.0, 0.5); !errors.Is(err, ephem.ErrNoConvergence) {
		t.Errorf("error = %v, want ErrNoConvergence", err)
	}
}

func TestPropagateRejectsNonElliptical(t *testing.T) {
	s := New()
	for _, ecc := range []float64{-0.1, 1.0, 1.2} {
		el := ephem.Elements{Epoch: 51544.5, Axis: 1, Ecc: ecc, Motion: 0.0172}
		if _, err := s.Propagate(el, 51544.5); !errors.Is(err, ephem.ErrNoConvergence) {
			t.Errorf("e=%g: error = %v, want ErrNoConvergence", ecc, err)
		}
	}
}

// A circular orbit in the ecliptic plane comes back at the commanded
// longitude and radius.
func TestPropagateCircular(t *testing.T) {
	s := New()
	el := ephem.Elements{
		Epoch:   51544.5,
		Axis:    1,
		MeanLon: unit.Angle(math.Pi / 3),
		Motion:  0.0172021,
	}
	st, err := s.Propagate(el, 51544.5)
	if err != nil {
		t.Fatalf("Propagate() error: %v", err)
	}
	ecl := sphere.EquatorialToEcliptic(st.Pos)
	if math.Abs(ecl.Z) > 1e-15 {
		t.Errorf("out-of-plane position %g", ecl.Z)
	}
	lon, _ := sphere.ToSpherical(ecl)
	if math.Abs(lon.Rad()-math.Pi/3) > 1e-14 {
		t.Errorf("longitude = %.15f, want %.15f", lon.Rad(), math.Pi/3)
	}
	if r := st.Pos.Norm(); math.Abs(r-1) > 1e-14 {
		t.Errorf("radius = %.15f, want 1", r)
	}
	if spd := st.Vel.Norm(); math.Abs(spd-el.Motion/86400) > 1e-20 {
		t.Errorf("speed = %g, want %g", spd, el.Motion/86400)
	}
}

// Mars elements of one epoch carried 100 days forward, against reference
// values from an independent evaluation of the same model.
func TestPropagateMarsArc(t *testing.T) {
	el, err := ephem.MeanElements(ephem.Mars, 50123.4)
	if err != nil {
		t.Fatalf("MeanElements() error: %v", err)
	}
	st, err := New().Propagate(el, 50223.4)
	if err != nil {
		t.Fatalf("Propagate() error: %v", err)
	}
	wantPos := sphere.Vec3{X: 1.2214284463561771e+00, Y: 6.9618706108326134e-01, Z: 2.8628531466213975e-01}
	wantVel := sphere.Vec3{X: -7.8754521455929793e-08, Y: 1.3715161064893685e-07, Z: 6.5036662637796427e-08}
	if d := st.Pos.Sub(wantPos).Norm(); d > 1e-11 {
		t.Errorf("pos off by %g AU: %+v", d, st.Pos)
	}
	if d := st.Vel.Sub(wantVel).Norm(); d > 1e-16 {
		t.Errorf("vel off by %g AU/s: %+v", d, st.Vel)
	}
	if r := st.Pos.Norm(); math.Abs(r-1.4347554338558939e+00) > 1e-11 {
		t.Errorf("radius = %.15f", r)
	}
}

// Two-body propagation conserves energy and angular momentum along the arc.
func TestPropagateConservation(t *testing.T) {
	s := New()
	el := ephem.Elements{
		Epoch:   50000.0,
		Incl:    unit.AngleFromDeg(7.25),
		Node:    unit.AngleFromDeg(49.6),
		Peri:    unit.AngleFromDeg(286.5),
		Axis:    1.5237,
		Ecc:     0.2,
		MeanLon: unit.AngleFromDeg(143.2),
		Motion:  0.00914,
	}
	mu := (el.Motion / 86400) * (el.Motion / 86400) * el.Axis * el.Axis * el.Axis

	var h0 sphere.Vec3
	for i, mjd := range []float64{50000.0, 50137.3, 50422.9} {
		st, err := s.Propagate(el, mjd)
		if err != nil {
			t.Fatalf("Propagate(%g) error: %v", mjd, err)
		}
		r := st.Pos.Norm()
		v2 := st.Vel.Dot(st.Vel)
		want := mu * (2/r - 1/el.Axis)
		if math.Abs(v2-want) > 1e-12*want {
			t.Errorf("mjd %g: v^2 = %g, want %g", mjd, v2, want)
		}
		h := st.Pos.Cross(st.Vel)
		if i == 0 {
			h0 = h
			continue
		}
		if d := h.Sub(h0).Norm(); d > 1e-17 {
			t.Errorf("mjd %g: angular momentum drifted by %g", mjd, d)
		}
	}
}

// The high-eccentricity branch still satisfies vis-viva.
func TestPropagateHighEccentricity(t *testing.T) {
	s := New()
	el := ephem.Elements{
		Epoch:   51544.5,
		Incl:    unit.AngleFromDeg(162.0),
		Node:    unit.AngleFromDeg(58.0),
		Peri:    unit.AngleFromDeg(170.0),
		Axis:    17.8,
		Ecc:     0.9,
		MeanLon: unit.Angle(2.0 + unit.AngleFromDeg(170).Rad()),
		Motion:  0.0002295,
	}
	st, err := s.Propagate(el, 51544.5)
	if err != nil {
		t.Fatalf("Propagate() error: %v", err)
	}
	mu := (el.Motion / 86400) * (el.Motion / 86400) * el.Axis * el.Axis * el.Axis
	r := st.Pos.Norm()
	v2 := st.Vel.Dot(st.Vel)
	want := mu * (2/r - 1/el.Axis)
	if math.Abs(v2-want) > 1e-10*want {
		t.Errorf("v^2 = %g, want %g", v2, want)
	}
}
