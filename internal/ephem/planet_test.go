package ephem_test

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/ThoMattheussen/NOTTControl-fork/internal/ephem"
	"github.com/ThoMattheussen/NOTTControl-fork/internal/kepler"
	"github.com/ThoMattheussen/NOTTControl-fork/internal/sphere"
)

func vecNear(t *testing.T, name string, got, want sphere.Vec3, tol float64) {
	t.Helper()
	if math.Abs(got.X-want.X) > tol ||
		math.Abs(got.Y-want.Y) > tol ||
		math.Abs(got.Z-want.Z) > tol {
		t.Errorf("%s = %+v, want %+v", name, got, want)
	}
}

// Reference states evaluated with the same series at full double
// precision.  Positions AU, velocities AU/s, J2000 equatorial.
func TestEphemerisState(t *testing.T) {
	eph := ephem.New(kepler.New())
	tests := []struct {
		body ephem.Body
		mjd  float64
		pos  sphere.Vec3
		vel  sphere.Vec3
	}{
		{ephem.EarthMoonBary, 51544.5,
			sphere.Vec3{X: -1.7716063335053980e-01, Y: 8.8740147586584350e-01, Z: 3.8473562572287251e-01},
			sphere.Vec3{X: -1.9911083419595604e-07, Y: -3.3599355887351755e-08, Z: -1.4567103574617031e-08}},
		{ephem.Mercury, 61041.0,
			sphere.Vec3{X: -2.1520042178422477e-01, Y: -3.6999005733471047e-01, Z: -1.7534679722577343e-01},
			sphere.Vec3{X: 2.2259233886905310e-07, Y: -1.1210383219683625e-07, Z: -8.2955761822689589e-08}},
		{ephem.Mars, 50123.4,
			sphere.Vec3{X: 1.1920236325135387e+00, Y: -6.2319893134491278e-01, Z: -3.1807741835565911e-01},
			sphere.Vec3{X: 8.8053223335740358e-08, Y: 1.4049560620887289e-07, Z: 6.2059298812253069e-08}},
		{ephem.Jupiter, 61041.0,
			sphere.Vec3{X: -1.6936612355360270e+00, Y: 4.5153107941071644e+00, Z: 1.9766165563571445e+00},
			sphere.Vec3{X: -8.3708680803786320e-08, Y: -2.3077301667767694e-08, Z: -7.8553354624705634e-09}},
		{ephem.Neptune, 46895.0,
			sphere.Vec3{X: 3.3276764931784388e+00, Y: -2.7784095820820593e+01, Z: -1.1455106887812518e+01},
			sphere.Vec3{X: 3.5837335762283585e-08, Y: 4.2254954418726276e-09, Z: 8.3749154335482030e-10}},
		{ephem.Pluto, 51544.5,
			sphere.Vec3{X: -9.8758370644299536e+00, Y: -2.7979051339998868e+01, Z: -5.7537369183376965e+00},
			sphere.Vec3{X: 3.5055245006385259e-08, Y: -1.3050990264591456e-08, Z: -1.4642587597399094e-08}},
		{ephem.Pluto, 48000.0,
			sphere.Vec3{X: -1.9711391473259837e+01, Y: -2.2138733193404271e+01, Z: -9.6999002692449832e-01},
			sphere.Vec3{X: 2.8196295257737469e-08, Y: -2.4707266783653604e-08, Z: -1.6224221063612950e-08}},
		{ephem.Pluto, 61041.0,
			sphere.Vec3{X: 1.9227253984372062e+01, Y: -2.6256812137872483e+01, Z: -1.3985757676946145e+01},
			sphere.Vec3{X: 3.1414319310214394e-08, Y: 1.4832865723810179e-08, Z: -4.8596244518881129e-09}},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%v@%.1f", tt.body, tt.mjd), func(t *testing.T) {
			st, err := eph.State(tt.body, tt.mjd)
			if err != nil {
				t.Fatalf("State() error: %v", err)
			}
			vecNear(t, "pos", st.Pos, tt.pos, 1e-11)
			vecNear(t, "vel", st.Vel, tt.vel, 1e-16)
		})
	}
}

func TestEphemerisStateInvalidBody(t *testing.T) {
	eph := ephem.New(kepler.New())
	for _, b := range []ephem.Body{0, 10, -3} {
		st, err := eph.State(b, 51544.5)
		if !errors.Is(err, ephem.ErrInvalidBody) {
			t.Errorf("State(%d) error = %v, want ErrInvalidBody", b, err)
		}
		if st != (ephem.State{}) {
			t.Errorf("State(%d) = %+v, want zero state", b, st)
		}
	}
}

// The major planets need a propagator; Pluto's series does not.
func TestEphemerisStateNilPropagator(t *testing.T) {
	eph := ephem.New(nil)

	st, err := eph.State(ephem.Mercury, 51544.5)
	if !errors.Is(err, ephem.ErrNoPropagator) {
		t.Errorf("Mercury error = %v, want ErrNoPropagator", err)
	}
	if st != (ephem.State{}) {
		t.Errorf("Mercury state = %+v, want zero state", st)
	}

	if _, err := eph.State(ephem.Pluto, 51544.5); err != nil {
		t.Errorf("Pluto error = %v, want nil", err)
	}
}

// Remote epochs still produce a usable state alongside ErrOutsideRange.
func TestEphemerisStateOutsideRange(t *testing.T) {
	eph := ephem.New(kepler.New())

	st, err := eph.State(ephem.Venus, 420000.0)
	if !errors.Is(err, ephem.ErrOutsideRange) {
		t.Fatalf("Venus at mjd 420000: error = %v, want ErrOutsideRange", err)
	}
	want := sphere.Vec3{X: -6.6516798123193110e-02, Y: 6.5108525017150687e-01, Z: 2.9922549887577254e-01}
	vecNear(t, "pos", st.Pos, want, 1e-11)

	st, err = eph.State(ephem.Pluto, 90000.0)
	if !errors.Is(err, ephem.ErrOutsideRange) {
		t.Fatalf("Pluto at mjd 90000: error = %v, want ErrOutsideRange", err)
	}
	want = sphere.Vec3{X: 3.7619255243664369e+01, Y: 3.1642007226610438e+01, Z: -1.4569831130435773e+00}
	vecNear(t, "pos", st.Pos, want, 1e-11)
}

func TestMeanElements(t *testing.T) {
	el, err := ephem.MeanElements(ephem.Mars, 50123.4)
	if err != nil {
		t.Fatalf("MeanElements() error: %v", err)
	}
	checks := []struct {
		name string
		got  float64
		want float64
	}{
		{"Epoch", el.Epoch, 50123.4},
		{"Incl", el.Incl.Rad(), 3.2289349565340353e-02},
		{"Node", el.Node.Rad(), 8.6515222197179187e-01},
		{"Peri", el.Peri.Rad(), 5.8650561245053678e+00},
		{"Axis", el.Axis, 1.5237758356779301e+00},
		{"Ecc", el.Ecc, 9.3397127048085241e-02},
		{"MeanLon", el.MeanLon.Rad(), -5.1052310322875005e-01},
		{"Motion", el.Motion, 9.1453406792885873e-03},
	}
	for _, c := range checks {
		if math.Abs(c.got-c.want) > 1e-12 {
			t.Errorf("%s = %.16e, want %.16e", c.name, c.got, c.want)
		}
	}
}

func TestMeanElementsPluto(t *testing.T) {
	if _, err := ephem.MeanElements(ephem.Pluto, 51544.5); !errors.Is(err, ephem.ErrInvalidBody) {
		t.Errorf("MeanElements(Pluto) error = %v, want ErrInvalidBody", err)
	}
}

func TestParseBody(t *testing.T) {
	tests := []struct {
		in   string
		want ephem.Body
		ok   bool
	}{
		{"mars", ephem.Mars, true},
		{"Jupiter", ephem.Jupiter, true},
		{" PLUTO ", ephem.Pluto, true},
		{"earth", ephem.EarthMoonBary, true},
		{"emb", ephem.EarthMoonBary, true},
		{"phobos", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		got, err := ephem.ParseBody(tt.in)
		if tt.ok != (err == nil) || got != tt.want {
			t.Errorf("ParseBody(%q) = %v, %v", tt.in, got, err)
		}
	}
}

func TestBodyString(t *testing.T) {
	if len(ephem.All()) != 9 {
		t.Fatalf("All() has %d bodies, want 9", len(ephem.All()))
	}
	if s := ephem.EarthMoonBary.String(); s != "EMB" {
		t.Errorf("EarthMoonBary.String() = %q", s)
	}
	if s := ephem.Body(42).String(); s != "Body(42)" {
		t.Errorf("Body(42).String() = %q", s)
	}
}
