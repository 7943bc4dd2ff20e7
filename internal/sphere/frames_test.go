package sphere

import (
	"math"
	"testing"
)

func TestFrameRotationRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		v    Vec3
	}{
		{"x axis", Vec3{1, 0, 0}},
		{"ecliptic pole", Vec3{0, 0, 1}},
		{"arbitrary", Vec3{0.3, -1.2, 0.8}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EquatorialToEcliptic(EclipticToEquatorial(tt.v))
			if !vecClose(got, tt.v, 1e-15) {
				t.Errorf("round trip = %v, want %v", got, tt.v)
			}
		})
	}
}

func TestEclipticToEquatorial(t *testing.T) {
	// The x axis (equinox direction) is shared by both frames.
	got := EclipticToEquatorial(Vec3{1, 0, 0})
	if !vecClose(got, Vec3{1, 0, 0}, 1e-15) {
		t.Errorf("equinox direction moved: %v", got)
	}

	// The ecliptic pole tilts toward -y in the equatorial frame.
	got = EclipticToEquatorial(Vec3{0, 0, 1})
	want := Vec3{0, -sinObl2000, cosObl2000}
	if !vecClose(got, want, 1e-15) {
		t.Errorf("ecliptic pole = %v, want %v", got, want)
	}

	// Rotation preserves length.
	v := Vec3{2, -3, 5}
	if r := EclipticToEquatorial(v).Norm(); math.Abs(r-v.Norm()) > 1e-12 {
		t.Errorf("norm changed: %v vs %v", r, v.Norm())
	}
}

func TestObliquityConstantsConsistent(t *testing.T) {
	// The adopted sine/cosine pair must describe a single angle.
	if d := sinObl2000*sinObl2000 + cosObl2000*cosObl2000; math.Abs(d-1) > 1e-15 {
		t.Errorf("sin^2+cos^2 = %v", d)
	}
}

func TestProjectEclipticTopDown(t *testing.T) {
	cfg := DefaultProjectionConfig()

	tests := []struct {
		name      string
		v         Vec3
		wantAngle float64 // degrees
		wantR     float64
	}{
		{"1 AU along +X", Vec3{1, 0, 0}, 0, 1},
		{"1 AU along +Y", Vec3{0, 1, 0}, 90, 1},
		{"5 AU at 45 degrees", Vec3{5 / math.Sqrt(2), 5 / math.Sqrt(2), 0}, 45, 5},
		{"10 AU with Z offset", Vec3{10, 0, 2}, 0, math.Sqrt(104)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ProjectEclipticTopDown(tt.v, cfg)

			gotAngle := math.Atan2(got.Y, got.X) * 180 / math.Pi
			diff := math.Abs(gotAngle - tt.wantAngle)
			if diff > 180 {
				diff = 360 - diff
			}
			if diff > 0.1 {
				t.Errorf("angle = %.2f, want %.2f", gotAngle, tt.wantAngle)
			}

			if math.Abs(got.R-tt.wantR) > 0.01 {
				t.Errorf("R = %v, want %v", got.R, tt.wantR)
			}
		})
	}
}

func TestScaleRadiusMonotonic(t *testing.T) {
	for _, mode := range []ScaleMode{ScaleLogR, ScaleInner, ScaleOuter} {
		prev := -1.0
		for r := 0.0; r <= 40; r += 0.5 {
			d := scaleRadius(r, mode)
			if d < prev {
				t.Fatalf("mode %d not monotonic at r=%v", mode, r)
			}
			prev = d
		}
	}
}

func TestKmAUConversion(t *testing.T) {
	if got := AUToKm(1); math.Abs(got-AU) > 1e-6 {
		t.Errorf("AUToKm(1) = %v", got)
	}
	if got := KmToAU(AU); math.Abs(got-1) > 1e-12 {
		t.Errorf("KmToAU(AU) = %v", got)
	}
}
