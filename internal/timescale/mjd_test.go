package timescale

import (
	"math"
	"testing"
	"time"
)

func TestMJDFromTime(t *testing.T) {
	tests := []struct {
		name string
		t    time.Time
		want float64
	}{
		{
			name: "J2000",
			t:    time.Date(2000, 1, 1, 12, 0, 0, 0, time.UTC),
			want: 51544.5,
		},
		{
			name: "MJD epoch 1858-11-17",
			t:    time.Date(1858, 11, 17, 0, 0, 0, 0, time.UTC),
			want: 0,
		},
		{
			name: "2026-01-01 midnight",
			t:    time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
			want: 61041,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MJDFromTime(tt.t)
			if math.Abs(got-tt.want) > 1e-6 {
				t.Errorf("MJDFromTime = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTimeFromMJDRoundTrip(t *testing.T) {
	orig := time.Date(2026, 8, 23, 6, 30, 0, 0, time.UTC)
	mjd := MJDFromTime(orig)
	back := TimeFromMJD(mjd)
	if d := back.Sub(orig); d < -time.Millisecond || d > time.Millisecond {
		t.Errorf("round trip drift %v (got %v)", d, back)
	}
}

func TestJulianCenturies(t *testing.T) {
	if got := JulianCenturies(J2000); got != 0 {
		t.Errorf("centuries at J2000 = %v", got)
	}
	if got := JulianCenturies(J2000 + DaysPerCentury); math.Abs(got-1) > 1e-15 {
		t.Errorf("one century = %v", got)
	}
	if got := JulianMillennia(J2000 - DaysPerMillennium); math.Abs(got+1) > 1e-15 {
		t.Errorf("minus one millennium = %v", got)
	}
}
