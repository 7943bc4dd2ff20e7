package timescale

import (
	"errors"
	"math"
	"testing"
)

func TestDayFraction(t *testing.T) {
	tests := []struct {
		name    string
		hour    int
		min     int
		sec     float64
		want    float64
		wantErr error
	}{
		{"midnight", 0, 0, 0, 0, nil},
		{"noon", 12, 0, 0, 0.5, nil},
		{"one second", 0, 0, 1, 1.0 / 86400, nil},
		{"end of day", 23, 59, 59.999, (3600*23 + 60*59 + 59.999) / 86400, nil},
		{"hour too large", 24, 0, 0, 1.0, ErrHourRange},
		{"hour negative", -1, 0, 0, -3600.0 / 86400, ErrHourRange},
		{"minute too large", 10, 60, 0, (3600*10 + 60*60) / 86400.0, ErrMinuteRange},
		{"second too large", 10, 30, 60, (3600*10 + 60*30 + 60) / 86400.0, ErrSecondRange},
		{"second negative", 0, 0, -0.5, -0.5 / 86400, ErrSecondRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DayFraction(tt.hour, tt.min, tt.sec)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("err = %v, want %v", err, tt.wantErr)
			}
			if math.Abs(got-tt.want) > 1e-15 {
				t.Errorf("days = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDayFractionFieldPrecedence(t *testing.T) {
	// With several fields invalid the later checks win: hour over
	// minute over second.
	tests := []struct {
		name    string
		hour    int
		min     int
		sec     float64
		wantErr error
	}{
		{"all invalid reports hour", 24, 60, 61, ErrHourRange},
		{"hour and second invalid reports hour", 25, 10, -1, ErrHourRange},
		{"minute and second invalid reports minute", 10, 61, 75, ErrMinuteRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DayFraction(tt.hour, tt.min, tt.sec)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("err = %v, want %v", err, tt.wantErr)
			}
			// The best-effort value is still the plain formula.
			want := (3600*float64(tt.hour) + 60*float64(tt.min) + tt.sec) / 86400
			if math.Abs(got-want) > 1e-15 {
				t.Errorf("days = %v, want %v", got, want)
			}
		})
	}
}
