// Package timescale converts between civil clock readings and the
// dynamical-time day counts consumed by the series models.
package timescale

import (
	"errors"

	"github.com/soniakeys/unit"
)

// Field range errors for DayFraction. Compare with errors.Is.
var (
	ErrHourRange   = errors.New("hours outside range 0-23")
	ErrMinuteRange = errors.New("minutes outside range 0-59")
	ErrSecondRange = errors.New("seconds outside range [0,60)")
)

// DayFraction converts hours, minutes and seconds into a fraction of a
// day. The value (3600*hour + 60*min + sec)/86400 is computed and
// returned regardless of validation, so callers get a best-effort result
// alongside any error.
//
// Validation is last-writer-wins: seconds are checked first, then
// minutes, then hours, each later check replacing the error. With several
// fields out of range the hour error is reported, then minute, then
// second. This tie-break is a compatibility contract with the existing
// pointing chain and must not be reordered.
//
// Only magnitudes are accepted; the sign of an interval is the caller's
// concern.
func DayFraction(hour, min int, sec float64) (float64, error) {
	var err error
	if sec < 0 || sec >= 60 {
		err = ErrSecondRange
	}
	if min < 0 || min > 59 {
		err = ErrMinuteRange
	}
	if hour < 0 || hour > 23 {
		err = ErrHourRange
	}
	return unit.NewTime(0, hour, min, sec).Day(), err
}
