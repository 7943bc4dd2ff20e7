package timescale

import (
	"time"

	"github.com/soniakeys/meeus/v3/julian"
)

// Reference epoch and day-count constants shared by the series models.
const (
	// J2000 is the reference epoch 2000 January 1.5 as a Modified
	// Julian Date.
	J2000 = 51544.5

	// JDMinusMJD is the offset between Julian Date and MJD.
	JDMinusMJD = 2400000.5

	DaysPerCentury    = 36525.0
	DaysPerMillennium = 365250.0

	SecondsPerDay     = 86400.0
	SecondsPerCentury = DaysPerCentury * SecondsPerDay
)

// MJDFromTime converts a wall-clock instant to a Modified Julian Date.
// The instant is taken at face value as dynamical time; the sub-minute
// offset between UTC and TDB is far below the accuracy of the series
// models fed by this value.
func MJDFromTime(t time.Time) float64 {
	return julian.TimeToJD(t.UTC()) - JDMinusMJD
}

// TimeFromMJD converts a Modified Julian Date back to a wall-clock
// instant in UTC.
func TimeFromMJD(mjd float64) time.Time {
	return julian.JDToTime(mjd + JDMinusMJD).UTC()
}

// JulianCenturies returns the elapsed Julian centuries from J2000 to the
// given epoch.
func JulianCenturies(mjd float64) float64 {
	return (mjd - J2000) / DaysPerCentury
}

// JulianMillennia returns the elapsed Julian millennia from J2000 to the
// given epoch.
func JulianMillennia(mjd float64) float64 {
	return (mjd - J2000) / DaysPerMillennium
}
