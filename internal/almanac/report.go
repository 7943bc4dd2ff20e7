package almanac

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	sexa "github.com/soniakeys/sexagesimal"
	"github.com/soniakeys/unit"

	"github.com/ThoMattheussen/NOTTControl-fork/internal/ephem"
	"github.com/ThoMattheussen/NOTTControl-fork/internal/sphere"
)

// SnapshotExport is the JSON-serializable representation of a snapshot.
// Angles are exported in degrees, distances in AU, velocities in AU/s.
type SnapshotExport struct {
	Timestamp time.Time    `json:"timestamp"`
	MJD       float64      `json:"mjd"`
	Nutation  NutExport    `json:"nutation"`
	Sun       SunExport    `json:"sun"`
	Bodies    []BodyExport `json:"bodies"`
}

// NutExport is a JSON-friendly nutation block, in arcseconds.
type NutExport struct {
	DPsiArcsec float64 `json:"dpsi_arcsec"`
	DEpsArcsec float64 `json:"deps_arcsec"`
	Eps0Deg    float64 `json:"mean_obliquity_deg"`
}

// SunExport is the geocentric place of the Sun.
type SunExport struct {
	RAHours float64 `json:"ra_hours"`
	DecDeg  float64 `json:"dec_deg"`
	DeltaAU float64 `json:"delta_au"`
}

// BodyExport is a JSON-friendly body row.
type BodyExport struct {
	Name         string     `json:"name"`
	Pos          [3]float64 `json:"pos_au"`
	Vel          [3]float64 `json:"vel_au_s"`
	EclLonDeg    float64    `json:"ecl_lon_deg"`
	EclLatDeg    float64    `json:"ecl_lat_deg"`
	RadiusAU     float64    `json:"radius_au"`
	RAHours      float64    `json:"ra_hours,omitempty"`
	DecDeg       float64    `json:"dec_deg,omitempty"`
	DeltaAU      float64    `json:"delta_au,omitempty"`
	TrueRAHours  float64    `json:"true_ra_hours,omitempty"`
	TrueDecDeg   float64    `json:"true_dec_deg,omitempty"`
	ElongDeg     float64    `json:"elongation_deg,omitempty"`
	RangeWarning bool       `json:"range_warning,omitempty"`
}

// ExportSnapshot converts a snapshot into its JSON form.
func ExportSnapshot(snap Snapshot) *SnapshotExport {
	export := &SnapshotExport{
		Timestamp: snap.Time,
		MJD:       snap.MJD,
		Nutation: NutExport{
			DPsiArcsec: snap.Nutation.DPsi.Sec(),
			DEpsArcsec: snap.Nutation.DEps.Sec(),
			Eps0Deg:    snap.Nutation.Eps0.Deg(),
		},
		Sun: SunExport{
			RAHours: snap.SunRA.Hour(),
			DecDeg:  snap.SunDec.Deg(),
			DeltaAU: snap.SunDelta,
		},
	}
	for _, p := range snap.Bodies {
		export.Bodies = append(export.Bodies, BodyExport{
			Name:         p.Body.String(),
			Pos:          vecArray(p.State.Pos),
			Vel:          vecArray(p.State.Vel),
			EclLonDeg:    p.EclLon.Deg(),
			EclLatDeg:    p.EclLat.Deg(),
			RadiusAU:     p.RadiusAU,
			RAHours:      p.RA.Hour(),
			DecDeg:       p.Dec.Deg(),
			DeltaAU:      p.DeltaAU,
			TrueRAHours:  p.TrueRA.Hour(),
			TrueDecDeg:   p.TrueDec.Deg(),
			ElongDeg:     p.Elongation.Deg(),
			RangeWarning: p.RangeWarning,
		})
	}
	return export
}

func vecArray(v sphere.Vec3) [3]float64 {
	return [3]float64{v.X, v.Y, v.Z}
}

// WriteJSON writes the snapshot as indented JSON to the given writer.
func (s *SnapshotExport) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(s)
}

func fmtRA(ra unit.RA) string {
	return fmt.Sprintf("%2.1s", sexa.FmtRA(ra))
}

func fmtDec(a unit.Angle) string {
	return fmt.Sprintf("%2.0s", sexa.FmtAngle(a))
}

// WriteEphemerisTable writes a text table of the snapshot to the given
// writer.  The barycentre row has no geocentric columns.
func WriteEphemerisTable(w io.Writer, snap Snapshot) {
	fmt.Fprintf(w, "Almanac @ %s (MJD %.5f TDB)\n", snap.Time.Format(time.RFC3339), snap.MJD)
	fmt.Fprintln(w, strings.Repeat("─", 96))

	if len(snap.Bodies) == 0 {
		fmt.Fprintln(w, "No bodies requested")
		return
	}

	fmt.Fprintf(w, "%-9s %-15s %-13s %9s %9s %8s %7s %7s %s\n",
		"Body", "RA (J2000)", "Dec", "Delta AU", "r AU", "Lon", "Lat", "Elong", "")
	fmt.Fprintln(w, strings.Repeat("─", 96))

	warned := 0
	for _, p := range snap.Bodies {
		ra, dec, delta, elong := "—", "—", "—", "—"
		if p.DeltaAU > 0 {
			ra = fmtRA(p.RA)
			dec = fmtDec(p.Dec)
			delta = fmt.Sprintf("%9.4f", p.DeltaAU)
			elong = fmt.Sprintf("%6.1f°", p.Elongation.Deg())
		}
		flag := ""
		if p.RangeWarning {
			flag = "!"
			warned++
		}
		fmt.Fprintf(w, "%-9s %-15s %-13s %9s %9.4f %7.2f° %6.2f° %7s %s\n",
			p.Body, ra, dec, delta,
			p.RadiusAU, p.EclLon.Deg(), p.EclLat.Deg(), elong, flag)
	}

	fmt.Fprintf(w, "\nSun: RA %s  Dec %s  Delta %.6f AU\n",
		fmtRA(snap.SunRA), fmtDec(snap.SunDec), snap.SunDelta)
	if warned > 0 {
		fmt.Fprintln(w, "! epoch outside series validity; values are best effort")
	}
}

// WritePlanetCard writes a detailed card for one body: heliocentric
// state, geocentric places and, for Mercury through Neptune, the mean
// orbital elements behind the state.
func WritePlanetCard(w io.Writer, snap Snapshot, b ephem.Body) error {
	p := snap.Place(b)
	if p == nil {
		return fmt.Errorf("almanac: snapshot has no entry for %v", b)
	}

	fmt.Fprintf(w, "%s @ %s (MJD %.5f TDB)\n", b, snap.Time.Format(time.RFC3339), snap.MJD)
	fmt.Fprintln(w, strings.Repeat("─", 64))
	if p.RangeWarning {
		fmt.Fprintln(w, "! epoch outside series validity; values are best effort")
	}

	fmt.Fprintf(w, "Heliocentric (J2000 equatorial):\n")
	fmt.Fprintf(w, "  pos  %+.8f %+.8f %+.8f AU\n", p.State.Pos.X, p.State.Pos.Y, p.State.Pos.Z)
	fmt.Fprintf(w, "  vel  %+.6e %+.6e %+.6e AU/s\n", p.State.Vel.X, p.State.Vel.Y, p.State.Vel.Z)
	fmt.Fprintf(w, "  ecliptic lon %.4f°  lat %+.4f°  r %.6f AU\n",
		p.EclLon.Deg(), p.EclLat.Deg(), p.RadiusAU)

	if p.DeltaAU > 0 {
		fmt.Fprintf(w, "Geocentric:\n")
		fmt.Fprintf(w, "  mean place  RA %s  Dec %s\n", fmtRA(p.RA), fmtDec(p.Dec))
		fmt.Fprintf(w, "  true place  RA %s  Dec %s\n", fmtRA(p.TrueRA), fmtDec(p.TrueDec))
		fmt.Fprintf(w, "  distance %.6f AU (%.1f light-min)  elongation %.1f°\n",
			p.DeltaAU, lightMinutes(p.DeltaAU), p.Elongation.Deg())
	}

	if b >= ephem.Mercury && b <= ephem.Neptune {
		el, err := ephem.MeanElements(b, snap.MJD)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "Mean elements (J2000 ecliptic):\n")
		fmt.Fprintf(w, "  a %.7f AU   e %.7f   i %.4f°\n", el.Axis, el.Ecc, el.Incl.Deg())
		fmt.Fprintf(w, "  Ω %.4f°   ϖ %.4f°   L %.4f°\n", el.Node.Deg(), el.Peri.Deg(), el.MeanLon.Deg())
		fmt.Fprintf(w, "  n %.6e rad/day\n", el.Motion)
	}
	return nil
}

// lightMinutes converts a distance in AU into light travel minutes.
func lightMinutes(au float64) float64 {
	const c = 299792.458 // km/s
	return sphere.AUToKm(au) / c / 60
}

// WriteNutationReport writes the nutation components for the snapshot
// epoch.
func WriteNutationReport(w io.Writer, snap Snapshot) {
	n := snap.Nutation
	fmt.Fprintf(w, "Nutation @ %s (MJD %.5f TDB)\n", snap.Time.Format(time.RFC3339), snap.MJD)
	fmt.Fprintln(w, strings.Repeat("─", 48))
	fmt.Fprintf(w, "Δψ (longitude)     %+9.4f″\n", n.DPsi.Sec())
	fmt.Fprintf(w, "Δε (obliquity)     %+9.4f″\n", n.DEps.Sec())
	fmt.Fprintf(w, "ε0 (mean obliq.)   %s\n", fmtDec(n.Eps0))
	fmt.Fprintf(w, "ε  (true obliq.)   %s\n", fmtDec(n.TrueObliquity()))
	fmt.Fprintf(w, "equation of equinoxes %+8.4fˢ\n", n.DPsi.Sec()/15*n.Eps0.Cos())
}
