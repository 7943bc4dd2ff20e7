package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	sexa "github.com/soniakeys/sexagesimal"
	"github.com/soniakeys/unit"

	"github.com/ThoMattheussen/NOTTControl-fork/internal/almanac"
	"github.com/ThoMattheussen/NOTTControl-fork/internal/ephem"
)

// Styles for the ephemeris table
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")).
			Background(lipgloss.Color("235")).
			Padding(0, 1)

	rowStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	selectedRowStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("229")).
				Background(lipgloss.Color("57"))

	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))
)

// TableModel is the ephemeris table view.
type TableModel struct {
	width    int
	height   int
	cursor   int
	showTrue bool // equinox-of-date places instead of J2000 mean
	snapshot almanac.Snapshot
	lastErr  error
}

// NewTableModel creates a new table model.
func NewTableModel() TableModel {
	return TableModel{}
}

// SetSize updates the viewport size.
func (m TableModel) SetSize(width, height int) TableModel {
	m.width = width
	m.height = height
	return m
}

// UpdateData updates the model with a new snapshot.
func (m TableModel) UpdateData(snapshot almanac.Snapshot) TableModel {
	m.snapshot = snapshot
	if m.cursor >= len(snapshot.Bodies) {
		m.cursor = 0
	}
	return m
}

// SetError sets the last error for display.
func (m TableModel) SetError(err error) TableModel {
	m.lastErr = err
	return m
}

// SelectedBody returns the body under the cursor.
func (m TableModel) SelectedBody() (ephem.Body, bool) {
	if m.cursor < 0 || m.cursor >= len(m.snapshot.Bodies) {
		return 0, false
	}
	return m.snapshot.Bodies[m.cursor].Body, true
}

// Update handles messages.
func (m TableModel) Update(msg tea.Msg) (TableModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		n := len(m.snapshot.Bodies)
		switch msg.String() {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < n-1 {
				m.cursor++
			}
		case "home":
			m.cursor = 0
		case "end":
			if n > 0 {
				m.cursor = n - 1
			}
		case "t":
			m.showTrue = !m.showTrue
		}
	}
	return m, nil
}

// View renders the table.
func (m TableModel) View() string {
	var b strings.Builder

	if m.lastErr != nil {
		b.WriteString(errorStyle.Render("Error: " + m.lastErr.Error()))
		b.WriteString("\n\n")
	}

	if len(m.snapshot.Bodies) == 0 {
		b.WriteString(rowStyle.Render("  No snapshot yet"))
		return b.String()
	}

	equinox := "J2000 mean"
	if m.showTrue {
		equinox = "true of date"
	}
	b.WriteString(titleStyle.Render(fmt.Sprintf("  Geocentric places (%s) · MJD %.5f TDB", equinox, m.snapshot.MJD)))
	b.WriteString("\n\n")

	header := fmt.Sprintf("%-9s %-15s %-13s %10s %9s %9s %8s %s",
		"Body", "RA", "Dec", "Delta AU", "r AU", "Ecl Lon", "Elong", "")
	b.WriteString("  " + headerStyle.Render(header))
	b.WriteString("\n")

	for i, p := range m.snapshot.Bodies {
		ra, dec := p.RA, p.Dec
		if m.showTrue {
			ra, dec = p.TrueRA, p.TrueDec
		}

		raCol, decCol, deltaCol, elongCol := "—", "—", "         —", "       —"
		if p.DeltaAU > 0 {
			raCol = fmt.Sprintf("%2.1s", sexa.FmtRA(ra))
			decCol = fmt.Sprintf("%2.0s", sexa.FmtAngle(dec))
			deltaCol = fmt.Sprintf("%10.4f", p.DeltaAU)
			elongCol = fmt.Sprintf("%7.1f°", p.Elongation.Deg())
		}
		flag := " "
		if p.RangeWarning {
			flag = "!"
		}

		row := fmt.Sprintf("%-9s %-15s %-13s %s %9.4f %8.2f° %s %s",
			p.Body, raCol, decCol, deltaCol, p.RadiusAU, p.EclLon.Deg(), elongCol, flag)

		style := rowStyle
		if i == m.cursor {
			style = selectedRowStyle
		} else if p.RangeWarning {
			style = warnStyle
		}
		b.WriteString("  " + style.Render(row))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(rowStyle.Render(fmt.Sprintf("  Sun  RA %2.1s  Dec %2.0s  Δψ %+.4f″  Δε %+.4f″",
		sexa.FmtRA(m.snapshot.SunRA),
		sexa.FmtAngle(m.snapshot.SunDec),
		m.snapshot.Nutation.DPsi.Sec(),
		m.snapshot.Nutation.DEps.Sec())))
	b.WriteString("\n")
	return b.String()
}

// raDecLabel formats a place compactly for HUD lines.
func raDecLabel(ra unit.RA, dec unit.Angle) string {
	return fmt.Sprintf("RA %5.2fh Dec %+6.2f°", ra.Hour(), dec.Deg())
}
