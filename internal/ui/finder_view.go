package ui

import (
	"fmt"
	"math"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/soniakeys/unit"

	"github.com/ThoMattheussen/NOTTControl-fork/internal/almanac"
	"github.com/ThoMattheussen/NOTTControl-fork/internal/ephem"
	"github.com/ThoMattheussen/NOTTControl-fork/internal/sphere"
)

// Field half-widths in degrees for the finder chart.
var fieldWidths = []float64{1, 2, 5, 10, 20, 45, 90}

// finderMark is one body plotted (or rejected) by the projection.
type finderMark struct {
	body   ephem.Body
	xiDeg  float64 // tangent-plane east offset, degrees
	etaDeg float64 // tangent-plane north offset, degrees
	status sphere.ProjStatus
}

// FinderModel renders a gnomonic chart of geocentric places around a
// chosen center body, the way a finder scope would frame the field.
type FinderModel struct {
	width    int
	height   int
	snapshot almanac.Snapshot

	center    ephem.Body
	fieldIdx  int
	focusIdx  int // index into the plotted marks
	labelMode LabelMode

	marks []finderMark
}

// NewFinderModel creates a finder view centered on the given body.
func NewFinderModel(center ephem.Body) FinderModel {
	if !center.Valid() {
		center = ephem.Mars
	}
	return FinderModel{
		center:    center,
		fieldIdx:  4, // 20 degrees
		labelMode: LabelAll,
	}
}

// SetSize updates the viewport size.
func (m FinderModel) SetSize(width, height int) FinderModel {
	m.width = width
	m.height = height
	return m
}

// SetCenter re-centers the chart on a body.
func (m FinderModel) SetCenter(b ephem.Body) FinderModel {
	if b.Valid() {
		m.center = b
		m.marks = m.project()
	}
	return m
}

// UpdateData updates the model with a new snapshot.
func (m FinderModel) UpdateData(snapshot almanac.Snapshot) FinderModel {
	m.snapshot = snapshot
	m.marks = m.project()
	if m.focusIdx >= len(m.marks) {
		m.focusIdx = 0
	}
	return m
}

// project computes tangent-plane offsets of every body in the snapshot
// against the current center.  Degenerate projections are kept with
// their status so the HUD can report them.
func (m FinderModel) project() []finderMark {
	c := m.snapshot.Place(m.center)
	if c == nil || c.DeltaAU == 0 {
		return nil
	}
	lon0 := unit.Angle(c.RA.Rad())
	lat0 := c.Dec

	var marks []finderMark
	for _, p := range m.snapshot.Bodies {
		if p.Body == m.center || p.DeltaAU == 0 {
			continue
		}
		xi, eta, st := sphere.ProjectToTangentPlane(unit.Angle(p.RA.Rad()), p.Dec, lon0, lat0)
		marks = append(marks, finderMark{
			body:   p.Body,
			xiDeg:  xi * 180 / math.Pi,
			etaDeg: eta * 180 / math.Pi,
			status: st,
		})
	}
	return marks
}

// Update handles input messages.
func (m FinderModel) Update(msg tea.Msg) (FinderModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "c":
			m = m.cycleCenter(1)
		case "C":
			m = m.cycleCenter(-1)
		case "j":
			if len(m.marks) > 0 {
				m.focusIdx = (m.focusIdx + 1) % len(m.marks)
			}
		case "k":
			if len(m.marks) > 0 {
				m.focusIdx = (m.focusIdx - 1 + len(m.marks)) % len(m.marks)
			}
		case "+", "=":
			if m.fieldIdx > 0 {
				m.fieldIdx-- // narrower field = more magnification
			}
		case "-":
			if m.fieldIdx < len(fieldWidths)-1 {
				m.fieldIdx++
			}
		case "l":
			m.labelMode = (m.labelMode + 1) % 3
		}
	}
	return m, nil
}

func (m FinderModel) cycleCenter(dir int) FinderModel {
	bodies := m.snapshot.Bodies
	if len(bodies) == 0 {
		return m
	}
	cur := 0
	for i, p := range bodies {
		if p.Body == m.center {
			cur = i
			break
		}
	}
	for i := 0; i < len(bodies); i++ {
		cur = (cur + dir + len(bodies)) % len(bodies)
		if bodies[cur].DeltaAU > 0 {
			return m.SetCenter(bodies[cur].Body)
		}
	}
	return m
}

// View renders the finder chart.
func (m FinderModel) View() string {
	if m.width < 40 || m.height < 10 {
		return "Terminal too small for finder view"
	}
	return lipgloss.JoinVertical(lipgloss.Left, m.buildCanvas(), m.renderHUD())
}

func (m FinderModel) buildCanvas() string {
	canvasH := m.height - 4
	if canvasH < 5 {
		canvasH = 5
	}
	canvasW := m.width

	grid := make([][]rune, canvasH)
	for y := range grid {
		grid[y] = make([]rune, canvasW)
		for x := range grid[y] {
			grid[y][x] = ' '
		}
	}

	cx := canvasW / 2
	cy := canvasH / 2
	halfField := fieldWidths[m.fieldIdx]

	// Degrees per cell: the field half-width spans the smaller half-axis.
	scale := float64(minInt(cx, cy*2)) / halfField

	// Chart frame: crosshair at the tangent point, ticks at the field edge.
	grid[cy][cx] = '+'
	for _, dx := range []int{-1, 1} {
		x := cx + int(float64(dx)*halfField*scale)
		if x >= 0 && x < canvasW {
			grid[cy][x] = '|'
		}
	}
	for _, dy := range []int{-1, 1} {
		y := cy - int(float64(dy)*halfField*scale*0.5)
		if y >= 0 && y < canvasH {
			grid[y][cx] = '─'
		}
	}

	var positions []bodyPos
	for i, mk := range m.marks {
		if !mk.status.OK() {
			continue
		}
		// East (+xi) is to the left on a sky chart with north up.
		sx := cx - int(mk.xiDeg*scale)
		sy := cy - int(mk.etaDeg*scale*0.5)
		if sx < 0 || sx >= canvasW || sy < 0 || sy >= canvasH {
			continue
		}
		focused := i == m.focusIdx
		if focused {
			grid[sy][sx] = '◆'
		} else {
			grid[sy][sx] = '◇'
		}
		positions = append(positions, bodyPos{
			x: sx, y: sy, name: mk.body.String(), isFocused: focused,
		})
	}

	if m.labelMode != LabelNone {
		for _, pos := range positions {
			if m.labelMode == LabelFocused && !pos.isFocused {
				continue
			}
			labelX := pos.x + 2
			if pos.y < 0 || pos.y >= canvasH {
				continue
			}
			for i, r := range pos.name {
				x := labelX + i
				if x >= canvasW {
					break
				}
				if grid[pos.y][x] == ' ' {
					grid[pos.y][x] = r
				}
			}
		}
	}

	return renderGrid(grid)
}

func (m FinderModel) renderHUD() string {
	var b strings.Builder

	hudHeaderStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	labelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	valueStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

	b.WriteString(hudHeaderStyle.Render(fmt.Sprintf("+ %s", m.center)))
	if c := m.snapshot.Place(m.center); c != nil && c.DeltaAU > 0 {
		b.WriteString("  ")
		b.WriteString(valueStyle.Render(raDecLabel(c.RA, c.Dec)))
	}
	b.WriteString("  ")
	b.WriteString(labelStyle.Render("Field: "))
	b.WriteString(valueStyle.Render(fmt.Sprintf("±%.0f°", fieldWidths[m.fieldIdx])))
	b.WriteString("\n")

	if m.focusIdx < len(m.marks) && len(m.marks) > 0 {
		mk := m.marks[m.focusIdx]
		b.WriteString(labelStyle.Render(fmt.Sprintf("◆ %-9s", mk.body)))
		if mk.status.OK() {
			b.WriteString(valueStyle.Render(fmt.Sprintf("ξ %+8.3f°  η %+8.3f°", mk.xiDeg, mk.etaDeg)))
		} else {
			b.WriteString(warnStyle.Render(mk.status.String()))
		}
	}

	// Count how much of the field survived the projection.
	off := 0
	for _, mk := range m.marks {
		if !mk.status.OK() {
			off++
		}
	}
	if off > 0 {
		b.WriteString("  ")
		b.WriteString(dimStyle.Render(fmt.Sprintf("(%d bodies outside the projectable hemisphere)", off)))
	}
	return b.String()
}
