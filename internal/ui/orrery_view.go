package ui

import (
	"fmt"
	"math"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ThoMattheussen/NOTTControl-fork/internal/almanac"
	"github.com/ThoMattheussen/NOTTControl-fork/internal/ephem"
	"github.com/ThoMattheussen/NOTTControl-fork/internal/sphere"
)

// LabelMode controls which body labels are drawn on a canvas view.
type LabelMode int

const (
	LabelNone LabelMode = iota
	LabelFocused
	LabelAll
)

// OrreryModel renders a top-down plan view of the solar system.
type OrreryModel struct {
	width    int
	height   int
	snapshot almanac.Snapshot

	// View state
	focusIdx   int // index into snapshot.Bodies (-1 = Sun)
	zoomLevel  int // index into zoomLevels
	panX       float64
	panY       float64
	scaleMode  sphere.ScaleMode
	labelMode  LabelMode
	userPanned bool
}

// Discrete zoom levels for clean stepping
var zoomLevels = []float64{0.25, 0.5, 0.75, 1.0, 1.5, 2.0, 3.0, 5.0, 10.0}

// NewOrreryModel creates a new orrery view model.
func NewOrreryModel() OrreryModel {
	return OrreryModel{
		focusIdx:  -1,
		zoomLevel: 3, // 1.0x
		scaleMode: sphere.ScaleLogR,
		labelMode: LabelFocused,
	}
}

func (m OrreryModel) scale() float64 {
	if m.zoomLevel < 0 || m.zoomLevel >= len(zoomLevels) {
		return 1.0
	}
	return zoomLevels[m.zoomLevel]
}

// SetSize updates the viewport size.
func (m OrreryModel) SetSize(width, height int) OrreryModel {
	m.width = width
	m.height = height
	return m
}

// UpdateData updates the model with a new snapshot.
func (m OrreryModel) UpdateData(snapshot almanac.Snapshot) OrreryModel {
	m.snapshot = snapshot
	if m.focusIdx >= len(snapshot.Bodies) {
		m.focusIdx = -1
	}
	return m
}

// Update handles input messages.
func (m OrreryModel) Update(msg tea.Msg) (OrreryModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "j", "[":
			m.focusPrev()
		case "k", "]":
			m.focusNext()

		case "up":
			m.panY -= 0.1 / m.scale()
			m.userPanned = true
		case "down":
			m.panY += 0.1 / m.scale()
			m.userPanned = true
		case "left":
			m.panX -= 0.1 / m.scale()
			m.userPanned = true
		case "right":
			m.panX += 0.1 / m.scale()
			m.userPanned = true
		case "c":
			m.panX, m.panY = 0, 0
			m.userPanned = false

		case "+", "=":
			if m.zoomLevel < len(zoomLevels)-1 {
				m.zoomLevel++
				if !m.userPanned {
					m.centerOnFocused()
				}
			}
		case "-":
			if m.zoomLevel > 0 {
				m.zoomLevel--
				if !m.userPanned {
					m.centerOnFocused()
				}
			}
		case "0":
			m.zoomLevel = 3
			if !m.userPanned {
				m.centerOnFocused()
			}

		case "z":
			m.scaleMode = (m.scaleMode + 1) % 3
			if !m.userPanned {
				m.centerOnFocused()
			}

		case "l":
			m.labelMode = (m.labelMode + 1) % 3

		case "r":
			m.panX, m.panY = 0, 0
			m.zoomLevel = 3
			m.userPanned = false
		}
	}
	return m, nil
}

func (m *OrreryModel) focusNext() {
	if len(m.snapshot.Bodies) == 0 {
		return
	}
	m.focusIdx++
	if m.focusIdx >= len(m.snapshot.Bodies) {
		m.focusIdx = -1 // wrap to Sun
	}
	m.centerOnFocused()
	m.userPanned = false
}

func (m *OrreryModel) focusPrev() {
	if len(m.snapshot.Bodies) == 0 {
		return
	}
	m.focusIdx--
	if m.focusIdx < -1 {
		m.focusIdx = len(m.snapshot.Bodies) - 1
	}
	m.centerOnFocused()
	m.userPanned = false
}

func (m *OrreryModel) centerOnFocused() {
	if m.focusIdx < 0 || m.focusIdx >= len(m.snapshot.Bodies) {
		m.panX, m.panY = 0, 0
		return
	}
	cfg := sphere.ProjectionConfig{Scale: m.scale(), Mode: m.scaleMode}
	proj := sphere.ProjectEclipticTopDown(m.snapshot.Bodies[m.focusIdx].EclPos, cfg)
	m.panX = -proj.X
	m.panY = -proj.Y
}

// View renders the orrery.
func (m OrreryModel) View() string {
	if m.width < 40 || m.height < 10 {
		return "Terminal too small for orrery view"
	}
	return lipgloss.JoinVertical(lipgloss.Left, m.buildCanvas(), m.renderHUD())
}

// bodyPos tracks a body's screen position for label rendering.
type bodyPos struct {
	x, y      int
	name      string
	isFocused bool
}

func (m OrreryModel) buildCanvas() string {
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

	screenCenterX := canvasW / 2
	screenCenterY := canvasH / 2

	cfg := sphere.ProjectionConfig{Scale: m.scale(), Mode: m.scaleMode}

	// Map log(30 AU + 1) ~ 1.5 display units to most of the half-canvas.
	maxDisplayR := float64(minInt(screenCenterX, screenCenterY*2)) * 0.9
	displayScale := maxDisplayR / 1.5

	originX := screenCenterX + int(m.panX*displayScale)
	originY := screenCenterY - int(m.panY*displayScale*0.5)

	m.drawOrbitRings(grid, originX, originY, displayScale, cfg)

	var positions []bodyPos
	for i, p := range m.snapshot.Bodies {
		proj := sphere.ProjectEclipticTopDown(p.EclPos, cfg)

		sx := originX + int(proj.X*displayScale)
		sy := originY - int(proj.Y*displayScale*0.5) // aspect correction

		if sx < 0 || sx >= canvasW || sy < 0 || sy >= canvasH {
			continue
		}

		grid[sy][sx] = bodyGlyph(p.Body, i == m.focusIdx)
		positions = append(positions, bodyPos{
			x:         sx,
			y:         sy,
			name:      p.Body.String(),
			isFocused: i == m.focusIdx,
		})
	}

	// Sun last so it stays visible at the origin.
	if originX >= 0 && originX < canvasW && originY >= 0 && originY < canvasH {
		grid[originY][originX] = '☉'
		positions = append(positions, bodyPos{
			x: originX, y: originY, name: "Sun", isFocused: m.focusIdx == -1,
		})
	}

	m.renderLabels(grid, canvasW, canvasH, positions)
	return renderGrid(grid)
}

func (m OrreryModel) drawOrbitRings(grid [][]rune, cx, cy int, scale float64, cfg sphere.ProjectionConfig) {
	orbitAUs := []float64{1, 5, 10, 20, 30, 40}
	for _, au := range orbitAUs {
		proj := sphere.ProjectEclipticTopDown(sphere.Vec3{X: au}, cfg)
		drawCircle(grid, cx, cy, proj.X*scale)
	}
}

func drawCircle(grid [][]rune, cx, cy int, r float64) {
	if r < 1 {
		return
	}
	h := len(grid)
	w := len(grid[0])

	steps := int(2 * math.Pi * r)
	if steps < 8 {
		steps = 8
	}
	if steps > 360 {
		steps = 360
	}
	for i := 0; i < steps; i++ {
		theta := 2 * math.Pi * float64(i) / float64(steps)
		x := cx + int(r*math.Cos(theta))
		y := cy - int(r*math.Sin(theta)*0.5) // aspect ratio correction
		if x >= 0 && x < w && y >= 0 && y < h && grid[y][x] == ' ' {
			grid[y][x] = '·'
		}
	}
}

func (m OrreryModel) renderLabels(grid [][]rune, width, height int, positions []bodyPos) {
	if m.labelMode == LabelNone {
		return
	}
	for _, pos := range positions {
		show := m.labelMode == LabelAll || pos.isFocused
		if !show {
			continue
		}

		labelX := pos.x + 2
		labelY := pos.y
		if labelY < 0 || labelY >= height || labelX >= width {
			continue
		}

		labelText := pos.name
		if pos.isFocused {
			labelText = "◄ " + pos.name
		}
		for i, r := range labelText {
			x := labelX + i
			if x >= width {
				break
			}
			if grid[labelY][x] == ' ' || grid[labelY][x] == '·' {
				grid[labelY][x] = r
			}
		}
	}
}

func bodyGlyph(b ephem.Body, focused bool) rune {
	giant := b >= ephem.Jupiter && b <= ephem.Neptune
	switch {
	case giant && focused:
		return '◉'
	case giant:
		return '○'
	case focused:
		return '●'
	default:
		return '•'
	}
}

// renderGrid converts a rune canvas to a styled string.
func renderGrid(grid [][]rune) string {
	var b strings.Builder

	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	sunStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Bold(true)
	planetStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	giantStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("208"))
	focusStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Bold(true)
	labelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("249"))

	for _, row := range grid {
		for _, ch := range row {
			var style lipgloss.Style
			switch ch {
			case ' ':
				b.WriteRune(ch)
				continue
			case '·':
				style = dimStyle
			case '☉':
				style = sunStyle
			case '•':
				style = planetStyle
			case '○':
				style = giantStyle
			case '●', '◉', '◆', '◄':
				style = focusStyle
			case '+':
				style = dimStyle
			case '◇':
				style = planetStyle
			default:
				style = labelStyle
			}
			b.WriteString(style.Render(string(ch)))
		}
		b.WriteRune('\n')
	}
	return b.String()
}

func (m OrreryModel) renderHUD() string {
	var b strings.Builder

	hudHeaderStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	labelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	valueStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

	if m.focusIdx >= 0 && m.focusIdx < len(m.snapshot.Bodies) {
		p := m.snapshot.Bodies[m.focusIdx]
		b.WriteString(hudHeaderStyle.Render(fmt.Sprintf("◆ %s", p.Body)))
		b.WriteString("  ")
		b.WriteString(labelStyle.Render("r: "))
		b.WriteString(valueStyle.Render(fmt.Sprintf("%.3f AU", p.RadiusAU)))
		b.WriteString("  ")
		b.WriteString(labelStyle.Render("Ecl Lon: "))
		b.WriteString(valueStyle.Render(fmt.Sprintf("%.1f°", p.EclLon.Deg())))
		b.WriteString("  ")
		b.WriteString(labelStyle.Render("Ecl Lat: "))
		b.WriteString(valueStyle.Render(fmt.Sprintf("%+.1f°", p.EclLat.Deg())))
		if p.RangeWarning {
			b.WriteString("  ")
			b.WriteString(warnStyle.Render("outside series span"))
		}
	} else {
		b.WriteString(hudHeaderStyle.Render("☉ Sun"))
		b.WriteString("  ")
		b.WriteString(dimStyle.Render("(heliocentric origin)"))
	}
	b.WriteString("\n")

	modeName := "Log"
	switch m.scaleMode {
	case sphere.ScaleInner:
		modeName = "Inner"
	case sphere.ScaleOuter:
		modeName = "Outer"
	}
	labelName := [...]string{"off", "focus", "all"}[m.labelMode]

	b.WriteString(dimStyle.Render("Mode: "))
	b.WriteString(valueStyle.Render(modeName))
	b.WriteString("  ")
	b.WriteString(dimStyle.Render("Zoom: "))
	b.WriteString(valueStyle.Render(fmt.Sprintf("%.2gx", m.scale())))
	b.WriteString("  ")
	b.WriteString(dimStyle.Render("Labels: "))
	b.WriteString(valueStyle.Render(labelName))
	return b.String()
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
