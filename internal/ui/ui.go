// Package ui provides the terminal user interface using Bubble Tea.
package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ThoMattheussen/NOTTControl-fork/internal/almanac"
	"github.com/ThoMattheussen/NOTTControl-fork/internal/ephem"
	"github.com/ThoMattheussen/NOTTControl-fork/internal/version"
)

// ViewMode represents the current UI view.
type ViewMode int

const (
	ViewTable ViewMode = iota
	ViewOrrery
	ViewFinder
)

// Msg types for Bubble Tea
type (
	// TickMsg triggers periodic UI updates.
	TickMsg time.Time

	// DataUpdateMsg signals a freshly computed snapshot.
	DataUpdateMsg struct {
		Status almanac.Status
	}

	// ErrorMsg signals a compute error.
	ErrorMsg struct {
		Error error
	}
)

// Model is the root Bubble Tea model.
type Model struct {
	mgr *almanac.Manager

	// UI state
	viewMode ViewMode
	width    int
	height   int
	ready    bool
	animTick int

	// Sub-models
	table  TableModel
	orrery OrreryModel
	finder FinderModel

	// Data
	status almanac.Status
}

// New creates a new root UI model.  The finder view starts centered on
// the given body.
func New(mgr *almanac.Manager, finderCenter ephem.Body) Model {
	return Model{
		mgr:      mgr,
		viewMode: ViewTable,
		table:    NewTableModel(),
		orrery:   NewOrreryModel(),
		finder:   NewFinderModel(finderCenter),
	}
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tickCmd()
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit

		case "1", "e":
			m.viewMode = ViewTable
		case "2", "o":
			m.viewMode = ViewOrrery
		case "3", "f":
			// Entering the finder centers it on the table selection.
			if m.viewMode == ViewTable {
				if b, ok := m.table.SelectedBody(); ok {
					m.finder = m.finder.SetCenter(b)
				}
			}
			m.viewMode = ViewFinder

		case "tab":
			m.viewMode = (m.viewMode + 1) % 3

		default:
			cmds = append(cmds, m.updateActiveView(msg))
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true

		// Logo takes ~8 lines, footer ~2 lines.
		contentHeight := msg.Height - 12
		m.table = m.table.SetSize(msg.Width, contentHeight)
		m.orrery = m.orrery.SetSize(msg.Width, contentHeight)
		m.finder = m.finder.SetSize(msg.Width, contentHeight)

	case TickMsg:
		cmds = append(cmds, tickCmd())
		m.animTick++
		m.status = m.mgr.Status()

	case DataUpdateMsg:
		m.status = msg.Status
		m.table = m.table.UpdateData(m.status.Snapshot)
		m.orrery = m.orrery.UpdateData(m.status.Snapshot)
		m.finder = m.finder.UpdateData(m.status.Snapshot)

	case ErrorMsg:
		m.table = m.table.SetError(msg.Error)

	default:
		cmds = append(cmds, m.updateActiveView(msg))
	}

	return m, tea.Batch(cmds...)
}

func (m *Model) updateActiveView(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch m.viewMode {
	case ViewTable:
		m.table, cmd = m.table.Update(msg)
	case ViewOrrery:
		m.orrery, cmd = m.orrery.Update(msg)
	case ViewFinder:
		m.finder, cmd = m.finder.Update(msg)
	}
	return cmd
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	var content string
	switch m.viewMode {
	case ViewTable:
		content = m.table.View()
	case ViewOrrery:
		content = m.orrery.View()
	case ViewFinder:
		content = m.finder.View()
	}

	return m.renderHeader() + "\n" + content + "\n" + m.renderFooter()
}

func (m Model) renderHeader() string {
	return m.renderLogo() + m.renderTabs() + "\n"
}

func (m Model) renderLogo() string {
	logo := []string{
		`  ███╗   ██╗ ██████╗ ████████╗████████╗`,
		`  ████╗  ██║██╔═══██╗╚══██╔══╝╚══██╔══╝`,
		`  ██╔██╗ ██║██║   ██║   ██║      ██║   `,
		`  ██║╚██╗██║██║   ██║   ██║      ██║   `,
		`  ██║ ╚████║╚██████╔╝   ██║      ██║   `,
		`  ╚═╝  ╚═══╝ ╚═════╝    ╚═╝      ╚═╝   `,
	}

	var b strings.Builder
	b.WriteString("\n")
	for row, line := range logo {
		runes := []rune(line)
		for col, r := range runes {
			color := gradientColor(col, row, len(runes), len(logo))
			style := lipgloss.NewStyle().Foreground(lipgloss.Color(color))
			b.WriteString(style.Render(string(r)))
		}
		b.WriteString("\n")
	}

	muted := lipgloss.NewStyle().Foreground(lipgloss.Color("60"))
	b.WriteString(muted.Render(fmt.Sprintf("  Solar System Almanac · v%s", version.Version)))
	b.WriteString("\n\n")
	return b.String()
}

// gradientColor returns a hex color for a position in the logo gradient:
// blue through purple to pink, fading toward the bottom rows.
func gradientColor(col, row, width, height int) string {
	xRatio := float64(col) / float64(width)
	yRatio := float64(row) / float64(height)

	var r, g, b float64
	switch {
	case xRatio < 0.5:
		t := xRatio / 0.5
		r = 59 + t*(139-59)
		g = 130 + t*(92-130)
		b = 246
	default:
		t := (xRatio - 0.5) / 0.5
		r = 139 + t*(236-139)
		g = 92 + t*(72-92)
		b = 246 + t*(153-246)
	}

	fade := 1.0 - yRatio*0.5
	ri := clampByte(r * fade)
	gi := clampByte(g * fade)
	bi := clampByte(b * fade)
	return fmt.Sprintf("#%02X%02X%02X", ri, gi, bi)
}

func clampByte(v float64) int {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return int(v)
}

func (m Model) renderTabs() string {
	tabs := []string{"[1] Ephemeris", "[2] Orrery", "[3] Finder"}
	activeStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#9D4EDD")).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("60"))

	var parts []string
	for i, tab := range tabs {
		if ViewMode(i) == m.viewMode {
			parts = append(parts, activeStyle.Render("▶ "+tab))
		} else {
			parts = append(parts, dimStyle.Render("  "+tab))
		}
	}
	return "  " + strings.Join(parts, "  ")
}

func (m Model) renderFooter() string {
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("60"))
	errorStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#E84A27"))
	accentStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#7B2CBF"))

	spinnerFrames := []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}
	spinner := spinnerFrames[m.animTick%len(spinnerFrames)]

	var status string
	switch {
	case m.status.LastError != nil:
		status = errorStyle.Render("ERROR: " + m.status.LastError.Error())
	case m.status.HasData:
		countdown := time.Until(m.status.NextRefresh).Round(time.Second)
		if countdown < 0 {
			countdown = 0
		}
		status = accentStyle.Render(spinner) +
			dimStyle.Render(fmt.Sprintf(" next epoch in %ds", int(countdown.Seconds())))
		if m.status.ComputeDuration > 0 {
			status += dimStyle.Render(" (" + m.status.ComputeDuration.Round(time.Microsecond).String() + ")")
		}
	default:
		status = accentStyle.Render(spinner) + dimStyle.Render(" computing first snapshot...")
	}

	var help string
	switch m.viewMode {
	case ViewOrrery:
		help = dimStyle.Render("j/k: focus | +/-: zoom | arrows: pan | z: scale | l: labels | r: reset")
	case ViewFinder:
		help = dimStyle.Render("c/C: center | j/k: focus | +/-: field | l: labels")
	default:
		help = dimStyle.Render("↑↓: navigate | t: true/mean | f: finder | tab: switch view")
	}

	return "  " + status + "  " + dimStyle.Render("|") + "  " + help
}
