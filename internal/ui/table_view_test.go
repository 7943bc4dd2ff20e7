package ui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ThoMattheussen/NOTTControl-fork/internal/ephem"
)

func TestTableViewRender(t *testing.T) {
	m := NewTableModel().SetSize(100, 30).UpdateData(testSnapshot())
	out := m.View()

	for _, want := range []string{"J2000 mean", "MJD 60324.5", "Mars", "Jupiter", "Venus", "Sun", "Δψ"} {
		if !strings.Contains(out, want) {
			t.Errorf("table view missing %q:\n%s", want, out)
		}
	}
}

func TestTableViewEmpty(t *testing.T) {
	m := NewTableModel().SetSize(100, 30)
	if out := m.View(); !strings.Contains(out, "No snapshot yet") {
		t.Errorf("empty table view = %q", out)
	}
}

func TestTableViewError(t *testing.T) {
	m := NewTableModel().SetSize(100, 30).SetError(errors.New("compute failed"))
	if out := m.View(); !strings.Contains(out, "compute failed") {
		t.Error("table view should surface the last error")
	}
}

func TestTableViewCursor(t *testing.T) {
	m := NewTableModel().SetSize(100, 30).UpdateData(testSnapshot())

	if b, ok := m.SelectedBody(); !ok || b != ephem.Mars {
		t.Fatalf("initial selection = %v, %v", b, ok)
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("j")})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("j")})
	if b, _ := m.SelectedBody(); b != ephem.Venus {
		t.Errorf("after two downs: selection = %v, want Venus", b)
	}

	// Cursor pinned at the last row.
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("j")})
	if b, _ := m.SelectedBody(); b != ephem.Venus {
		t.Errorf("cursor ran past the last row: %v", b)
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyHome})
	if b, _ := m.SelectedBody(); b != ephem.Mars {
		t.Errorf("home: selection = %v, want Mars", b)
	}
}

func TestTableViewTrueToggle(t *testing.T) {
	m := NewTableModel().SetSize(100, 30).UpdateData(testSnapshot())

	if !strings.Contains(m.View(), "J2000 mean") {
		t.Fatal("table should start on mean places")
	}
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("t")})
	if !strings.Contains(m.View(), "true of date") {
		t.Error("t should switch to true-of-date places")
	}
}

func TestTableViewCursorClampOnUpdate(t *testing.T) {
	m := NewTableModel().SetSize(100, 30).UpdateData(testSnapshot())
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnd})

	short := testSnapshot()
	short.Bodies = short.Bodies[:1]
	m = m.UpdateData(short)

	if b, ok := m.SelectedBody(); !ok || b != ephem.Mars {
		t.Errorf("cursor not clamped after shrink: %v, %v", b, ok)
	}
}
