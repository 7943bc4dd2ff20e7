package ui

import (
	"strings"
	"testing"

	"github.com/ThoMattheussen/NOTTControl-fork/internal/ephem"
	"github.com/ThoMattheussen/NOTTControl-fork/internal/sphere"
)

func TestFinderProjection(t *testing.T) {
	m := NewFinderModel(ephem.Mars).SetSize(100, 30).UpdateData(testSnapshot())

	if len(m.marks) != 2 {
		t.Fatalf("marks = %d, want 2 (Jupiter and Venus)", len(m.marks))
	}

	var jupiter, venus *finderMark
	for i := range m.marks {
		switch m.marks[i].body {
		case ephem.Jupiter:
			jupiter = &m.marks[i]
		case ephem.Venus:
			venus = &m.marks[i]
		}
	}
	if jupiter == nil || venus == nil {
		t.Fatal("missing marks for Jupiter or Venus")
	}

	// Jupiter sits a few degrees east and north of Mars.
	if !jupiter.status.OK() {
		t.Errorf("Jupiter status = %v, want ok", jupiter.status)
	}
	if jupiter.xiDeg <= 0 || jupiter.etaDeg <= 0 {
		t.Errorf("Jupiter offsets (%.2f, %.2f), want both positive", jupiter.xiDeg, jupiter.etaDeg)
	}
	if jupiter.xiDeg > 10 || jupiter.etaDeg > 10 {
		t.Errorf("Jupiter offsets (%.2f, %.2f) implausibly large", jupiter.xiDeg, jupiter.etaDeg)
	}

	// Venus is placed near the antipode of Mars; the projection must
	// flag it rather than return garbage silently.
	if venus.status == sphere.ProjOK {
		t.Error("Venus near the antipode should not project cleanly")
	}
}

func TestFinderRender(t *testing.T) {
	m := NewFinderModel(ephem.Mars).SetSize(100, 30).UpdateData(testSnapshot())
	out := m.View()

	for _, want := range []string{"+ Mars", "Field", "Jupiter"} {
		if !strings.Contains(out, want) {
			t.Errorf("finder view missing %q:\n%s", want, out)
		}
	}
	if !strings.Contains(out, "outside the projectable hemisphere") {
		t.Error("HUD should count bodies rejected by the projection")
	}
}

func TestFinderCycleCenter(t *testing.T) {
	m := NewFinderModel(ephem.Mars).SetSize(100, 30).UpdateData(testSnapshot())

	m, _ = m.Update(key("c"))
	if m.center != ephem.Jupiter {
		t.Errorf("center after c = %v, want Jupiter", m.center)
	}
	m, _ = m.Update(key("C"))
	if m.center != ephem.Mars {
		t.Errorf("center after C = %v, want Mars", m.center)
	}
}

func TestFinderFieldWidth(t *testing.T) {
	m := NewFinderModel(ephem.Mars).SetSize(100, 30).UpdateData(testSnapshot())

	start := m.fieldIdx
	m, _ = m.Update(key("+"))
	if m.fieldIdx != start-1 {
		t.Errorf("+ should narrow the field: %d -> %d", start, m.fieldIdx)
	}
	for i := 0; i < 20; i++ {
		m, _ = m.Update(key("-"))
	}
	if m.fieldIdx != len(fieldWidths)-1 {
		t.Errorf("field widening not clamped: %d", m.fieldIdx)
	}
}

func TestFinderInvalidCenterDefaults(t *testing.T) {
	m := NewFinderModel(ephem.Body(0))
	if m.center != ephem.Mars {
		t.Errorf("invalid center should default to Mars, got %v", m.center)
	}
}

func TestFinderCenterWithoutGeocentricPlace(t *testing.T) {
	snap := testSnapshot()
	snap.Bodies[0].DeltaAU = 0 // Mars becomes unprojectable

	m := NewFinderModel(ephem.Mars).SetSize(100, 30).UpdateData(snap)
	if len(m.marks) != 0 {
		t.Errorf("marks = %d, want none when the center has no place", len(m.marks))
	}
	// View must still render.
	if m.View() == "" {
		t.Error("finder view should render without marks")
	}
}
