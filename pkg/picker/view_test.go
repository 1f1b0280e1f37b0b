package picker

import (
	"strings"
	"testing"

	"github.com/muesli/reflow/ansi"
)

func TestViewShowsAllCandidates(t *testing.T) {
	m := New(testCandidates())

	view := stripANSI(m.View())
	if !strings.Contains(view, "Select days:") {
		t.Errorf("view missing title: %q", view)
	}
	for _, day := range []string{"Monday", "Tuesday", "Wednesday"} {
		if !strings.Contains(view, day) {
			t.Errorf("view missing %s: %q", day, view)
		}
	}
}

func TestViewMarksSelection(t *testing.T) {
	m := New(testCandidates())

	if view := stripANSI(m.View()); strings.Contains(view, "[x]") {
		t.Fatalf("fresh view should have no selection marks: %q", view)
	}

	m = press(t, m, " ")
	view := stripANSI(m.View())
	if !strings.Contains(view, "[x]") {
		t.Errorf("view missing selection mark after toggle: %q", view)
	}
	if strings.Count(view, "[ ]") != 2 {
		t.Errorf("expected two unselected marks, view: %q", view)
	}
}

func TestViewMovesCursorMarker(t *testing.T) {
	m := New(testCandidates())
	m = press(t, m, "down")

	lines := strings.Split(stripANSI(m.View()), "\n")
	var marked []string
	for _, l := range lines {
		if strings.HasPrefix(l, "→") {
			marked = append(marked, l)
		}
	}
	if len(marked) != 1 {
		t.Fatalf("expected exactly one cursor line, got %d", len(marked))
	}
	if !strings.Contains(marked[0], "Tuesday") {
		t.Errorf("cursor should sit on Tuesday, got %q", marked[0])
	}
}

func stripANSI(s string) string {
	var b strings.Builder
	ansiSeq := false
	for _, r := range s {
		if r == ansi.Marker {
			ansiSeq = true
			continue
		}
		if ansiSeq {
			if ansi.IsTerminator(r) {
				ansiSeq = false
			}
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
