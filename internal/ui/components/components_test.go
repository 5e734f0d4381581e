package components

import (
	"math/rand/v2"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
)

func key(s string) tea.KeyPressMsg {
	switch s {
	case "enter":
		return tea.KeyPressMsg{Code: tea.KeyEnter}
	case "up":
		return tea.KeyPressMsg{Code: tea.KeyUp}
	case "down":
		return tea.KeyPressMsg{Code: tea.KeyDown}
	}
	r := []rune(s)[0]
	return tea.KeyPressMsg{Code: r, Text: s}
}

func TestMenu_SkipsDisabled(t *testing.T) {
	m := NewMenu([]MenuItem{
		{ID: "a", Label: "A", Disabled: true},
		{ID: "b", Label: "B"},
		{ID: "c", Label: "C", Disabled: true},
		{ID: "d", Label: "D"},
	})
	if m.Selected != 1 {
		t.Fatalf("initial selection = %d, want 1", m.Selected)
	}
	m, _ = m.Update(key("down"))
	if m.Selected != 3 {
		t.Errorf("after down = %d, want 3", m.Selected)
	}
	m, chosen := m.Update(key("enter"))
	if !chosen {
		t.Error("enter should choose")
	}
	if item, _ := m.Current(); item.ID != "d" {
		t.Errorf("current = %q, want d", item.ID)
	}
}

func TestMenu_NumberKeys(t *testing.T) {
	m := NewMenu([]MenuItem{{ID: "a"}, {ID: "b"}, {ID: "c"}})
	m, chosen := m.Update(key("3"))
	if !chosen || m.Selected != 2 {
		t.Errorf("chosen=%v selected=%d", chosen, m.Selected)
	}
	_, chosen = m.Update(key("9"))
	if chosen {
		t.Error("out of range number should not choose")
	}
}

func TestMenu_ViewShowsDetail(t *testing.T) {
	m := NewMenu([]MenuItem{{Label: "Trivia", Detail: "5 questions"}})
	if v := m.View(40); !strings.Contains(v, "Trivia") || !strings.Contains(v, "5 questions") {
		t.Errorf("view missing content: %q", v)
	}
}

func TestMultiChoice(t *testing.T) {
	mc := NewMultiChoice([]string{"w", "x", "y", "z"})
	mc, got := mc.Update(key("down"))
	if got != -1 || mc.Cursor != 1 {
		t.Fatalf("down: got=%d cursor=%d", got, mc.Cursor)
	}
	mc, got = mc.Update(key("c"))
	if got != 2 {
		t.Errorf("letter c = %d, want 2", got)
	}
	mc.Reveal(2, 1)
	if _, got := mc.Update(key("a")); got != -1 {
		t.Error("input should be ignored after reveal")
	}
	if !strings.Contains(mc.View(), "B)  x") {
		t.Error("view should list options")
	}
}

func TestProgressBar_Clamps(t *testing.T) {
	for _, pct := range []float64{-1, 0, 0.5, 2} {
		v := NewProgressBar("", pct, false, 20).View()
		if n := strings.Count(v, "█") + strings.Count(v, "░"); n != 20 {
			t.Errorf("pct %v: cells = %d, want 20", pct, n)
		}
	}
}

func TestFormatClock(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{25 * time.Minute, "25:00"},
		{61 * time.Second, "01:01"},
		{0, "00:00"},
		{-time.Second, "00:00"},
		{time.Hour + 5*time.Second, "1:00:05"},
	}
	for _, tt := range tests {
		if got := FormatClock(tt.d); got != tt.want {
			t.Errorf("FormatClock(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}

func TestBigClock_ThreeRows(t *testing.T) {
	out := BigClock("12:34")
	if rows := strings.Split(out, "\n"); len(rows) != 3 {
		t.Fatalf("rows = %d, want 3", len(rows))
	}
}

func TestConfetti_RunsToCompletion(t *testing.T) {
	c := NewConfetti(rand.New(rand.NewPCG(1, 1)))
	if len(c.pieces) != ConfettiPieces {
		t.Fatalf("pieces = %d", len(c.pieces))
	}
	for i := 0; i < ConfettiFrames; i++ {
		if c.Done() {
			t.Fatalf("done early at frame %d", i)
		}
		c.Step()
	}
	if !c.Done() {
		t.Error("expected done")
	}
	if rows := strings.Split(c.View(10, 4), "\n"); len(rows) != 4 {
		t.Errorf("view rows = %d", len(rows))
	}
}

func TestButtons(t *testing.T) {
	out := Buttons(Button{Key: "space", Label: "Start", Active: true}, Button{Key: "r", Label: "Reset"})
	if !strings.Contains(out, "[space]") || !strings.Contains(out, "Reset") {
		t.Errorf("buttons = %q", out)
	}
}
