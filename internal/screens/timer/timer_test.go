package timer

import (
	"math/rand/v2"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/wolfchan/internal/ui/components"
	"github.com/abhisek/wolfchan/internal/progress"
	"github.com/abhisek/wolfchan/internal/session"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func newTimer() (*Screen, *session.Scheduler) {
	sched := session.NewScheduler(session.Config{
		Work:         4 * time.Second,
		Break:        2 * time.Second,
		GameInterval: 10 * time.Second,
		Tick:         time.Second,
	})
	agg := progress.NewAggregator(progress.DefaultConfig())
	return New(sched, agg, rand.New(rand.NewPCG(1, 1))), sched
}

func TestTimer_SpaceToggles(t *testing.T) {
	s, sched := newTimer()
	s.Update(tea.KeyPressMsg{Code: tea.KeySpace})
	if !sched.Running() {
		t.Fatal("space should start the timer")
	}
	if v := s.View(80, 30); !strings.Contains(v, "Running") || !strings.Contains(v, "Pause") {
		t.Error("view should show running with a pause control")
	}
	s.Update(tea.KeyPressMsg{Code: tea.KeySpace})
	if sched.Running() {
		t.Error("second space should pause")
	}
}

func TestTimer_ResetRestoresDuration(t *testing.T) {
	s, sched := newTimer()
	sched.Start()
	sched.Tick()
	s.Update(keyPress('r'))
	if sched.Running() || sched.Remaining() != 4 || sched.Elapsed() != 0 {
		t.Errorf("after reset running=%v remaining=%d elapsed=%d", sched.Running(), sched.Remaining(), sched.Elapsed())
	}
}

func TestTimer_RequestMessages(t *testing.T) {
	s, sched := newTimer()
	tests := []struct {
		key  rune
		want tea.Msg
	}{
		{'p', OpenProgressMsg{}},
		{'h', OpenHistoryMsg{}},
		{'g', TriggerGameMsg{}},
	}
	for _, tt := range tests {
		_, cmd := s.Update(keyPress(tt.key))
		if cmd == nil {
			t.Fatalf("%c: expected a command", tt.key)
		}
		if got := cmd(); got != tt.want {
			t.Errorf("%c: msg = %#v, want %#v", tt.key, got, tt.want)
		}
	}

	sched.Start()
	for i := 0; i < 4; i++ {
		sched.Tick()
	}
	if sched.Mode() != session.ModeBreak {
		t.Fatal("expected break")
	}
	if _, cmd := s.Update(keyPress('g')); cmd != nil {
		t.Error("manual game trigger should be ignored during a break")
	}
}

func TestTimer_BreakShowsFact(t *testing.T) {
	s, sched := newTimer()
	if !strings.Contains(s.View(80, 30), "Next game in") {
		t.Error("work view should show the next game countdown")
	}
	sched.Start()
	for i := 0; i < 4; i++ {
		sched.Tick()
	}
	if !strings.Contains(s.View(100, 30), "Stand up") {
		t.Error("break view should show the first fact")
	}
}

func TestTimer_ConfettiRunsOut(t *testing.T) {
	s, _ := newTimer()
	if cmd := s.Celebrate("Pomodoro complete!"); cmd == nil {
		t.Fatal("celebrate should start frames")
	}
	if cmd := s.Celebrate("again"); cmd != nil {
		t.Error("a running burst should not start a second frame loop")
	}
	if !strings.Contains(s.View(80, 40), "again") {
		t.Error("banner should be shown")
	}
	frames := 0
	for s.Celebrating() && frames < components.ConfettiFrames+5 {
		s.Update(ConfettiMsg{owner: s})
		frames++
	}
	if s.Celebrating() {
		t.Error("burst should end")
	}
	if frames != components.ConfettiFrames {
		t.Errorf("frames = %d, want %d", frames, components.ConfettiFrames)
	}
}

func TestFactAt(t *testing.T) {
	if FactAt(0) != Facts[0] || FactAt(4*time.Second) != Facts[0] {
		t.Error("first interval shows the first fact")
	}
	if FactAt(FactInterval) != Facts[1] {
		t.Error("fact should rotate after the interval")
	}
	if FactAt(time.Duration(len(Facts))*FactInterval) != Facts[0] {
		t.Error("facts should wrap")
	}
}
