package notify

import (
	"bytes"
	"testing"
	"time"

	"github.com/gopxl/beep"
)

func TestRender_Length(t *testing.T) {
	sr := beep.SampleRate(8000)
	for _, c := range []Chime{ChimeWorkDone, ChimeBreakDone, ChimeAchievement} {
		buf, err := Render(sr, c)
		if err != nil {
			t.Fatalf("Render(%d): %v", c, err)
		}
		want := 0
		for _, n := range melody(c) {
			want += sr.N(n.dur) + sr.N(noteGap)
		}
		if buf.Len() != want {
			t.Errorf("Render(%d) len = %d, want %d", c, buf.Len(), want)
		}
	}
}

func TestRender_WorkAndBreakDiffer(t *testing.T) {
	w := melody(ChimeWorkDone)
	b := melody(ChimeBreakDone)
	if w[0].freq == b[0].freq {
		t.Error("work and break chimes should start on different notes")
	}
	if total := w[0].dur + w[1].dur + w[2].dur; total > time.Second {
		t.Errorf("chime too long: %v", total)
	}
}

func TestBell(t *testing.T) {
	var out bytes.Buffer
	n := New(Options{Bell: true, Out: &out})
	n.Chime(ChimeWorkDone)
	if got := out.String(); got != "\a\a\a" {
		t.Errorf("bell output = %q", got)
	}
}

func TestNew_Disabled(t *testing.T) {
	if _, ok := New(Options{}).(Nop); !ok {
		t.Error("no sound and no bell should be Nop")
	}
	if _, ok := New(Options{Sound: true}).(*Speaker); !ok {
		t.Error("sound enabled should be a Speaker")
	}
}
