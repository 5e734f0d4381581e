// Package notify plays the transition chimes.
package notify

import (
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

// Chime identifies which transition is being announced.
type Chime int

const (
	ChimeWorkDone  Chime = iota // Work → Break
	ChimeBreakDone              // Break → Work
	ChimeAchievement
)

// Notifier announces session transitions.
type Notifier interface {
	Chime(c Chime)
}

// Options configures New.
type Options struct {
	Sound  bool
	Bell   bool
	Out    io.Writer // bell destination
	Logger *slog.Logger
}

// New returns a speaker notifier when Sound is set, falling back to the
// terminal bell if the audio device cannot be opened.
func New(opts Options) Notifier {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	var bell Notifier = Nop{}
	if opts.Bell && opts.Out != nil {
		bell = &Bell{Out: opts.Out}
	}
	if !opts.Sound {
		return bell
	}
	return &Speaker{fallback: bell, logger: opts.Logger}
}

// Nop ignores all chimes.
type Nop struct{}

func (Nop) Chime(Chime) {}

// Bell writes BEL characters, one per note.
type Bell struct {
	Out io.Writer
}

func (b *Bell) Chime(c Chime) {
	n := len(melody(c))
	for i := 0; i < n; i++ {
		fmt.Fprint(b.Out, "\a")
	}
}

const sampleRate = beep.SampleRate(44100)

// Speaker plays synthesised tones on the default audio device.
type Speaker struct {
	fallback Notifier
	logger   *slog.Logger

	once    sync.Once
	initErr error
	mu      sync.Mutex
	buffers map[Chime]*beep.Buffer
}

func (s *Speaker) init() {
	s.initErr = speaker.Init(sampleRate, sampleRate.N(time.Second/10))
	if s.initErr != nil {
		s.logger.Warn("audio disabled", "error", s.initErr)
		return
	}
	s.buffers = make(map[Chime]*beep.Buffer)
}

func (s *Speaker) Chime(c Chime) {
	s.once.Do(s.init)
	if s.initErr != nil {
		s.fallback.Chime(c)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	buf, ok := s.buffers[c]
	if !ok {
		var err error
		buf, err = Render(sampleRate, c)
		if err != nil {
			s.logger.Warn("render chime failed", "chime", c, "error", err)
			s.fallback.Chime(c)
			return
		}
		s.buffers[c] = buf
	}
	speaker.Play(buf.Streamer(0, buf.Len()))
}

type note struct {
	freq float64
	dur  time.Duration
}

func melody(c Chime) []note {
	switch c {
	case ChimeWorkDone:
		return []note{{880, 180 * time.Millisecond}, {660, 180 * time.Millisecond}, {523.25, 300 * time.Millisecond}}
	case ChimeBreakDone:
		return []note{{523.25, 180 * time.Millisecond}, {660, 180 * time.Millisecond}, {880, 300 * time.Millisecond}}
	default:
		return []note{{1046.5, 120 * time.Millisecond}, {1318.5, 240 * time.Millisecond}}
	}
}

// noteGap is the silence between notes.
const noteGap = 40 * time.Millisecond

// Render synthesises the chime into a buffer at sr.
func Render(sr beep.SampleRate, c Chime) (*beep.Buffer, error) {
	buf := beep.NewBuffer(beep.Format{SampleRate: sr, NumChannels: 2, Precision: 2})
	for _, n := range melody(c) {
		tone, err := generators.SineTone(sr, n.freq)
		if err != nil {
			return nil, fmt.Errorf("tone %.1f Hz: %w", n.freq, err)
		}
		buf.Append(beep.Take(sr.N(n.dur), tone))
		buf.Append(beep.Silence(sr.N(noteGap)))
	}
	return buf, nil
}
