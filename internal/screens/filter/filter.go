// Package filter is the timed camera-filter booth game screen.
package filter

import (
	"context"
	"fmt"
	"image"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/wolfchan/internal/camera"
	"github.com/abhisek/wolfchan/internal/countdown"
	"github.com/abhisek/wolfchan/internal/games"
	"github.com/abhisek/wolfchan/internal/screen"
	"github.com/abhisek/wolfchan/internal/ui/components"
	"github.com/abhisek/wolfchan/internal/ui/layout"
	"github.com/abhisek/wolfchan/internal/ui/theme"
)

// SessionTicks is the length of a booth session.
const SessionTicks = 120

const frameTimeout = 5 * time.Second

type tickMsg struct{ owner *Screen }

type frameMsg struct {
	owner  *Screen
	filter camera.Filter
	img    image.Image
	err    error
}

type savedMsg struct {
	owner *Screen
	path  string
	err   error
}

// Screen runs one filter booth session.
type Screen struct {
	done     *games.Completion
	cam      camera.Camera
	dir      string
	interval time.Duration
	now      func() time.Time

	clock    *countdown.Countdown
	filter   camera.Filter
	frame    image.Image
	shots    int
	last     string
	err      error
	finished bool
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)

// New creates a filter booth that saves shots under dir.
func New(done *games.Completion, cam camera.Camera, dir string) *Screen {
	return &Screen{
		done:     done,
		cam:      cam,
		dir:      dir,
		interval: time.Second,
		now:      time.Now,
		clock:    countdown.New(SessionTicks),
		filter:   camera.FilterNone,
	}
}

func (s *Screen) Game() games.ID { return games.Filter }

// Release closes the camera.
func (s *Screen) Release() { _ = s.cam.Close() }

func (s *Screen) Init() tea.Cmd {
	s.clock.Start()
	return tea.Batch(s.tick(), s.refresh())
}

func (s *Screen) Title() string { return "Filter Booth" }

func (s *Screen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "←→", Description: "Filter"},
		{Key: "Space", Description: "Snap"},
	}
	if s.err != nil {
		hints = append(hints, layout.KeyHint{Key: "R", Description: "Retry"})
	}
	return append(hints, layout.KeyHint{Key: "Enter", Description: "Done"})
}

// Shots returns how many photos were saved this session.
func (s *Screen) Shots() int { return s.shots }

func (s *Screen) tick() tea.Cmd {
	return tea.Tick(s.interval, func(time.Time) tea.Msg { return tickMsg{owner: s} })
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		if msg.owner != s || s.finished {
			return s, nil
		}
		if s.clock.Tick() {
			s.finish()
			return s, nil
		}
		return s, tea.Batch(s.tick(), s.refresh())

	case frameMsg:
		if msg.owner != s || msg.filter != s.filter {
			return s, nil
		}
		if msg.err != nil {
			s.err = msg.err
			return s, nil
		}
		s.frame, s.err = msg.img, nil

	case savedMsg:
		if msg.owner != s {
			return s, nil
		}
		if msg.err != nil {
			s.err = msg.err
			return s, nil
		}
		s.shots++
		s.last = msg.path

	case tea.KeyMsg:
		if s.finished {
			return s, nil
		}
		switch msg.String() {
		case "left", "h":
			s.filter = s.filter.Prev()
			return s, s.refresh()
		case "right", "l":
			s.filter = s.filter.Next()
			return s, s.refresh()
		case "space":
			return s, s.snap()
		case "r":
			if s.err != nil {
				s.err = nil
				return s, s.refresh()
			}
		case "enter":
			s.finish()
		}
	}
	return s, nil
}

func (s *Screen) finish() {
	s.finished = true
	s.clock.Pause()
	s.done.Complete(nil)
}

// refresh captures a new frame through the current filter.
func (s *Screen) refresh() tea.Cmd {
	cam, f := s.cam, s.filter
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), frameTimeout)
		defer cancel()
		img, err := cam.Capture(ctx)
		if err != nil {
			return frameMsg{owner: s, filter: f, err: fmt.Errorf("capture: %w", err)}
		}
		out, err := camera.Apply(img, f)
		return frameMsg{owner: s, filter: f, img: out, err: err}
	}
}

func (s *Screen) snap() tea.Cmd {
	if s.frame == nil {
		return nil
	}
	img, dir, f, at := s.frame, s.dir, s.filter, s.now()
	return func() tea.Msg {
		marked := camera.Watermark(img, camera.Stamp(at))
		path, err := camera.Save(dir, "filter-"+string(f), marked, at)
		return savedMsg{owner: s, path: path, err: err}
	}
}

func (s *Screen) View(width, height int) string {
	cw := components.ContentWidth(width)

	header := fmt.Sprintf("Filter: %s    Time left: %s    Shots: %d",
		s.filter, components.FormatClock(time.Duration(s.clock.Remaining())*time.Second), s.shots)
	body := theme.Subtitle.Render(header) + "\n\n"

	switch {
	case s.frame != nil:
		body += camera.Preview(s.frame, cw-4, max(height-14, 6))
	case s.err == nil:
		body += theme.Hint.Render("Warming up the camera...")
	}
	if s.err != nil {
		if s.frame != nil {
			body += "\n\n"
		}
		body += theme.Incorrect.Render(s.err.Error()) + "\n" + theme.Hint.Render("Press r to retry.")
	}

	if s.last != "" {
		body += "\n\n" + theme.Correct.Render("Saved ") + theme.Hint.Render(s.last)
	}
	if s.finished {
		body += "\n\n" + theme.Title.Render("Time's up!")
	}
	return layout.Center(components.Card(body, cw), width, height)
}
