// Package photo is the countdown photo-capture game screen.
package photo

import (
	"context"
	"fmt"
	"image"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/wolfchan/internal/camera"
	"github.com/abhisek/wolfchan/internal/countdown"
	"github.com/abhisek/wolfchan/internal/games"
	"github.com/abhisek/wolfchan/internal/screen"
	"github.com/abhisek/wolfchan/internal/ui/components"
	"github.com/abhisek/wolfchan/internal/ui/layout"
	"github.com/abhisek/wolfchan/internal/ui/theme"
)

// CountdownTicks is the pose countdown before the shutter fires.
const CountdownTicks = 5

const captureTimeout = 10 * time.Second

type phase int

const (
	phaseCountdown phase = iota
	phaseCapturing
	phaseReview
	phaseFailed
)

type tickMsg struct{ owner *Screen }

type shotMsg struct {
	owner *Screen
	img   image.Image
	path  string
	err   error
}

// Screen runs one photo capture.
type Screen struct {
	done     *games.Completion
	cam      camera.Camera
	dir      string
	interval time.Duration
	now      func() time.Time

	phase phase
	clock *countdown.Countdown
	img   image.Image
	path  string
	err   error
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)

// New creates a photo screen that saves shots under dir.
func New(done *games.Completion, cam camera.Camera, dir string) *Screen {
	return &Screen{
		done:     done,
		cam:      cam,
		dir:      dir,
		interval: time.Second,
		now:      time.Now,
		clock:    countdown.New(CountdownTicks),
	}
}

func (s *Screen) Game() games.ID { return games.Photo }

// Release closes the camera.
func (s *Screen) Release() { _ = s.cam.Close() }

func (s *Screen) Init() tea.Cmd {
	s.clock.Restart(CountdownTicks)
	return s.tick()
}

func (s *Screen) Title() string { return "Photo Capture" }

func (s *Screen) KeyHints() []layout.KeyHint {
	switch s.phase {
	case phaseReview:
		return []layout.KeyHint{{Key: "R", Description: "Retake"}, {Key: "Enter", Description: "Done"}}
	case phaseFailed:
		return []layout.KeyHint{{Key: "R", Description: "Retry"}, {Key: "Esc", Description: "Back to timer"}}
	}
	return []layout.KeyHint{{Key: "Esc", Description: "Cancel"}}
}

func (s *Screen) tick() tea.Cmd {
	return tea.Tick(s.interval, func(time.Time) tea.Msg { return tickMsg{owner: s} })
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		if msg.owner != s || s.phase != phaseCountdown {
			return s, nil
		}
		if s.clock.Tick() {
			s.phase = phaseCapturing
			return s, s.capture()
		}
		return s, s.tick()

	case shotMsg:
		if msg.owner != s || s.phase != phaseCapturing {
			return s, nil
		}
		if msg.err != nil {
			s.err = msg.err
			s.phase = phaseFailed
			return s, nil
		}
		s.img, s.path, s.err = msg.img, msg.path, nil
		s.phase = phaseReview
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "r":
			if s.phase == phaseReview || s.phase == phaseFailed {
				s.phase = phaseCountdown
				s.img, s.path, s.err = nil, "", nil
				return s, s.Init()
			}
		case "enter":
			if s.phase == phaseReview {
				s.done.Complete(nil)
			}
		}
	}
	return s, nil
}

// capture grabs a frame, stamps it and writes it to disk off the UI loop.
func (s *Screen) capture() tea.Cmd {
	cam, dir, at := s.cam, s.dir, s.now()
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), captureTimeout)
		defer cancel()
		frame, err := cam.Capture(ctx)
		if err != nil {
			return shotMsg{owner: s, err: fmt.Errorf("capture: %w", err)}
		}
		marked := camera.Watermark(frame, camera.Stamp(at))
		path, err := camera.Save(dir, "photo", marked, at)
		if err != nil {
			return shotMsg{owner: s, err: err}
		}
		return shotMsg{owner: s, img: marked, path: path}
	}
}

func (s *Screen) View(width, height int) string {
	cw := components.ContentWidth(width)
	var body string
	switch s.phase {
	case phaseCountdown:
		n := max(s.clock.Remaining(), 1)
		body = theme.Subtitle.Render("Get ready to pose!") + "\n\n" +
			lipgloss.NewStyle().Foreground(theme.Pink).Render(components.BigClock(fmt.Sprint(n)))
	case phaseCapturing:
		body = theme.Title.Render("📸 Say cheese!")
	case phaseReview:
		rows := max(height-14, 6)
		body = camera.Preview(s.img, cw-4, rows) + "\n\n" +
			theme.Correct.Render("Photo saved") + "\n" + theme.Hint.Render(s.path)
	case phaseFailed:
		body = theme.Incorrect.Render("Could not take a photo") + "\n\n" +
			theme.Hint.Render(s.err.Error()) + "\n\n" +
			theme.Body.Render("Press r to try again")
	}
	return layout.Center(components.Card(body, cw), width, height)
}
