// Package trivia is the trivia quiz game screen.
package trivia

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/wolfchan/internal/games"
	"github.com/abhisek/wolfchan/internal/screen"
	"github.com/abhisek/wolfchan/internal/trivia"
	"github.com/abhisek/wolfchan/internal/ui/components"
	"github.com/abhisek/wolfchan/internal/ui/layout"
	"github.com/abhisek/wolfchan/internal/ui/theme"
)

// generateTimeout bounds question generation, including LLM retries.
const generateTimeout = 30 * time.Second

// summaryTicks is how long the final score shows before finishing.
const summaryTicks = 3

type phase int

const (
	phaseTopic phase = iota
	phaseLoading
	phaseQuiz
	phaseSummary
)

type tickMsg struct{ owner *Screen }

type questionsMsg struct {
	owner     *Screen
	questions []trivia.Question
	err       error
}

// Screen runs one trivia game.
type Screen struct {
	done      *games.Completion
	generator trivia.Generator
	count     int
	interval  time.Duration

	phase   phase
	topics  components.Menu
	topic   string
	quiz    *trivia.Quiz
	choice  components.MultiChoice
	shownAt int // quiz index the choice widget belongs to
	left    int
	errMsg  string
	cancel  context.CancelFunc
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)

// New creates a trivia screen that asks count questions.
func New(done *games.Completion, gen trivia.Generator, count int) *Screen {
	items := make([]components.MenuItem, len(trivia.Topics))
	for i, t := range trivia.Topics {
		items[i] = components.MenuItem{ID: t, Label: t}
	}
	return &Screen{
		done:      done,
		generator: gen,
		count:     count,
		interval:  time.Second,
		topics:    components.NewMenu(items),
	}
}

func (s *Screen) Game() games.ID { return games.Trivia }

// Release stops any in-flight generation.
func (s *Screen) Release() {
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
}

func (s *Screen) Init() tea.Cmd { return nil }

func (s *Screen) Title() string { return "Trivia Quiz" }

func (s *Screen) KeyHints() []layout.KeyHint {
	switch s.phase {
	case phaseTopic:
		return []layout.KeyHint{{Key: "↑↓", Description: "Topic"}, {Key: "Enter", Description: "Start"}, {Key: "Esc", Description: "Skip game"}}
	case phaseQuiz:
		if s.quiz.Phase() == trivia.PhaseReveal {
			return []layout.KeyHint{{Key: "Enter", Description: "Next"}, {Key: "Esc", Description: "Quit"}}
		}
		return []layout.KeyHint{{Key: "A-D", Description: "Answer"}, {Key: "↑↓ Enter", Description: "Pick"}, {Key: "Esc", Description: "Quit"}}
	case phaseSummary:
		return []layout.KeyHint{{Key: "Enter", Description: "Back to timer"}}
	}
	return []layout.KeyHint{{Key: "Esc", Description: "Quit"}}
}

func (s *Screen) tick() tea.Cmd {
	return tea.Tick(s.interval, func(time.Time) tea.Msg { return tickMsg{owner: s} })
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case questionsMsg:
		if msg.owner != s || s.phase != phaseLoading {
			return s, nil
		}
		return s, s.start(msg.questions, msg.err)

	case tickMsg:
		if msg.owner != s {
			return s, nil
		}
		return s, s.onTick()

	case tea.KeyMsg:
		return s, s.onKey(msg)
	}
	return s, nil
}

func (s *Screen) onKey(msg tea.KeyMsg) tea.Cmd {
	switch s.phase {
	case phaseTopic:
		var chosen bool
		s.topics, chosen = s.topics.Update(msg)
		if !chosen {
			return nil
		}
		item, _ := s.topics.Current()
		s.topic = item.ID
		s.phase = phaseLoading
		return s.load()

	case phaseQuiz:
		if s.quiz.Phase() == trivia.PhaseReveal {
			if msg.String() == "enter" || msg.String() == "space" {
				s.quiz.Skip()
				s.syncChoice()
				s.finishIfDone()
			}
			return nil
		}
		var picked int
		s.choice, picked = s.choice.Update(msg)
		if picked >= 0 {
			s.quiz.Answer(picked)
			s.choice.Reveal(picked, s.quiz.Current().Correct)
		}

	case phaseSummary:
		if msg.String() == "enter" {
			s.complete()
		}
	}
	return nil
}

func (s *Screen) onTick() tea.Cmd {
	switch s.phase {
	case phaseQuiz:
		before := s.quiz.Phase()
		s.quiz.Tick()
		if before == trivia.PhaseQuestion && s.quiz.Phase() == trivia.PhaseReveal {
			s.choice.Reveal(-1, s.quiz.Current().Correct)
		}
		s.syncChoice()
		s.finishIfDone()
		return s.tick()
	case phaseSummary:
		s.left--
		if s.left <= 0 {
			s.complete()
			return nil
		}
		return s.tick()
	}
	return nil
}

func (s *Screen) load() tea.Cmd {
	ctx, cancel := context.WithTimeout(context.Background(), generateTimeout)
	s.cancel = cancel
	topic, n, gen := s.topic, s.count, s.generator
	return func() tea.Msg {
		defer cancel()
		qs, err := gen.Generate(ctx, topic, n)
		return questionsMsg{owner: s, questions: qs, err: err}
	}
}

func (s *Screen) start(qs []trivia.Question, err error) tea.Cmd {
	s.cancel = nil
	if err != nil || len(qs) == 0 {
		if err == nil {
			err = fmt.Errorf("no questions for %s", s.topic)
		}
		s.errMsg = err.Error()
		s.phase = phaseTopic
		return nil
	}
	s.errMsg = ""
	s.quiz = trivia.NewQuiz(qs)
	s.shownAt = -1
	s.syncChoice()
	s.phase = phaseQuiz
	return s.tick()
}

// syncChoice resets the option widget when the quiz moves on.
func (s *Screen) syncChoice() {
	if s.quiz.Done() || s.shownAt == s.quiz.Index() {
		return
	}
	s.shownAt = s.quiz.Index()
	s.choice = components.NewMultiChoice(s.quiz.Current().Options)
}

// finishIfDone moves to the summary; the running tick loop counts it down.
func (s *Screen) finishIfDone() {
	if s.phase != phaseQuiz || !s.quiz.Done() {
		return
	}
	s.phase = phaseSummary
	s.left = summaryTicks
}

func (s *Screen) complete() {
	score := 0
	if s.quiz != nil {
		score = s.quiz.Score()
	}
	s.done.Complete(games.Score(score))
}

func (s *Screen) View(width, height int) string {
	cw := components.ContentWidth(width)
	var body string
	switch s.phase {
	case phaseTopic:
		body = theme.Subtitle.Render("Choose a topic") + "\n\n" + s.topics.View(cw)
		if s.errMsg != "" {
			body += "\n\n" + theme.Incorrect.Render(s.errMsg)
		}
	case phaseLoading:
		body = theme.Hint.Render("Preparing " + s.topic + " questions...")
	case phaseQuiz:
		body = s.quizView(cw)
	case phaseSummary:
		body = theme.Title.Render("Quiz complete!") + "\n\n" +
			theme.Body.Render(fmt.Sprintf("You scored %d / %d", s.quiz.Score(), s.quiz.Len()))
	}
	return layout.Center(components.Card(body, cw), width, height)
}

func (s *Screen) quizView(cw int) string {
	q := s.quiz.Current()
	var b strings.Builder
	fmt.Fprintf(&b, "%s  ·  Question %d of %d  ·  Score %d\n\n",
		s.topic, s.quiz.Index()+1, s.quiz.Len(), s.quiz.Score())

	b.WriteString(lipgloss.NewStyle().Bold(true).Foreground(theme.Text).Width(cw - 6).Render(q.Prompt))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().Align(lipgloss.Left).Render(s.choice.View()))
	b.WriteString("\n\n")

	if s.quiz.Phase() == trivia.PhaseReveal {
		switch s.quiz.LastOutcome() {
		case trivia.OutcomeCorrect:
			b.WriteString(theme.Correct.Render("Correct!"))
		case trivia.OutcomeTimeout:
			b.WriteString(theme.Incorrect.Render("Time's up! The answer was " + q.Answer()))
		default:
			b.WriteString(theme.Incorrect.Render("Not quite. The answer was " + q.Answer()))
		}
		return b.String()
	}
	bar := components.NewProgressBar("", float64(s.quiz.Remaining())/float64(trivia.QuestionTicks), false, cw-14)
	bar.Fill = theme.Accent
	b.WriteString(bar.View() + fmt.Sprintf("  %2ds", s.quiz.Remaining()))
	return b.String()
}
