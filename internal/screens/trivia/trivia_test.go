package trivia

import (
	"context"
	"errors"
	"math/rand/v2"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/wolfchan/internal/games"
	"github.com/abhisek/wolfchan/internal/trivia"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

type failingGenerator struct{}

func (failingGenerator) Generate(context.Context, string, int) ([]trivia.Question, error) {
	return nil, errors.New("offline")
}

// startQuiz picks the first topic and delivers the generated questions.
func startQuiz(t *testing.T, s *Screen) {
	t.Helper()
	_, cmd := s.Update(specialKey(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("expected load command")
	}
	_, tick := s.Update(cmd())
	if s.phase != phaseQuiz {
		t.Fatalf("phase = %d, want quiz", s.phase)
	}
	if tick == nil {
		t.Error("expected tick command after start")
	}
}

func newScreen(count int) (*Screen, *games.Completion) {
	done := games.NewCompletion(games.Trivia)
	gen := trivia.BankGenerator{Rand: rand.New(rand.NewPCG(3, 4))}
	return New(done, gen, count), done
}

func TestTriviaScreen_AllCorrect(t *testing.T) {
	s, done := newScreen(3)
	startQuiz(t, s)

	for i := 0; i < 3; i++ {
		correct := s.quiz.Current().Correct
		s.Update(keyPress(rune('a' + correct)))
		if s.quiz.LastOutcome() != trivia.OutcomeCorrect {
			t.Fatalf("question %d: outcome = %v", i, s.quiz.LastOutcome())
		}
		if !strings.Contains(s.View(80, 30), "Correct!") {
			t.Error("reveal should say Correct!")
		}
		s.Update(specialKey(tea.KeyEnter))
	}
	if s.phase != phaseSummary {
		t.Fatalf("phase = %d, want summary", s.phase)
	}
	if _, ok := done.TryResult(); ok {
		t.Fatal("completion should wait for the summary")
	}

	s.Update(specialKey(tea.KeyEnter))
	r, ok := done.TryResult()
	if !ok || !r.HasScore() || *r.Score != 3 {
		t.Errorf("result = %+v, ok = %v", r, ok)
	}
}

func TestTriviaScreen_TimeoutAndAutoFinish(t *testing.T) {
	s, done := newScreen(1)
	startQuiz(t, s)

	for i := 0; i < trivia.QuestionTicks; i++ {
		s.Update(tickMsg{owner: s})
	}
	if s.quiz.LastOutcome() != trivia.OutcomeTimeout {
		t.Fatalf("outcome = %v, want timeout", s.quiz.LastOutcome())
	}
	for i := 0; i < trivia.WrongRevealTicks+summaryTicks; i++ {
		s.Update(tickMsg{owner: s})
	}
	r, ok := done.TryResult()
	if !ok || *r.Score != 0 {
		t.Errorf("result = %+v, ok = %v", r, ok)
	}
}

func TestTriviaScreen_IgnoresForeignTicks(t *testing.T) {
	s, _ := newScreen(1)
	startQuiz(t, s)
	other, _ := newScreen(1)
	s.Update(tickMsg{owner: other})
	if s.quiz.Remaining() != trivia.QuestionTicks {
		t.Errorf("remaining = %d, foreign tick was applied", s.quiz.Remaining())
	}
}

func TestTriviaScreen_GenerationError(t *testing.T) {
	s := New(games.NewCompletion(games.Trivia), failingGenerator{}, 5)
	_, cmd := s.Update(specialKey(tea.KeyEnter))
	s.Update(cmd())
	if s.phase != phaseTopic {
		t.Errorf("phase = %d, want topic", s.phase)
	}
	if !strings.Contains(s.View(80, 30), "offline") {
		t.Error("error should be shown")
	}
}

func TestTriviaScreen_Module(t *testing.T) {
	s, _ := newScreen(1)
	if s.Game() != games.Trivia {
		t.Errorf("Game() = %s", s.Game())
	}
	s.Update(specialKey(tea.KeyEnter))
	s.Release()
	s.Release()
	if s.cancel != nil {
		t.Error("Release should clear the cancel func")
	}
}
