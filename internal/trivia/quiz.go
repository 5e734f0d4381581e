package trivia

import "github.com/abhisek/wolfchan/internal/countdown"

// Timings in ticks.
const (
	QuestionTicks      = 10
	CorrectRevealTicks = 6
	WrongRevealTicks   = 2
)

// Phase is where the quiz is within the current question.
type Phase int

const (
	PhaseQuestion Phase = iota // Waiting for an answer
	PhaseReveal                // Showing the outcome
	PhaseDone                  // All questions answered
)

// Outcome is the result of one question.
type Outcome int

const (
	OutcomePending Outcome = iota
	OutcomeCorrect
	OutcomeWrong
	OutcomeTimeout
)

// Quiz steps through questions with a per-question timer.
type Quiz struct {
	questions []Question
	index     int
	score     int

	phase    Phase
	clock    *countdown.Countdown
	selected int
	outcome  Outcome
}

// NewQuiz starts the first question. An empty list is immediately done.
func NewQuiz(questions []Question) *Quiz {
	q := &Quiz{questions: questions, clock: countdown.New(QuestionTicks), selected: -1}
	if len(questions) == 0 {
		q.phase = PhaseDone
		return q
	}
	q.clock.Start()
	return q
}

func (q *Quiz) Phase() Phase { return q.phase }
func (q *Quiz) Done() bool { return q.phase == PhaseDone }
func (q *Quiz) Score() int { return q.score }
func (q *Quiz) Index() int { return q.index }
func (q *Quiz) Len() int { return len(q.questions) }
func (q *Quiz) Remaining() int { return q.clock.Remaining() }
func (q *Quiz) Selected() int { return q.selected }
func (q *Quiz) LastOutcome() Outcome { return q.outcome }

// Current returns the question on screen. It is the last question once
// the quiz is done.
func (q *Quiz) Current() Question {
	if len(q.questions) == 0 {
		return Question{}
	}
	i := q.index
	if i >= len(q.questions) {
		i = len(q.questions) - 1
	}
	return q.questions[i]
}

// Answer submits option i. It is ignored outside PhaseQuestion or for
// an out-of-range option.
func (q *Quiz) Answer(i int) Outcome {
	if q.phase != PhaseQuestion || i < 0 || i >= len(q.Current().Options) {
		return OutcomePending
	}
	q.selected = i
	if i == q.Current().Correct {
		q.score++
		q.reveal(OutcomeCorrect, CorrectRevealTicks)
	} else {
		q.reveal(OutcomeWrong, WrongRevealTicks)
	}
	return q.outcome
}

// Tick advances the question timer or the reveal pause.
func (q *Quiz) Tick() {
	if q.phase == PhaseDone || !q.clock.Tick() {
		return
	}
	switch q.phase {
	case PhaseQuestion:
		q.reveal(OutcomeTimeout, WrongRevealTicks)
	case PhaseReveal:
		q.next()
	}
}

// Skip ends the reveal pause early.
func (q *Quiz) Skip() {
	if q.phase == PhaseReveal {
		q.next()
	}
}

func (q *Quiz) reveal(o Outcome, ticks int) {
	q.outcome = o
	q.phase = PhaseReveal
	q.clock.Restart(ticks)
}

func (q *Quiz) next() {
	q.index++
	q.selected = -1
	q.outcome = OutcomePending
	if q.index >= len(q.questions) {
		q.phase = PhaseDone
		q.clock.Reset(0)
		return
	}
	q.phase = PhaseQuestion
	q.clock.Restart(QuestionTicks)
}
