package trivia

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func twoQuestions() []Question {
	return []Question{
		{Prompt: "a?", Options: []string{"w", "x", "y", "z"}, Correct: 1},
		{Prompt: "b?", Options: []string{"w", "x", "y", "z"}, Correct: 3},
	}
}

func TestQuiz_CorrectAnswerScoresAndRevealsLonger(t *testing.T) {
	q := NewQuiz(twoQuestions())
	require.Equal(t, PhaseQuestion, q.Phase())
	assert.Equal(t, QuestionTicks, q.Remaining())

	assert.Equal(t, OutcomeCorrect, q.Answer(1))
	assert.Equal(t, 1, q.Score())
	assert.Equal(t, PhaseReveal, q.Phase())
	assert.Equal(t, CorrectRevealTicks, q.Remaining())

	for i := 0; i < CorrectRevealTicks; i++ {
		q.Tick()
	}
	assert.Equal(t, PhaseQuestion, q.Phase())
	assert.Equal(t, 1, q.Index())
	assert.Equal(t, -1, q.Selected())
}

func TestQuiz_WrongAnswer(t *testing.T) {
	q := NewQuiz(twoQuestions())
	assert.Equal(t, OutcomeWrong, q.Answer(0))
	assert.Equal(t, 0, q.Score())
	assert.Equal(t, WrongRevealTicks, q.Remaining())
}

func TestQuiz_Timeout(t *testing.T) {
	q := NewQuiz(twoQuestions())
	for i := 0; i < QuestionTicks-1; i++ {
		q.Tick()
	}
	assert.Equal(t, PhaseQuestion, q.Phase())
	q.Tick()
	assert.Equal(t, PhaseReveal, q.Phase())
	assert.Equal(t, OutcomeTimeout, q.LastOutcome())
}

func TestQuiz_AnswerIgnoredDuringReveal(t *testing.T) {
	q := NewQuiz(twoQuestions())
	q.Answer(1)
	assert.Equal(t, OutcomePending, q.Answer(1))
	assert.Equal(t, 1, q.Score())
	assert.Equal(t, OutcomePending, NewQuiz(twoQuestions()).Answer(7))
}

func TestQuiz_SkipAndFinish(t *testing.T) {
	q := NewQuiz(twoQuestions())
	q.Answer(1)
	q.Skip()
	q.Answer(3)
	q.Skip()
	assert.True(t, q.Done())
	assert.Equal(t, 2, q.Score())
	assert.Equal(t, "b?", q.Current().Prompt)

	q.Tick()
	assert.True(t, q.Done())
}

func TestQuiz_Empty(t *testing.T) {
	q := NewQuiz(nil)
	assert.True(t, q.Done())
	assert.Equal(t, Question{}, q.Current())
}
