package trivia

import (
	"context"
	"math/rand/v2"
)

// Generator produces a set of questions for a topic.
type Generator interface {
	Generate(ctx context.Context, topic string, n int) ([]Question, error)
}

// BankGenerator serves shuffled questions from the built-in bank.
type BankGenerator struct {
	// Rand shuffles question order. Nil uses the global source.
	Rand *rand.Rand
}

// Generate returns up to n questions for topic. n <= 0 returns all of them.
func (g BankGenerator) Generate(_ context.Context, topic string, n int) ([]Question, error) {
	qs := BankQuestions(topic)
	if qs == nil {
		return nil, &UnknownTopicError{Topic: topic}
	}
	shuffle := rand.Shuffle
	if g.Rand != nil {
		shuffle = g.Rand.Shuffle
	}
	shuffle(len(qs), func(i, j int) { qs[i], qs[j] = qs[j], qs[i] })
	if n > 0 && n < len(qs) {
		qs = qs[:n]
	}
	return qs, nil
}

// UnknownTopicError is returned for topics outside Topics.
type UnknownTopicError struct {
	Topic string
}

func (e *UnknownTopicError) Error() string {
	return "unknown trivia topic " + `"` + e.Topic + `"`
}
