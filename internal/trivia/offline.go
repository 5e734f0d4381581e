package trivia

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/abhisek/wolfchan/internal/llm"
)

// OfflineResponder answers trivia requests from the built-in bank. It
// backs the "mock" LLM provider, so the LLM path can run without an
// API key.
func OfflineResponder(rng *rand.Rand) llm.Responder {
	bank := BankGenerator{Rand: rng}
	return func(req llm.Request) (json.RawMessage, error) {
		topic, n, err := parseRequest(req)
		if err != nil {
			return nil, err
		}
		qs, err := bank.Generate(context.Background(), topic, n)
		if err != nil {
			return nil, err
		}
		return json.Marshal(questionSetOutput{Questions: qs})
	}
}

// parseRequest reads the topic and count back out of the user message
// written by buildUserMessage.
func parseRequest(req llm.Request) (topic string, n int, err error) {
	for _, msg := range req.Messages {
		if msg.Role != llm.RoleUser {
			continue
		}
		for _, line := range strings.Split(msg.Content, "\n") {
			switch {
			case strings.HasPrefix(line, "Topic: "):
				topic = strings.TrimPrefix(line, "Topic: ")
			case strings.HasPrefix(line, "Write "):
				_, _ = fmt.Sscanf(line, "Write %d questions.", &n)
			}
		}
	}
	if topic == "" {
		return "", 0, fmt.Errorf("no topic in trivia request")
	}
	return topic, n, nil
}
