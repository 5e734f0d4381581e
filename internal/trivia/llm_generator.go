package trivia

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/abhisek/wolfchan/internal/llm"
)

const systemPrompt = `You write short, friendly general-knowledge trivia for a focus-break mini game.
Each question has exactly 4 options and one unambiguous correct answer.
Keep questions under 150 characters and options under 40 characters.
Do not repeat questions. Vary the position of the correct option.`

// LLMConfig controls the LLMGenerator.
type LLMConfig struct {
	// Validators run in order; the first failure rejects the question.
	Validators  []Validator
	MaxTokens   int
	Temperature float64
}

// DefaultLLMConfig returns the standard validator chain and defaults.
func DefaultLLMConfig() LLMConfig {
	return LLMConfig{
		Validators: []Validator{
			&StructuralValidator{},
			&DistinctOptionsValidator{},
		},
		MaxTokens:   1024,
		Temperature: 0.8,
	}
}

// LLMGenerator asks an LLM for fresh questions and falls back to the
// built-in bank when generation fails or too few questions pass.
type LLMGenerator struct {
	provider llm.Provider
	config   LLMConfig
	fallback Generator
	logger   *slog.Logger
}

// NewLLMGenerator creates a generator backed by provider.
func NewLLMGenerator(provider llm.Provider, cfg LLMConfig, logger *slog.Logger) *LLMGenerator {
	if logger == nil {
		logger = slog.Default()
	}
	return &LLMGenerator{provider: provider, config: cfg, fallback: BankGenerator{}, logger: logger}
}

type questionSetOutput struct {
	Questions []Question `json:"questions"`
}

// Generate returns n questions about topic.
func (g *LLMGenerator) Generate(ctx context.Context, topic string, n int) ([]Question, error) {
	if n <= 0 {
		n = len(bank[topic])
	}
	qs, err := g.generate(ctx, topic, n)
	if err != nil {
		g.logger.Warn("trivia generation failed, using bank", "topic", topic, "error", err)
		return g.fallback.Generate(ctx, topic, n)
	}
	return qs, nil
}

// GenerateStrict is Generate without the bank fallback.
func (g *LLMGenerator) GenerateStrict(ctx context.Context, topic string, n int) ([]Question, error) {
	return g.generate(ctx, topic, n)
}

func (g *LLMGenerator) generate(ctx context.Context, topic string, n int) ([]Question, error) {
	ctx = llm.WithPurpose(ctx, "trivia")

	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(topic, n)},
		},
		Schema:      QuestionSetSchema,
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("LLM generation failed: %w", err)
	}

	var raw questionSetOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse LLM response: %w", err)
	}

	var out []Question
	for _, q := range raw.Questions {
		if verr := g.validate(q); verr != nil {
			g.logger.Debug("dropping generated question", "topic", topic, "reason", verr.Error())
			continue
		}
		q.Topic = topic
		out = append(out, q)
		if len(out) == n {
			break
		}
	}
	if len(out) < n {
		return nil, fmt.Errorf("only %d of %d generated questions passed validation", len(out), n)
	}
	return out, nil
}

func (g *LLMGenerator) validate(q Question) *ValidationError {
	for _, v := range g.config.Validators {
		if verr := v.Validate(q); verr != nil {
			return verr
		}
	}
	return nil
}

func buildUserMessage(topic string, n int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Topic: %s\n", topic)
	fmt.Fprintf(&b, "Write %d questions.\n", n)
	if examples := bank[topic]; len(examples) > 0 {
		b.WriteString("\nAvoid these existing questions:\n")
		for _, q := range examples {
			fmt.Fprintf(&b, "- %s\n", q.Prompt)
		}
	}
	return b.String()
}
