package trivia

import (
	"fmt"
	"strings"
)

// Validator checks a generated question before it is shown.
type Validator interface {
	Name() string
	Validate(q Question) *ValidationError
}

// ValidationError describes why a question failed validation.
type ValidationError struct {
	Validator string
	Message   string
	Retryable bool
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validator %q: %s", e.Validator, e.Message)
}

// StructuralValidator checks field presence, lengths and the answer index.
type StructuralValidator struct{}

func (v *StructuralValidator) Name() string { return "structural" }

func (v *StructuralValidator) Validate(q Question) *ValidationError {
	fail := func(msg string) *ValidationError {
		return &ValidationError{Validator: v.Name(), Message: msg, Retryable: true}
	}
	if strings.TrimSpace(q.Prompt) == "" {
		return fail("question is empty")
	}
	if len(q.Prompt) > 300 {
		return fail("question exceeds 300 characters")
	}
	if len(q.Options) != 4 {
		return fail(fmt.Sprintf("expected 4 options, got %d", len(q.Options)))
	}
	for i, o := range q.Options {
		if strings.TrimSpace(o) == "" {
			return fail(fmt.Sprintf("option %d is empty", i))
		}
		if len(o) > 80 {
			return fail(fmt.Sprintf("option %d exceeds 80 characters", i))
		}
	}
	if q.Correct < 0 || q.Correct >= len(q.Options) {
		return fail(fmt.Sprintf("correct index %d out of range", q.Correct))
	}
	return nil
}

// DistinctOptionsValidator rejects questions with duplicate options.
type DistinctOptionsValidator struct{}

func (v *DistinctOptionsValidator) Name() string { return "distinct-options" }

func (v *DistinctOptionsValidator) Validate(q Question) *ValidationError {
	seen := make(map[string]bool, len(q.Options))
	for _, o := range q.Options {
		key := strings.ToLower(strings.TrimSpace(o))
		if seen[key] {
			return &ValidationError{
				Validator: v.Name(),
				Message:   fmt.Sprintf("duplicate option %q", o),
				Retryable: true,
			}
		}
		seen[key] = true
	}
	return nil
}
