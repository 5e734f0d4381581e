package llm

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// requireKey rejects an empty API key for provider.
func requireKey(provider, key string) error {
	if key == "" {
		return fmt.Errorf("%s API key is required", provider)
	}
	return nil
}

// speaker returns the SDK role name for m.
func speaker(m Message, user, assistant string) string {
	if m.Role == RoleAssistant {
		return assistant
	}
	return user
}

func tokens(in, out int) Usage {
	return Usage{InputTokens: in, OutputTokens: out, TotalTokens: in + out}
}

// finish turns the text a provider returned into a Response. Truncated
// output is reported as ErrMaxTokensExceeded with the partial content.
func finish(req Request, content json.RawMessage, truncated bool, model string, usage Usage) (*Response, error) {
	if truncated {
		return nil, &ErrMaxTokensExceeded{Content: content}
	}
	if err := validateResponse(req.Schema, content); err != nil {
		return nil, err
	}
	return &Response{Content: content, Usage: usage, Model: model, StopReason: "end"}, nil
}

// classifyStatus maps a provider API status code onto the error types the
// retry decorator understands.
func classifyStatus(status int, err error) error {
	if status == http.StatusTooManyRequests {
		return &ErrRateLimit{Err: err}
	}
	return &ErrProviderUnavailable{Err: err}
}
