package llm

import (
	"fmt"
	"os"
	"time"
)

// Provider names accepted by Config.Provider.
const (
	ProviderAnthropic = "anthropic"
	ProviderOpenAI    = "openai"
	ProviderGemini    = "gemini"
	ProviderMock      = "mock"
)

// Config selects and configures one provider.
type Config struct {
	Provider string
	APIKey   string

	// Model is a friendly name or a provider model ID. Empty selects the
	// provider default.
	Model string

	// BaseURL overrides the OpenAI endpoint for compatible APIs.
	BaseURL string

	Retry RetryConfig

	// Timeout bounds a single Generate call including retries.
	Timeout time.Duration

	// Responder answers requests for the mock provider. Nil leaves the
	// mock with nothing to say.
	Responder Responder
}

// RetryConfig configures backoff for transient failures.
type RetryConfig struct {
	MaxAttempts int
	InitialWait time.Duration
	MaxWait     time.Duration
	Multiplier  float64
}

// DefaultRetry is the retry policy used when none is configured.
func DefaultRetry() RetryConfig {
	return RetryConfig{
		MaxAttempts: 3,
		InitialWait: time.Second,
		MaxWait:     10 * time.Second,
		Multiplier:  2.0,
	}
}

// defaultModels is the model picked when Config.Model is empty.
var defaultModels = map[string]string{
	ProviderAnthropic: "claude-haiku",
	ProviderOpenAI:    "gpt-4o-mini",
	ProviderGemini:    "gemini-flash",
}

// WithDefaults fills unset fields.
func (c Config) WithDefaults() Config {
	if c.Model == "" {
		c.Model = defaultModels[c.Provider]
	}
	if c.Retry.MaxAttempts <= 0 {
		c.Retry = DefaultRetry()
	}
	if c.Timeout <= 0 {
		c.Timeout = 30 * time.Second
	}
	return c
}

// Discover fills an empty provider or key from the standard vendor
// environment variables, in the order Anthropic, OpenAI, Gemini.
// It reports whether a usable configuration was found.
func (c Config) Discover() (Config, bool) {
	vendors := []struct {
		provider string
		env      string
	}{
		{ProviderAnthropic, "ANTHROPIC_API_KEY"},
		{ProviderOpenAI, "OPENAI_API_KEY"},
		{ProviderGemini, "GEMINI_API_KEY"},
	}

	if c.Provider == ProviderMock {
		return c, true
	}
	for _, v := range vendors {
		if c.Provider != "" && c.Provider != v.provider {
			continue
		}
		if c.APIKey == "" {
			c.APIKey = os.Getenv(v.env)
		}
		if c.APIKey != "" {
			c.Provider = v.provider
			return c, true
		}
	}
	return c, false
}

// Validate checks that the provider is known and has a key.
func (c Config) Validate() error {
	switch c.Provider {
	case ProviderAnthropic, ProviderOpenAI, ProviderGemini:
		if c.APIKey == "" {
			return fmt.Errorf("an API key is required for the %s provider", c.Provider)
		}
	case ProviderMock:
	case "":
		return fmt.Errorf("no LLM provider configured")
	default:
		return fmt.Errorf("unknown LLM provider: %q", c.Provider)
	}
	return nil
}

// resolveModel maps a friendly model name to a provider model ID.
// Unknown names are used as-is.
func resolveModel(name string, models map[string]string) string {
	if id, ok := models[name]; ok {
		return id
	}
	return name
}
