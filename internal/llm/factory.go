package llm

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/abhisek/wolfchan/internal/store"
)

// NewProvider builds the configured provider wrapped as
// caller → timeout → retry → logging → SDK.
func NewProvider(ctx context.Context, cfg Config, repo store.EventRepo, logger *slog.Logger) (Provider, error) {
	cfg = cfg.WithDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var (
		base Provider
		err  error
	)
	switch cfg.Provider {
	case ProviderAnthropic:
		base, err = NewAnthropicProvider(cfg)
	case ProviderOpenAI:
		base, err = NewOpenAIProvider(cfg)
	case ProviderGemini:
		base, err = NewGeminiProvider(ctx, cfg)
	case ProviderMock:
		// Mock requests are never retried.
		base = NewMockProvider().WithResponder(cfg.Responder)
		cfg.Retry.MaxAttempts = 1
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	logged := WithLogging(base, cfg.Provider, repo, logger)
	return WithTimeout(WithRetry(logged, cfg.Retry), cfg.Timeout), nil
}
