package llm

import (
	"context"
	"testing"
	"time"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"anthropic without key", Config{Provider: ProviderAnthropic}, true},
		{"anthropic with key", Config{Provider: ProviderAnthropic, APIKey: "k"}, false},
		{"gemini with key", Config{Provider: ProviderGemini, APIKey: "k"}, false},
		{"mock", Config{Provider: ProviderMock}, false},
		{"empty", Config{}, true},
		{"unknown", Config{Provider: "llama"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.cfg.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestConfig_WithDefaults(t *testing.T) {
	cfg := Config{Provider: ProviderOpenAI}.WithDefaults()
	if cfg.Model != "gpt-4o-mini" {
		t.Errorf("Model = %q", cfg.Model)
	}
	if cfg.Retry.MaxAttempts != 3 || cfg.Timeout != 30*time.Second {
		t.Errorf("defaults = %+v", cfg)
	}

	kept := Config{Provider: ProviderOpenAI, Model: "gpt-4o"}.WithDefaults()
	if kept.Model != "gpt-4o" {
		t.Errorf("explicit model overwritten: %q", kept.Model)
	}
}

func TestConfig_Discover(t *testing.T) {
	t.Setenv("ANTHROPIC_API_KEY", "")
	t.Setenv("OPENAI_API_KEY", "sk-openai")
	t.Setenv("GEMINI_API_KEY", "g-key")

	cfg, found := Config{}.Discover()
	if !found || cfg.Provider != ProviderOpenAI || cfg.APIKey != "sk-openai" {
		t.Errorf("Discover() = %+v, %v", cfg, found)
	}

	cfg, found = Config{Provider: ProviderGemini}.Discover()
	if !found || cfg.APIKey != "g-key" {
		t.Errorf("pinned provider = %+v, %v", cfg, found)
	}

	cfg, found = Config{Provider: ProviderAnthropic}.Discover()
	if found {
		t.Errorf("anthropic without key should not be found: %+v", cfg)
	}

	if _, found := (Config{Provider: ProviderMock}).Discover(); !found {
		t.Error("mock needs no key")
	}
}

func TestNewProvider_Mock(t *testing.T) {
	p, err := NewProvider(context.Background(), Config{Provider: ProviderMock}, nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	if p.ModelID() != "mock" {
		t.Errorf("ModelID = %q", p.ModelID())
	}
}

func TestNewProvider_WrapsDecorators(t *testing.T) {
	p, err := NewProvider(context.Background(), Config{Provider: ProviderOpenAI, APIKey: "k"}, nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := p.(*TimeoutProvider); !ok {
		t.Errorf("outermost provider = %T, want *TimeoutProvider", p)
	}
	if p.ModelID() != "gpt-4o-mini" {
		t.Errorf("ModelID = %q", p.ModelID())
	}
}

func TestNewProvider_InvalidConfig(t *testing.T) {
	if _, err := NewProvider(context.Background(), Config{Provider: ProviderGemini}, nil, nil); err == nil {
		t.Error("expected error for missing key")
	}
}
