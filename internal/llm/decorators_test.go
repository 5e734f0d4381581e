package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/abhisek/wolfchan/internal/store"
)

func fastRetry() RetryConfig {
	return RetryConfig{MaxAttempts: 3, InitialWait: time.Millisecond, MaxWait: 5 * time.Millisecond, Multiplier: 2}
}

func down() MockResponse {
	return MockResponse{Err: &ErrProviderUnavailable{Err: errors.New("down")}}
}

func ok() MockResponse {
	return MockResponse{Content: json.RawMessage(`{"ok":true}`)}
}

func TestRetry(t *testing.T) {
	tests := []struct {
		name      string
		responses []MockResponse
		wantErr   bool
		wantCalls int
	}{
		{"first attempt", []MockResponse{ok()}, false, 1},
		{"transient then success", []MockResponse{down(), ok()}, false, 2},
		{"all attempts fail", []MockResponse{down(), down(), down()}, true, 3},
		{"max tokens not retried", []MockResponse{{Err: &ErrMaxTokensExceeded{}}}, true, 1},
		{
			"invalid response retried once",
			[]MockResponse{
				{Err: &ErrInvalidResponse{Err: errors.New("bad")}},
				{Err: &ErrInvalidResponse{Err: errors.New("bad")}},
				ok(),
			},
			true, 2,
		},
		{"rate limit honours retry-after", []MockResponse{{Err: &ErrRateLimit{RetryAfter: time.Millisecond}}, ok()}, false, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := NewMockProvider(tt.responses...)
			_, err := WithRetry(mock, fastRetry()).Generate(context.Background(), Request{})
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if mock.CallCount() != tt.wantCalls {
				t.Errorf("calls = %d, want %d", mock.CallCount(), tt.wantCalls)
			}
		})
	}
}

func TestRetry_StopsOnCancelledContext(t *testing.T) {
	mock := NewMockProvider(down(), down(), ok())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := WithRetry(mock, fastRetry()).Generate(ctx, Request{}); err == nil {
		t.Fatal("expected error")
	}
}

type slowProvider struct{}

func (slowProvider) Generate(ctx context.Context, _ Request) (*Response, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

func (slowProvider) ModelID() string { return "slow" }

func TestTimeout(t *testing.T) {
	p := WithTimeout(slowProvider{}, 5*time.Millisecond)
	_, err := p.Generate(context.Background(), Request{})
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("err = %v, want deadline exceeded", err)
	}
	if p.ModelID() != "slow" {
		t.Errorf("ModelID = %q", p.ModelID())
	}
	if WithTimeout(slowProvider{}, 0) != (slowProvider{}) {
		t.Error("zero timeout should not wrap")
	}
}

type recordingRepo struct {
	store.EventRepo
	events []store.LLMRequestEventData
}

func (r *recordingRepo) AppendLLMRequest(_ context.Context, d store.LLMRequestEventData) error {
	r.events = append(r.events, d)
	return nil
}

func TestLogging_RecordsRequests(t *testing.T) {
	repo := &recordingRepo{}
	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage(`{}`), Usage: Usage{InputTokens: 7, OutputTokens: 3}},
		down(),
	)
	p := WithLogging(mock, ProviderMock, repo, nil)
	ctx := WithPurpose(context.Background(), "trivia")

	if _, err := p.Generate(ctx, Request{}); err != nil {
		t.Fatal(err)
	}
	if _, err := p.Generate(ctx, Request{}); err == nil {
		t.Fatal("expected error")
	}

	if len(repo.events) != 2 {
		t.Fatalf("events = %d, want 2", len(repo.events))
	}
	first, second := repo.events[0], repo.events[1]
	if !first.Success || first.InputTokens != 7 || first.Purpose != "trivia" || first.Provider != ProviderMock {
		t.Errorf("first = %+v", first)
	}
	if second.Success || second.ErrorMessage == "" {
		t.Errorf("second = %+v", second)
	}
}

func TestMockProvider(t *testing.T) {
	mock := NewMockProvider(ok())
	mock.AddResponse(MockResponse{Err: errors.New("configured")})

	if _, err := mock.Generate(context.Background(), Request{System: "s"}); err != nil {
		t.Fatal(err)
	}
	if _, err := mock.Generate(context.Background(), Request{}); err == nil || err.Error() != "configured" {
		t.Errorf("second call err = %v", err)
	}
	var unavail *ErrProviderUnavailable
	if _, err := mock.Generate(context.Background(), Request{}); !errors.As(err, &unavail) {
		t.Errorf("empty queue err = %T", err)
	}
	if mock.CallCount() != 3 || mock.Calls[0].System != "s" {
		t.Errorf("calls = %d", mock.CallCount())
	}
}

func TestPurposeContext(t *testing.T) {
	if got := PurposeFrom(context.Background()); got != "unknown" {
		t.Errorf("default purpose = %q", got)
	}
	if got := PurposeFrom(WithPurpose(context.Background(), "trivia")); got != "trivia" {
		t.Errorf("purpose = %q", got)
	}
}

func TestMockProvider_Responder(t *testing.T) {
	schema := &Schema{
		Name: "mock-responder-test",
		Definition: map[string]any{
			"type":       "object",
			"properties": map[string]any{"n": map[string]any{"type": "integer"}},
			"required":   []any{"n"},
		},
	}
	answer := `{"n":1}`
	mock := NewMockProvider(ok()).WithResponder(func(Request) (json.RawMessage, error) {
		return json.RawMessage(answer), nil
	})

	// The queue is served before the responder.
	resp, err := mock.Generate(context.Background(), Request{Schema: schema})
	if err != nil || string(resp.Content) != `{"ok":true}` {
		t.Fatalf("queued response = %v, %v", resp, err)
	}

	resp, err = mock.Generate(context.Background(), Request{System: "abcdefgh", Schema: schema})
	if err != nil {
		t.Fatal(err)
	}
	if string(resp.Content) != answer || resp.Usage.InputTokens != 2 {
		t.Errorf("responder response = %s usage %+v", resp.Content, resp.Usage)
	}

	answer = `{"m":1}`
	var inv *ErrInvalidResponse
	if _, err := mock.Generate(context.Background(), Request{Schema: schema}); !errors.As(err, &inv) {
		t.Errorf("schema mismatch err = %v", err)
	}
}

func TestRetryable(t *testing.T) {
	tests := []struct {
		err  error
		want bool
	}{
		{nil, false},
		{context.Canceled, false},
		{&ErrMaxTokensExceeded{}, false},
		{&ErrInvalidResponse{Err: errors.New("bad")}, false},
		{&ErrRateLimit{}, true},
		{&ErrProviderUnavailable{}, true},
		{errors.New("other"), true},
	}
	for _, tt := range tests {
		if got := Retryable(tt.err); got != tt.want {
			t.Errorf("Retryable(%v) = %v, want %v", tt.err, got, tt.want)
		}
	}
}
