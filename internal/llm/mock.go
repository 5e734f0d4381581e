package llm

import (
	"context"
	"encoding/json"
	"sync"
)

// Responder answers a request offline. It backs the "mock" provider so
// generated content can be exercised without an API key.
type Responder func(req Request) (json.RawMessage, error)

// MockResponse is a canned answer queued on a MockProvider.
type MockResponse struct {
	Content json.RawMessage
	Usage   Usage
	Err     error
}

// MockProvider serves queued responses first and then asks its
// Responder. Responder output is checked against the request schema
// like a real provider's. Every request is recorded in Calls.
type MockProvider struct {
	mu      sync.Mutex
	queue   []MockResponse
	respond Responder
	Calls   []Request
}

// NewMockProvider returns a provider that replays responses in order.
func NewMockProvider(responses ...MockResponse) *MockProvider {
	return &MockProvider{queue: responses}
}

// WithResponder sets the fallback used once the queue is empty.
func (m *MockProvider) WithResponder(r Responder) *MockProvider {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.respond = r
	return m
}

// Generate returns the next queued response, then Responder output.
// With neither it fails with *ErrProviderUnavailable.
func (m *MockProvider) Generate(_ context.Context, req Request) (*Response, error) {
	m.mu.Lock()
	m.Calls = append(m.Calls, req)
	var next *MockResponse
	if len(m.queue) > 0 {
		next = &m.queue[0]
		m.queue = m.queue[1:]
	}
	respond := m.respond
	m.mu.Unlock()

	switch {
	case next != nil:
		if next.Err != nil {
			return nil, next.Err
		}
		return m.response(next.Content, next.Usage), nil
	case respond != nil:
		content, err := respond(req)
		if err != nil {
			return nil, err
		}
		if err := validateResponse(req.Schema, content); err != nil {
			return nil, err
		}
		return m.response(content, estimateUsage(req, content)), nil
	}
	return nil, &ErrProviderUnavailable{}
}

func (m *MockProvider) response(content json.RawMessage, u Usage) *Response {
	return &Response{Content: content, Usage: u, Model: "mock", StopReason: "end"}
}

// estimateUsage approximates token counts at four bytes per token.
func estimateUsage(req Request, out json.RawMessage) Usage {
	in := len(req.System)
	for _, msg := range req.Messages {
		in += len(msg.Content)
	}
	u := Usage{InputTokens: in / 4, OutputTokens: len(out) / 4}
	u.TotalTokens = u.InputTokens + u.OutputTokens
	return u
}

func (m *MockProvider) ModelID() string { return "mock" }

// AddResponse queues another canned response.
func (m *MockProvider) AddResponse(resp MockResponse) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.queue = append(m.queue, resp)
}

// CallCount returns how many requests were made.
func (m *MockProvider) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}
