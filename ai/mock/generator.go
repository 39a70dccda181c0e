package mock

import (
	"context"
	"sync"

	"github.com/coursechat/coursechat/ai"
)

// MockGenerator is a test double for ai.Generator. Responses are
// scripted with Enqueue and returned in order; every request is
// recorded for assertions.
type MockGenerator struct {
	// GenerateFunc is called by Generate if set, bypassing the
	// scripted response queue.
	GenerateFunc func(ctx context.Context, req *ai.GenerateRequest) (*ai.GenerateResponse, error)

	mu        sync.Mutex
	responses []*ai.GenerateResponse
	errs      []error
	requests  []*ai.GenerateRequest
}

// NewMockGenerator creates a mock generator with an empty script.
// Note: Returns concrete type to allow test assertions.
func NewMockGenerator() *MockGenerator {
	return &MockGenerator{}
}

// Enqueue appends a scripted response to be returned by a future
// Generate call.
func (m *MockGenerator) Enqueue(resp *ai.GenerateResponse) *MockGenerator {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.responses = append(m.responses, resp)
	m.errs = append(m.errs, nil)
	return m
}

// EnqueueError appends a scripted error to be returned by a future
// Generate call.
func (m *MockGenerator) EnqueueError(err error) *MockGenerator {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.responses = append(m.responses, nil)
	m.errs = append(m.errs, err)
	return m
}

// Generate returns the next scripted response. With an exhausted or
// empty script it returns a canned text response.
func (m *MockGenerator) Generate(ctx context.Context, req *ai.GenerateRequest) (*ai.GenerateResponse, error) {
	if m.GenerateFunc != nil {
		m.mu.Lock()
		m.requests = append(m.requests, req)
		m.mu.Unlock()
		return m.GenerateFunc(ctx, req)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.requests = append(m.requests, req)

	if len(m.responses) == 0 {
		return &ai.GenerateResponse{Text: "mock response"}, nil
	}

	resp, err := m.responses[0], m.errs[0]
	m.responses = m.responses[1:]
	m.errs = m.errs[1:]
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// Requests returns all recorded requests in call order.
func (m *MockGenerator) Requests() []*ai.GenerateRequest {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]*ai.GenerateRequest(nil), m.requests...)
}

// CallCount returns the number of Generate calls.
func (m *MockGenerator) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.requests)
}

// Reset clears the script, recorded requests, and injected behavior.
func (m *MockGenerator) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.responses = nil
	m.errs = nil
	m.requests = nil
	m.GenerateFunc = nil
}
