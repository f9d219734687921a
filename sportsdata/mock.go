package sportsdata

import (
	"context"
	"sync"
)

// MockTransport is a mock implementation of the Transport interface for testing.
// It is safe for concurrent use.
type MockTransport struct {
	mu sync.Mutex

	// Spy for method calls
	CallFunc func(ctx context.Context, operation string, args ...any) (*Record, error)

	// Call records
	Calls []TransportCall
}

// TransportCall holds the arguments for a call to Call.
type TransportCall struct {
	Operation string
	Args      []any
}

// NewMockTransport creates a new mock instance.
func NewMockTransport() *MockTransport {
	return &MockTransport{}
}

// Reset clears all call records.
func (m *MockTransport) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls = nil
}

func (m *MockTransport) Call(ctx context.Context, operation string, args ...any) (*Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls = append(m.Calls, TransportCall{Operation: operation, Args: args})
	if m.CallFunc != nil {
		return m.CallFunc(ctx, operation, args...)
	}
	return nil, nil
}

// Returning makes every call return result and err.
func (m *MockTransport) Returning(result *Record, err error) *MockTransport {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CallFunc = func(context.Context, string, ...any) (*Record, error) {
		return result, err
	}
	return m
}

// LastCall returns the most recent call record.
func (m *MockTransport) LastCall() (TransportCall, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.Calls) == 0 {
		return TransportCall{}, false
	}
	return m.Calls[len(m.Calls)-1], true
}

var _ Transport = (*MockTransport)(nil)
