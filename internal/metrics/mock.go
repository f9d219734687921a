package metrics

import (
	"sync"
	"time"
)

// Mock is a mock implementation of the Metrics interface for testing.
// It is safe for concurrent use.
type Mock struct {
	mu           sync.Mutex
	calls        map[string]int
	failedCalls  map[string]int
	httpRequests map[string]int
	startupTime  float64
}

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{
		calls:        make(map[string]int),
		failedCalls:  make(map[string]int),
		httpRequests: make(map[string]int),
	}
}

func (m *Mock) ObserveCall(operation string, _ time.Duration, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls[operation]++
	if err != nil {
		m.failedCalls[operation]++
	}
}

func (m *Mock) IncHTTPRequests(route string, _ int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.httpRequests[route]++
}

func (m *Mock) SetStartupTime(duration float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.startupTime = duration
}

// Calls returns how often ObserveCall was called for operation.
func (m *Mock) Calls(operation string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls[operation]
}

// FailedCalls returns how often ObserveCall was called for operation with an error.
func (m *Mock) FailedCalls(operation string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.failedCalls[operation]
}

// HTTPRequests returns how often IncHTTPRequests was called for route.
func (m *Mock) HTTPRequests(route string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.httpRequests[route]
}

// StartupTime returns the last value passed to SetStartupTime.
func (m *Mock) StartupTime() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.startupTime
}
