package provider

import "strings"

// Mock is a mock provider for testing.
type Mock struct {
	Key      string
	Response string
	Handler  func(prompt string) (string, error)
	Prompts  []string // every prompt received, in order
}

// NewMock creates a new mock provider with a fixed response.
func NewMock(key, response string) *Mock {
	return &Mock{Key: key, Response: response}
}

// NewMockHandler creates a mock provider with a custom handler.
func NewMockHandler(key string, handler func(prompt string) (string, error)) *Mock {
	return &Mock{Key: key, Handler: handler}
}

// Name returns the mock's key in lower case.
func (m *Mock) Name() string { return strings.ToLower(m.Key) }

// Generate returns the mock response or calls the handler.
func (m *Mock) Generate(prompt string) (string, error) {
	m.Prompts = append(m.Prompts, prompt)
	if m.Handler != nil {
		return m.Handler(prompt)
	}
	return m.Response, nil
}
