package llm

import "context"

// MockClient is a canned generator for tests and offline development.
type MockClient struct {
	// Response is returned verbatim when set; otherwise the user prompt is
	// echoed back.
	Response string
	// Err, when set, is returned from every Generate call.
	Err error

	// Calls records the prompts passed to Generate.
	Calls []MockCall
}

// MockCall is one recorded Generate invocation.
type MockCall struct {
	System string
	User   string
}

// NewMockClient creates a mock generator with a fixed response.
func NewMockClient(response string) *MockClient {
	return &MockClient{Response: response}
}

// Generate returns the canned response or error.
func (m *MockClient) Generate(ctx context.Context, system, user string) (string, error) {
	m.Calls = append(m.Calls, MockCall{System: system, User: user})
	if m.Err != nil {
		return "", m.Err
	}
	if m.Response != "" {
		return m.Response, nil
	}
	return user, nil
}

// Model returns the mock model name.
func (m *MockClient) Model() string {
	return "mock"
}

var _ Generator = (*MockClient)(nil)
