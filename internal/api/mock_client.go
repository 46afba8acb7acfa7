package api

import (
	"github.com/diogo/hfchat/internal/models"
)

// MockInferenceClient is a mock implementation of InferenceClientInterface
// for testing
type MockInferenceClient struct {
	// Mock return values
	GenerateContentVal *models.ModelOutput
	GenerateContentErr error
	Model              models.Model
	EndpointVal        string

	// Call counters/recorders
	GenerateContentCalled int
	LastPrompt            string
}

// Ensure MockInferenceClient implements InferenceClientInterface
var _ InferenceClientInterface = (*MockInferenceClient)(nil)

func (m *MockInferenceClient) GenerateContent(prompt string) (*models.ModelOutput, error) {
	m.GenerateContentCalled++
	m.LastPrompt = prompt
	if m.GenerateContentErr != nil {
		return nil, m.GenerateContentErr
	}
	return m.GenerateContentVal, nil
}

func (m *MockInferenceClient) GetModel() models.Model {
	return m.Model
}

func (m *MockInferenceClient) SetModel(model models.Model) {
	m.Model = model
}

func (m *MockInferenceClient) Endpoint() string {
	return m.EndpointVal
}
