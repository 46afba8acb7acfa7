// Package api implements the client for the Hugging Face Inference API.
package api

import (
	"net/http"
	"sync"
	"time"

	"github.com/diogo/hfchat/internal/models"
)

// DefaultTimeout bounds a single inference request. Hosted models can take a
// while to respond when cold, so this is deliberately generous.
const DefaultTimeout = 120 * time.Second

// InferenceClientInterface defines the client operations needed by callers.
// The TUI and commands depend on this so tests can substitute a mock.
type InferenceClientInterface interface {
	GenerateContent(prompt string) (*models.ModelOutput, error)
	GetModel() models.Model
	SetModel(model models.Model)
	Endpoint() string
}

// InferenceClient is the client for the Hugging Face text-generation endpoint
type InferenceClient struct {
	httpClient *http.Client
	baseURL    string
	token      string
	model      models.Model
	mu         sync.RWMutex
}

// Ensure InferenceClient implements InferenceClientInterface
var _ InferenceClientInterface = (*InferenceClient)(nil)

// ClientOption is a function that configures the client
type ClientOption func(*InferenceClient)

// WithModel sets the model for the client
func WithModel(model models.Model) ClientOption {
	return func(c *InferenceClient) {
		c.model = model
	}
}

// WithBaseURL overrides the inference API root (used in tests)
func WithBaseURL(baseURL string) ClientOption {
	return func(c *InferenceClient) {
		c.baseURL = baseURL
	}
}

// WithHTTPClient replaces the underlying HTTP client
func WithHTTPClient(httpClient *http.Client) ClientOption {
	return func(c *InferenceClient) {
		c.httpClient = httpClient
	}
}

// WithTimeout sets the request timeout
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *InferenceClient) {
		c.httpClient.Timeout = timeout
	}
}

// NewClient creates a new InferenceClient. The token is not validated here;
// GenerateContent checks it before any network I/O so a missing token
// surfaces at submission time, not at startup.
func NewClient(token string, opts ...ClientOption) *InferenceClient {
	client := &InferenceClient{
		httpClient: &http.Client{Timeout: DefaultTimeout},
		baseURL:    models.DefaultBaseURL,
		token:      token,
		model:      models.DefaultModel,
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

// GetModel returns the configured model
func (c *InferenceClient) GetModel() models.Model {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.model
}

// SetModel sets the model
func (c *InferenceClient) SetModel(model models.Model) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.model = model
}

// Endpoint returns the full URL requests are sent to
func (c *InferenceClient) Endpoint() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.baseURL + "/models/" + c.model.ID
}
