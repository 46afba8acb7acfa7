package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/tidwall/gjson"

	"github.com/diogo/hfchat/internal/config"
	apierrors "github.com/diogo/hfchat/internal/errors"
	"github.com/diogo/hfchat/internal/models"
)

// maxErrorBody limits how much of an error response body is kept for
// diagnostics.
const maxErrorBody = 4096

// GenerateContent sends a single-turn prompt to the inference API and returns
// the decoded output. Each call is stateless: no prior transcript is sent.
func (c *InferenceClient) GenerateContent(prompt string) (*models.ModelOutput, error) {
	if prompt == "" {
		return nil, fmt.Errorf("prompt cannot be empty")
	}

	// Token check happens before any network I/O so a missing or
	// placeholder credential never reaches the wire
	c.mu.RLock()
	token := c.token
	c.mu.RUnlock()
	if _, err := config.ValidateToken(token); err != nil {
		return nil, err
	}

	endpoint := c.Endpoint()

	payload, err := json.Marshal(models.NewGenerateRequest(prompt))
	if err != nil {
		return nil, fmt.Errorf("failed to build payload: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		var urlErr *url.Error
		if errors.As(err, &urlErr) && urlErr.Timeout() {
			return nil, apierrors.NewTimeoutError(fmt.Sprintf("generate content: %v", urlErr.Err))
		}
		return nil, apierrors.NewNetworkError("generate content", endpoint, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, apierrors.NewAPIErrorWithBody(
			resp.StatusCode,
			endpoint,
			errorMessage(body, resp.StatusCode),
			string(body),
		)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apierrors.NewNetworkError("read response", endpoint, err)
	}

	return parseResponse(body), nil
}

// errorMessage extracts a human-readable message from an error response body,
// falling back to the HTTP status text.
func errorMessage(body []byte, statusCode int) string {
	if msg := gjson.GetBytes(body, "error"); msg.Type == gjson.String && msg.Str != "" {
		return msg.Str
	}
	if text := http.StatusText(statusCode); text != "" {
		return text
	}
	return "generate content failed"
}

// parseResponse decodes the generated text from a 2xx response. The text
// field is optional: the API may answer `[{"generated_text": ...}]` or
// `{"generated_text": ...}`, and either form may be missing or hold a
// non-string value. Absence is not an error; the output records it and the
// caller substitutes placeholder text.
func parseResponse(body []byte) *models.ModelOutput {
	for _, path := range []string{"0.generated_text", "generated_text"} {
		if text := gjson.GetBytes(body, path); text.Type == gjson.String {
			return &models.ModelOutput{GeneratedText: text.Str, Present: true}
		}
	}
	return &models.ModelOutput{}
}
