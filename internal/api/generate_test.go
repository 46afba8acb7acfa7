package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/diogo/hfchat/internal/config"
	apierrors "github.com/diogo/hfchat/internal/errors"
	"github.com/diogo/hfchat/internal/models"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*InferenceClient, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := NewClient("hf_test_token", WithBaseURL(server.URL))
	return client, server
}

func TestGenerateContent_Success(t *testing.T) {
	var gotReq models.GenerateRequest
	var gotAuth, gotContentType string

	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotContentType = r.Header.Get("Content-Type")
		body, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(body, &gotReq)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"generated_text": "Once upon a time..."}]`))
	})

	output, err := client.GenerateContent("Tell me a story")
	if err != nil {
		t.Fatalf("GenerateContent failed: %v", err)
	}

	if !output.HasText() {
		t.Fatal("Expected usable text in output")
	}
	if output.Text() != "Once upon a time..." {
		t.Errorf("Text = %q", output.Text())
	}

	// Request shape
	if gotAuth != "Bearer hf_test_token" {
		t.Errorf("Authorization = %q", gotAuth)
	}
	if gotContentType != "application/json" {
		t.Errorf("Content-Type = %q", gotContentType)
	}
	if gotReq.Inputs != "Tell me a story" {
		t.Errorf("Inputs = %q", gotReq.Inputs)
	}
	if gotReq.Parameters.MaxNewTokens != 500 {
		t.Errorf("MaxNewTokens = %d, want 500", gotReq.Parameters.MaxNewTokens)
	}
	if gotReq.Parameters.Temperature != 0.7 {
		t.Errorf("Temperature = %v, want 0.7", gotReq.Parameters.Temperature)
	}
	if gotReq.Parameters.TopP != 0.95 {
		t.Errorf("TopP = %v, want 0.95", gotReq.Parameters.TopP)
	}
}

func TestGenerateContent_ObjectResponse(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"generated_text": "object form"}`))
	})

	output, err := client.GenerateContent("hi")
	if err != nil {
		t.Fatalf("GenerateContent failed: %v", err)
	}
	if output.Text() != "object form" {
		t.Errorf("Text = %q", output.Text())
	}
}

func TestGenerateContent_MissingTextField(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "empty array", body: `[]`},
		{name: "no field", body: `[{"something_else": "x"}]`},
		{name: "non-string field", body: `[{"generated_text": 42}]`},
		{name: "null field", body: `{"generated_text": null}`},
		{name: "not json", body: `<html>gateway</html>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(tt.body))
			})

			output, err := client.GenerateContent("hi")
			if err != nil {
				t.Fatalf("Shape faults must not surface as errors, got: %v", err)
			}
			if output.HasText() {
				t.Error("Expected HasText false")
			}
			if output.Text() != models.NoResponseText {
				t.Errorf("Text = %q, want placeholder", output.Text())
			}
		})
	}
}

func TestGenerateContent_APIError(t *testing.T) {
	client, server := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte(`{"error": "Model mistralai/Mistral-7B-Instruct-v0.3 is currently loading"}`))
	})

	_, err := client.GenerateContent("hi")
	if err == nil {
		t.Fatal("Expected error for 503 response")
	}

	if got := apierrors.GetHTTPStatus(err); got != 503 {
		t.Errorf("GetHTTPStatus = %d, want 503", got)
	}
	if !apierrors.IsModelLoadingError(err) {
		t.Error("Expected model-loading classification for 503")
	}
	if got := apierrors.GetEndpoint(err); got != server.URL+"/models/"+models.DefaultModel.ID {
		t.Errorf("GetEndpoint = %q", got)
	}
	if body := apierrors.GetResponseBody(err); body == "" {
		t.Error("Expected response body to be preserved")
	}
}

func TestGenerateContent_AuthError(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error": "Authorization header is correct, but the token seems invalid"}`))
	})

	_, err := client.GenerateContent("hi")
	if err == nil {
		t.Fatal("Expected error for 401 response")
	}
	if !apierrors.IsAuthError(err) {
		t.Errorf("Expected auth classification, got: %v", err)
	}
}

func TestGenerateContent_ErrorMessageFallback(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("not json"))
	})

	_, err := client.GenerateContent("hi")
	if err == nil {
		t.Fatal("Expected error for 502 response")
	}

	var apiErr *apierrors.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("Expected APIError, got %T", err)
	}
	if apiErr.Message != "Bad Gateway" {
		t.Errorf("Message = %q, want status text fallback", apiErr.Message)
	}
}

func TestGenerateContent_NetworkError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	client := NewClient("hf_test_token", WithBaseURL(server.URL))
	server.Close() // Kill the server so the request fails at the transport

	_, err := client.GenerateContent("hi")
	if err == nil {
		t.Fatal("Expected error for unreachable server")
	}
	if !apierrors.IsNetworkError(err) {
		t.Errorf("Expected network classification, got: %v", err)
	}
}

func TestGenerateContent_EmptyPrompt(t *testing.T) {
	requests := 0
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		requests++
	})

	if _, err := client.GenerateContent(""); err == nil {
		t.Error("Expected error for empty prompt")
	}
	if requests != 0 {
		t.Errorf("Empty prompt must not reach the network, got %d requests", requests)
	}
}

func TestGenerateContent_MissingToken(t *testing.T) {
	requests := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
	}))
	t.Cleanup(server.Close)

	tests := []string{"", "your_huggingface_api_token_here"}
	for _, token := range tests {
		client := NewClient(token, WithBaseURL(server.URL))

		_, err := client.GenerateContent("Hello")
		if err == nil {
			t.Fatalf("Expected error for token %q", token)
		}
		if !apierrors.IsConfigError(err) {
			t.Errorf("Expected ConfigError for token %q, got %T", token, err)
		}
		if err.Error() != config.TokenInstructions {
			t.Errorf("Error message = %q, want instructional text", err.Error())
		}
	}

	if requests != 0 {
		t.Errorf("Configuration faults must not reach the network, got %d requests", requests)
	}
}

func TestParseResponse(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		wantText string
		present  bool
	}{
		{
			name:     "array form",
			body:     `[{"generated_text": "hello"}]`,
			wantText: "hello",
			present:  true,
		},
		{
			name:     "object form",
			body:     `{"generated_text": "hello"}`,
			wantText: "hello",
			present:  true,
		},
		{
			name:     "empty string still counts as present",
			body:     `[{"generated_text": ""}]`,
			wantText: "",
			present:  true,
		},
		{
			name:    "missing",
			body:    `[{}]`,
			present: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output := parseResponse([]byte(tt.body))
			if output.HasText() != tt.present {
				t.Errorf("HasText = %v, want %v", output.HasText(), tt.present)
			}
			if tt.present && output.GeneratedText != tt.wantText {
				t.Errorf("GeneratedText = %q, want %q", output.GeneratedText, tt.wantText)
			}
		})
	}
}
