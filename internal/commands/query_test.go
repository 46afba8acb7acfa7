package commands

import (
	"strings"
	"testing"

	apierrors "github.com/diogo/hfchat/internal/errors"
)

func TestFormatErrorMessage_ConfigError(t *testing.T) {
	e := apierrors.NewConfigError("Please set your Hugging Face API token in the .env file")
	out := formatErrorMessage(e)
	if out == "" {
		t.Fatal("expected non-empty message")
	}
	if !strings.Contains(out, "HF_API_TOKEN") {
		t.Errorf("expected token hint, got: %s", out)
	}
}

func TestFormatErrorMessage_AuthError(t *testing.T) {
	e := apierrors.NewAPIError(401, "/models/test", "Unauthorized")
	out := formatErrorMessage(e)
	if !strings.Contains(out, "token") {
		t.Errorf("expected token hint for 401, got: %s", out)
	}
}

func TestFormatErrorMessage_ModelLoading(t *testing.T) {
	e := apierrors.NewAPIErrorWithBody(503, "/models/test", "Service Unavailable", `{"error":"Model is currently loading"}`)
	out := formatErrorMessage(e)
	if !strings.Contains(out, "loading") {
		t.Errorf("expected loading hint for 503, got: %s", out)
	}
}

func TestFormatErrorMessage_RateLimit(t *testing.T) {
	e := apierrors.NewAPIError(429, "/models/test", "Too Many Requests")
	out := formatErrorMessage(e)
	if !strings.Contains(out, "Rate limited") {
		t.Errorf("expected rate limit hint, got: %s", out)
	}
}

func TestFormatErrorMessage_NetworkAndTimeout(t *testing.T) {
	netErr := apierrors.NewNetworkError("generate", "/models/test", nil)
	if out := formatErrorMessage(netErr); !strings.Contains(out, "network") {
		t.Errorf("expected network hint, got: %s", out)
	}

	timeout := apierrors.NewTimeoutError("generate")
	if out := formatErrorMessage(timeout); !strings.Contains(out, "timed out") {
		t.Errorf("expected timeout hint, got: %s", out)
	}
}

func TestFormatErrorMessage_PlainError(t *testing.T) {
	// Unclassified errors still render the message, just without a hint
	out := formatErrorMessage(apierrors.NewAPIError(500, "/models/test", "Internal Server Error"))
	if !strings.Contains(out, "Internal Server Error") {
		t.Errorf("expected the message itself, got: %s", out)
	}
}

func TestMaskToken(t *testing.T) {
	tests := []struct {
		token string
		want  string
	}{
		{"hf_abcdefghijklmnop", "hf_a...mnop"},
		{"short", "****"},
		{"", "****"},
	}

	for _, tt := range tests {
		if got := maskToken(tt.token); got != tt.want {
			t.Errorf("maskToken(%q) = %q, want %q", tt.token, got, tt.want)
		}
	}
}
