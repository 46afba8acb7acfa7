package config

import (
	"os"
	"path/filepath"
	"testing"

	apierrors "github.com/diogo/hfchat/internal/errors"
)

func TestValidateToken(t *testing.T) {
	tests := []struct {
		name    string
		token   string
		want    string
		wantErr bool
	}{
		{
			name:  "valid token",
			token: "hf_abc123def456",
			want:  "hf_abc123def456",
		},
		{
			name:  "valid token with whitespace",
			token: "  hf_abc123def456\n",
			want:  "hf_abc123def456",
		},
		{
			name:    "empty",
			token:   "",
			wantErr: true,
		},
		{
			name:    "whitespace only",
			token:   "   \t",
			wantErr: true,
		},
		{
			name:    "placeholder",
			token:   "your_huggingface_api_token_here",
			wantErr: true,
		},
		{
			name:    "placeholder uppercase",
			token:   "YOUR_TOKEN_HERE",
			wantErr: true,
		},
		{
			name:    "template hf token",
			token:   "hf_xxxxxxxxxxxxxxxxxxxxxxxxxxxx",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ValidateToken(tt.token)
			if tt.wantErr {
				if err == nil {
					t.Fatal("Expected error, got nil")
				}
				if !apierrors.IsConfigError(err) {
					t.Errorf("Expected ConfigError, got %T", err)
				}
				if err.Error() != TokenInstructions {
					t.Errorf("Error message = %q, want %q", err.Error(), TokenInstructions)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ValidateToken = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLoadToken_FromEnv(t *testing.T) {
	t.Setenv(TokenEnvVar, "hf_from_environment")

	token, err := LoadToken()
	if err != nil {
		t.Fatalf("LoadToken failed: %v", err)
	}
	if token != "hf_from_environment" {
		t.Errorf("token = %q", token)
	}
}

func TestLoadToken_Missing(t *testing.T) {
	t.Setenv(TokenEnvVar, "")

	_, err := LoadToken()
	if err == nil {
		t.Fatal("Expected error when token is unset")
	}
	if err.Error() != TokenInstructions {
		t.Errorf("Error message = %q, want %q", err.Error(), TokenInstructions)
	}
}

func TestLoadToken_DotEnvFile(t *testing.T) {
	// godotenv reads .env from the working directory
	dir := t.TempDir()
	oldWd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd failed: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(oldWd) })
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("Chdir failed: %v", err)
	}

	envFile := filepath.Join(dir, ".env")
	if err := os.WriteFile(envFile, []byte(TokenEnvVar+"=hf_from_dotenv\n"), 0o600); err != nil {
		t.Fatalf("Failed to write .env: %v", err)
	}
	t.Setenv(TokenEnvVar, "")
	os.Unsetenv(TokenEnvVar)

	token, err := LoadToken()
	if err != nil {
		t.Fatalf("LoadToken failed: %v", err)
	}
	if token != "hf_from_dotenv" {
		t.Errorf("token = %q, want hf_from_dotenv", token)
	}
}
