package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"

	apierrors "github.com/diogo/hfchat/internal/errors"
)

// TokenEnvVar is the environment variable holding the Hugging Face API token.
const TokenEnvVar = "HF_API_TOKEN"

// TokenInstructions is shown when the token is missing or still set to a
// placeholder value.
const TokenInstructions = "Please set your Hugging Face API token in the .env file"

// tokenPlaceholders are values commonly left in .env templates. A token equal
// to one of these is treated the same as no token at all.
var tokenPlaceholders = map[string]bool{
	"your_huggingface_api_token":      true,
	"your_huggingface_api_token_here": true,
	"your_huggingface_token_here":     true,
	"your_token_here":                 true,
	"hf_xxxxxxxxxxxxxxxxxxxxxxxxxxxx": true,
	"changeme":                        true,
}

// LoadToken resolves the API token at process start. A .env file in the
// working directory is loaded first (without overriding variables already in
// the environment), then the token is read from TokenEnvVar. A missing or
// placeholder token is a configuration fault raised before any network call.
func LoadToken() (string, error) {
	// Missing .env is fine; the variable may be set in the environment
	_ = godotenv.Load()

	return ValidateToken(os.Getenv(TokenEnvVar))
}

// ValidateToken checks that a token value is usable
func ValidateToken(token string) (string, error) {
	token = strings.TrimSpace(token)
	if token == "" || tokenPlaceholders[strings.ToLower(token)] {
		return "", apierrors.NewConfigError(TokenInstructions)
	}
	return token, nil
}
