package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Credentials holds the secrets loaded from the environment at startup.
type Credentials struct {
	OpenAIKey     string
	OpenAIBaseURL string
	MongoURI      string
	MongoDatabase string
}

// LoadEnv loads environment variables from a .env file if one exists.
// Missing files are not an error; variables may be set system-wide.
func LoadEnv() error {
	envPaths := []string{
		".env",
		".env.local",
		"../.env",
		"../../.env",
	}

	for _, envPath := range envPaths {
		if _, err := os.Stat(envPath); err == nil {
			if err := godotenv.Load(envPath); err != nil {
				return fmt.Errorf("error loading %s file: %w", envPath, err)
			}
			break
		}
	}

	return nil
}

// GetCredentials reads and validates the service credentials. Fail-fast: the
// process should not come up with a malformed key and discover it on the
// first upload.
func GetCredentials() (*Credentials, error) {
	creds := &Credentials{
		OpenAIKey:     strings.TrimSpace(os.Getenv("OPENAI_API_KEY")),
		OpenAIBaseURL: strings.TrimSpace(os.Getenv("OPENAI_BASE_URL")),
		MongoURI:      strings.TrimSpace(os.Getenv("MONGO_URI")),
		MongoDatabase: strings.TrimSpace(os.Getenv("MONGO_DATABASE")),
	}

	if creds.OpenAIKey == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY must be set in environment or .env file")
	}
	// Custom base URLs may use non-OpenAI key formats; only check the default.
	if creds.OpenAIBaseURL == "" {
		if !strings.HasPrefix(creds.OpenAIKey, "sk-") {
			return nil, fmt.Errorf("invalid OPENAI_API_KEY format: must start with 'sk-'")
		}
		if len(creds.OpenAIKey) < 20 {
			return nil, fmt.Errorf("invalid OPENAI_API_KEY format: too short")
		}
	}

	if creds.MongoURI == "" {
		creds.MongoURI = "mongodb://localhost:27017"
	}

	return creds, nil
}

// InitializeCredentials loads the environment and validates credentials.
// This is the main entry point for startup configuration.
func InitializeCredentials() (*Credentials, error) {
	if err := LoadEnv(); err != nil {
		return nil, fmt.Errorf("failed to load environment: %w", err)
	}

	creds, err := GetCredentials()
	if err != nil {
		return nil, fmt.Errorf("failed to get credentials: %w", err)
	}

	return creds, nil
}
