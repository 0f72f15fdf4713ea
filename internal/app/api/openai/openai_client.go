package openai

import (
	"github.com/sashabaranov/go-openai"
)

// NewClient builds an OpenAI API client for the given key. baseURL overrides
// the default endpoint when set (useful for compatible self-hosted servers).
func NewClient(apiKey string, baseURL string) *openai.Client {
	config := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		config.BaseURL = baseURL
	}
	return openai.NewClientWithConfig(config)
}
