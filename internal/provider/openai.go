package provider

import (
	"fmt"
	"net/http"

	"nickandperla.net/aurascript/internal/config"
)

// OpenAI is a provider for OpenAI-compatible chat completion endpoints.
type OpenAI struct {
	APIKey     string
	Model      string
	URL        string
	HTTPClient *http.Client
}

// OpenAIOption configures the OpenAI provider.
type OpenAIOption func(*OpenAI)

// WithOpenAIAPIKey sets the API key.
func WithOpenAIAPIKey(key string) OpenAIOption {
	return func(o *OpenAI) { o.APIKey = key }
}

// WithOpenAIModel sets the model name.
func WithOpenAIModel(model string) OpenAIOption {
	return func(o *OpenAI) { o.Model = model }
}

// WithOpenAIURL sets the chat completions URL.
func WithOpenAIURL(url string) OpenAIOption {
	return func(o *OpenAI) { o.URL = url }
}

// WithOpenAIHTTPClient sets the HTTP client.
func WithOpenAIHTTPClient(c *http.Client) OpenAIOption {
	return func(o *OpenAI) { o.HTTPClient = c }
}

// NewOpenAI creates a new OpenAI provider.
func NewOpenAI(opts ...OpenAIOption) *OpenAI {
	o := &OpenAI{
		Model: config.DefaultOpenAIModel,
		URL:   config.DefaultOpenAIURL,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Name returns "openai".
func (o *OpenAI) Name() string { return "openai" }

type openAIRequest struct {
	Model    string          `json:"model"`
	Messages []openAIMessage `json:"messages"`
}

type openAIMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type openAIResponse struct {
	Choices []struct {
		Message openAIMessage `json:"message"`
	} `json:"choices"`
}

// Generate sends the prompt as a single user message.
func (o *OpenAI) Generate(prompt string) (string, error) {
	if o.APIKey == "" {
		return "", fmt.Errorf("OPENAI_API_KEY not set")
	}

	reqBody := openAIRequest{
		Model:    o.Model,
		Messages: []openAIMessage{{Role: "user", Content: prompt}},
	}
	header := http.Header{}
	header.Set("Authorization", "Bearer "+o.APIKey)

	var result openAIResponse
	if err := postJSON(o.HTTPClient, o.URL, header, reqBody, &result); err != nil {
		return "", err
	}

	if len(result.Choices) == 0 {
		return "", fmt.Errorf("no response choices returned")
	}
	return result.Choices[0].Message.Content, nil
}
