package provider

import (
	"fmt"
	"net/http"

	"nickandperla.net/aurascript/internal/config"
)

// Ollama is a provider for a local Ollama generate endpoint.
type Ollama struct {
	URL        string
	Model      string
	HTTPClient *http.Client
}

// OllamaOption configures the Ollama provider.
type OllamaOption func(*Ollama)

// WithOllamaURL sets the generate endpoint URL.
func WithOllamaURL(url string) OllamaOption {
	return func(o *Ollama) { o.URL = url }
}

// WithOllamaModel sets the model name.
func WithOllamaModel(model string) OllamaOption {
	return func(o *Ollama) { o.Model = model }
}

// WithOllamaHTTPClient sets the HTTP client.
func WithOllamaHTTPClient(c *http.Client) OllamaOption {
	return func(o *Ollama) { o.HTTPClient = c }
}

// NewOllama creates a new Ollama provider.
func NewOllama(opts ...OllamaOption) *Ollama {
	o := &Ollama{
		URL:   config.DefaultOllamaURL,
		Model: config.DefaultOllamaModel,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Name returns "ollama".
func (o *Ollama) Name() string { return "ollama" }

type ollamaRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
	Stream bool   `json:"stream"`
}

type ollamaResponse struct {
	Response string `json:"response"`
	Done     bool   `json:"done"`
	Error    string `json:"error"`
}

// Generate requests a single, non-streamed completion.
func (o *Ollama) Generate(prompt string) (string, error) {
	reqBody := ollamaRequest{
		Model:  o.Model,
		Prompt: prompt,
		Stream: false,
	}

	var result ollamaResponse
	if err := postJSON(o.HTTPClient, o.URL, nil, reqBody, &result); err != nil {
		return "", err
	}
	if result.Error != "" {
		return "", fmt.Errorf("ollama error: %s", result.Error)
	}
	return result.Response, nil
}
