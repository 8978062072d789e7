package provider

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"nickandperla.net/aurascript/internal/config"
)

// Gemini is a provider for the Google Gemini generateContent endpoint.
type Gemini struct {
	APIKey     string
	Model      string
	BaseURL    string // models collection, e.g. .../v1beta/models
	HTTPClient *http.Client
}

// GeminiOption configures the Gemini provider.
type GeminiOption func(*Gemini)

// WithGeminiAPIKey sets the API key.
func WithGeminiAPIKey(key string) GeminiOption {
	return func(g *Gemini) { g.APIKey = key }
}

// WithGeminiModel sets the model name.
func WithGeminiModel(model string) GeminiOption {
	return func(g *Gemini) { g.Model = model }
}

// WithGeminiBaseURL sets the models collection URL.
func WithGeminiBaseURL(u string) GeminiOption {
	return func(g *Gemini) { g.BaseURL = u }
}

// WithGeminiHTTPClient sets the HTTP client.
func WithGeminiHTTPClient(c *http.Client) GeminiOption {
	return func(g *Gemini) { g.HTTPClient = c }
}

// NewGemini creates a new Gemini provider.
func NewGemini(opts ...GeminiOption) *Gemini {
	g := &Gemini{
		Model:   config.DefaultGeminiModel,
		BaseURL: config.DefaultGeminiURL,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Name returns "gemini".
func (g *Gemini) Name() string { return "gemini" }

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts"`
}

type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
}

// Endpoint returns the generateContent URL, with the API key as query.
func (g *Gemini) Endpoint() string {
	q := url.Values{}
	q.Set("key", g.APIKey)
	return fmt.Sprintf("%s/%s:generateContent?%s", strings.TrimRight(g.BaseURL, "/"), g.Model, q.Encode())
}

// Generate sends the prompt as a single user turn and returns the first
// part of the first candidate.
func (g *Gemini) Generate(prompt string) (string, error) {
	if g.APIKey == "" {
		return "", fmt.Errorf("GEMINI_API_KEY not set")
	}

	reqBody := geminiRequest{
		Contents: []geminiContent{{Role: "user", Parts: []geminiPart{{Text: prompt}}}},
	}

	var result geminiResponse
	if err := postJSON(g.HTTPClient, g.Endpoint(), nil, reqBody, &result); err != nil {
		return "", err
	}

	if len(result.Candidates) == 0 {
		return "", fmt.Errorf("no candidates returned")
	}
	parts := result.Candidates[0].Content.Parts
	if len(parts) == 0 {
		return "", fmt.Errorf("candidate has no content parts")
	}
	return parts[0].Text, nil
}
