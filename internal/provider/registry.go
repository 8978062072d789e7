package provider

import (
	"errors"
	"sort"
	"strings"

	"nickandperla.net/aurascript/internal/config"
)

// Registry maps provider keys to providers. Keys match case-insensitively.
// After construction it holds no mutable state besides registrations, so
// concurrent Generate calls are safe once registration is done.
type Registry struct {
	providers map[string]Provider
}

// NewRegistry creates a registry holding the openai, ollama and gemini
// providers configured from cfg. A nil cfg yields an empty registry.
func NewRegistry(cfg *config.Config) *Registry {
	r := &Registry{providers: make(map[string]Provider)}
	if cfg == nil {
		return r
	}

	r.Register(NewOpenAI(
		WithOpenAIAPIKey(cfg.OpenAI.APIKey),
		WithOpenAIModel(cfg.OpenAI.Model),
		WithOpenAIURL(cfg.OpenAI.BaseURL),
	))
	r.Register(NewOllama(
		WithOllamaModel(cfg.Ollama.Model),
		WithOllamaURL(cfg.Ollama.BaseURL),
	))
	r.Register(NewGemini(
		WithGeminiAPIKey(cfg.Gemini.APIKey),
		WithGeminiModel(cfg.Gemini.Model),
		WithGeminiBaseURL(cfg.Gemini.BaseURL),
	))
	return r
}

// Register adds p under its name, replacing any provider with that name.
func (r *Registry) Register(p Provider) {
	r.providers[strings.ToLower(p.Name())] = p
}

// Lookup returns the provider for key.
func (r *Registry) Lookup(key string) (Provider, error) {
	if p, ok := r.providers[strings.ToLower(key)]; ok {
		return p, nil
	}
	return nil, &UnknownProviderError{Key: key}
}

// Has returns true if key names a registered provider.
func (r *Registry) Has(key string) bool {
	_, ok := r.providers[strings.ToLower(key)]
	return ok
}

// Names returns the registered keys in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.providers))
	for k := range r.providers {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// Generate makes exactly one call to the provider named by key. Unknown keys
// fail before any network call; provider failures come back as
// *ProviderError.
func (r *Registry) Generate(key, prompt string) (string, error) {
	p, err := r.Lookup(key)
	if err != nil {
		return "", err
	}

	text, err := p.Generate(prompt)
	if err != nil {
		var perr *ProviderError
		if errors.As(err, &perr) {
			return "", err
		}
		return "", &ProviderError{Provider: p.Name(), Err: err}
	}
	return text, nil
}
