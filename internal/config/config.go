// Package config holds the static provider configuration.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Default endpoints and models.
const (
	DefaultOpenAIURL   = "https://api.openai.com/v1/chat/completions"
	DefaultOpenAIModel = "gpt-3.5-turbo"
	DefaultOllamaURL   = "http://localhost:11434/api/generate"
	DefaultOllamaModel = "llama2"
	DefaultGeminiURL   = "https://generativelanguage.googleapis.com/v1beta/models"
	DefaultGeminiModel = "gemini-pro"
)

// ProviderConfig is the static configuration of one provider.
type ProviderConfig struct {
	APIKey  string `yaml:"api_key,omitempty"`
	Model   string `yaml:"model,omitempty"`
	BaseURL string `yaml:"base_url,omitempty"`
}

// OllamaConfig configures the local Ollama server, which takes no API key.
type OllamaConfig struct {
	Model   string `yaml:"model,omitempty"`
	BaseURL string `yaml:"base_url,omitempty"`
}

// Config is built once at startup and passed to the provider registry.
type Config struct {
	OpenAI ProviderConfig `yaml:"openai"`
	Ollama OllamaConfig   `yaml:"ollama"`
	Gemini ProviderConfig `yaml:"gemini"`
}

// Default returns the built-in configuration. API keys are empty.
func Default() *Config {
	return &Config{
		OpenAI: ProviderConfig{Model: DefaultOpenAIModel, BaseURL: DefaultOpenAIURL},
		Ollama: OllamaConfig{Model: DefaultOllamaModel, BaseURL: DefaultOllamaURL},
		Gemini: ProviderConfig{Model: DefaultGeminiModel, BaseURL: DefaultGeminiURL},
	}
}

// Load reads the YAML file at path over the defaults and then applies
// environment overrides. An empty path skips the file.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("config: %w", err)
		}
		defer f.Close()
		if err := cfg.Decode(f); err != nil {
			return nil, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}
	cfg.ApplyEnv(os.Getenv)
	return cfg, nil
}

// Decode merges YAML from r into c. Keys absent from the document keep
// their current values; unknown keys are rejected.
func (c *Config) Decode(r io.Reader) error {
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// ApplyEnv overrides fields from environment variables that are set.
func (c *Config) ApplyEnv(getenv func(string) string) {
	override := func(dst *string, key string) {
		if v := getenv(key); v != "" {
			*dst = v
		}
	}
	override(&c.OpenAI.APIKey, "OPENAI_API_KEY")
	override(&c.OpenAI.Model, "OPENAI_MODEL")
	override(&c.OpenAI.BaseURL, "OPENAI_BASE_URL")
	override(&c.Ollama.Model, "OLLAMA_MODEL")
	override(&c.Ollama.BaseURL, "OLLAMA_BASE_URL")
	override(&c.Gemini.APIKey, "GEMINI_API_KEY")
	override(&c.Gemini.Model, "GEMINI_MODEL")
	override(&c.Gemini.BaseURL, "GEMINI_BASE_URL")
}

// Encode writes c as YAML.
func (c *Config) Encode(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return err
	}
	return enc.Close()
}

// Redacted returns a copy of c with API keys masked.
func (c *Config) Redacted() *Config {
	out := *c
	mask := func(key string) string {
		if key == "" {
			return ""
		}
		return "****"
	}
	out.OpenAI.APIKey = mask(c.OpenAI.APIKey)
	out.Gemini.APIKey = mask(c.Gemini.APIKey)
	return &out
}
