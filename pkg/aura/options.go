package aura

import (
	"fmt"
	"io"

	"nickandperla.net/aurascript/internal/config"
	"nickandperla.net/aurascript/internal/provider"
	"nickandperla.net/aurascript/internal/store"
)

// Option configures a Runtime.
type Option func(*Runtime)

// WithConfig sets the provider configuration.
func WithConfig(cfg *config.Config) Option {
	return func(r *Runtime) {
		r.cfg = cfg
	}
}

// WithSQLiteStore journals generations to a SQLite database at path.
func WithSQLiteStore(path string) Option {
	return func(r *Runtime) {
		s, err := store.NewSQLite(path)
		if err != nil {
			r.setErr(fmt.Errorf("open journal %s: %w", path, err))
			return
		}
		r.setStore(s)
	}
}

// WithMemoryStore journals generations in memory (for testing).
func WithMemoryStore() Option {
	return func(r *Runtime) {
		r.setStore(store.NewMemory())
	}
}

// WithStore sets a custom journal store. The runtime closes it on Close.
func WithStore(s Store) Option {
	return func(r *Runtime) {
		r.setStore(s)
	}
}

// WithProvider registers p, replacing a configured provider of the same name.
func WithProvider(p Provider) Option {
	return func(r *Runtime) {
		r.providers = append(r.providers, p)
	}
}

// WithMockProvider registers a mock provider under key (for testing).
func WithMockProvider(key, response string) Option {
	return WithProvider(provider.NewMock(key, response))
}

// WithMockProviderFunc registers a mock provider with a custom handler (for testing).
func WithMockProviderFunc(key string, handler func(prompt string) (string, error)) Option {
	return WithProvider(provider.NewMockHandler(key, handler))
}

// WithOutputWriter sets the output writer for Print statements.
func WithOutputWriter(writer func(text string) error) Option {
	return func(r *Runtime) {
		r.outputWriter = writer
	}
}

// WithOutput sets the io.Writer for output.
func WithOutput(w io.Writer) Option {
	return func(r *Runtime) {
		r.outputWriter = func(text string) error {
			_, err := w.Write([]byte(text))
			return err
		}
	}
}

// WithFileReader sets the reader used by Read file expressions.
func WithFileReader(reader func(path string) (string, error)) Option {
	return func(r *Runtime) {
		r.fileReader = reader
	}
}

// WithLogf enables statement tracing.
func WithLogf(logf func(format string, args ...any)) Option {
	return func(r *Runtime) {
		r.logf = logf
	}
}

// Store interface for custom journals.
type Store = store.Store

// Provider interface for custom providers.
type Provider = provider.Provider

// Generation is one journaled provider call.
type Generation = store.Generation
