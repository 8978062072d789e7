// Package aura provides the public API for the AuraScript interpreter.
package aura

import (
	"errors"
	"fmt"
	"io"
	"os"

	"nickandperla.net/aurascript/internal/config"
	"nickandperla.net/aurascript/internal/eval"
	"nickandperla.net/aurascript/internal/provider"
	"nickandperla.net/aurascript/internal/store"
)

// ErrNoStore is returned by History when the runtime has no journal.
var ErrNoStore = errors.New("no journal store configured")

// Runtime is the AuraScript interpreter runtime.
type Runtime struct {
	cfg          *config.Config
	registry     *provider.Registry
	providers    []provider.Provider // registered after the configured ones
	store        store.Store
	outputWriter eval.OutputWriter
	fileReader   eval.FileReader
	logf         eval.Logf
	env          *eval.Environment // environment of the last run
	err          error             // first option failure
}

// New creates a new runtime with the given options.
// Without WithConfig the providers are configured from the environment
// over the built-in defaults.
func New(opts ...Option) (*Runtime, error) {
	r := &Runtime{}
	for _, opt := range opts {
		opt(r)
	}
	if r.err != nil {
		r.Close()
		return nil, r.err
	}

	if r.cfg == nil {
		cfg := config.Default()
		cfg.ApplyEnv(os.Getenv)
		r.cfg = cfg
	}
	r.registry = provider.NewRegistry(r.cfg)
	for _, p := range r.providers {
		r.registry.Register(p)
	}
	return r, nil
}

// setErr records the first option failure.
func (r *Runtime) setErr(err error) {
	if r.err == nil {
		r.err = err
	}
}

// setStore installs s, closing the store it replaces. The last store
// option wins.
func (r *Runtime) setStore(s store.Store) {
	if r.store != nil && r.store != s {
		if err := r.store.Close(); err != nil {
			r.setErr(fmt.Errorf("close replaced journal: %w", err))
		}
	}
	r.store = s
}

func (r *Runtime) newEvaluator() *eval.Evaluator {
	evalOpts := []eval.Option{eval.WithGenerator(r)}
	if r.outputWriter != nil {
		evalOpts = append(evalOpts, eval.WithOutputWriter(r.outputWriter))
	}
	if r.fileReader != nil {
		evalOpts = append(evalOpts, eval.WithFileReader(r.fileReader))
	}
	if r.logf != nil {
		evalOpts = append(evalOpts, eval.WithLogf(r.logf))
	}
	e := eval.New(evalOpts...)
	r.env = e.Env()
	return e
}

// Run parses src and executes it with a fresh environment.
func (r *Runtime) Run(src string) error {
	return r.newEvaluator().Eval(src)
}

// RunReader parses a script read from reader and executes it.
func (r *Runtime) RunReader(reader io.Reader) error {
	return r.newEvaluator().EvalReader(reader)
}

// RunFile executes the script at path.
func (r *Runtime) RunFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return r.RunReader(f)
}

// RunDefault executes the embedded default script.
func (r *Runtime) RunDefault() error {
	return r.Run(DefaultScript)
}

// Generate asks the provider named by key for a completion and journals
// the call. Unknown keys fail without a provider call and are not
// journaled.
func (r *Runtime) Generate(key, prompt string) (string, error) {
	p, err := r.registry.Lookup(key)
	if err != nil {
		return "", err
	}

	text, genErr := r.registry.Generate(key, prompt)
	if r.store == nil {
		return text, genErr
	}

	g := store.Generation{Provider: p.Name(), Prompt: prompt, Response: text}
	if genErr != nil {
		g.Error = genErr.Error()
	}
	if _, err := r.store.Append(g); err != nil {
		return "", errors.Join(genErr, fmt.Errorf("journal: %w", err))
	}
	return text, genErr
}

// HasProvider returns true if key names a registered provider.
func (r *Runtime) HasProvider(key string) bool {
	return r.registry.Has(key)
}

// Providers returns the registered provider keys in sorted order.
func (r *Runtime) Providers() []string {
	return r.registry.Names()
}

// Config returns the provider configuration in use.
func (r *Runtime) Config() *config.Config {
	return r.cfg
}

// Env returns the environment of the most recent run, or nil before the
// first run.
func (r *Runtime) Env() *eval.Environment {
	return r.env
}

// History returns up to limit journaled generations, newest first.
func (r *Runtime) History(limit int) ([]store.Generation, error) {
	if r.store == nil {
		return nil, ErrNoStore
	}
	return r.store.Recent(limit)
}

// Close releases resources.
func (r *Runtime) Close() error {
	if r.store != nil {
		return r.store.Close()
	}
	return nil
}
