package aura

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"nickandperla.net/aurascript/internal/config"
	"nickandperla.net/aurascript/internal/eval"
	"nickandperla.net/aurascript/internal/provider"
	"nickandperla.net/aurascript/internal/store"
)

func newTestRuntime(t *testing.T, opts ...Option) (*Runtime, *strings.Builder) {
	t.Helper()
	var output strings.Builder
	opts = append([]Option{WithConfig(config.Default()), WithMemoryStore(), WithOutput(&output)}, opts...)
	r, err := New(opts...)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	t.Cleanup(func() { r.Close() })
	return r, &output
}

func TestRunExample(t *testing.T) {
	r, output := newTestRuntime(t)

	if err := r.Run("let a = \"hi\";\nPrint a;\n// comment\nlet b = a;\nPrint b;"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if output.String() != "hi\nhi\n" {
		t.Errorf("expected 'hi\\nhi\\n', got '%s'", output.String())
	}
	if v, _ := r.Env().Resolve("b"); v != "hi" {
		t.Errorf("expected b = hi, got '%s'", v)
	}
}

func TestEachRunHasFreshEnvironment(t *testing.T) {
	r, _ := newTestRuntime(t)

	if err := r.Run(`let a = "x";`); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Env().Len() != 1 {
		t.Fatalf("expected one binding, got %v", r.Env().Names())
	}

	err := r.Run(`Print a;`)
	var undef *eval.UndefinedVariableError
	if !errors.As(err, &undef) || undef.Name != "a" {
		t.Errorf("expected undefined variable in second run, got %v", err)
	}
}

func TestGenerateIsJournaled(t *testing.T) {
	r, output := newTestRuntime(t, WithMockProvider("OpenAI", "Go is a language."))

	err := r.Run(`let r = Generate content from "openai" with prompt "What is Go?"; Print r;`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if output.String() != "Go is a language.\n" {
		t.Errorf("unexpected output '%s'", output.String())
	}

	history, err := r.History(0)
	if err != nil {
		t.Fatalf("History failed: %v", err)
	}
	if len(history) != 1 {
		t.Fatalf("expected 1 journal entry, got %d", len(history))
	}
	g := history[0]
	if g.Provider != "openai" || g.Prompt != "What is Go?" || g.Response != "Go is a language." || g.Failed() {
		t.Errorf("unexpected journal entry %+v", g)
	}
}

func TestProviderKeyIsCaseInsensitive(t *testing.T) {
	r, output := newTestRuntime(t, WithMockProvider("ollama", "local"))

	if err := r.Run(`Print Generate content from "OLLAMA" with prompt "x";`); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if output.String() != "local\n" {
		t.Errorf("unexpected output '%s'", output.String())
	}
}

func TestProviderFailureIsJournaled(t *testing.T) {
	r, output := newTestRuntime(t, WithMockProviderFunc("gemini", func(prompt string) (string, error) {
		return "", errors.New("quota exceeded")
	}))

	err := r.Run(`Print "before"; let r = Generate content from "gemini" with prompt "p"; Print "after";`)
	var perr *provider.ProviderError
	if !errors.As(err, &perr) || perr.Provider != "gemini" {
		t.Fatalf("expected ProviderError, got %v", err)
	}
	if output.String() != "before\n" {
		t.Errorf("expected only 'before', got '%s'", output.String())
	}

	history, _ := r.History(0)
	if len(history) != 1 || history[0].Error != "gemini: quota exceeded" {
		t.Errorf("expected failed journal entry, got %+v", history)
	}
}

func TestUnknownProviderNotJournaled(t *testing.T) {
	mock := provider.NewMock("openai", "unused")
	r, _ := newTestRuntime(t, WithProvider(mock))

	err := r.Run(`let r = Generate content from "anthropic" with prompt "hi";`)
	var unknown *provider.UnknownProviderError
	if !errors.As(err, &unknown) {
		t.Fatalf("expected UnknownProviderError, got %v", err)
	}
	if unknown.Key != "anthropic" {
		t.Errorf("expected key 'anthropic', got '%s'", unknown.Key)
	}
	if len(mock.Prompts) != 0 {
		t.Errorf("expected no provider call, got %v", mock.Prompts)
	}
	if history, _ := r.History(0); len(history) != 0 {
		t.Errorf("expected empty journal, got %+v", history)
	}
}

type failingStore struct{ store.Memory }

func (s *failingStore) Append(g store.Generation) (store.Generation, error) {
	return store.Generation{}, errors.New("disk full")
}

type closeCountingStore struct {
	store.Memory
	closed int
}

func (s *closeCountingStore) Close() error {
	s.closed++
	return nil
}

func TestReplacedStoreIsClosed(t *testing.T) {
	first := &closeCountingStore{}
	second := &closeCountingStore{}
	dbPath := filepath.Join(t.TempDir(), "journal.db")

	r, err := New(WithConfig(config.Default()),
		WithStore(first), WithSQLiteStore(dbPath), WithStore(second), WithStore(second))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if first.closed != 1 {
		t.Errorf("expected first store closed once, got %d", first.closed)
	}
	if second.closed != 0 {
		t.Errorf("expected active store left open, got %d closes", second.closed)
	}

	r.Close()
	if second.closed != 1 {
		t.Errorf("expected active store closed by Close, got %d", second.closed)
	}
}

func TestJournalFailureIsAnError(t *testing.T) {
	r, output := newTestRuntime(t, WithStore(&failingStore{}), WithMockProvider("ollama", "ok"))

	err := r.Run(`Print Generate content from "ollama" with prompt "x";`)
	if err == nil || !strings.Contains(err.Error(), "journal: disk full") {
		t.Fatalf("expected journal error, got %v", err)
	}
	if output.String() != "" {
		t.Errorf("expected no output, got '%s'", output.String())
	}
}

func TestProviders(t *testing.T) {
	r, _ := newTestRuntime(t, WithMockProvider("Local", "x"))

	got := strings.Join(r.Providers(), ",")
	if got != "gemini,local,ollama,openai" {
		t.Errorf("unexpected providers %s", got)
	}
	if !r.HasProvider("GEMINI") || r.HasProvider("anthropic") {
		t.Error("HasProvider mismatch")
	}
}

func TestRunFile(t *testing.T) {
	dir := t.TempDir()
	data := filepath.Join(dir, "data.txt")
	script := filepath.Join(dir, "main.aura")
	if err := os.WriteFile(data, []byte("file body"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	src := "let d = Read file \"" + filepath.ToSlash(data) + "\";\nPrint d;\n"
	if err := os.WriteFile(script, []byte(src), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	r, output := newTestRuntime(t)
	if err := r.RunFile(script); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if output.String() != "file body\n" {
		t.Errorf("unexpected output '%s'", output.String())
	}

	if err := r.RunFile(filepath.Join(dir, "missing.aura")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected not-exist error, got %v", err)
	}
}

func TestRunDefault(t *testing.T) {
	r, output := newTestRuntime(t)

	if err := r.RunDefault(); err != nil {
		t.Fatalf("default script failed: %v", err)
	}
	if !strings.HasPrefix(output.String(), "Hello from AuraScript!\nHello from AuraScript!\n") {
		t.Errorf("unexpected default output '%s'", output.String())
	}
	if history, _ := r.History(0); len(history) != 0 {
		t.Errorf("default script must not call providers, got %+v", history)
	}
}

func TestCustomFileReaderAndLogf(t *testing.T) {
	var traced []string
	r, output := newTestRuntime(t,
		WithFileReader(func(path string) (string, error) { return "virtual:" + path, nil }),
		WithLogf(func(format string, args ...any) { traced = append(traced, format) }),
	)

	if err := r.Run(`Print Read file "a.txt";`); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if output.String() != "virtual:a.txt\n" {
		t.Errorf("unexpected output '%s'", output.String())
	}
	if len(traced) != 1 {
		t.Errorf("expected one trace line, got %d", len(traced))
	}
}

func TestHistoryWithoutStore(t *testing.T) {
	r, err := New(WithConfig(config.Default()))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	defer r.Close()

	if _, err := r.History(5); !errors.Is(err, ErrNoStore) {
		t.Errorf("expected ErrNoStore, got %v", err)
	}
}

func TestSQLiteStoreOption(t *testing.T) {
	path := filepath.Join(t.TempDir(), "journal.db")

	r, err := New(WithConfig(config.Default()), WithSQLiteStore(path), WithMockProvider("openai", "persisted"))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if _, err := r.Generate("openai", "remember me"); err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	r.Close()

	r2, err := New(WithConfig(config.Default()), WithSQLiteStore(path))
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer r2.Close()
	history, err := r2.History(10)
	if err != nil {
		t.Fatalf("History failed: %v", err)
	}
	if len(history) != 1 || history[0].Response != "persisted" {
		t.Errorf("expected persisted entry, got %+v", history)
	}

	if _, err := New(WithSQLiteStore(filepath.Join(t.TempDir(), "no", "such", "dir", "x.db"))); err == nil {
		t.Error("expected error for unusable database path")
	}
}
