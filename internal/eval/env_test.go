package eval

import (
	"errors"
	"testing"
)

func TestEnvironmentDefineResolve(t *testing.T) {
	env := NewEnvironment()
	env.Define("greeting", "hello")

	got, err := env.Resolve("greeting")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "hello" {
		t.Errorf("expected 'hello', got '%s'", got)
	}

	env.Define("greeting", "bye")
	got, _ = env.Resolve("greeting")
	if got != "bye" {
		t.Errorf("expected overwrite to 'bye', got '%s'", got)
	}
	if env.Len() != 1 {
		t.Errorf("expected 1 binding, got %d", env.Len())
	}
}

func TestEnvironmentCaseSensitive(t *testing.T) {
	env := NewEnvironment()
	env.Define("Name", "upper")

	if _, err := env.Resolve("name"); err == nil {
		t.Error("expected lookup of 'name' to fail")
	}
	if !env.Has("Name") || env.Has("name") {
		t.Error("Has must be case-sensitive")
	}
}

func TestEnvironmentUndefined(t *testing.T) {
	_, err := NewEnvironment().Resolve("ghost")

	var undef *UndefinedVariableError
	if !errors.As(err, &undef) {
		t.Fatalf("expected UndefinedVariableError, got %v", err)
	}
	if undef.Name != "ghost" {
		t.Errorf("expected name 'ghost', got '%s'", undef.Name)
	}
	if err.Error() != `undefined variable "ghost"` {
		t.Errorf("unexpected message: %s", err.Error())
	}
}

func TestEnvironmentNamesAndSnapshot(t *testing.T) {
	env := NewEnvironment()
	env.Define("b", "2")
	env.Define("a", "1")

	names := env.Names()
	if len(names) != 2 || names[0] != "a" || names[1] != "b" {
		t.Errorf("expected sorted names [a b], got %v", names)
	}

	snap := env.Snapshot()
	snap["a"] = "changed"
	if v, _ := env.Resolve("a"); v != "1" {
		t.Errorf("snapshot must be a copy, environment now has a=%s", v)
	}
}
