// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) 2023-2026 Nicholas R. Perez

package eval

import (
	"fmt"
	"sort"
)

// UndefinedVariableError reports a reference to a name never assigned.
type UndefinedVariableError struct {
	Name string
}

func (e *UndefinedVariableError) Error() string {
	return fmt.Sprintf("undefined variable %q", e.Name)
}

// Environment is the flat variable namespace of a single script run.
// It is owned by one Evaluator and is not safe for concurrent use.
type Environment struct {
	values map[string]string
}

// NewEnvironment creates a new empty environment.
func NewEnvironment() *Environment {
	return &Environment{values: make(map[string]string)}
}

// Define binds name to value, replacing any earlier binding.
func (e *Environment) Define(name, value string) {
	e.values[name] = value
}

// Resolve returns the current value of name.
func (e *Environment) Resolve(name string) (string, error) {
	if v, ok := e.values[name]; ok {
		return v, nil
	}
	return "", &UndefinedVariableError{Name: name}
}

// Has returns true if the name is bound.
func (e *Environment) Has(name string) bool {
	_, ok := e.values[name]
	return ok
}

// Len returns the number of bound names.
func (e *Environment) Len() int {
	return len(e.values)
}

// Names returns the bound names in sorted order.
func (e *Environment) Names() []string {
	names := make([]string, 0, len(e.values))
	for k := range e.values {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// Snapshot returns a copy of every binding.
func (e *Environment) Snapshot() map[string]string {
	out := make(map[string]string, len(e.values))
	for k, v := range e.values {
		out[k] = v
	}
	return out
}
