// Package store provides the generation journal: a record of every
// prompt sent to a provider and what came back.
package store

import "time"

// Generation is one journaled provider call.
type Generation struct {
	ID        int64
	Provider  string
	Prompt    string
	Response  string
	Error     string // empty when the call succeeded
	CreatedAt time.Time
}

// Failed reports whether the provider call returned an error.
func (g Generation) Failed() bool {
	return g.Error != ""
}

// Store is the interface for journal persistence.
type Store interface {
	// Append records a generation. ID is assigned by the store; a zero
	// CreatedAt is set to the current time.
	Append(g Generation) (Generation, error)
	// Recent returns up to limit generations, newest first.
	// A limit of zero or less returns all of them.
	Recent(limit int) ([]Generation, error)
	// Close releases resources.
	Close() error
}
