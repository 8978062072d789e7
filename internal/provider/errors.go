package provider

import "fmt"

// UnknownProviderError reports a key that names no registered provider.
type UnknownProviderError struct {
	Key string
}

func (e *UnknownProviderError) Error() string {
	return fmt.Sprintf("unknown provider %q", e.Key)
}

// ProviderError reports a failed generation call.
type ProviderError struct {
	Provider string
	Err      error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("%s: %v", e.Provider, e.Err)
}

func (e *ProviderError) Unwrap() error { return e.Err }
