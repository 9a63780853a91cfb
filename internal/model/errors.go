package model

import (
	"errors"
	"fmt"
)

// ErrNotFound marks a provider "no results" outcome (empty item list or a
// placeholder audio payload). It is a normal outcome, not a server fault.
var ErrNotFound = errors.New("not found")

// ProviderError carries a canonical code plus the upstream detail for any
// failure talking to a pronunciation provider.
type ProviderError struct {
	Code       string
	Message    string
	Retryable  bool
	StatusCode int
	Cause      error
}

func (e *ProviderError) Error() string {
	if e == nil {
		return ""
	}
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s: %s (status %d)", e.Code, e.Message, e.StatusCode)
	}
	return e.Code + ": " + e.Message
}

func (e *ProviderError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}
