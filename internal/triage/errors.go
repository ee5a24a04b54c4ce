package triage

import (
	"github.com/rotisserie/eris"
)

// ErrInputInvalid reports a missing or empty complaint batch. Surfaced to
// clients as a 4xx.
var ErrInputInvalid = eris.New("triage: complaint batch is missing or empty")

// ErrNotConfigured reports an absent provider credential. Checked before any
// provider call is attempted.
var ErrNotConfigured = eris.New("triage: anthropic api key is not configured")

// ProviderError wraps a completion-provider failure: network error, timeout,
// or non-success response. Never retried.
type ProviderError struct {
	Err error
}

func (e *ProviderError) Error() string {
	return "triage: completion provider failure: " + e.Err.Error()
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// UnparseableError reports that the provider responded but no usable JSON
// array could be extracted or normalized. Raw holds a truncated excerpt of
// the response text for diagnostics.
type UnparseableError struct {
	Raw string
}

func (e *UnparseableError) Error() string {
	return "triage: model output contained no usable JSON array"
}

// rawExcerptLimit bounds the diagnostic excerpt attached to an
// UnparseableError.
const rawExcerptLimit = 1000

// Excerpt truncates text to the diagnostic excerpt limit.
func Excerpt(text string) string {
	if len(text) > rawExcerptLimit {
		return text[:rawExcerptLimit]
	}
	return text
}
