package domain

import (
	"errors"
	"fmt"
)

// ErrCacheMiss indicates no cached entry was found for a fingerprint.
var ErrCacheMiss = errors.New("cache miss")

// ValidationError reports a request rejected before any state was touched.
// Callers should surface it as user input feedback, not retry.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid request: %s", e.Reason)
}

// TemplateError reports a misconfigured prompt template. This is a
// configuration fault and should fail the caller's startup, not be retried.
type TemplateError struct {
	Template string
	Count    int
}

func (e *TemplateError) Error() string {
	return fmt.Sprintf("template must contain %s exactly once, found %d occurrences", Placeholder, e.Count)
}

// TranslationFailure wraps a fault from the external translator. The core
// makes no attempt to classify or recover; the wrapped cause is preserved for
// the caller via Unwrap.
type TranslationFailure struct {
	Err error
}

func (e *TranslationFailure) Error() string {
	return fmt.Sprintf("translation failed: %v", e.Err)
}

func (e *TranslationFailure) Unwrap() error {
	return e.Err
}
