package llm

import (
	"encoding/json"
	"fmt"
	"time"
)

// ErrMissingCredential indicates no API key could be resolved from the
// explicit config, the stored credential, or the environment. Always
// user-actionable: the fix is entering a key in the setup form.
type ErrMissingCredential struct {
	Provider string
}

func (e *ErrMissingCredential) Error() string {
	return fmt.Sprintf("no API key configured for the %s provider", e.Provider)
}

// ErrAuth indicates the service rejected the credential (401/403).
// Reported separately from ErrTransport whenever the underlying service
// differentiates, so the user is told to fix the key rather than retry.
type ErrAuth struct {
	Err error
}

func (e *ErrAuth) Error() string {
	return fmt.Sprintf("authentication failed, check your API key: %v", e.Err)
}

func (e *ErrAuth) Unwrap() error { return e.Err }

// ErrTransport indicates a network failure or a service-side error.
type ErrTransport struct {
	Err error
}

func (e *ErrTransport) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("LLM service unreachable: %v", e.Err)
	}
	return "LLM service unreachable"
}

func (e *ErrTransport) Unwrap() error { return e.Err }

// ErrRateLimit indicates the provider returned a rate limit error (429).
type ErrRateLimit struct {
	RetryAfter time.Duration
	Err        error
}

func (e *ErrRateLimit) Error() string {
	return fmt.Sprintf("rate limited (retry after %s): %v", e.RetryAfter, e.Err)
}

func (e *ErrRateLimit) Unwrap() error { return e.Err }

// ErrEmptyResponse indicates the service reported success but returned no
// text payload.
type ErrEmptyResponse struct{}

func (e *ErrEmptyResponse) Error() string {
	return "LLM returned an empty response"
}

// ErrInvalidResponse indicates the LLM returned content that does not
// conform to the requested schema.
type ErrInvalidResponse struct {
	Content json.RawMessage
	Err     error
}

func (e *ErrInvalidResponse) Error() string {
	return fmt.Sprintf("invalid LLM response: %v", e.Err)
}

func (e *ErrInvalidResponse) Unwrap() error { return e.Err }
