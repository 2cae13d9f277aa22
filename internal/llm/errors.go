package llm

import (
	"errors"
	"fmt"
)

var (
	// ErrParse reports an upstream body that does not have the expected shape
	ErrParse = errors.New("failed to parse response")

	// ErrProviderNotConfigured reports a missing or credential-less provider
	ErrProviderNotConfigured = errors.New("provider not configured")
)

// ConfigError reports a provider that cannot serve requests as configured.
// Reason is shown to the operator as is.
type ConfigError struct {
	Provider string
	Reason   string
}

func (e *ConfigError) Error() string {
	return e.Reason
}

func (e *ConfigError) Unwrap() error { return ErrProviderNotConfigured }

// SetupHinter is implemented by providers that can name the setting they lack
type SetupHinter interface {
	SetupHint() string
}

// ProviderError reports an upstream failure. StatusCode is zero when the
// request never produced an HTTP response.
type ProviderError struct {
	Provider   string
	StatusCode int
	Body       string
	Err        error
}

func (e *ProviderError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("%s request failed: %v", e.Provider, e.Err)
	}
	return fmt.Sprintf("%s API error: %d", e.Provider, e.StatusCode)
}

func (e *ProviderError) Unwrap() error { return e.Err }

// NewParseError wraps cause with ErrParse
func NewParseError(cause error) error {
	return fmt.Errorf("%w: %v", ErrParse, cause)
}
