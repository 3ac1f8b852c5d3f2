// Package llm holds the text-generation providers the autoresponder can
// draft replies with.
package llm

import (
	"context"
	"errors"
	"fmt"
)

// Provider generates reply text from a rendered prompt.
type Provider interface {
	Name() string
	Generate(ctx context.Context, prompt string) (string, error)
}

// ErrMissingAPIKey is returned when the OpenAI provider is selected but no
// key is present in the environment. It is fatal: the run aborts before any
// Gmail call is made.
var ErrMissingAPIKey = errors.New("OPENAI_API_KEY environment variable not set")

// GenerationError wraps a failed generation call with the provider name.
type GenerationError struct {
	Provider string
	Err      error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("%s generation: %v", e.Provider, e.Err)
}

func (e *GenerationError) Unwrap() error { return e.Err }
