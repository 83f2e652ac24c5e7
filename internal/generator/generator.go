// Package generator wraps the external text-generation service behind a
// single Generate call.
package generator

import (
	"context"
	"errors"
	"fmt"
)

// Generator turns a prompt into generated text.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Failure kinds carried by GenerationError.
const (
	KindTransport = "transport"
	KindBlocked   = "blocked"
	KindEmpty     = "empty"
)

// ErrEmptyResponse is wrapped when the service answers without any text.
var ErrEmptyResponse = errors.New("empty response from generation service")

// GenerationError is returned for every failed Generate call. The message is
// for logs; callers show the user a generic message instead.
type GenerationError struct {
	Kind string
	Err  error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("generation failed (%s): %v", e.Kind, e.Err)
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}

// IsGenerationError reports whether err carries a GenerationError.
func IsGenerationError(err error) bool {
	var ge *GenerationError
	return errors.As(err, &ge)
}
