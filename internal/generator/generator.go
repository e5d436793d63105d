// Package generator talks to the inference backend that writes the comments.
package generator

import (
	"context"
	"errors"
)

// ErrBackend marks any failure to obtain text from the inference backend.
var ErrBackend = errors.New("inference backend failed")

// Generator turns a prompt into model output.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Pinger reports whether the backend is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}
