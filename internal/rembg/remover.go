package rembg

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// Remover strips the background from an encoded image and returns PNG bytes
type Remover interface {
	Remove(ctx context.Context, image []byte) ([]byte, error)
}

// Backend names accepted by New
const (
	BackendHTTP = "http"
	BackendCLI  = "cli"
)

// ErrUnknownBackend is returned by New for an unrecognized backend name
var ErrUnknownBackend = errors.New("unknown remover backend")

// Options configures a Remover
type Options struct {
	Backend   string
	ServerURL string        // http backend
	Command   string        // cli backend
	Model     string        // segmentation model, empty for engine default
	Timeout   time.Duration // http backend, zero for DefaultHTTPTimeout
}

// New builds the Remover selected by opts.Backend
func New(opts Options) (Remover, error) {
	switch opts.Backend {
	case BackendHTTP:
		return NewHTTPRemover(opts.ServerURL, opts.Model, opts.Timeout), nil
	case BackendCLI:
		return NewCommandRemover(opts.Command, opts.Model), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, opts.Backend)
	}
}

// RemoverFunc adapts a plain function to the Remover interface
type RemoverFunc func(ctx context.Context, image []byte) ([]byte, error)

// Remove calls f(ctx, image)
func (f RemoverFunc) Remove(ctx context.Context, image []byte) ([]byte, error) {
	return f(ctx, image)
}
