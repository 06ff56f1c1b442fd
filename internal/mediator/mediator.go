// Package mediator routes request objects to the single handler registered
// for their type. Bindings are made explicit at registration time, so no
// reflection is involved in dispatch.
package mediator

import (
	"context"
	"errors"
	"fmt"
)

// ErrNoHandler is returned by Send when no handler is bound to the request's name.
var ErrNoHandler = errors.New("no handler registered")

// Request is implemented by every command and query routed through the mediator.
// RequestName must be stable and unique per request type; it is the registry key.
type Request interface {
	RequestName() string
}

// HandlerFunc is the registry-level handler signature.
type HandlerFunc func(ctx context.Context, req Request) (any, error)

// Mediator holds the request-name → handler registry. It is built once at
// startup and must not be mutated afterwards; Send is safe for concurrent use.
type Mediator struct {
	handlers map[string]HandlerFunc
}

// New creates an empty Mediator.
func New() *Mediator {
	return &Mediator{handlers: make(map[string]HandlerFunc)}
}

func (m *Mediator) register(name string, fn HandlerFunc) error {
	if _, exists := m.handlers[name]; exists {
		return fmt.Errorf("handler already registered for %q", name)
	}
	m.handlers[name] = fn
	return nil
}

// Send resolves the handler bound to req's name and invokes it synchronously.
func (m *Mediator) Send(ctx context.Context, req Request) (any, error) {
	fn, ok := m.handlers[req.RequestName()]
	if !ok {
		return nil, fmt.Errorf("%w for %q", ErrNoHandler, req.RequestName())
	}
	return fn(ctx, req)
}

// Register binds a typed handler function to the request type T. The wrapper
// keeps user code fully typed while the registry stores a uniform signature.
func Register[T Request](m *Mediator, fn func(ctx context.Context, req T) (any, error)) error {
	var zero T
	wrapped := func(ctx context.Context, req Request) (any, error) {
		typed, ok := req.(T)
		if !ok {
			return nil, fmt.Errorf("unexpected request type %T for %q", req, zero.RequestName())
		}
		return fn(ctx, typed)
	}
	return m.register(zero.RequestName(), wrapped)
}
