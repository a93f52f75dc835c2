// Package embedding wraps text-embedding models behind a single interface.
// The underlying model handle is expensive to initialize and cheap to reuse,
// so it is created lazily once per process and shared across requests.
package embedding

import (
	"context"
	"strings"
	"sync"
)

// Embedder generates a fixed-length dense vector for a piece of text.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float64, error)
}

// Factory constructs the underlying provider client. It is called at most
// once successfully; failures are retried on the next Embed call.
type Factory func(ctx context.Context) (Embedder, error)

// Lazy defers provider construction to the first Embed call and reuses the
// handle afterwards. Safe for concurrent use; concurrent first callers block
// until the handle is ready. A failed init surfaces as a retryable
// NotReadyError, never as a silent zero vector.
type Lazy struct {
	factory Factory

	mu       sync.Mutex
	embedder Embedder
}

// NewLazy wraps a provider factory in a lazy init-once handle.
func NewLazy(factory Factory) *Lazy {
	return &Lazy{factory: factory}
}

func (l *Lazy) get(ctx context.Context) (Embedder, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.embedder != nil {
		return l.embedder, nil
	}
	e, err := l.factory(ctx)
	if err != nil {
		return nil, &NotReadyError{Cause: err}
	}
	l.embedder = e
	return e, nil
}

// Embed implements Embedder.
func (l *Lazy) Embed(ctx context.Context, text string) ([]float64, error) {
	e, err := l.get(ctx)
	if err != nil {
		return nil, err
	}
	return e.Embed(ctx, normalizeInput(text))
}

// normalizeInput substitutes a single space for whitespace-only input, which
// some embedding backends reject.
func normalizeInput(text string) string {
	if strings.TrimSpace(text) == "" {
		return " "
	}
	return text
}
