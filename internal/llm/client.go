// Package llm wraps external text-completion services behind a single
// client interface with provider selection.
package llm

import (
	"context"
	"fmt"
)

// Provider identifies a completion service backend.
type Provider string

// Supported providers.
const (
	ProviderGemini     Provider = "gemini"
	ProviderOpenRouter Provider = "openrouter"
)

// Options control a single completion exchange.
type Options struct {
	Temperature float32
	MaxTokens   int
}

// DefaultOptions match the generation settings used for resume rewriting.
func DefaultOptions() Options {
	return Options{Temperature: 0.3, MaxTokens: 16000}
}

// Client is an abstraction over completion providers. A single
// non-streaming request/response exchange: system + user prompt in, free
// text out. Every failure mode (network, non-2xx, malformed envelope)
// surfaces as *UnavailableError so callers can treat them uniformly; retry
// policy, if any, belongs to the caller.
type Client interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string, opts Options) (string, error)
	Close() error
}

// Config holds provider selection and connection details.
type Config struct {
	Provider Provider
	Model    string
	BaseURL  string // openrouter only
	APIKey   string
}

// NewClient creates a completion client for the configured provider.
func NewClient(ctx context.Context, cfg Config) (Client, error) {
	switch cfg.Provider {
	case ProviderGemini:
		return NewGeminiClient(ctx, cfg.APIKey, cfg.Model)
	case ProviderOpenRouter:
		return NewOpenRouterClient(cfg.BaseURL, cfg.APIKey, cfg.Model)
	default:
		return nil, fmt.Errorf("unknown completion provider %q", cfg.Provider)
	}
}
