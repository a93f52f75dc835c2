// Package config provides configuration loading and validation for the server.
package config

import (
	"fmt"
	"os"
	"strconv"
)

// Strategy selects how resume content is produced.
type Strategy string

// Pipeline strategies.
const (
	// StrategyRewrite sends the whole serialized profile to the completion
	// service in a single prompt.
	StrategyRewrite Strategy = "rewrite"
	// StrategyRank embeds and ranks candidate bullets first, then asks the
	// completion service to rewrite only the top ranked ones.
	StrategyRank Strategy = "rank"
)

// RenderBackend selects the PDF rendering toolchain.
type RenderBackend string

// Render backends.
const (
	// RenderHTML builds a styled HTML document and prints it to PDF with
	// headless Chrome.
	RenderHTML RenderBackend = "html"
	// RenderLaTeX builds a LaTeX source document and compiles it with
	// pdflatex.
	RenderLaTeX RenderBackend = "latex"
)

// Config holds all server configuration, loaded from the environment.
type Config struct {
	Port        int
	DatabaseURL string
	FilesDir    string
	BaseURL     string // external base URL used to build pdfUrl values

	// Completion service
	CompletionProvider string // "gemini" or "openrouter"
	CompletionModel    string
	CompletionBaseURL  string // openrouter only
	APIKey             string

	// Embedding model
	EmbeddingProvider string // "gemini" or "ollama"
	EmbeddingModel    string
	OllamaBaseURL     string

	// Pipeline / rendering
	Strategy      Strategy
	RenderBackend RenderBackend
	LaTeXPath     string // pdflatex binary, defaults to PATH lookup

	// Optional JWT verification; auth is disabled when empty.
	JWTSecret string
}

// Load reads configuration from environment variables, applying defaults
// for everything except the database URL.
func Load() (*Config, error) {
	cfg := &Config{
		Port:               getInt("PORT", 5005),
		DatabaseURL:        os.Getenv("DATABASE_URL"),
		FilesDir:           getString("FILES_DIR", "files"),
		BaseURL:            getString("BASE_URL", "http://localhost:5005"),
		CompletionProvider: getString("COMPLETION_PROVIDER", "openrouter"),
		CompletionModel:    getString("COMPLETION_MODEL", "mistralai/mistral-7b-instruct:free"),
		CompletionBaseURL:  getString("COMPLETION_BASE_URL", "https://openrouter.ai/api/v1"),
		APIKey:             os.Getenv("COMPLETION_API_KEY"),
		EmbeddingProvider:  getString("EMBEDDING_PROVIDER", "ollama"),
		EmbeddingModel:     getString("EMBEDDING_MODEL", "all-minilm"),
		OllamaBaseURL:      getString("OLLAMA_BASE_URL", "http://localhost:11434"),
		Strategy:           Strategy(getString("PIPELINE_STRATEGY", string(StrategyRewrite))),
		RenderBackend:      RenderBackend(getString("RENDER_BACKEND", string(RenderHTML))),
		LaTeXPath:          getString("PDFLATEX_PATH", "pdflatex"),
		JWTSecret:          os.Getenv("JWT_SECRET"),
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required")
	}

	switch cfg.Strategy {
	case StrategyRewrite, StrategyRank:
	default:
		return nil, fmt.Errorf("invalid PIPELINE_STRATEGY %q (want %q or %q)", cfg.Strategy, StrategyRewrite, StrategyRank)
	}

	switch cfg.RenderBackend {
	case RenderHTML, RenderLaTeX:
	default:
		return nil, fmt.Errorf("invalid RENDER_BACKEND %q (want %q or %q)", cfg.RenderBackend, RenderHTML, RenderLaTeX)
	}

	return cfg, nil
}

func getString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
