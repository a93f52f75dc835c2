package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/resumefy_test")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 5005, cfg.Port)
	assert.Equal(t, "files", cfg.FilesDir)
	assert.Equal(t, "http://localhost:5005", cfg.BaseURL)
	assert.Equal(t, "openrouter", cfg.CompletionProvider)
	assert.Equal(t, "ollama", cfg.EmbeddingProvider)
	assert.Equal(t, "all-minilm", cfg.EmbeddingModel)
	assert.Equal(t, StrategyRewrite, cfg.Strategy)
	assert.Equal(t, RenderHTML, cfg.RenderBackend)
	assert.Empty(t, cfg.JWTSecret)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/resumefy_test")
	t.Setenv("PORT", "9000")
	t.Setenv("PIPELINE_STRATEGY", "rank")
	t.Setenv("RENDER_BACKEND", "latex")
	t.Setenv("COMPLETION_PROVIDER", "gemini")
	t.Setenv("JWT_SECRET", "s3cret")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.Port)
	assert.Equal(t, StrategyRank, cfg.Strategy)
	assert.Equal(t, RenderLaTeX, cfg.RenderBackend)
	assert.Equal(t, "gemini", cfg.CompletionProvider)
	assert.Equal(t, "s3cret", cfg.JWTSecret)
}

func TestLoad_RequiresDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DATABASE_URL")
}

func TestLoad_RejectsInvalidStrategy(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/resumefy_test")
	t.Setenv("PIPELINE_STRATEGY", "magic")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "PIPELINE_STRATEGY")
}

func TestLoad_RejectsInvalidRenderBackend(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/resumefy_test")
	t.Setenv("RENDER_BACKEND", "docx")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "RENDER_BACKEND")
}

func TestLoad_InvalidPortFallsBackToDefault(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/resumefy_test")
	t.Setenv("PORT", "not-a-number")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 5005, cfg.Port)
}
