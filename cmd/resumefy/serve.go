package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/AdamPostMontjoie/resumefy/internal/config"
	"github.com/AdamPostMontjoie/resumefy/internal/embedding"
	"github.com/AdamPostMontjoie/resumefy/internal/llm"
	"github.com/AdamPostMontjoie/resumefy/internal/pipeline"
	"github.com/AdamPostMontjoie/resumefy/internal/rendering"
	"github.com/AdamPostMontjoie/resumefy/internal/server"
	"github.com/AdamPostMontjoie/resumefy/internal/store"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes REST endpoints for managing profiles and generating tailored resumes.`,
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	ctx := cmd.Context()

	db, err := store.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	if err := db.Migrate(ctx); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	completion, err := llm.NewClient(ctx, llm.Config{
		Provider: llm.Provider(cfg.CompletionProvider),
		Model:    cfg.CompletionModel,
		BaseURL:  cfg.CompletionBaseURL,
		APIKey:   cfg.APIKey,
	})
	if err != nil {
		return fmt.Errorf("failed to create completion client: %w", err)
	}
	defer completion.Close()

	embedder := embedding.NewLazy(embedderFactory(cfg))

	generator := pipeline.New(cfg.Strategy, completion, embedder)
	renderer := rendering.New(cfg.RenderBackend, cfg.LaTeXPath)

	srv, err := server.New(server.Options{
		Port:      cfg.Port,
		FilesDir:  cfg.FilesDir,
		BaseURL:   cfg.BaseURL,
		Store:     db,
		Generator: generator,
		Renderer:  renderer,
		JWTSecret: cfg.JWTSecret,
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}

// embedderFactory defers provider construction until the first embedding is
// requested, so the rewrite strategy never pays for an embedding backend it
// does not use.
func embedderFactory(cfg *config.Config) embedding.Factory {
	return func(ctx context.Context) (embedding.Embedder, error) {
		switch cfg.EmbeddingProvider {
		case "gemini":
			return embedding.NewGeminiEmbedder(ctx, cfg.APIKey, cfg.EmbeddingModel)
		case "ollama":
			return embedding.NewOllamaEmbedder(cfg.OllamaBaseURL, cfg.EmbeddingModel)
		default:
			return nil, fmt.Errorf("unknown embedding provider %q", cfg.EmbeddingProvider)
		}
	}
}
