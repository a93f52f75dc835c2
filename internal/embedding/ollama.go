package embedding

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/ollama/ollama/api"
)

// OllamaEmbedder implements Embedder against a local Ollama instance.
type OllamaEmbedder struct {
	api   *api.Client
	model string
}

// NewOllamaEmbedder creates an Ollama-backed embedder.
func NewOllamaEmbedder(baseURL, model string) (*OllamaEmbedder, error) {
	u, err := url.ParseRequestURI(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid ollama base url: %w", err)
	}

	httpClient := &http.Client{Timeout: 60 * time.Second}
	return &OllamaEmbedder{
		api:   api.NewClient(u, httpClient),
		model: model,
	}, nil
}

// Embed implements Embedder.
func (o *OllamaEmbedder) Embed(ctx context.Context, text string) ([]float64, error) {
	resp, err := o.api.Embeddings(ctx, &api.EmbeddingRequest{
		Model:  o.model,
		Prompt: text,
	})
	if err != nil {
		return nil, &Error{Message: "ollama embeddings request failed", Cause: err}
	}
	if resp == nil || len(resp.Embedding) == 0 {
		return nil, &Error{Message: "ollama returned an empty embedding"}
	}
	return resp.Embedding, nil
}
