package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// OpenRouterClient implements Client against an OpenAI-compatible
// chat-completions endpoint.
type OpenRouterClient struct {
	baseURL string
	apiKey  string
	model   string
	client  *http.Client
}

// NewOpenRouterClient creates a completion client for an OpenAI-compatible
// HTTP endpoint such as OpenRouter.
func NewOpenRouterClient(baseURL, apiKey, model string) (*OpenRouterClient, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("base URL is required")
	}
	return &OpenRouterClient{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		apiKey:  apiKey,
		model:   model,
		client:  &http.Client{Timeout: 120 * time.Second},
	}, nil
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float32       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// Complete implements Client.
func (c *OpenRouterClient) Complete(ctx context.Context, systemPrompt, userPrompt string, opts Options) (string, error) {
	messages := make([]chatMessage, 0, 2)
	if systemPrompt != "" {
		messages = append(messages, chatMessage{Role: "system", Content: systemPrompt})
	}
	messages = append(messages, chatMessage{Role: "user", Content: userPrompt})

	body, err := json.Marshal(chatRequest{
		Model:       c.model,
		Messages:    messages,
		Temperature: opts.Temperature,
		MaxTokens:   opts.MaxTokens,
	})
	if err != nil {
		return "", &UnavailableError{Message: "failed to encode request", Cause: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", &UnavailableError{Message: "failed to build request", Cause: err}
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return "", &UnavailableError{Message: "request failed", Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", &UnavailableError{Message: fmt.Sprintf("endpoint returned status %d", resp.StatusCode)}
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &UnavailableError{Message: "failed to read response body", Cause: err}
	}

	var parsed chatResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return "", &UnavailableError{Message: "malformed response envelope", Cause: err}
	}
	if len(parsed.Choices) == 0 {
		return "", &UnavailableError{Message: "response contained no choices"}
	}

	return parsed.Choices[0].Message.Content, nil
}

// Close implements Client. The HTTP client holds no resources that outlive
// its idle connections.
func (c *OpenRouterClient) Close() error {
	c.client.CloseIdleConnections()
	return nil
}
