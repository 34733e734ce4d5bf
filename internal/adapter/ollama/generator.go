// Package ollama adapts Ollama's chat endpoint to the domain LLMClient
// contract.
package ollama

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"nagrik-rag/internal/domain"
	"nagrik-rag/internal/infra/httpclient"
)

const keepAliveSeconds = 600

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model     string                 `json:"model"`
	Messages  []chatMessage          `json:"messages"`
	Stream    bool                   `json:"stream"`
	KeepAlive int                    `json:"keep_alive"`
	Options   map[string]interface{} `json:"options,omitempty"`
}

type chatResponse struct {
	Message struct {
		Content string `json:"content"`
	} `json:"message"`
	Done bool `json:"done"`
}

// Generator sends prompts to Ollama's chat endpoint.
type Generator struct {
	BaseURL string
	Model   string
	Client  *http.Client
}

// NewGenerator constructs a generator for the given endpoint and model.
// timeout bounds the whole generation call.
func NewGenerator(baseURL, model string, timeout time.Duration) *Generator {
	return &Generator{
		BaseURL: strings.TrimRight(baseURL, "/"),
		Model:   model,
		Client:  httpclient.NewPooledClient(timeout),
	}
}

// Generate sends the prompt and returns the assistant message.
func (g *Generator) Generate(ctx context.Context, prompt string, opts domain.GenerateOptions) (*domain.LLMResponse, error) {
	reqBody := chatRequest{
		Model:     g.Model,
		Messages:  []chatMessage{{Role: "user", Content: prompt}},
		Stream:    false,
		KeepAlive: keepAliveSeconds,
		Options: map[string]interface{}{
			"temperature": opts.Temperature,
		},
	}

	jsonPayload, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal chat request: %w", err)
	}

	url := fmt.Sprintf("%s/api/chat", g.BaseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(jsonPayload))
	if err != nil {
		return nil, fmt.Errorf("failed to create chat request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call generation endpoint: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("generation endpoint returned %d: %s", resp.StatusCode, string(body))
	}

	var chatResp chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&chatResp); err != nil {
		return nil, fmt.Errorf("failed to decode generation response: %w", err)
	}

	return &domain.LLMResponse{
		Text: strings.TrimSpace(chatResp.Message.Content),
		Done: chatResp.Done,
	}, nil
}

// Version returns the wrapped model name.
func (g *Generator) Version() string {
	return g.Model
}

var _ domain.LLMClient = (*Generator)(nil)
