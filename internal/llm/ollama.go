package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// OllamaClient implements Provider against a local Ollama endpoint. It
// needs no API key, which makes it handy for trying the pipeline offline.
type OllamaClient struct {
	Endpoint string
	Model    string
	Timeout  time.Duration
}

// NewOllama creates a new Ollama client.
func NewOllama(endpoint, model string, timeout time.Duration) *OllamaClient {
	return &OllamaClient{Endpoint: endpoint, Model: model, Timeout: timeout}
}

type ollamaRequest struct {
	Model   string         `json:"model"`
	Prompt  string         `json:"prompt"`
	Stream  bool           `json:"stream"`
	Options map[string]any `json:"options,omitempty"`
}

type ollamaResponse struct {
	Response string `json:"response"`
}

// Name returns provider name.
func (c *OllamaClient) Name() string { return "ollama" }

// Generate sends a prompt to Ollama and returns the trimmed generated text.
func (c *OllamaClient) Generate(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(ollamaRequest{Model: c.Model, Prompt: prompt, Stream: false})
	if err != nil {
		return "", &GenerationError{Provider: c.Name(), Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Endpoint, bytes.NewReader(body))
	if err != nil {
		return "", &GenerationError{Provider: c.Name(), Err: err}
	}
	req.Header.Set("Content-Type", "application/json")

	client := &http.Client{Timeout: c.Timeout}
	resp, err := client.Do(req)
	if err != nil {
		return "", &GenerationError{Provider: c.Name(), Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", &GenerationError{Provider: c.Name(), Err: fmt.Errorf("unexpected status %s", resp.Status)}
	}

	var out ollamaResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", &GenerationError{Provider: c.Name(), Err: fmt.Errorf("decode response: %w", err)}
	}
	return strings.TrimSpace(out.Response), nil
}
