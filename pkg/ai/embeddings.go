package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/speakwise-team/speakwise/pkg/config"
)

// EmbeddingsClient is a minimal client for an OpenAI-compatible
// /v1/embeddings endpoint. Works against LocalAI and similar servers.
type EmbeddingsClient struct {
	apiKey  string
	baseURL string
	model   string
	client  *http.Client
}

// NewEmbeddingsClient creates an embeddings client using the provided config.
func NewEmbeddingsClient(cfg *config.EmbeddingsConfig) *EmbeddingsClient {
	return &EmbeddingsClient{
		apiKey:  cfg.APIKey,
		baseURL: strings.TrimSuffix(cfg.BaseURL, "/"),
		model:   cfg.Model,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

// EmbeddingsRequest is the shape for embedding requests
type EmbeddingsRequest struct {
	Model string `json:"model"`
	Input string `json:"input"`
}

// EmbeddingsResponse is a minimal response shape
type EmbeddingsResponse struct {
	Data []struct {
		Embedding []float64 `json:"embedding"`
	} `json:"data"`
}

// Encode returns the embedding vector for the given text.
func (e *EmbeddingsClient) Encode(ctx context.Context, text string) ([]float64, error) {
	reqBody := EmbeddingsRequest{
		Model: e.model,
		Input: text,
	}
	b, err := json.Marshal(reqBody)
	if err != nil {
		return nil, err
	}

	endpoint := e.baseURL + "/v1/embeddings"
	req, err := http.NewRequestWithContext(ctx, "POST", endpoint, bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if e.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+e.apiKey)
	}

	resp, err := e.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("embeddings backend returned status %d", resp.StatusCode)
	}

	var er EmbeddingsResponse
	if err := json.NewDecoder(resp.Body).Decode(&er); err != nil {
		return nil, err
	}
	if len(er.Data) == 0 {
		return nil, fmt.Errorf("embeddings backend returned no data")
	}
	return er.Data[0].Embedding, nil
}
