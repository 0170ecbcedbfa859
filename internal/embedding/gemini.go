// Package embedding provides embedding providers for the semantic matcher.
package embedding

import (
	"context"
	"fmt"

	"github.com/google/generative-ai-go/genai"
	"github.com/matchmyjd/engine/internal/matching"
	"google.golang.org/api/option"
)

// DefaultModel is the Gemini embedding model used when none is configured.
const DefaultModel = "text-embedding-004"

// GeminiEmbedder produces embeddings through the Gemini API. It performs one
// synchronous call per string and imposes no retry or timeout policy; callers
// wrap Embed with whatever resilience their environment requires.
type GeminiEmbedder struct {
	client *genai.Client
	model  string
}

// NewGeminiEmbedder creates a Gemini-backed embedder. model may be empty to
// use DefaultModel.
func NewGeminiEmbedder(ctx context.Context, apiKey, model string) (*GeminiEmbedder, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}
	if model == "" {
		model = DefaultModel
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiEmbedder{client: client, model: model}, nil
}

// Embed returns the embedding vector for text. The dimensionality is stable
// across calls for a given model.
func (g *GeminiEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	em := g.client.EmbeddingModel(g.model)
	res, err := em.EmbedContent(ctx, genai.Text(text))
	if err != nil {
		return nil, fmt.Errorf("failed to embed content: %w", err)
	}
	if res.Embedding == nil {
		return nil, fmt.Errorf("empty embedding response")
	}
	return res.Embedding.Values, nil
}

// Func adapts the embedder to the matcher's EmbedFunc contract.
func (g *GeminiEmbedder) Func() matching.EmbedFunc {
	return g.Embed
}

// Close releases the underlying API client.
func (g *GeminiEmbedder) Close() error {
	return g.client.Close()
}
