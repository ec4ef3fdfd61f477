// Package vertex implements the Vertex AI (Gemini) text-generation provider.
package vertex

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"google.golang.org/genai"

	"github.com/lionspace/vertexflow/config"
	"github.com/lionspace/vertexflow/pkg/slogx"
	"github.com/lionspace/vertexflow/provider"
)

var _ provider.Provider = (*Provider)(nil)

// Provider talks to Vertex AI through the Google GenAI SDK. The underlying
// client is created lazily on the first call because client construction
// needs a context. Credentials come from Application Default Credentials;
// config.Config decides which service-account key file, if any, backs them.
type Provider struct {
	project  string
	location string

	mu     sync.Mutex
	client *genai.Client

	// generate is swapped out in tests to avoid network calls.
	generate func(ctx context.Context, modelID, prompt string, gc *genai.GenerateContentConfig) (string, error)
}

// New creates a Vertex provider for the project and location in cfg.
func New(cfg config.Config) *Provider {
	p := &Provider{
		project:  cfg.Project,
		location: cfg.Location,
	}
	p.generate = p.generateContent
	return p
}

// Complete implements provider.Provider. Any SDK failure is returned as a
// failure Result; unknown model names fail fast with the list of valid names.
func (p *Provider) Complete(ctx context.Context, params provider.CompletionParams) provider.Result {
	mc, ok := Lookup(params.Model)
	if !ok {
		return provider.Failuref(params.Model, "model %s not available, choose from: %s",
			params.Model, strings.Join(Names(), ", "))
	}

	temperature := mc.Params.Temperature.Clamp(params.Temperature)
	maxTokens := params.MaxTokens
	if maxTokens == 0 {
		maxTokens = mc.Params.MaxTokens.Default
	}
	maxTokens = mc.Params.MaxTokens.Clamp(maxTokens)
	topP := params.TopP
	if topP == 0 {
		topP = mc.Params.TopP.Default
	}
	topP = mc.Params.TopP.Clamp(topP)
	topK := params.TopK
	if topK == 0 {
		topK = mc.Params.TopK.Default
	}
	topK = mc.Params.TopK.Clamp(topK)

	instructions, prompt := provider.BuildPrompt(&params)

	temp32 := float32(temperature)
	topP32 := float32(topP)
	topK32 := float32(topK)
	gc := &genai.GenerateContentConfig{
		Temperature:     &temp32,
		TopP:            &topP32,
		TopK:            &topK32,
		MaxOutputTokens: int32(maxTokens),
	}
	if instructions != "" {
		gc.SystemInstruction = &genai.Content{
			Parts: []*genai.Part{{Text: instructions}},
		}
	}

	text, err := p.generate(ctx, mc.ModelID, prompt, gc)
	if err != nil {
		slog.Error("vertex generation failed", slogx.Error(err), slog.String("model", params.Model))
		return provider.Failure(params.Model, err)
	}

	return provider.Result{
		Success:    true,
		Content:    text,
		Model:      mc.Name,
		ModelID:    mc.ModelID,
		TokensUsed: provider.CountTokens(text),
		Metadata: map[string]any{
			"project_id":  p.project,
			"location":    p.location,
			"temperature": temperature,
			"max_tokens":  maxTokens,
		},
	}
}

func (p *Provider) ensureClient(ctx context.Context) (*genai.Client, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.client != nil {
		return p.client, nil
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		Project:  p.project,
		Location: p.location,
		Backend:  genai.BackendVertexAI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create vertex client: %w", err)
	}
	p.client = client
	return client, nil
}

func (p *Provider) generateContent(ctx context.Context, modelID, prompt string, gc *genai.GenerateContentConfig) (string, error) {
	client, err := p.ensureClient(ctx)
	if err != nil {
		return "", err
	}
	resp, err := client.Models.GenerateContent(ctx, modelID, genai.Text(prompt), gc)
	if err != nil {
		return "", fmt.Errorf("vertex generate content: %w", err)
	}
	if resp == nil {
		return "", fmt.Errorf("empty response from vertex for model %s", modelID)
	}
	return resp.Text(), nil
}
