// Package anthropic implements the Claude text-generation provider used by
// the multi-agent workflow.
package anthropic

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/lionspace/vertexflow/pkg/slogx"
	"github.com/lionspace/vertexflow/provider"
)

var _ provider.Provider = (*Provider)(nil)

// ModelConfig is one entry of the static Claude model table.
type ModelConfig struct {
	Name      string
	ModelID   anthropic.Model
	MaxTokens int
}

var models = map[string]ModelConfig{
	"claude-sonnet": {
		Name:      "claude-sonnet",
		ModelID:   anthropic.Model("claude-3-sonnet-20240229"),
		MaxTokens: 4096,
	},
	"claude-haiku": {
		Name:      "claude-haiku",
		ModelID:   anthropic.Model("claude-3-haiku-20240307"),
		MaxTokens: 4096,
	},
}

// Names lists the registered Claude model names in sorted order.
func Names() []string {
	out := make([]string, 0, len(models))
	for name := range models {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Provider wraps the Anthropic SDK behind the blocking Provider contract.
type Provider struct {
	client anthropic.Client

	// send is swapped out in tests to avoid network calls.
	send func(ctx context.Context, params anthropic.MessageNewParams) (string, error)
}

// New creates a Claude provider authenticated with apiKey.
func New(apiKey string) *Provider {
	p := &Provider{client: anthropic.NewClient(option.WithAPIKey(apiKey))}
	p.send = p.sendMessage
	return p
}

// Complete implements provider.Provider.
func (p *Provider) Complete(ctx context.Context, params provider.CompletionParams) provider.Result {
	mc, ok := models[params.Model]
	if !ok {
		return provider.Failuref(params.Model, "model %s not available, choose from: %s",
			params.Model, strings.Join(Names(), ", "))
	}

	maxTokens := params.MaxTokens
	if maxTokens <= 0 || maxTokens > mc.MaxTokens {
		maxTokens = mc.MaxTokens
	}
	temperature := params.Temperature
	if temperature < 0 {
		temperature = 0
	}
	if temperature > 1 {
		temperature = 1
	}

	instructions, prompt := provider.BuildPrompt(&params)

	req := anthropic.MessageNewParams{
		Model:     mc.ModelID,
		MaxTokens: int64(maxTokens),
		Messages: []anthropic.MessageParam{{
			Role:    anthropic.MessageParamRoleUser,
			Content: []anthropic.ContentBlockParamUnion{anthropic.NewTextBlock(prompt)},
		}},
		Temperature: anthropic.Float(temperature),
	}
	if instructions != "" {
		req.System = []anthropic.TextBlockParam{{Text: instructions, Type: "text"}}
	}

	text, err := p.send(ctx, req)
	if err != nil {
		slog.Error("claude generation failed", slogx.Error(err), slog.String("model", params.Model))
		return provider.Failure(params.Model, err)
	}

	return provider.Result{
		Success:    true,
		Content:    text,
		Model:      mc.Name,
		ModelID:    string(mc.ModelID),
		TokensUsed: provider.CountTokens(text),
	}
}

func (p *Provider) sendMessage(ctx context.Context, params anthropic.MessageNewParams) (string, error) {
	resp, err := p.client.Messages.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("claude message: %w", err)
	}
	if resp == nil || len(resp.Content) == 0 {
		return "", fmt.Errorf("empty response from claude")
	}

	var text strings.Builder
	for i := range resp.Content {
		block := &resp.Content[i]
		if block.Type == "text" {
			text.WriteString(block.AsText().Text)
		}
	}
	return text.String(), nil
}
