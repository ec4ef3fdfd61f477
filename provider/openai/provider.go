// Package openai implements the provider for OpenAI-compatible chat APIs.
package openai

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/lionspace/vertexflow/pkg/slogx"
	"github.com/lionspace/vertexflow/provider"
)

var _ provider.Provider = (*Provider)(nil)

// ModelConfig is one entry of the static OpenAI model table.
type ModelConfig struct {
	Name      string
	ModelID   string
	MaxTokens int
}

var models = map[string]ModelConfig{
	"gpt-4o-mini": {
		Name:      "gpt-4o-mini",
		ModelID:   openai.ChatModelGPT4oMini,
		MaxTokens: 16384,
	},
	"gpt-4o": {
		Name:      "gpt-4o",
		ModelID:   openai.ChatModelGPT4o,
		MaxTokens: 16384,
	},
}

// Names lists the registered OpenAI model names in sorted order.
func Names() []string {
	out := make([]string, 0, len(models))
	for name := range models {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Provider wraps the OpenAI SDK behind the blocking Provider contract.
type Provider struct {
	client *openai.Client

	// send is swapped out in tests to avoid network calls.
	send func(ctx context.Context, params openai.ChatCompletionNewParams) (string, error)
}

// New creates an OpenAI provider. Request options configure auth and base URL.
func New(options ...option.RequestOption) *Provider {
	p := &Provider{client: openai.NewClient(options...)}
	p.send = p.sendCompletion
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

	msgs := make([]openai.ChatCompletionMessageParamUnion, 0, 2)
	if instructions != "" {
		msgs = append(msgs, openai.SystemMessage(instructions))
	}
	msgs = append(msgs, openai.UserMessage(prompt))

	req := openai.ChatCompletionNewParams{
		Messages:    openai.F(msgs),
		Model:       openai.F(mc.ModelID),
		N:           openai.Int(1),
		Temperature: openai.Float(temperature),
		MaxTokens:   openai.Int(int64(maxTokens)),
	}
	if params.TopP > 0 {
		req.TopP = openai.Float(params.TopP)
	}

	text, err := p.send(ctx, req)
	if err != nil {
		slog.Error("openai generation failed", slogx.Error(err), slog.String("model", params.Model))
		return provider.Failure(params.Model, err)
	}

	return provider.Result{
		Success:    true,
		Content:    text,
		Model:      mc.Name,
		ModelID:    mc.ModelID,
		TokensUsed: provider.CountTokens(text),
	}
}

func (p *Provider) sendCompletion(ctx context.Context, params openai.ChatCompletionNewParams) (string, error) {
	chat, err := p.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("openai chat completion: %w", err)
	}
	if chat == nil || len(chat.Choices) == 0 {
		return "", fmt.Errorf("empty response from openai")
	}
	return chat.Choices[0].Message.Content, nil
}
