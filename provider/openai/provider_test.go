package openai

import (
	"context"
	"errors"
	"testing"

	"github.com/openai/openai-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lionspace/vertexflow/provider"
)

func testProvider(send func(ctx context.Context, params openai.ChatCompletionNewParams) (string, error)) *Provider {
	p := New()
	p.send = send
	return p
}

func TestComplete(t *testing.T) {
	t.Run("unknown model fails with valid names", func(t *testing.T) {
		p := testProvider(nil)
		res := p.Complete(context.Background(), provider.CompletionParams{Model: "gpt-5"})

		assert.False(t, res.Success)
		assert.Contains(t, res.Err, "gpt-5")
		assert.Contains(t, res.Err, "gpt-4o")
		assert.Contains(t, res.Err, "gpt-4o-mini")
	})

	t.Run("builds system and user messages", func(t *testing.T) {
		var got openai.ChatCompletionNewParams
		p := testProvider(func(_ context.Context, params openai.ChatCompletionNewParams) (string, error) {
			got = params
			return "ok", nil
		})

		res := p.Complete(context.Background(), provider.CompletionParams{
			Model:        "gpt-4o-mini",
			Instructions: "be terse",
			Prompt:       "hello",
		})
		require.True(t, res.Success)
		assert.Len(t, got.Messages.Value, 2)
	})

	t.Run("SDK errors become failure records", func(t *testing.T) {
		p := testProvider(func(context.Context, openai.ChatCompletionNewParams) (string, error) {
			return "", errors.New("429 rate limited")
		})

		res := p.Complete(context.Background(), provider.CompletionParams{Model: "gpt-4o"})
		assert.False(t, res.Success)
		assert.Contains(t, res.Err, "rate limited")
	})
}
