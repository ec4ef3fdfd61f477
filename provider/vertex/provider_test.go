package vertex

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"

	"github.com/lionspace/vertexflow/config"
	"github.com/lionspace/vertexflow/pkg/hebrew"
	"github.com/lionspace/vertexflow/provider"
)

func testProvider(generate func(ctx context.Context, modelID, prompt string, gc *genai.GenerateContentConfig) (string, error)) *Provider {
	p := New(config.Config{Project: "test-project", Location: "us-east1"})
	p.generate = generate
	return p
}

func TestComplete(t *testing.T) {
	t.Run("unknown model fails with valid names", func(t *testing.T) {
		p := testProvider(nil)
		res := p.Complete(context.Background(), provider.CompletionParams{Model: "gemini-ultra"})

		assert.False(t, res.Success)
		assert.Contains(t, res.Err, "gemini-ultra")
		assert.Contains(t, res.Err, "gemini-flash")
		assert.Contains(t, res.Err, "gemini-pro")
	})

	t.Run("clamps generation parameters to model bounds", func(t *testing.T) {
		var got *genai.GenerateContentConfig
		p := testProvider(func(_ context.Context, _, _ string, gc *genai.GenerateContentConfig) (string, error) {
			got = gc
			return "ok", nil
		})

		res := p.Complete(context.Background(), provider.CompletionParams{
			Model:       "gemini-pro",
			Temperature: 3.5,
			MaxTokens:   100000,
			TopP:        2,
			TopK:        500,
		})

		require.True(t, res.Success)
		require.NotNil(t, got)
		assert.InDelta(t, 1.0, float64(*got.Temperature), 1e-6)
		assert.Equal(t, int32(8192), got.MaxOutputTokens)
		assert.InDelta(t, 1.0, float64(*got.TopP), 1e-6)
		assert.InDelta(t, 100, float64(*got.TopK), 1e-6)
	})

	t.Run("zero parameters take model defaults", func(t *testing.T) {
		var got *genai.GenerateContentConfig
		p := testProvider(func(_ context.Context, _, _ string, gc *genai.GenerateContentConfig) (string, error) {
			got = gc
			return "ok", nil
		})

		res := p.Complete(context.Background(), provider.CompletionParams{Model: "gemini-flash"})
		require.True(t, res.Success)
		assert.Equal(t, int32(1024), got.MaxOutputTokens)
		assert.InDelta(t, 0.95, float64(*got.TopP), 1e-6)
		assert.InDelta(t, 40, float64(*got.TopK), 1e-6)
	})

	t.Run("hebrew enhancement reaches the prompt", func(t *testing.T) {
		var gotPrompt string
		p := testProvider(func(_ context.Context, _, prompt string, _ *genai.GenerateContentConfig) (string, error) {
			gotPrompt = prompt
			return "בסדר", nil
		})

		res := p.Complete(context.Background(), provider.CompletionParams{
			Model:        "gemini-flash",
			Prompt:       "tell me about Dify",
			EnableHebrew: true,
		})

		require.True(t, res.Success)
		assert.Contains(t, gotPrompt, hebrew.Instructions)
		assert.Contains(t, gotPrompt, "tell me about Dify")
	})

	t.Run("SDK errors become failure records", func(t *testing.T) {
		p := testProvider(func(context.Context, string, string, *genai.GenerateContentConfig) (string, error) {
			return "", errors.New("PermissionDenied: quota exhausted")
		})

		res := p.Complete(context.Background(), provider.CompletionParams{Model: "gemini-pro"})
		assert.False(t, res.Success)
		assert.Contains(t, res.Err, "quota exhausted")
		assert.Empty(t, res.Content)
	})

	t.Run("success carries naive token count and metadata", func(t *testing.T) {
		p := testProvider(func(context.Context, string, string, *genai.GenerateContentConfig) (string, error) {
			return "one two three four", nil
		})

		res := p.Complete(context.Background(), provider.CompletionParams{Model: "gemini-pro"})
		require.True(t, res.Success)
		assert.Equal(t, 4, res.TokensUsed)
		assert.Equal(t, "gemini-1.5-pro", res.ModelID)
		assert.Equal(t, "test-project", res.Metadata["project_id"])
		assert.Equal(t, "us-east1", res.Metadata["location"])
	})
}

func TestModelRegistry(t *testing.T) {
	t.Run("registry lists both gemini models", func(t *testing.T) {
		assert.Equal(t, []string{"gemini-flash", "gemini-pro"}, Names())
	})

	t.Run("lookup returns configured bounds", func(t *testing.T) {
		mc, ok := Lookup("gemini-flash")
		require.True(t, ok)
		assert.Equal(t, "gemini-1.5-flash", mc.ModelID)
		assert.Equal(t, 30720, mc.ContextSize)
		assert.InDelta(t, 0.3, mc.Params.Temperature.Default, 1e-6)
		assert.True(t, mc.SupportsHebrew)
	})

	t.Run("bounds clamp", func(t *testing.T) {
		b := Bound[int]{Default: 10, Min: 1, Max: 100}
		assert.Equal(t, 1, b.Clamp(-5))
		assert.Equal(t, 100, b.Clamp(1000))
		assert.Equal(t, 42, b.Clamp(42))
	})
}
