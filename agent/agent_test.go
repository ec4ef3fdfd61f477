package agent

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lionspace/vertexflow/api"
	"github.com/lionspace/vertexflow/types"
)

func TestNew(t *testing.T) {
	model := Binding("claude-sonnet", nil)

	t.Run("options configure the agent", func(t *testing.T) {
		a := New(
			Name("planner"),
			Model(model),
			Instructions("plan things"),
			Fallback(api.SelectorResearcher),
		)

		assert.Equal(t, "planner", a.Name())
		assert.Equal(t, "claude-sonnet", a.Model().Name())
		assert.Equal(t, "plan things", a.Instructions())
		assert.Equal(t, api.SelectorResearcher, a.Fallback())
	})

	t.Run("renders templated instructions", func(t *testing.T) {
		a := New(Name("x"), Instructions("task: {{.task}}"))
		rendered, err := a.RenderInstructions(types.ContextVars{"task": "fibonacci"})
		require.NoError(t, err)
		assert.Equal(t, "task: fibonacci", rendered)
	})

	t.Run("plain instructions pass through", func(t *testing.T) {
		a := New(Name("x"), Instructions("no templates here"))
		rendered, err := a.RenderInstructions(nil)
		require.NoError(t, err)
		assert.Equal(t, "no templates here", rendered)
	})

	t.Run("missing template keys are an error", func(t *testing.T) {
		a := New(Name("x"), Instructions("{{.missing}}"))
		_, err := a.RenderInstructions(types.ContextVars{})
		assert.Error(t, err)
	})
}

func TestBuiltin(t *testing.T) {
	model := Binding("claude-sonnet", nil)

	t.Run("routing table names match selectors", func(t *testing.T) {
		agents := All(model)
		require.Len(t, agents, 4)
		assert.Equal(t, "planner", agents[0].Name())
		assert.Equal(t, "researcher", agents[1].Name())
		assert.Equal(t, "coder", agents[2].Name())
		assert.Equal(t, "reviewer", agents[3].Name())
	})

	t.Run("fallback chain ends at the reviewer", func(t *testing.T) {
		assert.Equal(t, api.SelectorResearcher, Planner(model).Fallback())
		assert.Equal(t, api.SelectorCoder, Researcher(model).Fallback())
		assert.Equal(t, api.SelectorReviewer, Coder(model).Fallback())
		assert.Equal(t, api.End, Reviewer(model).Fallback())
	})

	t.Run("instructions pin the JSON reply format", func(t *testing.T) {
		for _, a := range All(model) {
			assert.Contains(t, a.Instructions(), "JSON")
		}
	})
}
