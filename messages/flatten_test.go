package messages

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlatten(t *testing.T) {
	t.Run("preserves input order", func(t *testing.T) {
		prompt := Flatten([]Message{
			System("a"),
			User("b"),
			Assistant("planner", "c"),
		})

		sys := strings.Index(prompt, "System:")
		usr := strings.Index(prompt, "User:")
		asst := strings.Index(prompt, "Assistant:")
		require.GreaterOrEqual(t, sys, 0)
		assert.Greater(t, usr, sys)
		assert.Greater(t, asst, usr)
	})

	t.Run("joins lines with blank separators", func(t *testing.T) {
		prompt := Flatten([]Message{User("first"), User("second")})
		assert.Equal(t, "User: first\n\nUser: second", prompt)
	})

	t.Run("drops unrecognized roles", func(t *testing.T) {
		prompt := Flatten([]Message{
			User("keep"),
			{Role: Role("tool"), Content: "drop"},
		})
		assert.Equal(t, "User: keep", prompt)
	})

	t.Run("empty input yields empty prompt", func(t *testing.T) {
		assert.Equal(t, "", Flatten(nil))
	})
}

func TestRole(t *testing.T) {
	t.Run("known roles", func(t *testing.T) {
		assert.True(t, RoleSystem.Known())
		assert.True(t, RoleUser.Known())
		assert.True(t, RoleAssistant.Known())
	})

	t.Run("unknown role", func(t *testing.T) {
		assert.False(t, Role("function").Known())
	})
}
