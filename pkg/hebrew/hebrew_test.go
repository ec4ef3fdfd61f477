package hebrew

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContains(t *testing.T) {
	t.Run("detects hebrew text", func(t *testing.T) {
		assert.True(t, Contains("שלום עולם"))
		assert.True(t, Contains("mixed שלום text"))
		assert.True(t, Contains("niqqud ְ"))
		assert.True(t, Contains("block start ֐"))
		assert.True(t, Contains("block end ׿"))
	})

	t.Run("rejects non-hebrew text", func(t *testing.T) {
		assert.False(t, Contains(""))
		assert.False(t, Contains("hello world"))
		assert.False(t, Contains("1234 !@#$"))
		assert.False(t, Contains("arabic نص"))
		assert.False(t, Contains("cyrillic привет"))
	})
}

func TestEnhance(t *testing.T) {
	t.Run("prepends instructions to hebrew prompts", func(t *testing.T) {
		enhanced := Enhance("מה זה בינה מלאכותית?")
		assert.True(t, strings.HasPrefix(enhanced, Instructions))
		assert.True(t, strings.HasSuffix(enhanced, "מה זה בינה מלאכותית?"))
	})

	t.Run("appends instructions to other prompts", func(t *testing.T) {
		enhanced := Enhance("what is artificial intelligence?")
		assert.True(t, strings.HasPrefix(enhanced, "what is artificial intelligence?"))
		assert.True(t, strings.HasSuffix(enhanced, Instructions))
	})

	t.Run("result is strictly longer and keeps the input", func(t *testing.T) {
		for _, prompt := range []string{"", "hi", "שלום"} {
			enhanced := Enhance(prompt)
			assert.Greater(t, len(enhanced), len(prompt))
			assert.Contains(t, enhanced, prompt)
		}
	})
}
