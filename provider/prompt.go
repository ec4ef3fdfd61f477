package provider

import (
	"strings"

	"github.com/goccy/go-json"

	"github.com/lionspace/vertexflow/pkg/hebrew"
)

// BuildPrompt produces the effective instructions and prompt for a request:
// Hebrew enhancement is applied to the prompt when requested, and the
// response schema, if any, is appended to the instructions since not every
// backend supports structured output natively.
func BuildPrompt(params *CompletionParams) (instructions, prompt string) {
	prompt = params.Prompt
	if params.EnableHebrew {
		prompt = hebrew.Enhance(prompt)
	}

	instructions = params.Instructions
	if params.ResponseSchema != nil && params.ResponseSchema.Schema != nil {
		if data, err := json.Marshal(params.ResponseSchema.Schema); err == nil {
			var b strings.Builder
			b.WriteString(instructions)
			if instructions != "" {
				b.WriteString("\n\n")
			}
			b.WriteString("Respond with a single JSON object matching this schema (")
			b.WriteString(params.ResponseSchema.Name)
			b.WriteString("):\n")
			b.Write(data)
			instructions = b.String()
		}
	}
	return instructions, prompt
}

// CountTokens estimates token usage as a whitespace-split word count. It is
// deliberately naive; the host framework only needs a rough usage figure.
func CountTokens(text string) int {
	return len(strings.Fields(text))
}
