// Package provider defines the interface for text-generation backends
// (Vertex AI, Anthropic, OpenAI) and the parameter/result records exchanged
// with them.
package provider

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/invopop/jsonschema"
)

// Provider is a blocking text-generation backend. Complete never panics and
// never returns a Go error: every failure, including SDK, auth, quota and
// network errors, is converted into a Result with Success set to false and
// the error message carried in Err.
type Provider interface {
	Complete(context.Context, CompletionParams) Result
}

// CompletionParams carries one generation request.
type CompletionParams struct {
	// RunID identifies the workflow run this request belongs to.
	RunID uuid.UUID

	// Instructions is the system prompt for this request.
	Instructions string

	// Prompt is the flattened user-facing prompt text.
	Prompt string

	// Model names the model in the provider's registry.
	Model string

	// Generation parameters. Each provider clamps them to the bounds of the
	// selected model before the call.
	Temperature float64
	MaxTokens   int
	TopP        float64
	TopK        int

	// EnableHebrew attaches the Hebrew instruction block to the prompt.
	EnableHebrew bool

	// ResponseSchema, when set, describes the JSON shape the reply should
	// follow. Providers without native structured output append it to the
	// instructions.
	ResponseSchema *StructuredOutput

	// Prevents unkeyed literals
	_ struct{}
}

// StructuredOutput names a JSON schema for the expected reply format.
type StructuredOutput struct {
	Name        string
	Description string
	Schema      *jsonschema.Schema
}

// Result is the normalized outcome of one generation call.
type Result struct {
	// Success is false when the call failed for any reason; Err then holds
	// the message.
	Success bool `json:"success"`

	// Content is the generated text, empty on failure.
	Content string `json:"response"`

	// Err carries the failure message verbatim.
	Err string `json:"error,omitempty"`

	// Model is the registry name the request used; ModelID the underlying
	// published model identifier.
	Model   string `json:"model"`
	ModelID string `json:"model_id,omitempty"`

	// TokensUsed is a naive whitespace-split word count of the generated
	// text, not a tokenizer count.
	TokensUsed int `json:"tokens_used"`

	// Metadata carries provider-specific call details (project, location,
	// effective parameters).
	Metadata map[string]any `json:"metadata,omitempty"`
}

// Failure builds a failed Result for model with the given error.
func Failure(model string, err error) Result {
	return Result{Model: model, Err: err.Error()}
}

// Failuref builds a failed Result with a formatted message.
func Failuref(model, format string, args ...any) Result {
	return Result{Model: model, Err: fmt.Sprintf(format, args...)}
}
