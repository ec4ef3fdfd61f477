package schema

import (
	"strings"

	"github.com/go-openapi/swag"
	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/lionspace/vertexflow/provider/vertex"
)

// ParameterRule describes one tunable generation parameter as the host
// framework renders it.
type ParameterRule struct {
	Name        string   `json:"name"`
	UseTemplate string   `json:"use_template"`
	Label       I18n     `json:"label"`
	Type        string   `json:"type"`
	Default     any      `json:"default"`
	Min         *float64 `json:"min,omitempty"`
	Max         *float64 `json:"max,omitempty"`
}

// ModelProperties carries the context and chunking limits of a model.
type ModelProperties struct {
	ContextSize int    `json:"context_size"`
	MaxChunks   int    `json:"max_chunks"`
	ChunkSize   int    `json:"chunk_size"`
	Mode        string `json:"mode"`
}

// ModelSchema is one model descriptor.
type ModelSchema struct {
	Model           string          `json:"model"`
	Label           I18n            `json:"label"`
	ModelType       string          `json:"model_type"`
	Features        []string        `json:"features"`
	FetchFrom       string          `json:"fetch_from"`
	ModelProperties ModelProperties `json:"model_properties"`
	ParameterRules  []ParameterRule `json:"parameter_rules"`
}

// Models returns a descriptor for every registered Vertex model.
func Models() []ModelSchema {
	configs := vertex.All()
	out := make([]ModelSchema, 0, len(configs))
	for _, mc := range configs {
		out = append(out, ModelSchema{
			Model:     mc.Name,
			Label:     Uniform(mc.DisplayName),
			ModelType: "llm",
			Features:  []string{"agent-thought", "stream-tool-call"},
			FetchFrom: "predefined-model",
			ModelProperties: ModelProperties{
				ContextSize: mc.ContextSize,
				MaxChunks:   mc.MaxChunks,
				ChunkSize:   mc.ChunkSize,
				Mode:        "chat",
			},
			ParameterRules: parameterRules(mc.Params),
		})
	}
	return out
}

// parameterRules flattens a model's parameter bounds into rules. The ordered
// map pins the presentation order the framework shows them in: temperature,
// then max_tokens, top_p, top_k.
func parameterRules(params vertex.ParameterBounds) []ParameterRule {
	rules := orderedmap.New[string, ParameterRule]()
	rules.Set("temperature", floatRule(params.Temperature))
	rules.Set("max_tokens", intRule(params.MaxTokens))
	rules.Set("top_p", floatRule(params.TopP))
	rules.Set("top_k", intRule(params.TopK))

	out := make([]ParameterRule, 0, rules.Len())
	for pair := rules.Oldest(); pair != nil; pair = pair.Next() {
		rule := pair.Value
		rule.Name = pair.Key
		rule.UseTemplate = pair.Key
		rule.Label = Uniform(titleCase(pair.Key))
		out = append(out, rule)
	}
	return out
}

func floatRule(b vertex.Bound[float64]) ParameterRule {
	return ParameterRule{
		Type:    "float",
		Default: b.Default,
		Min:     swag.Float64(b.Min),
		Max:     swag.Float64(b.Max),
	}
}

func intRule(b vertex.Bound[int]) ParameterRule {
	return ParameterRule{
		Type:    "int",
		Default: b.Default,
		Min:     swag.Float64(float64(b.Min)),
		Max:     swag.Float64(float64(b.Max)),
	}
}

// titleCase renders a snake_case parameter name as a label, "max_tokens"
// becomes "Max Tokens".
func titleCase(name string) string {
	parts := strings.Split(name, "_")
	for i, part := range parts {
		if part == "" {
			continue
		}
		parts[i] = strings.ToUpper(part[:1]) + part[1:]
	}
	return strings.Join(parts, " ")
}
